package domain

import "errors"

// Expected, recoverable outcomes. These are returned as values and mapped to
// HTTP statuses centrally; engine-level failures are wrapped and propagated
// as plain errors instead.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrStoreNotFound      = errors.New("store not found")
	ErrNotStoreOwner      = errors.New("user is not a store owner")
	ErrOwnerHasNoStore    = errors.New("no store found for this owner")
	ErrAlreadyRated       = errors.New("store already rated, use update")
	ErrRatingNotFound     = errors.New("rating not found, use create")
	ErrInvalidRating      = errors.New("rating value must be between 1 and 5")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrForbidden          = errors.New("access forbidden")
	ErrRateLimited        = errors.New("too many attempts, retry later")
)
