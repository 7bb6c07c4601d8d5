package domain

import "time"

// Store is a registered business that users can rate. OwnerID is a weak
// reference to a User with the Store Owner role, validated at creation only.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	OwnerID   *int64    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreWithRating is a store joined with its derived rating aggregate. The
// aggregate is computed at read time and never persisted.
type StoreWithRating struct {
	Store
	OwnerEmail    string `json:"owner_email,omitempty"`
	AverageRating string `json:"average_rating"`
	TotalRatings  int    `json:"total_ratings"`
	// UserRating carries the requesting user's own rating for the store,
	// when the requester is a Normal User and has rated it.
	UserRating *int `json:"user_rating,omitempty"`
}
