package service

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// Passwords set through the admin path or a password change must be 8-16
// characters with at least one uppercase letter and one special character.
var (
	passwordUpperRe   = regexp.MustCompile(`[A-Z]`)
	passwordSpecialRe = regexp.MustCompile(`[@$!%*?&]`)
)

func passwordMeetsPolicy(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	return passwordUpperRe.MatchString(password) && passwordSpecialRe.MatchString(password)
}

// UserService implements administrative user management and password changes.
type UserService struct {
	users  ports.UserRepository
	stores ports.StoreRepository
	rating ports.RatingRepository
}

func NewUserService(users ports.UserRepository, stores ports.StoreRepository, rating ports.RatingRepository) *UserService {
	return &UserService{users: users, stores: stores, rating: rating}
}

// CreateUser creates an account on behalf of an administrator. Unlike
// self-signup, the role is required and the password policy is enforced.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}
	if !passwordMeetsPolicy(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address:      input.Address,
		Role:         input.Role,
	})
}

func (s *UserService) ListUsers(ctx context.Context, filters ports.UserListFilters) (*ports.UserListResult, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}

	users, total, err := s.users.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &ports.UserListResult{
		Items:      users,
		Total:      total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: (total + filters.Limit - 1) / filters.Limit,
	}, nil
}

// GetUser returns one account. For store owners the owned store and its
// rating aggregate are attached, so the admin view shows the store's
// standing alongside the account.
func (s *UserService) GetUser(ctx context.Context, id int64) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.UserDetail{User: *user}
	if user.Role == domain.RoleStoreOwner {
		store, err := s.stores.FindByOwner(ctx, user.ID)
		switch {
		case err == nil:
			agg, err := s.rating.Aggregate(ctx, store.ID)
			if err != nil {
				return nil, err
			}
			detail.OwnedStore = store
			detail.StoreAggregate = &agg
		case !errors.Is(err, domain.ErrOwnerHasNoStore):
			return nil, err
		}
	}
	return detail, nil
}

// UpdatePassword verifies the current password before accepting the new one.
func (s *UserService) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}
	if !passwordMeetsPolicy(next) {
		return domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}
