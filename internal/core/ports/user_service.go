package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// CreateUserInput carries the admin user-creation payload. Role is required
// and immutable after creation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}

// UserDetail is a user plus, for store owners, the aggregate of their store.
type UserDetail struct {
	User           domain.User
	OwnedStore     *domain.Store
	StoreAggregate *domain.RatingAggregate
}

// UserListResult pages the user listing.
type UserListResult struct {
	Items      []domain.User
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines administrative user management and password changes.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, filters UserListFilters) (*UserListResult, error)
	GetUser(ctx context.Context, id int64) (*UserDetail, error)
	UpdatePassword(ctx context.Context, userID int64, current, next string) error
}
