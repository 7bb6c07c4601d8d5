package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// UserListFilters narrows and pages the user listing.
type UserListFilters struct {
	Name      string
	Email     string
	Role      string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, filters UserListFilters) ([]domain.User, int, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
