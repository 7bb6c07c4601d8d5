package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// StoreListFilters narrows and pages the store listing.
type StoreListFilters struct {
	Name      string
	Address   string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
	// UserID, when non-zero, attaches that user's own rating to each row.
	UserID int64
}

// StoreRepository defines persistence for stores and their read-time
// rating aggregates.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	List(ctx context.Context, filters StoreListFilters) ([]domain.StoreWithRating, int, error)
	FindByID(ctx context.Context, id int64, userID int64) (*domain.StoreWithRating, error)
	FindByOwner(ctx context.Context, ownerID int64) (*domain.Store, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
