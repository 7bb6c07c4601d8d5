package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// CreateStoreInput carries the admin store-creation payload. OwnerID is
// optional; when set, the referenced user must hold the Store Owner role at
// creation time.
type CreateStoreInput struct {
	Name    string
	Address string
	OwnerID *int64
}

// StoreListResult pages the store listing, each row carrying its read-time
// rating aggregate.
type StoreListResult struct {
	Items      []domain.StoreWithRating
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// StoreService defines store management and listing use cases.
type StoreService interface {
	CreateStore(ctx context.Context, input CreateStoreInput) (*domain.Store, error)
	ListStores(ctx context.Context, filters StoreListFilters, requesterRole string) (*StoreListResult, error)
	GetStore(ctx context.Context, id int64, requesterID int64, requesterRole string) (*domain.StoreWithRating, error)
}
