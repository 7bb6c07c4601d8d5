package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// StoreService implements store management and listings.
type StoreService struct {
	stores ports.StoreRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, users ports.UserRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, users: users, logger: logger}
}

// CreateStore registers a store. When an owner is given, the referenced user
// must exist and hold the Store Owner role at this moment; the assignment is
// not re-validated afterwards.
func (s *StoreService) CreateStore(ctx context.Context, input ports.CreateStoreInput) (*domain.Store, error) {
	if input.OwnerID != nil {
		owner, err := s.users.FindByID(ctx, *input.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner.Role != domain.RoleStoreOwner {
			return nil, domain.ErrNotStoreOwner
		}
	}

	store, err := s.stores.Create(ctx, &domain.Store{
		Name:    input.Name,
		Address: input.Address,
		OwnerID: input.OwnerID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create store")
		return nil, err
	}

	s.logger.Info().Int64("store_id", store.ID).Str("name", store.Name).Msg("store created")
	return store, nil
}

// ListStores pages stores with their aggregates. Normal Users additionally
// see their own rating on each row; the repository only attaches it when
// filters.UserID is set, so other roles pass through with it cleared.
func (s *StoreService) ListStores(ctx context.Context, filters ports.StoreListFilters, requesterRole string) (*ports.StoreListResult, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}
	if requesterRole != domain.RoleNormalUser {
		filters.UserID = 0
	}

	stores, total, err := s.stores.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &ports.StoreListResult{
		Items:      stores,
		Total:      total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: (total + filters.Limit - 1) / filters.Limit,
	}, nil
}

func (s *StoreService) GetStore(ctx context.Context, id int64, requesterID int64, requesterRole string) (*domain.StoreWithRating, error) {
	userID := int64(0)
	if requesterRole == domain.RoleNormalUser {
		userID = requesterID
	}
	return s.stores.FindByID(ctx, id, userID)
}
