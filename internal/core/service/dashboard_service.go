package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

const (
	recentActivityLimit = 10
	topStoresLimit      = 5
)

// DashboardService assembles the role-scoped dashboard views from the
// read-time aggregate queries. Nothing here is cached: every call reflects
// the rating set at query time.
type DashboardService struct {
	dash    ports.DashboardRepository
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewDashboardService(dash ports.DashboardRepository, stores ports.StoreRepository, ratings ports.RatingRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{dash: dash, stores: stores, ratings: ratings, logger: logger}
}

// Admin computes the platform-wide dashboard: entity totals, the user role
// distribution, the most recent ratings, and the top rated stores.
func (s *DashboardService) Admin(ctx context.Context) (*domain.AdminDashboard, error) {
	totals, err := s.dash.Totals(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.dash.RoleDistribution(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.dash.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	top, err := s.dash.TopStores(ctx, topStoresLimit)
	if err != nil {
		return nil, err
	}

	return &domain.AdminDashboard{
		TotalUsers:     totals.Users,
		TotalStores:    totals.Stores,
		TotalRatings:   totals.Ratings,
		RoleCounts:     roles,
		RecentActivity: recent,
		TopStores:      top,
	}, nil
}

// Owner computes the dashboard for a store owner's single store: its
// aggregate, the per-value rating histogram, and everyone who rated it.
func (s *DashboardService) Owner(ctx context.Context, ownerID int64) (*domain.OwnerDashboard, error) {
	store, err := s.stores.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	agg, err := s.ratings.Aggregate(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	distribution, err := s.dash.RatingDistribution(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	raters, err := s.dash.Raters(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	return &domain.OwnerDashboard{
		Store:        *store,
		Aggregate:    agg,
		Distribution: distribution,
		Raters:       raters,
	}, nil
}
