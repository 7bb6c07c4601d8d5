package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// PlatformTotals carries the three entity counts shown on the admin dashboard.
type PlatformTotals struct {
	Users   int
	Stores  int
	Ratings int
}

// DashboardRepository defines the read-only aggregate queries backing the
// role-scoped dashboards. All results are computed from the current rating
// set at query time; nothing is cached.
type DashboardRepository interface {
	Totals(ctx context.Context) (PlatformTotals, error)
	RoleDistribution(ctx context.Context) ([]domain.RoleCount, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.RatingActivity, error)
	TopStores(ctx context.Context, limit int) ([]domain.RatedStore, error)
	RatingDistribution(ctx context.Context, storeID int64) ([]domain.ValueCount, error)
	Raters(ctx context.Context, storeID int64) ([]domain.Rater, error)
}
