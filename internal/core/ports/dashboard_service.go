package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// DashboardService computes the role-scoped dashboard views.
type DashboardService interface {
	Admin(ctx context.Context) (*domain.AdminDashboard, error)
	Owner(ctx context.Context, ownerID int64) (*domain.OwnerDashboard, error)
}
