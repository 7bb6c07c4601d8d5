package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// RatingService owns the rating lifecycle per (user, store) pair:
// absent → present via Create (conflict when present), present → present via
// Update (not-found when absent), present → absent via Delete (not-found when
// absent). Outcomes are returned as domain sentinel errors, never panics.
type RatingService interface {
	Create(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error)
	Update(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error)
	Get(ctx context.Context, userID, storeID int64) (*domain.Rating, error)
	Delete(ctx context.Context, userID, storeID int64) error
}
