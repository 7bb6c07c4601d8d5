package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// RatingRepository defines persistence for the rating lifecycle. Create must
// return domain.ErrAlreadyRated when a rating for the (user, store) pair
// already exists; Update and Delete return domain.ErrRatingNotFound when it
// does not.
type RatingRepository interface {
	Get(ctx context.Context, userID, storeID int64) (*domain.Rating, error)
	Create(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error)
	Update(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error)
	Delete(ctx context.Context, userID, storeID int64) error
	Aggregate(ctx context.Context, storeID int64) (domain.RatingAggregate, error)
}
