package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// RatingService owns the rating lifecycle per (user, store) pair. The service
// checks for an existing rating before acting to give callers the friendly
// conflict/not-found outcome; the storage layer's unique constraint is what
// actually closes the race between concurrent creates for the same pair.
type RatingService struct {
	ratings ports.RatingRepository
	stores  ports.StoreRepository
	logger  zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, stores ports.StoreRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, stores: stores, logger: logger}
}

// Create submits a new rating: absent → present. Conflict when the pair is
// already rated, not-found when the store does not exist.
func (s *RatingService) Create(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error) {
	if err := s.checkPreconditions(ctx, storeID, value); err != nil {
		return nil, err
	}

	if _, err := s.ratings.Get(ctx, userID, storeID); err == nil {
		return nil, domain.ErrAlreadyRated
	} else if !errors.Is(err, domain.ErrRatingNotFound) {
		return nil, err
	}

	rating, err := s.ratings.Create(ctx, userID, storeID, value)
	if err != nil {
		return nil, err
	}

	metrics.RatingsCreatedTotal.WithLabelValues(strconv.Itoa(value)).Inc()
	s.logger.Info().Int64("user_id", userID).Int64("store_id", storeID).Int("value", value).Msg("rating created")
	return rating, nil
}

// Update rewrites an existing rating: present → present. Not-found when the
// pair has no rating yet. Updating to the current value is a no-op that still
// succeeds and refreshes the update timestamp.
func (s *RatingService) Update(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error) {
	if err := s.checkPreconditions(ctx, storeID, value); err != nil {
		return nil, err
	}

	if _, err := s.ratings.Get(ctx, userID, storeID); err != nil {
		return nil, err
	}

	rating, err := s.ratings.Update(ctx, userID, storeID, value)
	if err != nil {
		return nil, err
	}

	metrics.RatingsUpdatedTotal.WithLabelValues(strconv.Itoa(value)).Inc()
	s.logger.Info().Int64("user_id", userID).Int64("store_id", storeID).Int("value", value).Msg("rating updated")
	return rating, nil
}

func (s *RatingService) Get(ctx context.Context, userID, storeID int64) (*domain.Rating, error) {
	return s.ratings.Get(ctx, userID, storeID)
}

// Delete removes a rating: present → absent. Not-found when absent, with no
// side effects.
func (s *RatingService) Delete(ctx context.Context, userID, storeID int64) error {
	if err := s.ratings.Delete(ctx, userID, storeID); err != nil {
		return err
	}

	metrics.RatingsDeletedTotal.Inc()
	s.logger.Info().Int64("user_id", userID).Int64("store_id", storeID).Msg("rating deleted")
	return nil
}

// checkPreconditions rejects mutations against missing stores and, although
// handlers validate the range upstream, out-of-range values.
func (s *RatingService) checkPreconditions(ctx context.Context, storeID int64, value int) error {
	if value < domain.MinRatingValue || value > domain.MaxRatingValue {
		return domain.ErrInvalidRating
	}
	exists, err := s.stores.Exists(ctx, storeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrStoreNotFound
	}
	return nil
}
