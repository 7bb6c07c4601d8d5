package sqlite

import (
	"context"
	"fmt"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

const ratingColumns = "rating_id, user_id, store_id, rating_value, created_at, updated_at"

// RatingRepository persists the rating lifecycle. The schema's unique
// constraint on (user_id, store_id) backs the one-rating-per-pair invariant;
// a concurrent duplicate insert fails at the engine and is mapped to the
// conflict outcome here.
type RatingRepository struct {
	exec *Executor
}

func NewRatingRepository(exec *Executor) *RatingRepository {
	return &RatingRepository{exec: exec}
}

func (r *RatingRepository) Get(ctx context.Context, userID, storeID int64) (*domain.Rating, error) {
	const query = `SELECT ` + ratingColumns + ` FROM Ratings WHERE user_id = $1 AND store_id = $2`

	res, err := r.exec.Query(ctx, query, userID, storeID)
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrRatingNotFound
	}
	return ratingFromRow(res.Rows[0]), nil
}

func (r *RatingRepository) Create(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error) {
	const query = `INSERT INTO Ratings (user_id, store_id, rating_value)
		VALUES ($1, $2, $3)
		RETURNING ` + ratingColumns

	res, err := r.exec.Query(ctx, query, userID, storeID, value)
	if err != nil {
		if isUniqueViolation(err, "Ratings.user_id") {
			return nil, domain.ErrAlreadyRated
		}
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, fmt.Errorf("insert rating: returning emulation produced no row")
	}
	return ratingFromRow(res.Rows[0]), nil
}

// Update rewrites the value and update timestamp. RETURNING on updates is
// not emulated, so only the affected count comes back from the write and the
// updated row is re-read explicitly.
func (r *RatingRepository) Update(ctx context.Context, userID, storeID int64, value int) (*domain.Rating, error) {
	const query = `UPDATE Ratings SET rating_value = $1, updated_at = NOW()
		WHERE user_id = $2 AND store_id = $3
		RETURNING ` + ratingColumns

	res, err := r.exec.Query(ctx, query, value, userID, storeID)
	if err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}
	if res.RowCount == 0 {
		return nil, domain.ErrRatingNotFound
	}
	return r.Get(ctx, userID, storeID)
}

func (r *RatingRepository) Delete(ctx context.Context, userID, storeID int64) error {
	const query = `DELETE FROM Ratings WHERE user_id = $1 AND store_id = $2`

	res, err := r.exec.Query(ctx, query, userID, storeID)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if res.RowCount == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

// Aggregate scans all ratings of one store and computes the mean and count at
// read time. An empty store yields "0.0" and zero, never a division fault.
func (r *RatingRepository) Aggregate(ctx context.Context, storeID int64) (domain.RatingAggregate, error) {
	const query = `SELECT COALESCE(AVG(CAST(rating_value AS REAL)), 0) AS average_rating,
			COUNT(*) AS total_ratings
		FROM Ratings WHERE store_id = $1`

	res, err := r.exec.Query(ctx, query, storeID)
	if err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	agg := domain.RatingAggregate{AverageRating: formatAverage(0)}
	if len(res.Rows) > 0 {
		agg.AverageRating = formatAverage(rowFloat(res.Rows[0], "average_rating"))
		agg.TotalRatings = rowInt(res.Rows[0], "total_ratings")
	}
	return agg, nil
}

func ratingFromRow(row Row) *domain.Rating {
	return &domain.Rating{
		ID:        rowInt64(row, "rating_id"),
		UserID:    rowInt64(row, "user_id"),
		StoreID:   rowInt64(row, "store_id"),
		Value:     rowInt(row, "rating_value"),
		CreatedAt: rowTime(row, "created_at"),
		UpdatedAt: rowTime(row, "updated_at"),
	}
}
