package sqlite

import (
	"context"
	"fmt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// DashboardRepository runs the read-only aggregate queries behind the
// role-scoped dashboards.
type DashboardRepository struct {
	exec *Executor
}

func NewDashboardRepository(exec *Executor) *DashboardRepository {
	return &DashboardRepository{exec: exec}
}

func (r *DashboardRepository) Totals(ctx context.Context) (ports.PlatformTotals, error) {
	var totals ports.PlatformTotals
	for _, c := range []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) AS total FROM Users`, &totals.Users},
		{`SELECT COUNT(*) AS total FROM Stores`, &totals.Stores},
		{`SELECT COUNT(*) AS total FROM Ratings`, &totals.Ratings},
	} {
		res, err := r.exec.Query(ctx, c.query)
		if err != nil {
			return ports.PlatformTotals{}, fmt.Errorf("dashboard totals: %w", err)
		}
		if len(res.Rows) > 0 {
			*c.dest = rowInt(res.Rows[0], "total")
		}
	}
	return totals, nil
}

func (r *DashboardRepository) RoleDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	const query = `SELECT role, COUNT(*) AS count FROM Users GROUP BY role ORDER BY role`

	res, err := r.exec.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("role distribution: %w", err)
	}
	counts := make([]domain.RoleCount, 0, len(res.Rows))
	for _, row := range res.Rows {
		counts = append(counts, domain.RoleCount{
			Role:  rowString(row, "role"),
			Count: rowInt(row, "count"),
		})
	}
	return counts, nil
}

// RecentActivity returns the most recent ratings joined with user and store
// names, newest first, ties broken by rating identity descending.
func (r *DashboardRepository) RecentActivity(ctx context.Context, limit int) ([]domain.RatingActivity, error) {
	const query = `SELECT r.rating_id, r.rating_value, r.created_at,
			u.name AS user_name, s.name AS store_name
		FROM Ratings r
		JOIN Users u ON r.user_id = u.user_id
		JOIN Stores s ON r.store_id = s.store_id
		ORDER BY r.created_at DESC, r.rating_id DESC
		LIMIT $1`

	res, err := r.exec.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	feed := make([]domain.RatingActivity, 0, len(res.Rows))
	for _, row := range res.Rows {
		feed = append(feed, domain.RatingActivity{
			RatingID:  rowInt64(row, "rating_id"),
			Value:     rowInt(row, "rating_value"),
			UserName:  rowString(row, "user_name"),
			StoreName: rowString(row, "store_name"),
			CreatedAt: rowTime(row, "created_at"),
		})
	}
	return feed, nil
}

func (r *DashboardRepository) TopStores(ctx context.Context, limit int) ([]domain.RatedStore, error) {
	const query = `SELECT s.store_id, s.name, s.address,
			AVG(CAST(r.rating_value AS REAL)) AS average_rating,
			COUNT(r.rating_id) AS total_ratings
		FROM Stores s
		LEFT JOIN Ratings r ON s.store_id = r.store_id
		GROUP BY s.store_id, s.name, s.address
		HAVING COUNT(r.rating_id) > 0
		ORDER BY AVG(r.rating_value) DESC, COUNT(r.rating_id) DESC
		LIMIT $1`

	res, err := r.exec.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top stores: %w", err)
	}
	stores := make([]domain.RatedStore, 0, len(res.Rows))
	for _, row := range res.Rows {
		stores = append(stores, domain.RatedStore{
			ID:            rowInt64(row, "store_id"),
			Name:          rowString(row, "name"),
			Address:       rowString(row, "address"),
			AverageRating: formatAverage(rowFloat(row, "average_rating")),
			TotalRatings:  rowInt(row, "total_ratings"),
		})
	}
	return stores, nil
}

// RatingDistribution returns the per-value histogram of one store's ratings,
// highest value first. Values with no ratings produce no bucket.
func (r *DashboardRepository) RatingDistribution(ctx context.Context, storeID int64) ([]domain.ValueCount, error) {
	const query = `SELECT rating_value, COUNT(*) AS count
		FROM Ratings WHERE store_id = $1
		GROUP BY rating_value
		ORDER BY rating_value DESC`

	res, err := r.exec.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("rating distribution: %w", err)
	}
	buckets := make([]domain.ValueCount, 0, len(res.Rows))
	for _, row := range res.Rows {
		buckets = append(buckets, domain.ValueCount{
			Value: rowInt(row, "rating_value"),
			Count: rowInt(row, "count"),
		})
	}
	return buckets, nil
}

func (r *DashboardRepository) Raters(ctx context.Context, storeID int64) ([]domain.Rater, error) {
	const query = `SELECT u.user_id, u.name, u.email,
			r.rating_value, r.created_at, r.updated_at
		FROM Ratings r
		JOIN Users u ON r.user_id = u.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC`

	res, err := r.exec.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("store raters: %w", err)
	}
	raters := make([]domain.Rater, 0, len(res.Rows))
	for _, row := range res.Rows {
		raters = append(raters, domain.Rater{
			UserID:  rowInt64(row, "user_id"),
			Name:    rowString(row, "name"),
			Email:   rowString(row, "email"),
			Value:   rowInt(row, "rating_value"),
			RatedAt: rowTime(row, "created_at"),
			Updated: rowTime(row, "updated_at"),
		})
	}
	return raters, nil
}
