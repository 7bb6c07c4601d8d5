package sqlite

import (
	"context"
	"fmt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

var storeSortColumns = map[string]string{
	"name":       "s.name",
	"address":    "s.address",
	"created_at": "s.created_at",
}

// StoreRepository persists stores and computes their read-time aggregates.
type StoreRepository struct {
	exec *Executor
}

func NewStoreRepository(exec *Executor) *StoreRepository {
	return &StoreRepository{exec: exec}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	const query = `INSERT INTO Stores (name, address, owner_id)
		VALUES ($1, $2, $3)
		RETURNING store_id, name, address, owner_id, created_at, updated_at`

	var owner any
	if store.OwnerID != nil {
		owner = *store.OwnerID
	}
	res, err := r.exec.Query(ctx, query, store.Name, store.Address, owner)
	if err != nil {
		return nil, fmt.Errorf("insert store: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, fmt.Errorf("insert store: returning emulation produced no row")
	}
	return storeFromRow(res.Rows[0]), nil
}

// List pages stores matched by the filters, attaching the rating aggregate of
// each store. Aggregates are computed per store in a follow-up query so each
// row is identical to an independent Aggregate call.
func (r *StoreRepository) List(ctx context.Context, filters ports.StoreListFilters) ([]domain.StoreWithRating, int, error) {
	b := NewListBuilder(`SELECT s.store_id, s.name, s.address, s.owner_id, s.created_at, s.updated_at,
			u.email AS owner_email
		FROM Stores s
		LEFT JOIN Users u ON s.owner_id = u.user_id`).
		FilterLike("s.name", filters.Name).
		FilterLike("s.address", filters.Address).
		OrderBy(filters.SortBy, filters.SortOrder, "name", storeSortColumns).
		Paginate(filters.Page, filters.Limit)

	query, args := b.Build()
	res, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}

	stores := make([]domain.StoreWithRating, 0, len(res.Rows))
	for _, row := range res.Rows {
		item := domain.StoreWithRating{
			Store:      *storeFromRow(row),
			OwnerEmail: rowString(row, "owner_email"),
		}
		agg, err := r.aggregate(ctx, item.ID)
		if err != nil {
			return nil, 0, err
		}
		item.AverageRating = agg.AverageRating
		item.TotalRatings = agg.TotalRatings

		if filters.UserID != 0 {
			item.UserRating, err = r.userRating(ctx, item.ID, filters.UserID)
			if err != nil {
				return nil, 0, err
			}
		}
		stores = append(stores, item)
	}

	countQuery, countArgs := b.BuildCount(`SELECT COUNT(*) AS total FROM Stores s`)
	countRes, err := r.exec.Query(ctx, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}
	total := 0
	if len(countRes.Rows) > 0 {
		total = rowInt(countRes.Rows[0], "total")
	}
	return stores, total, nil
}

// FindByID returns one store with its aggregate. When userID is non-zero the
// requesting user's own rating is attached.
func (r *StoreRepository) FindByID(ctx context.Context, id int64, userID int64) (*domain.StoreWithRating, error) {
	const query = `SELECT s.store_id, s.name, s.address, s.owner_id, s.created_at, s.updated_at,
			COALESCE(AVG(r.rating_value), 0) AS average_rating,
			COUNT(r.rating_id) AS total_ratings
		FROM Stores s
		LEFT JOIN Ratings r ON s.store_id = r.store_id
		WHERE s.store_id = $1
		GROUP BY s.store_id, s.name, s.address, s.owner_id, s.created_at, s.updated_at`

	res, err := r.exec.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("find store: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrStoreNotFound
	}
	row := res.Rows[0]

	store := &domain.StoreWithRating{
		Store:         *storeFromRow(row),
		AverageRating: formatAverage(rowFloat(row, "average_rating")),
		TotalRatings:  rowInt(row, "total_ratings"),
	}
	if userID != 0 {
		store.UserRating, err = r.userRating(ctx, id, userID)
		if err != nil {
			return nil, err
		}
	}
	return store, nil
}

// FindByOwner returns the single store assigned to ownerID. The one-store-
// per-owner rule is enforced here by the single-row lookup, not by a schema
// constraint.
func (r *StoreRepository) FindByOwner(ctx context.Context, ownerID int64) (*domain.Store, error) {
	const query = `SELECT store_id, name, address, owner_id, created_at, updated_at
		FROM Stores WHERE owner_id = $1`

	res, err := r.exec.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find store by owner: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrOwnerHasNoStore
	}
	return storeFromRow(res.Rows[0]), nil
}

func (r *StoreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT store_id FROM Stores WHERE store_id = $1`

	res, err := r.exec.Query(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("store exists: %w", err)
	}
	return len(res.Rows) > 0, nil
}

func (r *StoreRepository) aggregate(ctx context.Context, storeID int64) (domain.RatingAggregate, error) {
	const query = `SELECT COALESCE(AVG(CAST(rating_value AS REAL)), 0) AS average_rating,
			COUNT(*) AS total_ratings
		FROM Ratings WHERE store_id = $1`

	res, err := r.exec.Query(ctx, query, storeID)
	if err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("store aggregate: %w", err)
	}
	agg := domain.RatingAggregate{AverageRating: formatAverage(0)}
	if len(res.Rows) > 0 {
		agg.AverageRating = formatAverage(rowFloat(res.Rows[0], "average_rating"))
		agg.TotalRatings = rowInt(res.Rows[0], "total_ratings")
	}
	return agg, nil
}

func (r *StoreRepository) userRating(ctx context.Context, storeID, userID int64) (*int, error) {
	const query = `SELECT rating_value FROM Ratings WHERE store_id = $1 AND user_id = $2`

	res, err := r.exec.Query(ctx, query, storeID, userID)
	if err != nil {
		return nil, fmt.Errorf("user rating: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return rowNullInt(res.Rows[0], "rating_value"), nil
}

func storeFromRow(row Row) *domain.Store {
	return &domain.Store{
		ID:        rowInt64(row, "store_id"),
		Name:      rowString(row, "name"),
		Address:   rowString(row, "address"),
		OwnerID:   rowNullInt64(row, "owner_id"),
		CreatedAt: rowTime(row, "created_at"),
		UpdatedAt: rowTime(row, "updated_at"),
	}
}
