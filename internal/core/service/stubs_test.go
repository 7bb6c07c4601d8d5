package service

import (
	"context"
	"fmt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They implement the
// same sentinel-error contract as the sqlite repositories.

type stubUserRepository struct {
	users  map[int64]*domain.User
	nextID int64

	listItems []domain.User
	listTotal int
	failWith  error
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: make(map[int64]*domain.User)}
}

func (s *stubUserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	s.nextID++
	saved := *user
	saved.ID = s.nextID
	s.users[saved.ID] = &saved
	out := saved
	return &out, nil
}

func (s *stubUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *stubUserRepository) List(_ context.Context, _ ports.UserListFilters) ([]domain.User, int, error) {
	if s.failWith != nil {
		return nil, 0, s.failWith
	}
	return s.listItems, s.listTotal, nil
}

func (s *stubUserRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *stubUserRepository) mustAdd(user domain.User) *domain.User {
	saved, err := s.Create(context.Background(), &user)
	if err != nil {
		panic(fmt.Sprintf("stub add user: %v", err))
	}
	return saved
}

type ratingKey struct {
	userID, storeID int64
}

type stubRatingRepository struct {
	ratings map[ratingKey]*domain.Rating
	nextID  int64

	aggregates map[int64]domain.RatingAggregate
}

func newStubRatingRepository() *stubRatingRepository {
	return &stubRatingRepository{
		ratings:    make(map[ratingKey]*domain.Rating),
		aggregates: make(map[int64]domain.RatingAggregate),
	}
}

func (s *stubRatingRepository) Get(_ context.Context, userID, storeID int64) (*domain.Rating, error) {
	r, ok := s.ratings[ratingKey{userID, storeID}]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	out := *r
	return &out, nil
}

func (s *stubRatingRepository) Create(_ context.Context, userID, storeID int64, value int) (*domain.Rating, error) {
	key := ratingKey{userID, storeID}
	if _, ok := s.ratings[key]; ok {
		return nil, domain.ErrAlreadyRated
	}
	s.nextID++
	r := &domain.Rating{ID: s.nextID, UserID: userID, StoreID: storeID, Value: value}
	s.ratings[key] = r
	out := *r
	return &out, nil
}

func (s *stubRatingRepository) Update(_ context.Context, userID, storeID int64, value int) (*domain.Rating, error) {
	r, ok := s.ratings[ratingKey{userID, storeID}]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	r.Value = value
	out := *r
	return &out, nil
}

func (s *stubRatingRepository) Delete(_ context.Context, userID, storeID int64) error {
	key := ratingKey{userID, storeID}
	if _, ok := s.ratings[key]; !ok {
		return domain.ErrRatingNotFound
	}
	delete(s.ratings, key)
	return nil
}

func (s *stubRatingRepository) Aggregate(_ context.Context, storeID int64) (domain.RatingAggregate, error) {
	if agg, ok := s.aggregates[storeID]; ok {
		return agg, nil
	}
	return domain.RatingAggregate{AverageRating: "0.0"}, nil
}

type stubStoreRepository struct {
	stores  map[int64]*domain.Store
	byOwner map[int64]*domain.Store
	nextID  int64

	listItems   []domain.StoreWithRating
	listTotal   int
	lastFilters ports.StoreListFilters
	lastUserID  int64
}

func newStubStoreRepository() *stubStoreRepository {
	return &stubStoreRepository{
		stores:  make(map[int64]*domain.Store),
		byOwner: make(map[int64]*domain.Store),
	}
}

func (s *stubStoreRepository) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	s.nextID++
	saved := *store
	saved.ID = s.nextID
	s.stores[saved.ID] = &saved
	if saved.OwnerID != nil {
		s.byOwner[*saved.OwnerID] = &saved
	}
	out := saved
	return &out, nil
}

func (s *stubStoreRepository) List(_ context.Context, filters ports.StoreListFilters) ([]domain.StoreWithRating, int, error) {
	s.lastFilters = filters
	return s.listItems, s.listTotal, nil
}

func (s *stubStoreRepository) FindByID(_ context.Context, id int64, userID int64) (*domain.StoreWithRating, error) {
	s.lastUserID = userID
	store, ok := s.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return &domain.StoreWithRating{Store: *store, AverageRating: "0.0"}, nil
}

func (s *stubStoreRepository) FindByOwner(_ context.Context, ownerID int64) (*domain.Store, error) {
	store, ok := s.byOwner[ownerID]
	if !ok {
		return nil, domain.ErrOwnerHasNoStore
	}
	out := *store
	return &out, nil
}

func (s *stubStoreRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.stores[id]
	return ok, nil
}

type stubDashboardRepository struct {
	totals       ports.PlatformTotals
	roles        []domain.RoleCount
	recent       []domain.RatingActivity
	top          []domain.RatedStore
	distribution []domain.ValueCount
	raters       []domain.Rater

	recentLimit int
	topLimit    int
}

func (s *stubDashboardRepository) Totals(_ context.Context) (ports.PlatformTotals, error) {
	return s.totals, nil
}

func (s *stubDashboardRepository) RoleDistribution(_ context.Context) ([]domain.RoleCount, error) {
	return s.roles, nil
}

func (s *stubDashboardRepository) RecentActivity(_ context.Context, limit int) ([]domain.RatingActivity, error) {
	s.recentLimit = limit
	return s.recent, nil
}

func (s *stubDashboardRepository) TopStores(_ context.Context, limit int) ([]domain.RatedStore, error) {
	s.topLimit = limit
	return s.top, nil
}

func (s *stubDashboardRepository) RatingDistribution(_ context.Context, _ int64) ([]domain.ValueCount, error) {
	return s.distribution, nil
}

func (s *stubDashboardRepository) Raters(_ context.Context, _ int64) ([]domain.Rater, error) {
	return s.raters, nil
}

type stubLoginLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubLoginLimiter) Allow(_ context.Context, _ string) (bool, error) {
	s.calls++
	return s.allowed, s.err
}
