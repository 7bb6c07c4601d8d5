package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

func TestPasswordMeetsPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Passw0rd!", true},
		{"valid minimum length", "Abcdef@1", true},
		{"too short", "Ab@1", false},
		{"too long", "Abcdefghijklmn@pq", false},
		{"no uppercase", "password1!", false},
		{"no special", "Password12", false},
		{"special outside set", "Password#1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := passwordMeetsPolicy(tc.password); got != tc.want {
				t.Fatalf("passwordMeetsPolicy(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestUserService_CreateUserEnforcesRoleAndPolicy(t *testing.T) {
	users := newStubUserRepository()
	svc := NewUserService(users, newStubStoreRepository(), newStubRatingRepository())
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, ports.CreateUserInput{
		Name: "Administrator Account Name", Email: "admin@example.com",
		Password: "Passw0rd!", Role: "Manager",
	}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown role: %v", err)
	}

	if _, err := svc.CreateUser(ctx, ports.CreateUserInput{
		Name: "Administrator Account Name", Email: "admin@example.com",
		Password: "weak", Role: domain.RoleAdmin,
	}); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("weak password: %v", err)
	}

	user, err := svc.CreateUser(ctx, ports.CreateUserInput{
		Name: "Administrator Account Name", Email: "admin@example.com",
		Password: "Passw0rd!", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role = %q", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Passw0rd!")) != nil {
		t.Fatalf("stored hash does not verify")
	}
}

func TestUserService_ListUsersPaginates(t *testing.T) {
	users := newStubUserRepository()
	users.listItems = make([]domain.User, 10)
	users.listTotal = 25
	svc := NewUserService(users, newStubStoreRepository(), newStubRatingRepository())

	result, err := svc.ListUsers(context.Background(), ports.UserListFilters{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if result.Total != 25 || result.Page != 2 || result.TotalPages != 3 {
		t.Fatalf("unexpected page math: %+v", result)
	}
}

func TestUserService_GetUserAttachesOwnedStore(t *testing.T) {
	users := newStubUserRepository()
	stores := newStubStoreRepository()
	ratings := newStubRatingRepository()
	svc := NewUserService(users, stores, ratings)
	ctx := context.Background()

	owner := users.mustAdd(domain.User{
		Name: "Store Owner Account Name", Email: "owner@example.com", Role: domain.RoleStoreOwner,
	})
	store, err := stores.Create(ctx, &domain.Store{Name: "Grocery Mart", OwnerID: &owner.ID})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	ratings.aggregates[store.ID] = domain.RatingAggregate{AverageRating: "4.5", TotalRatings: 2}

	detail, err := svc.GetUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if detail.OwnedStore == nil || detail.OwnedStore.ID != store.ID {
		t.Fatalf("owned store not attached: %+v", detail)
	}
	if detail.StoreAggregate == nil || detail.StoreAggregate.AverageRating != "4.5" {
		t.Fatalf("aggregate not attached: %+v", detail.StoreAggregate)
	}
}

func TestUserService_GetUserOwnerWithoutStore(t *testing.T) {
	users := newStubUserRepository()
	svc := NewUserService(users, newStubStoreRepository(), newStubRatingRepository())

	owner := users.mustAdd(domain.User{
		Name: "Store Owner Account Name", Email: "owner@example.com", Role: domain.RoleStoreOwner,
	})

	// A Store Owner with no store assigned is still a valid account.
	detail, err := svc.GetUser(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if detail.OwnedStore != nil || detail.StoreAggregate != nil {
		t.Fatalf("expected no store attached: %+v", detail)
	}
}

// wrappingStoreRepository wraps the no-store sentinel the way a repository
// adding call-site context would.
type wrappingStoreRepository struct {
	*stubStoreRepository
}

func (s *wrappingStoreRepository) FindByOwner(ctx context.Context, ownerID int64) (*domain.Store, error) {
	store, err := s.stubStoreRepository.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find by owner: %w", err)
	}
	return store, nil
}

func TestUserService_GetUserMatchesWrappedNoStoreSentinel(t *testing.T) {
	users := newStubUserRepository()
	stores := &wrappingStoreRepository{stubStoreRepository: newStubStoreRepository()}
	svc := NewUserService(users, stores, newStubRatingRepository())

	owner := users.mustAdd(domain.User{
		Name: "Store Owner Account Name", Email: "owner@example.com", Role: domain.RoleStoreOwner,
	})

	detail, err := svc.GetUser(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("wrapped no-store sentinel must not surface: %v", err)
	}
	if detail.OwnedStore != nil {
		t.Fatalf("expected no store attached: %+v", detail)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	users := newStubUserRepository()
	svc := NewUserService(users, newStubStoreRepository(), newStubRatingRepository())
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Current@1"), bcrypt.MinCost)
	user := users.mustAdd(domain.User{
		Name: "Jane Example Person", Email: "jane@example.com",
		PasswordHash: string(hash), Role: domain.RoleNormalUser,
	})

	if err := svc.UpdatePassword(ctx, user.ID, "wrong", "Next@Pass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong current password: %v", err)
	}
	if err := svc.UpdatePassword(ctx, user.ID, "Current@1", "weak"); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("weak next password: %v", err)
	}
	if err := svc.UpdatePassword(ctx, user.ID, "Current@1", "Next@Pass1"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	stored := users.users[user.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Next@Pass1")) != nil {
		t.Fatalf("new password hash not stored")
	}
}
