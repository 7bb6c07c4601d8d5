package sqlite

import (
	"context"
	"fmt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

const userColumns = "user_id, name, email, password_hash, address, role, created_at, updated_at"

var userSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

// UserRepository persists user accounts through the dialect layer.
type UserRepository struct {
	exec *Executor
}

func NewUserRepository(exec *Executor) *UserRepository {
	return &UserRepository{exec: exec}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `INSERT INTO Users (name, email, password_hash, address, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	res, err := r.exec.Query(ctx, query, user.Name, user.Email, user.PasswordHash, user.Address, user.Role)
	if err != nil {
		if isUniqueViolation(err, "Users.email") {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, fmt.Errorf("insert user: returning emulation produced no row")
	}
	return userFromRow(res.Rows[0]), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM Users WHERE email = $1`

	res, err := r.exec.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return userFromRow(res.Rows[0]), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM Users WHERE user_id = $1`

	res, err := r.exec.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return userFromRow(res.Rows[0]), nil
}

func (r *UserRepository) List(ctx context.Context, filters ports.UserListFilters) ([]domain.User, int, error) {
	b := NewListBuilder(`SELECT ` + userColumns + ` FROM Users`).
		FilterLike("name", filters.Name).
		FilterLike("email", filters.Email).
		FilterEq("role", filters.Role).
		OrderBy(filters.SortBy, filters.SortOrder, "name", userSortColumns).
		Paginate(filters.Page, filters.Limit)

	query, args := b.Build()
	res, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(res.Rows))
	for _, row := range res.Rows {
		users = append(users, *userFromRow(row))
	}

	countQuery, countArgs := b.BuildCount(`SELECT COUNT(*) AS total FROM Users`)
	countRes, err := r.exec.Query(ctx, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	total := 0
	if len(countRes.Rows) > 0 {
		total = rowInt(countRes.Rows[0], "total")
	}
	return users, total, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE Users SET password_hash = $1, updated_at = NOW() WHERE user_id = $2`

	res, err := r.exec.Query(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.RowCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func userFromRow(row Row) *domain.User {
	return &domain.User{
		ID:           rowInt64(row, "user_id"),
		Name:         rowString(row, "name"),
		Email:        rowString(row, "email"),
		PasswordHash: rowString(row, "password_hash"),
		Address:      rowString(row, "address"),
		Role:         rowString(row, "role"),
		CreatedAt:    rowTime(row, "created_at"),
		UpdatedAt:    rowTime(row, "updated_at"),
	}
}
