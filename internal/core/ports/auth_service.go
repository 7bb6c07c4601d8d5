package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// RegisterInput carries the self-signup payload. Role is optional and
// defaults to Normal User.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated login attempts per account. Allow reports
// whether another attempt may proceed; the limiter is an optional
// collaborator and the auth service runs without one.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}
