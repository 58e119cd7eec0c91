package ports

import (
	"context"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// RegisterInput carries the fields supplied when creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines the login, registration, and signout use cases.
type AuthService interface {
	// Login verifies credentials and returns a signed session token together
	// with the authenticated account.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// SignOut revokes the presented token. An empty or already-invalid token
	// is not an error: the session is unusable either way.
	SignOut(ctx context.Context, token string) error
}
