package ports

import (
	"context"
	"time"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	Issue(ctx context.Context, user *domain.User) (string, error)
	// Verify checks signature, expiry, and revocation. Any failure yields
	// domain.ErrTokenInvalid; the caller learns nothing more specific.
	Verify(ctx context.Context, token string) (*domain.TokenClaims, error)
	// Revoke denylists the token's id for its remaining lifetime.
	Revoke(ctx context.Context, token string) error
}

// TokenDenylist records revoked token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// PasswordHasher hides the hash algorithm from the services that use it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A mismatch is a normal
	// negative result, not an error.
	Verify(plaintext, hash string) bool
}
