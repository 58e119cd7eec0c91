package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

// sessionClaims is the JWT payload carried by session tokens.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. The signing secret
// is fixed at construction and read-only afterwards, so concurrent use needs
// no synchronisation.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	denylist ports.TokenDenylist
	now      func() time.Time
}

func NewTokenService(secret string, ttl time.Duration, denylist ports.TokenDenylist) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
		now:      time.Now,
	}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token carrying the user's id, username, and role.
func (s *TokenService) Issue(ctx context.Context, user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry, then the revocation list. A token is
// invalid at and after its expiry instant. All parse failures collapse into
// domain.ErrTokenInvalid.
func (s *TokenService) Verify(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("denylist lookup: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenClaims{
		UserID:    claims.Subject,
		Username:  claims.Username,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke denylists the token's id for its remaining lifetime, after which the
// entry expires together with the token itself.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	remaining := claims.ExpiresAt.Time.Sub(s.now())
	if remaining <= 0 {
		return domain.ErrTokenInvalid
	}
	if err := s.denylist.Revoke(ctx, claims.ID, remaining); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *TokenService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.ExpiresAt == nil {
		return nil, jwt.ErrTokenRequiredClaimMissing
	}
	return claims, nil
}
