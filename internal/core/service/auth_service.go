package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// AuthService implements registration, login, and signout.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	audit  ports.AuditTrail
	log    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	audit ports.AuditTrail,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit, log: log}
}

// Login verifies credentials and issues a session token. Input shape is
// checked before any lookup is performed.
//
// A missing account (ErrUserNotFound) and a wrong password
// (ErrInvalidCredentials) surface as distinct errors, matching the published
// API contract. Whether the two should be collapsed into one denial to close
// the account-enumeration channel is an open product decision.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if !emailPattern.MatchString(email) {
		return "", nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return "", nil, fmt.Errorf("%w: password must be at least 6 characters long", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuthEvent{Kind: domain.AuthEventLoginDenied, Email: email, Reason: "unknown account"})
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(domain.AuthEvent{Kind: domain.AuthEventLoginDenied, UserID: user.ID, Email: email, Reason: "password mismatch"})
		s.log.Info().Str("user_id", user.ID).Msg("login denied")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.AuthEvent{Kind: domain.AuthEventLoginSuccess, UserID: user.ID, Email: email})
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

// Register creates a new account with a freshly salted password hash.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" {
		return nil, fmt.Errorf("%w: invalid username", domain.ErrValidation)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least 6 characters long", domain.ErrValidation)
	}
	if !domain.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: invalid role specified", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Kind: domain.AuthEventRegistered, UserID: created.ID, Email: created.Email})
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// SignOut revokes the presented token so it can no longer authenticate, even
// if a client kept a copy outside the session cookie. Tokens that are already
// expired or malformed need no revocation.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.tokens.Revoke(ctx, token); err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			return nil
		}
		return err
	}

	s.record(domain.AuthEvent{Kind: domain.AuthEventSignOut})
	return nil
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	s.audit.Record(event)
}
