package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.TokenClaims
	err    error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*domain.TokenClaims, error) {
	return v.claims, v.err
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := &stubVerifier{claims: &domain.TokenClaims{
		UserID:   "user-1",
		Username: "alice",
		Role:     domain.RoleSeller,
		TokenID:  "jti-1",
	}}

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("role") != domain.RoleSeller {
			t.Fatalf("role not set")
		}
		if c.Get("token_id") != "jti-1" {
			t.Fatalf("token_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{err: domain.ErrTokenInvalid})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	// No token at all is unauthenticated, not forbidden.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{err: domain.ErrTokenInvalid})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer forged-or-expired")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{err: domain.ErrTokenInvalid})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	// A presented-but-invalid token is forbidden, distinct from the missing case.
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
