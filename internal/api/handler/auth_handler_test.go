package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	signedOut  []string
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) SignOut(_ context.Context, token string) error {
	s.signedOut = append(s.signedOut, token)
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret99" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "user-1", Username: "alice", Role: domain.RoleSeller}, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret99"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in body, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "user-1" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash must never appear in responses")
	}

	cookie := findCookie(t, rec, "jwtToken")
	if cookie.Value != "token123" {
		t.Fatalf("cookie carries wrong token")
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be SameSite=Strict")
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("cookie MaxAge must match token TTL, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_ShortPassword(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on malformed input")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	body := strings.NewReader(`{"email":"alice@example.com","password":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_ServiceErrorPassesThrough(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	body := strings.NewReader(`{"email":"alice@example.com","password":"wrong999"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_SignOut_ClearsCookieAndRevokes(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{}
	handler := NewAuthHandler(stub, time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if len(stub.signedOut) != 1 || stub.signedOut[0] != "token123" {
		t.Fatalf("expected token to be revoked, got %v", stub.signedOut)
	}

	cookie := findCookie(t, rec, "jwtToken")
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_SignOut_FallsBackToCookieToken(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{}
	handler := NewAuthHandler(stub, time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.AddCookie(&http.Cookie{Name: "jwtToken", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(stub.signedOut) != 1 || stub.signedOut[0] != "cookie-token" {
		t.Fatalf("expected cookie token to be revoked, got %v", stub.signedOut)
	}
}
