package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: invalid email format", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrEmailInUse, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrVendorNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestHTTPErrorHandler_InternalDetailNotLeaked(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(errors.New("dial tcp 10.0.0.3:27017: connection refused"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"internal server error"}`+"\n" {
		t.Fatalf("internal error detail leaked: %s", body)
	}
}
