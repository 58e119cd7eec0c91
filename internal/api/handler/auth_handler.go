package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketgrid/marketplace-api/internal/api/metrics"
	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "jwtToken"

// AuthHandler handles login and signout.
type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
	secure      bool
}

// NewAuthHandler creates an AuthHandler. secure controls the Secure cookie
// attribute and is set in production configurations.
func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// Login authenticates a user, sets the session cookie, and returns the token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, int(h.tokenTTL.Seconds())))

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Authentication successful",
		Token:   token,
		User:    user,
	})
}

// SignOut revokes the presented token and clears the session cookie.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	token := presentedToken(c)
	if err := h.authService.SignOut(c.Request().Context(), token); err != nil {
		return err
	}
	if token != "" {
		metrics.TokensRevokedTotal.Inc()
	}

	expired := h.sessionCookie("", -1)
	expired.Expires = time.Unix(0, 0)
	c.SetCookie(expired)

	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully signed out"})
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// presentedToken returns the session token from the Authorization header or,
// failing that, from the session cookie.
func presentedToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "denied"
	case errors.Is(err, domain.ErrValidation):
		return "invalid_input"
	default:
		return "error"
	}
}
