package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marketgrid/marketplace-api/internal/api/metrics"
	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// Auth converts the bearer token into a verified per-request identity and
// injects it into the echo context. A missing or malformed header is
// unauthenticated (401); a header that is present but carries a forged,
// expired, or revoked token is forbidden (403). The gate never touches the
// data layer.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)
			c.Set("token_id", claims.TokenID)

			return next(c)
		}
	}
}
