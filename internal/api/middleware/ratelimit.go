package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RateLimitStore counts requests per key within a fixed window.
type RateLimitStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit rejects clients that exceed max requests per window, keyed by
// client IP. A store failure fails open and is logged.
func RateLimit(store RateLimitStore, max int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			n, err := store.Incr(c.Request().Context(), c.RealIP(), window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if n > max {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
