package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/api/metrics"
)

// AttemptLimiter abstracts the fixed-window attempt counter (Redis).
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles login attempts per client IP. A limiter failure
// never locks clients out; the attempt is allowed and the error logged.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
				c.Response().Header().Set("Retry-After", "900")
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
			}
			return next(c)
		}
	}
}
