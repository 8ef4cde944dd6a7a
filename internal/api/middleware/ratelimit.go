package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/api/metrics"
)

// Limiter decides whether a request from ip may proceed within scope.
type Limiter interface {
	Allow(ctx context.Context, scope, ip string) (bool, error)
}

// RateLimit throttles a route group per client IP. A nil limiter disables
// throttling entirely; a limiter failure is logged and the request is let
// through, availability wins over strictness here.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			if !allowed {
				metrics.RateLimitRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"too many authentication attempts, please try again later")
			}

			return next(c)
		}
	}
}
