package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const defaultRequestsPerSecond = 20

func requestsPerSecondFromEnv() float64 {
	v, err := strconv.ParseFloat(shared.GetEnvOrDefault("API_RATE_LIMIT", ""), 64)
	if err != nil || v <= 0 {
		return defaultRequestsPerSecond
	}
	return v
}

// RateLimit limits the requests per identity. Authenticated requests are
// keyed by user, anonymous ones by client ip. It has to run after the
// session middleware.
func RateLimit(requestsPerSecond float64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(requestsPerSecond),
		Burst:     max(1, int(requestsPerSecond*2)),
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			if session, ok := ctx.Get("session").(shared.AuthSession); ok && session.IsAuthenticated() {
				return "user:" + session.GetUserID().String(), nil
			}
			return "ip:" + ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "could not identify the caller").WithInternal(err)
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}

func RateLimitFromEnv() echo.MiddlewareFunc {
	return RateLimit(requestsPerSecondFromEnv())
}
