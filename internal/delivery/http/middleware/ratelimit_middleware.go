package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"skillconnect/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// rateLimitRejectionBody is the fixed response for throttled requests.
var rateLimitRejectionBody = map[string]string{"error": "Too many requests. Please try again later."}

// RateLimitMiddleware throttles requests per client key using the shared
// fixed-window limiter. It runs before CSRF validation so every attempt,
// valid or not, consumes budget.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Handle rejects requests exceeding the per-window ceiling with 429.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := ratelimit.ClientKey(c.Request())

		if !m.limiter.Allow(key) {
			retryAfter := int(math.Ceil(m.limiter.RetryAfter(key).Seconds()))
			if retryAfter > 0 {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			}

			m.logger.Warn("request rate limited",
				slog.String("client_key", key),
				slog.String("path", c.Request().URL.Path),
			)

			return c.JSON(http.StatusTooManyRequests, rateLimitRejectionBody)
		}

		return next(c)
	}
}
