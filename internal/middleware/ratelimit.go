// Package middleware holds fiber middleware specific to the catalog.
package middleware

import (
	"time"

	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sirupsen/logrus"
)

// NewSubmitLimiter throttles visitor submissions per client IP to perMinute
// on average, with at most burst accepted inside one window. A non-positive
// perMinute disables limiting.
func NewSubmitLimiter(perMinute, burst int, logger *logrus.Logger) fiber.Handler {
	if burst < 1 {
		burst = 1
	}
	window := time.Minute
	if perMinute > 0 {
		window = time.Duration(burst) * time.Minute / time.Duration(perMinute)
	}

	return limiter.New(limiter.Config{
		Next: func(*fiber.Ctx) bool {
			return perMinute <= 0
		},
		Max:        burst,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.WithFields(logrus.Fields{
				"ip":   c.IP(),
				"path": c.Path(),
			}).Warn("Submission rate limit exceeded")
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "Too many submissions, try again later")
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
