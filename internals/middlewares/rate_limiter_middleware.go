package middlewares

import (
	"time"

	"halodkm_backend/internals/configs"
	helper "halodkm_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(configs.GetEnvInt("RATE_LIMIT_MAX", 100), time.Minute,
		"Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Limiter untuk penyelesaian event (lebih ketat, per IP)
func CompletionRateLimiter() fiber.Handler {
	return newLimiter(10, time.Minute,
		"Terlalu banyak percobaan menyelesaikan event. Coba beberapa saat lagi.")
}

func newLimiter(limit int, exp time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: exp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}
