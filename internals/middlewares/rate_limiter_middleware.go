package middlewares

import (
	"time"

	"unicalc_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(configs.RateLimitMax, configs.RateLimitWindow,
		"❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Kalkulator lebih ketat dari endpoint referensi (read-only).
func CalculatorRateLimiter() fiber.Handler {
	max := configs.RateLimitMax / 2
	if max < 10 {
		max = 10
	}
	return newLimiter(max, configs.RateLimitWindow,
		"❌ Terlalu banyak perhitungan. Tunggu sebentar ya.")
}

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":    false,
				"message":    message,
				"error_code": "TOO_MANY_REQUESTS",
			})
		},
	})
}
