package middlewares

import (
	"unicalc_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares dipanggil sekali dari main sebelum route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
