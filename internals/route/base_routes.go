package routes

import (
	"time"

	"unicalc_backend/internals/configs"
	databases "unicalc_backend/internals/databases"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("UniCalc API is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Not configured (built-in reference tables)"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if db != nil {
			dbStatus = "Connected"
			if err := databases.Ping(); err != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    configs.AppEnv,
		})
	})
}
