// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "unicalc_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// db boleh nil (tanpa Postgres) → tabel referensi bawaan.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== PUBLIC (tanpa auth) =====================
	api := app.Group("/api/n")

	log.Println("[INFO] Mounting Calculator routes...")
	routeDetails.CalculatorRoutes(api, db)

	log.Println("[INFO] Mounting Reference routes...")
	routeDetails.ReferenceRoutes(api, db)
}
