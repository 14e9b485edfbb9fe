package route

import (
	"unicalc_backend/internals/features/calculators/tuition/controller"
	refSvc "unicalc_backend/internals/features/references/service"

	gokitlog "github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// db nil → fee schedule bawaan (STANDARD)
func TuitionRoutes(router fiber.Router, db *gorm.DB, logger gokitlog.Logger) {
	ctrl := controller.NewTuitionController(refSvc.NewStore(db), logger)

	router.Post("/tuition", ctrl.Calculate) // total biaya + 3 cicilan
}
