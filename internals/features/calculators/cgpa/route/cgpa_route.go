package route

import (
	"unicalc_backend/internals/features/calculators/cgpa/controller"

	gokitlog "github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
)

func CGPARoutes(router fiber.Router, logger gokitlog.Logger) {
	ctrl := controller.NewCGPAController(logger)

	router.Post("/cgpa", ctrl.Calculate) // proyeksi CGPA + report
}
