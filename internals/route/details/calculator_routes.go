package details

import (
	cgpaRoute "unicalc_backend/internals/features/calculators/cgpa/route"
	tuitionRoute "unicalc_backend/internals/features/calculators/tuition/route"
	helper "unicalc_backend/internals/helpers"
	"unicalc_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// /api/n/calculators/{cgpa,tuition}
func CalculatorRoutes(r fiber.Router, db *gorm.DB) {
	logger := helper.NewEventLogger("calculators")

	calc := r.Group("/calculators", middlewares.CalculatorRateLimiter())
	cgpaRoute.CGPARoutes(calc, logger)
	tuitionRoute.TuitionRoutes(calc, db, logger)
}
