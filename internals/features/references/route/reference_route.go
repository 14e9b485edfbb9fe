package route

import (
	"unicalc_backend/internals/features/references/controller"
	"unicalc_backend/internals/features/references/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// db boleh nil → tabel bawaan
func ReferenceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReferenceController(service.NewStore(db))

	refs := router.Group("/references")
	{
		refs.Get("/grading-scale", ctrl.GradingScale)
		refs.Get("/academic-standings", ctrl.AcademicStandings)
		refs.Get("/waiver-policies", ctrl.WaiverPolicies)
		refs.Get("/fee-schedules", ctrl.FeeSchedules)
		refs.Get("/fee-schedules/:code", ctrl.FeeScheduleByCode)
	}
}
