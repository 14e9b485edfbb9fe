// file: internals/features/calculators/cgpa/controller/cgpa_controller.go
package controller

import (
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "unicalc_backend/internals/features/calculators/cgpa/dto"
	"unicalc_backend/internals/features/calculators/cgpa/service"
	helper "unicalc_backend/internals/helpers"
)

type CGPAController struct {
	Validator *validator.Validate
	Logger    gokitlog.Logger
}

func NewCGPAController(logger gokitlog.Logger) *CGPAController {
	if logger == nil {
		logger = gokitlog.NewNopLogger()
	}
	return &CGPAController{
		Validator: dto.NewValidator(),
		Logger:    logger,
	}
}

/* =========================
   POST /calculators/cgpa
========================= */

func (ctl *CGPAController) Calculate(c *fiber.Ctx) error {
	var req dto.CGPACalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in := req.ToInput()
	start := time.Now()
	res, err := service.ProjectCGPA(in)
	helper.LogEvent(ctl.Logger, c, "cgpa.project", start, err,
		"courses", len(in.Courses),
		"retakes", len(in.Retakes),
	)
	if err != nil {
		return helper.FromCalcError(c, err)
	}

	return helper.JsonOK(c, "CGPA berhasil dihitung", dto.CGPACalculateResponse{
		Result: res,
		Report: service.BuildReport(in, res),
	})
}
