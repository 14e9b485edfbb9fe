// file: internals/features/calculators/tuition/controller/tuition_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "unicalc_backend/internals/features/calculators/tuition/dto"
	"unicalc_backend/internals/features/calculators/tuition/service"
	refSvc "unicalc_backend/internals/features/references/service"
	helper "unicalc_backend/internals/helpers"
)

type TuitionController struct {
	Validator *validator.Validate
	Fees      refSvc.Store
	Logger    gokitlog.Logger
}

func NewTuitionController(fees refSvc.Store, logger gokitlog.Logger) *TuitionController {
	if logger == nil {
		logger = gokitlog.NewNopLogger()
	}
	return &TuitionController{
		Validator: helper.NewValidator(),
		Fees:      fees,
		Logger:    logger,
	}
}

/* =========================
   POST /calculators/tuition
========================= */

func (ctl *TuitionController) Calculate(c *fiber.Ctx) error {
	var req dto.TuitionCalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.FeeScheduleCode != "" && (req.PerCreditFee == nil || req.TrimesterFee == nil) {
		fs, err := ctl.Fees.FindFeeSchedule(c.UserContext(), req.FeeScheduleCode)
		switch {
		case errors.Is(err, refSvc.ErrFeeScheduleNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Fee schedule tidak ditemukan")
		case err != nil:
			log.Printf("[ERROR] fee schedule %s: %v", req.FeeScheduleCode, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee schedule")
		}
		req.ApplyFees(fs.FeeSchedulePerCreditFee, fs.FeeScheduleTrimesterFee)
	}

	start := time.Now()
	res, err := service.ProjectTuition(req.ToInput())
	helper.LogEvent(ctl.Logger, c, "tuition.project", start, err,
		"policy", string(res.Policy),
		"fee_schedule", req.FeeScheduleCode,
	)
	if err != nil {
		return helper.FromCalcError(c, err)
	}

	return helper.JsonOK(c, "Biaya kuliah berhasil dihitung", dto.NewTuitionCalculateResponse(req, res))
}
