// file: internals/features/references/controller/reference_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	grading "unicalc_backend/internals/features/calculators/grading/model"
	dto "unicalc_backend/internals/features/references/dto"
	svc "unicalc_backend/internals/features/references/service"
	helper "unicalc_backend/internals/helpers"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type ReferenceController struct {
	Store svc.Store
}

func NewReferenceController(store svc.Store) *ReferenceController {
	return &ReferenceController{Store: store}
}

/* =========================
   GET /references/grading-scale
========================= */

func (ctl *ReferenceController) GradingScale(c *fiber.Ctx) error {
	rows := dto.FromGradingRows(svc.GradingTable())
	p := helper.ResolvePaging(c, len(rows), 0)
	page := helper.PageSlice(rows, p)

	return helper.JsonListEx(c, "ok", page,
		helper.BuildPaginationFromPage(int64(len(rows)), p.Page, p.PerPage, len(page)),
		dto.GradingScaleIncludes{GraduationRequirements: svc.GraduationRequirements()},
	)
}

/* =========================
   GET /references/academic-standings
========================= */

func (ctl *ReferenceController) AcademicStandings(c *fiber.Ctx) error {
	rows := dto.FromStandingBands(grading.StandingBands())
	p := helper.ResolvePaging(c, len(rows), 0)
	page := helper.PageSlice(rows, p)

	return helper.JsonList(c, "ok", page,
		helper.BuildPaginationFromPage(int64(len(rows)), p.Page, p.PerPage, len(page)))
}

/* =========================
   GET /references/waiver-policies?category=scholarship
========================= */

func (ctl *ReferenceController) WaiverPolicies(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListWaiverPolicies(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list waiver policies: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data waiver")
	}

	if cat := strings.ToLower(strings.TrimSpace(c.Query("category"))); cat != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if string(r.WaiverPolicyCategory) == cat {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	items := dto.FromWaiverPolicyModels(rows)
	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)
	page := helper.PageSlice(items, p)

	return helper.JsonListEx(c, "ok", page,
		helper.BuildPaginationFromPage(int64(len(items)), p.Page, p.PerPage, len(page)),
		dto.WaiverPolicyIncludes{Notes: svc.WaiverPolicyNotes()},
	)
}

/* =========================
   GET /references/fee-schedules
========================= */

func (ctl *ReferenceController) FeeSchedules(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListFeeSchedules(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list fee schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee schedule")
	}

	items := dto.FromFeeScheduleModels(rows)
	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)
	page := helper.PageSlice(items, p)

	return helper.JsonList(c, "ok", page,
		helper.BuildPaginationFromPage(int64(len(items)), p.Page, p.PerPage, len(page)))
}

/* =========================
   GET /references/fee-schedules/:code
========================= */

func (ctl *ReferenceController) FeeScheduleByCode(c *fiber.Ctx) error {
	code := svc.NormalizeCode(c.Params("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "code wajib diisi")
	}

	row, err := ctl.Store.FindFeeSchedule(c.UserContext(), code)
	switch {
	case errors.Is(err, svc.ErrFeeScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Fee schedule tidak ditemukan")
	case err != nil:
		log.Printf("[ERROR] find fee schedule %s: %v", code, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee schedule")
	}

	return helper.JsonOK(c, "ok", dto.FromFeeScheduleModel(*row))
}
