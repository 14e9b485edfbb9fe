// file: internals/features/calculators/cgpa/dto/cgpa_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"unicalc_backend/internals/features/calculators/cgpa/model"
	grading "unicalc_backend/internals/features/calculators/grading/model"
	helper "unicalc_backend/internals/helpers"
)

/* =========================================================
   Validator (tag "grade" = huruf pada skala, case-insensitive)
========================================================= */

// NewValidator panic kalau tag "grade" gagal diregistrasi (dipanggil sekali saat route dipasang).
func NewValidator() *validator.Validate {
	v := helper.NewValidator()
	if err := v.RegisterValidation("grade", validGrade); err != nil {
		panic(fmt.Sprintf("cgpa dto: register grade validation: %v", err))
	}
	return v
}

func validGrade(fl validator.FieldLevel) bool {
	_, err := grading.ParseGrade(fl.Field().String())
	return err == nil
}

/* =========================================================
   Request
========================================================= */

type CourseRequest struct {
	ID     string   `json:"id" validate:"omitempty,max=64"`
	Credit *float64 `json:"credit" validate:"required,gt=0,lte=30"`
	Grade  string   `json:"grade" validate:"required,grade"`
}

type RetakeRequest struct {
	ID            string   `json:"id" validate:"omitempty,max=64"`
	Credit        *float64 `json:"credit" validate:"required,gt=0,lte=30"`
	PreviousGrade string   `json:"previous_grade" validate:"required,grade"`
	NewGrade      string   `json:"new_grade" validate:"required,grade"`
}

type CGPACalculateRequest struct {
	PriorCredits *float64        `json:"prior_credits" validate:"required,gte=0,lte=1000"`
	PriorCGPA    *float64        `json:"prior_cgpa" validate:"required,gte=0,lte=4"`
	Courses      []CourseRequest `json:"courses" validate:"max=50,dive"`
	Retakes      []RetakeRequest `json:"retakes" validate:"max=50,dive"`
}

// ToInput: huruf dinormalisasi ("b+" → "B+"), id kosong diisi uuid.
// Panggil setelah validasi lolos.
func (r CGPACalculateRequest) ToInput() model.CGPAInput {
	in := model.CGPAInput{
		Standing: model.AcademicStanding{
			PriorCredits: r.PriorCredits,
			PriorCGPA:    r.PriorCGPA,
		},
		Courses: make([]model.CourseEntry, 0, len(r.Courses)),
		Retakes: make([]model.RetakeEntry, 0, len(r.Retakes)),
	}
	for _, c := range r.Courses {
		in.Courses = append(in.Courses, model.CourseEntry{
			ID:     entryID(c.ID),
			Credit: deref(c.Credit),
			Grade:  normalizeGrade(c.Grade),
		})
	}
	for _, rt := range r.Retakes {
		in.Retakes = append(in.Retakes, model.RetakeEntry{
			ID:            entryID(rt.ID),
			Credit:        deref(rt.Credit),
			PreviousGrade: normalizeGrade(rt.PreviousGrade),
			NewGrade:      normalizeGrade(rt.NewGrade),
		})
	}
	return in
}

func entryID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.New().String()
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// huruf tak dikenal dibiarkan apa adanya, projector yang menolak
func normalizeGrade(s string) grading.Grade {
	if g, err := grading.ParseGrade(s); err == nil {
		return g
	}
	return grading.Grade(s)
}

/* =========================================================
   Response
========================================================= */

type CGPACalculateResponse struct {
	Result model.CGPAResult `json:"result"`
	Report model.CGPAReport `json:"report"`
}
