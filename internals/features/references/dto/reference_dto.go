// file: internals/features/references/dto/reference_dto.go
package dto

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	grading "unicalc_backend/internals/features/calculators/grading/model"
	m "unicalc_backend/internals/features/references/model"
	svc "unicalc_backend/internals/features/references/service"
)

/* =========================================================
   Fee schedule
========================================================= */

type FeeScheduleDTO struct {
	ID           *uuid.UUID `json:"id,omitempty"` // kosong untuk data bawaan
	Code         string     `json:"code"`
	Label        string     `json:"label"`
	PerCreditFee float64    `json:"per_credit_fee"`
	TrimesterFee float64    `json:"trimester_fee"`
	Currency     string     `json:"currency"`
	IsDefault    bool       `json:"is_default"`
}

func FromFeeScheduleModel(fs m.FeeScheduleModel) FeeScheduleDTO {
	out := FeeScheduleDTO{
		Code:         fs.FeeScheduleCode,
		Label:        fs.FeeScheduleLabel,
		PerCreditFee: fs.FeeSchedulePerCreditFee,
		TrimesterFee: fs.FeeScheduleTrimesterFee,
		Currency:     fs.FeeScheduleCurrency,
		IsDefault:    fs.FeeScheduleIsDefault,
	}
	if fs.FeeScheduleID != uuid.Nil {
		id := fs.FeeScheduleID
		out.ID = &id
	}
	return out
}

func FromFeeScheduleModels(xs []m.FeeScheduleModel) []FeeScheduleDTO {
	out := make([]FeeScheduleDTO, 0, len(xs))
	for _, it := range xs {
		out = append(out, FromFeeScheduleModel(it))
	}
	return out
}

/* =========================================================
   Waiver / scholarship
========================================================= */

type WaiverPolicyDTO struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Category  string     `json:"category"`
	Name      string     `json:"name"`
	Amount    string     `json:"amount"`
	Condition string     `json:"condition"`
	Tags      []string   `json:"tags"`
}

func FromWaiverPolicyModel(w m.WaiverPolicyModel) WaiverPolicyDTO {
	out := WaiverPolicyDTO{
		Category:  string(w.WaiverPolicyCategory),
		Name:      w.WaiverPolicyName,
		Amount:    w.WaiverPolicyAmount,
		Condition: w.WaiverPolicyCondition,
		Tags:      []string{},
	}
	if w.WaiverPolicyID != uuid.Nil {
		id := w.WaiverPolicyID
		out.ID = &id
	}
	if len(w.WaiverPolicyTags) > 0 {
		var tags []string
		if err := sonic.Unmarshal(w.WaiverPolicyTags, &tags); err == nil && tags != nil {
			out.Tags = tags
		}
	}
	return out
}

func FromWaiverPolicyModels(xs []m.WaiverPolicyModel) []WaiverPolicyDTO {
	out := make([]WaiverPolicyDTO, 0, len(xs))
	for _, it := range xs {
		out = append(out, FromWaiverPolicyModel(it))
	}
	return out
}

// WaiverPolicyIncludes dikirim di "includes" list waiver.
type WaiverPolicyIncludes struct {
	Notes []string `json:"notes"`
}

/* =========================================================
   Grading scale & standing
========================================================= */

type GradingRowDTO struct {
	Grade       string  `json:"grade"`
	GradePoint  float64 `json:"grade_point"`
	MarksRange  string  `json:"marks_range"`
	Description string  `json:"description"`
}

func FromGradingRows(rows []svc.GradingRow) []GradingRowDTO {
	out := make([]GradingRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, GradingRowDTO{
			Grade:       string(r.Grade),
			GradePoint:  r.Point,
			MarksRange:  r.MarksRange,
			Description: r.Description,
		})
	}
	return out
}

type GradingScaleIncludes struct {
	GraduationRequirements []string `json:"graduation_requirements"`
}

type StandingBandDTO struct {
	Standing    string  `json:"standing"`
	CGPARange   string  `json:"cgpa_range"`
	MinCGPA     float64 `json:"min_cgpa"`
	MaxCGPA     float64 `json:"max_cgpa"`
	Description string  `json:"description"`
}

func FromStandingBands(bands []grading.StandingBand) []StandingBandDTO {
	out := make([]StandingBandDTO, 0, len(bands))
	for _, b := range bands {
		out = append(out, StandingBandDTO{
			Standing:    string(b.Standing),
			CGPARange:   b.Range,
			MinCGPA:     b.MinCGPA,
			MaxCGPA:     b.MaxCGPA,
			Description: b.Description,
		})
	}
	return out
}
