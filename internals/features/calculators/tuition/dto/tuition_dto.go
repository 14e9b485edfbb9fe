// file: internals/features/calculators/tuition/dto/tuition_dto.go
package dto

import (
	"strings"

	"unicalc_backend/internals/features/calculators/tuition/model"
)

/* =========================================================
   Request
========================================================= */

// PerCreditFee / TrimesterFee boleh kosong kalau FeeScheduleCode diisi.
type TuitionCalculateRequest struct {
	NewCredit                *float64 `json:"new_credit" validate:"required,gte=0,lte=60"`
	RetakeCredit             *float64 `json:"retake_credit" validate:"omitempty,gte=0,lte=60"`
	PerCreditFee             *float64 `json:"per_credit_fee" validate:"omitempty,gte=0,lte=1000000"`
	TrimesterFee             *float64 `json:"trimester_fee" validate:"omitempty,gte=0,lte=1000000"`
	FeeScheduleCode          string   `json:"fee_schedule_code" validate:"omitempty,max=40"`
	WaiverPct                float64  `json:"waiver_pct" validate:"gte=0,lte=100"`
	ScholarshipPct           float64  `json:"scholarship_pct" validate:"gte=0,lte=100"`
	LateRegistration         bool     `json:"late_registration"`
	WaiverInFirstInstallment bool     `json:"waiver_in_first_installment"`
}

func (r *TuitionCalculateRequest) Normalize() {
	r.FeeScheduleCode = strings.ToUpper(strings.TrimSpace(r.FeeScheduleCode))
}

// ApplyFees: nilai eksplisit dari request menang atas fee schedule.
func (r *TuitionCalculateRequest) ApplyFees(perCreditFee, trimesterFee float64) {
	if r.PerCreditFee == nil {
		v := perCreditFee
		r.PerCreditFee = &v
	}
	if r.TrimesterFee == nil {
		v := trimesterFee
		r.TrimesterFee = &v
	}
}

func (r TuitionCalculateRequest) ToInput() model.TuitionInput {
	return model.TuitionInput{
		NewCredit:                r.NewCredit,
		RetakeCredit:             r.RetakeCredit,
		PerCreditFee:             r.PerCreditFee,
		TrimesterFee:             r.TrimesterFee,
		WaiverPct:                r.WaiverPct,
		ScholarshipPct:           r.ScholarshipPct,
		LateRegistration:         r.LateRegistration,
		WaiverInFirstInstallment: r.WaiverInFirstInstallment,
	}
}

/* =========================================================
   Response
========================================================= */

type TuitionInputsDTO struct {
	FeeScheduleCode          string  `json:"fee_schedule_code,omitempty"`
	WaiverPct                float64 `json:"waiver_pct"`
	ScholarshipPct           float64 `json:"scholarship_pct"`
	LateRegistration         bool    `json:"late_registration"`
	WaiverInFirstInstallment bool    `json:"waiver_in_first_installment"`
}

type InstallmentDTO struct {
	Sequence  int     `json:"sequence"`
	Label     string  `json:"label"`
	ShareNote string  `json:"share_note"`
	Amount    float64 `json:"amount"`
}

type TuitionCalculateResponse struct {
	Inputs       TuitionInputsDTO    `json:"inputs"`
	Result       model.TuitionResult `json:"result"`
	Installments []InstallmentDTO    `json:"installments"`
}

var installmentLabels = [3]string{"1st Installment", "2nd Installment", "3rd Installment"}

func shareNotes(p model.InstallmentPolicy) [3]string {
	if p == model.PolicyUniform {
		return [3]string{"40% of final amount", "30% of final amount", "30% of final amount"}
	}
	return [3]string{
		"40% of fees before discount",
		"half of remaining balance",
		"half of remaining balance",
	}
}

func NewTuitionCalculateResponse(req TuitionCalculateRequest, res model.TuitionResult) TuitionCalculateResponse {
	notes := shareNotes(res.Policy)
	amounts := res.Installments()

	items := make([]InstallmentDTO, 0, len(amounts))
	for i, amt := range amounts {
		items = append(items, InstallmentDTO{
			Sequence:  i + 1,
			Label:     installmentLabels[i],
			ShareNote: notes[i],
			Amount:    amt,
		})
	}

	return TuitionCalculateResponse{
		Inputs: TuitionInputsDTO{
			FeeScheduleCode:          req.FeeScheduleCode,
			WaiverPct:                req.WaiverPct,
			ScholarshipPct:           req.ScholarshipPct,
			LateRegistration:         req.LateRegistration,
			WaiverInFirstInstallment: req.WaiverInFirstInstallment,
		},
		Result:       res,
		Installments: items,
	}
}
