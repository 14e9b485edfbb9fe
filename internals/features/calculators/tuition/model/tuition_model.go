// file: internals/features/calculators/tuition/model/tuition_model.go
package model

// InstallmentPolicy menentukan cara diskon dibagi ke 3 cicilan.
type InstallmentPolicy string

const (
	// 40/30/30 dari final amount (diskon rata di semua cicilan)
	PolicyUniform InstallmentPolicy = "uniform"
	// cicilan 1 = 40% biaya penuh sebelum diskon, sisanya dibagi dua
	PolicyDeferredDiscount InstallmentPolicy = "deferred_discount"
)

// LateRegistrationFee ditagih sekali kalau registrasi terlambat.
const LateRegistrationFee = 500

// TuitionInput: NewCredit, PerCreditFee dan TrimesterFee wajib (nil = tidak dikirim).
// RetakeCredit nil dianggap 0.
type TuitionInput struct {
	NewCredit                *float64 `json:"new_credit"`
	RetakeCredit             *float64 `json:"retake_credit"`
	PerCreditFee             *float64 `json:"per_credit_fee"`
	TrimesterFee             *float64 `json:"trimester_fee"`
	WaiverPct                float64  `json:"waiver_pct"`
	ScholarshipPct           float64  `json:"scholarship_pct"`
	LateRegistration         bool     `json:"late_registration"`
	WaiverInFirstInstallment bool     `json:"waiver_in_first_installment"`
}

func (in TuitionInput) Policy() InstallmentPolicy {
	if in.WaiverInFirstInstallment {
		return PolicyUniform
	}
	return PolicyDeferredDiscount
}

type TuitionResult struct {
	NewCredit         float64           `json:"new_credit"`
	RetakeCredit      float64           `json:"retake_credit"`
	TotalCredit       float64           `json:"total_credit"`
	PerCreditFee      float64           `json:"per_credit_fee"`
	TrimesterFee      float64           `json:"trimester_fee"`
	TotalCreditFee    float64           `json:"total_credit_fee"`
	AppliedDiscount   float64           `json:"applied_discount"`
	DiscountAmount    float64           `json:"discount_amount"`
	LateFee           float64           `json:"late_fee"`
	FinalAmount       float64           `json:"final_amount"`
	FirstInstallment  float64           `json:"first_installment"`
	SecondInstallment float64           `json:"second_installment"`
	ThirdInstallment  float64           `json:"third_installment"`
	Policy            InstallmentPolicy `json:"policy"`
}

func (r TuitionResult) Installments() [3]float64 {
	return [3]float64{r.FirstInstallment, r.SecondInstallment, r.ThirdInstallment}
}
