// file: internals/features/calculators/tuition/service/tuition_projector.go
package service

import (
	"math"

	"unicalc_backend/internals/features/calculators/calcerr"
	"unicalc_backend/internals/features/calculators/tuition/model"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)

	firstShare = decimal.RequireFromString("0.40")
	laterShare = decimal.RequireFromString("0.30")
)

// ProjectTuition menghitung total tagihan + 3 cicilan.
//
// Waiver dan scholarship tidak dijumlah: yang dipakai hanya yang terbesar.
// Trimester fee dan late fee tidak pernah kena diskon.
func ProjectTuition(in model.TuitionInput) (model.TuitionResult, error) {
	newCredit, err := requiredNonNegative("new_credit", in.NewCredit)
	if err != nil {
		return model.TuitionResult{}, err
	}
	retakeCredit := 0.0
	if in.RetakeCredit != nil {
		if retakeCredit, err = calcerr.NonNegative("retake_credit", *in.RetakeCredit); err != nil {
			return model.TuitionResult{}, err
		}
	}
	perCreditFee, err := requiredNonNegative("per_credit_fee", in.PerCreditFee)
	if err != nil {
		return model.TuitionResult{}, err
	}
	trimesterFee, err := requiredNonNegative("trimester_fee", in.TrimesterFee)
	if err != nil {
		return model.TuitionResult{}, err
	}
	waiver, err := calcerr.Between("waiver_pct", in.WaiverPct, 0, 100)
	if err != nil {
		return model.TuitionResult{}, err
	}
	scholarship, err := calcerr.Between("scholarship_pct", in.ScholarshipPct, 0, 100)
	if err != nil {
		return model.TuitionResult{}, err
	}

	totalCredit := decimal.NewFromFloat(newCredit).Add(decimal.NewFromFloat(retakeCredit))
	totalCreditFee := totalCredit.Mul(decimal.NewFromFloat(perCreditFee))

	applied := decimal.Max(decimal.NewFromFloat(waiver), decimal.NewFromFloat(scholarship))
	discount := totalCreditFee.Mul(applied).Div(hundred)

	lateFee := decimal.Zero
	if in.LateRegistration {
		lateFee = decimal.NewFromInt(model.LateRegistrationFee)
	}

	trimester := decimal.NewFromFloat(trimesterFee)
	final := totalCreditFee.Sub(discount).Add(trimester).Add(lateFee)

	policy := in.Policy()
	first, second, third := splitInstallments(policy, final, totalCreditFee.Add(trimester).Add(lateFee))

	res := model.TuitionResult{
		NewCredit:       newCredit,
		RetakeCredit:    retakeCredit,
		PerCreditFee:    perCreditFee,
		TrimesterFee:    trimesterFee,
		AppliedDiscount: applied.InexactFloat64(),
		LateFee:         lateFee.InexactFloat64(),
		Policy:          policy,
	}
	out := []struct {
		name string
		d    decimal.Decimal
		dst  *float64
	}{
		{"total_credit", totalCredit, &res.TotalCredit},
		{"total_credit_fee", totalCreditFee, &res.TotalCreditFee},
		{"discount_amount", discount, &res.DiscountAmount},
		{"final_amount", final, &res.FinalAmount},
		{"first_installment", first, &res.FirstInstallment},
		{"second_installment", second, &res.SecondInstallment},
		{"third_installment", third, &res.ThirdInstallment},
	}

	// decimal tidak overflow, tapi konversi ke float64 bisa jadi ±Inf
	for _, o := range out {
		v := o.d.InexactFloat64()
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return model.TuitionResult{}, calcerr.Invalid(o.name, "overflows (input too large)")
		}
		*o.dst = v
	}
	return res, nil
}

// fullFee = biaya sebelum diskon (credit fee + trimester fee + late fee)
func splitInstallments(policy model.InstallmentPolicy, final, fullFee decimal.Decimal) (first, second, third decimal.Decimal) {
	if policy == model.PolicyUniform {
		return final.Mul(firstShare), final.Mul(laterShare), final.Mul(laterShare)
	}
	first = fullFee.Mul(firstShare)
	rest := final.Sub(first).Div(two)
	return first, rest, rest
}

func requiredNonNegative(field string, p *float64) (float64, error) {
	v, err := calcerr.Required(field, p)
	if err != nil {
		return 0, err
	}
	return calcerr.NonNegative(field, v)
}
