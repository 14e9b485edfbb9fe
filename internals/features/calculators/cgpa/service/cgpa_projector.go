// file: internals/features/calculators/cgpa/service/cgpa_projector.go
package service

import (
	"fmt"
	"math"

	"unicalc_backend/internals/features/calculators/calcerr"
	"unicalc_backend/internals/features/calculators/cgpa/model"
)

const MaxCGPA = 4.00

// ProjectCGPA menghitung CGPA baru dari standing sebelumnya + course baru + retake.
//
//	totalPoints  = priorCredits*priorCGPA + Σ credit*point(grade) + Σ credit*(point(new)-point(prev))
//	totalCredits = priorCredits + Σ course credit   (retake credit tidak menambah penyebut)
//
// Slice input hanya dibaca. Penyebut 0 → ErrDivisionByZero tanpa hasil.
func ProjectCGPA(in model.CGPAInput) (model.CGPAResult, error) {
	priorCredits, err := calcerr.Required("prior_credits", in.Standing.PriorCredits)
	if err != nil {
		return model.CGPAResult{}, err
	}
	if priorCredits, err = calcerr.NonNegative("prior_credits", priorCredits); err != nil {
		return model.CGPAResult{}, err
	}
	priorCGPA, err := calcerr.Required("prior_cgpa", in.Standing.PriorCGPA)
	if err != nil {
		return model.CGPAResult{}, err
	}
	if priorCGPA, err = calcerr.Between("prior_cgpa", priorCGPA, 0, MaxCGPA); err != nil {
		return model.CGPAResult{}, err
	}

	var newCourseCredits, newCoursePoints float64
	for i, c := range in.Courses {
		pts, err := coursePoints(c)
		if err != nil {
			return model.CGPAResult{}, fmt.Errorf("courses[%d]: %w", i, err)
		}
		newCourseCredits += c.Credit
		newCoursePoints += pts
	}

	var retakeCredits, retakeImprovement float64
	for i, r := range in.Retakes {
		delta, err := retakeDelta(r)
		if err != nil {
			return model.CGPAResult{}, fmt.Errorf("retakes[%d]: %w", i, err)
		}
		retakeCredits += r.Credit
		retakeImprovement += delta
	}

	totalPoints := priorCredits*priorCGPA + newCoursePoints + retakeImprovement
	totalCredits := priorCredits + newCourseCredits
	if totalCredits == 0 {
		return model.CGPAResult{}, fmt.Errorf("%w: total credits is 0, CGPA is undefined", calcerr.ErrDivisionByZero)
	}

	res := model.CGPAResult{
		NewCGPA:                 totalPoints / totalCredits,
		PriorCGPA:               priorCGPA,
		PriorCredits:            priorCredits,
		NewCourseCredits:        newCourseCredits,
		NewCoursePoints:         newCoursePoints,
		RetakeCourseCredits:     retakeCredits,
		RetakeImprovementPoints: retakeImprovement,
		TotalPoints:             totalPoints,
		TotalCredits:            totalCredits,
	}
	if err := finiteResult(res); err != nil {
		return model.CGPAResult{}, err
	}
	return res, nil
}

// input yang finite tapi sangat besar bisa overflow jadi ±Inf/NaN
func finiteResult(r model.CGPAResult) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"new_course_credits", r.NewCourseCredits},
		{"new_course_points", r.NewCoursePoints},
		{"retake_course_credits", r.RetakeCourseCredits},
		{"retake_improvement_points", r.RetakeImprovementPoints},
		{"total_points", r.TotalPoints},
		{"total_credits", r.TotalCredits},
		{"new_cgpa", r.NewCGPA},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return calcerr.Invalid(f.name, "overflows (input too large)")
		}
	}
	return nil
}

func positiveCredit(v float64) error {
	v, err := calcerr.Finite("credit", v)
	if err != nil {
		return err
	}
	if v <= 0 {
		return calcerr.Invalid("credit", "must be greater than 0")
	}
	return nil
}

func coursePoints(c model.CourseEntry) (float64, error) {
	if err := positiveCredit(c.Credit); err != nil {
		return 0, err
	}
	p, err := c.Grade.Point()
	if err != nil {
		return 0, err
	}
	return c.Credit * p, nil
}

func retakeDelta(r model.RetakeEntry) (float64, error) {
	if err := positiveCredit(r.Credit); err != nil {
		return 0, err
	}
	prev, err := r.PreviousGrade.Point()
	if err != nil {
		return 0, fmt.Errorf("previous_grade: %w", err)
	}
	next, err := r.NewGrade.Point()
	if err != nil {
		return 0, fmt.Errorf("new_grade: %w", err)
	}
	return r.Credit*next - r.Credit*prev, nil
}
