package service

import (
	"math"
	"testing"

	"unicalc_backend/internals/features/calculators/calcerr"
	"unicalc_backend/internals/features/calculators/cgpa/model"
	grading "unicalc_backend/internals/features/calculators/grading/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func standing(credits, cgpa float64) model.AcademicStanding {
	return model.AcademicStanding{PriorCredits: f(credits), PriorCGPA: f(cgpa)}
}

func TestProjectCGPA_NoEntriesKeepsPriorCGPA(t *testing.T) {
	res, err := ProjectCGPA(model.CGPAInput{Standing: standing(90, 3.00)})
	require.NoError(t, err)

	assert.InDelta(t, 3.00, res.NewCGPA, 1e-9)
	assert.Equal(t, 90.0, res.TotalCredits)
	assert.Equal(t, 0.0, res.NewCourseCredits)
	assert.Equal(t, 0.0, res.RetakeCourseCredits)
}

func TestProjectCGPA_NewCourse(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(90, 3.00),
		Courses:  []model.CourseEntry{{ID: "c1", Credit: 3, Grade: grading.GradeA}},
	}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)

	assert.Equal(t, 93.0, res.TotalCredits)
	assert.InDelta(t, 12.0, res.NewCoursePoints, 1e-9)
	assert.InDelta(t, (90*3.00+3*4.00)/93, res.NewCGPA, 1e-9)
	assert.InDelta(t, 3.0323, res.NewCGPA, 1e-4)
}

func TestProjectCGPA_RetakeDoesNotGrowDenominator(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(90, 3.00),
		Retakes: []model.RetakeEntry{
			{ID: "r1", Credit: 3, PreviousGrade: grading.GradeC, NewGrade: grading.GradeA},
		},
	}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)

	assert.Equal(t, 90.0, res.TotalCredits)
	assert.Equal(t, 3.0, res.RetakeCourseCredits)
	assert.InDelta(t, 6.0, res.RetakeImprovementPoints, 1e-9)
	assert.InDelta(t, 276.0, res.TotalPoints, 1e-9)
	assert.InDelta(t, 3.0667, res.NewCGPA, 1e-4)
}

func TestProjectCGPA_WorseRetakeLowersCGPA(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(30, 3.50),
		Retakes: []model.RetakeEntry{
			{Credit: 3, PreviousGrade: grading.GradeB, NewGrade: grading.GradeD},
		},
	}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)
	assert.InDelta(t, -6.0, res.RetakeImprovementPoints, 1e-9)
	assert.Less(t, res.NewCGPA, 3.50)
}

func TestProjectCGPA_MixedEntries(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(60, 3.20),
		Courses: []model.CourseEntry{
			{Credit: 3, Grade: grading.GradeAMinus},
			{Credit: 1, Grade: grading.GradeBPlus},
			{Credit: 1.5, Grade: grading.GradeF},
		},
		Retakes: []model.RetakeEntry{
			{Credit: 3, PreviousGrade: grading.GradeDPlus, NewGrade: grading.GradeB},
		},
	}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)

	wantPoints := 60*3.20 + (3*3.67 + 1*3.33 + 1.5*0) + (3*3.00 - 3*1.33)
	assert.InDelta(t, 5.5, res.NewCourseCredits, 1e-9)
	assert.InDelta(t, 65.5, res.TotalCredits, 1e-9)
	assert.InDelta(t, wantPoints, res.TotalPoints, 1e-9)
	assert.InDelta(t, wantPoints/65.5, res.NewCGPA, 1e-9)
}

func TestProjectCGPA_Idempotent(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(45, 2.75),
		Courses:  []model.CourseEntry{{Credit: 3, Grade: grading.GradeB}, {Credit: 4, Grade: grading.GradeCPlus}},
		Retakes:  []model.RetakeEntry{{Credit: 3, PreviousGrade: grading.GradeF, NewGrade: grading.GradeC}},
	}
	a, errA := ProjectCGPA(in)
	b, errB := ProjectCGPA(in)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestProjectCGPA_DoesNotMutateInput(t *testing.T) {
	courses := []model.CourseEntry{{ID: "x", Credit: 3, Grade: grading.GradeA}}
	in := model.CGPAInput{Standing: standing(10, 3.00), Courses: courses}
	_, err := ProjectCGPA(in)
	require.NoError(t, err)
	assert.Equal(t, model.CourseEntry{ID: "x", Credit: 3, Grade: grading.GradeA}, courses[0])
}

func TestProjectCGPA_ZeroCreditsIsDivisionByZero(t *testing.T) {
	res, err := ProjectCGPA(model.CGPAInput{Standing: standing(0, 0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, calcerr.ErrDivisionByZero)
	assert.Equal(t, model.CGPAResult{}, res)
	assert.False(t, math.IsNaN(res.NewCGPA))
}

func TestProjectCGPA_ZeroPriorWithRetakeOnlyIsDivisionByZero(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(0, 0),
		Retakes:  []model.RetakeEntry{{Credit: 3, PreviousGrade: grading.GradeC, NewGrade: grading.GradeA}},
	}
	_, err := ProjectCGPA(in)
	assert.ErrorIs(t, err, calcerr.ErrDivisionByZero)
}

func TestProjectCGPA_FirstTrimester(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(0, 0),
		Courses:  []model.CourseEntry{{Credit: 3, Grade: grading.GradeA}, {Credit: 3, Grade: grading.GradeB}},
	}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, res.NewCGPA, 1e-9)
}

func TestProjectCGPA_InvalidInput(t *testing.T) {
	cases := map[string]model.CGPAInput{
		"missing prior credits": {Standing: model.AcademicStanding{PriorCGPA: f(3)}},
		"missing prior cgpa":    {Standing: model.AcademicStanding{PriorCredits: f(30)}},
		"nan prior credits":     {Standing: standing(math.NaN(), 3)},
		"inf prior cgpa":        {Standing: standing(30, math.Inf(1))},
		"negative credits":      {Standing: standing(-1, 3)},
		"cgpa above scale":      {Standing: standing(30, 4.01)},
		"zero course credit": {
			Standing: standing(30, 3),
			Courses:  []model.CourseEntry{{Credit: 0, Grade: grading.GradeA}},
		},
		"unknown course grade": {
			Standing: standing(30, 3),
			Courses:  []model.CourseEntry{{Credit: 3, Grade: "A+"}},
		},
		"unknown previous grade": {
			Standing: standing(30, 3),
			Retakes:  []model.RetakeEntry{{Credit: 3, PreviousGrade: "", NewGrade: grading.GradeA}},
		},
		"negative retake credit": {
			Standing: standing(30, 3),
			Retakes:  []model.RetakeEntry{{Credit: -3, PreviousGrade: grading.GradeC, NewGrade: grading.GradeA}},
		},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := ProjectCGPA(in)
			assert.ErrorIs(t, err, calcerr.ErrInvalidInput)
			assert.Equal(t, model.CGPAResult{}, res)
		})
	}
}

func TestProjectCGPA_OverflowIsInvalidInput(t *testing.T) {
	cases := map[string]model.CGPAInput{
		"huge prior credits": {Standing: standing(1e308, 4)},
		"huge course credit": {
			Standing: standing(30, 3),
			Courses:  []model.CourseEntry{{ID: "c1", Credit: 1e308, Grade: "A"}, {ID: "c2", Credit: 1e308, Grade: "A"}},
		},
		"huge retake credit": {
			Standing: standing(30, 3),
			Retakes:  []model.RetakeEntry{{ID: "r1", Credit: math.MaxFloat64, PreviousGrade: "F", NewGrade: "A"}},
		},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := ProjectCGPA(in)
			assert.ErrorIs(t, err, calcerr.ErrInvalidInput)
			assert.Equal(t, model.CGPAResult{}, res)
		})
	}
}
