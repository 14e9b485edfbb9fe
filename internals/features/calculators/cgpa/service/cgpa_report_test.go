package service

import (
	"testing"

	"unicalc_backend/internals/features/calculators/cgpa/model"
	grading "unicalc_backend/internals/features/calculators/grading/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	in := model.CGPAInput{
		Standing: standing(90, 3.00),
		Courses: []model.CourseEntry{
			{ID: "c1", Credit: 3, Grade: grading.GradeA},
			{ID: "c2", Credit: 3, Grade: grading.GradeA},
			{ID: "c3", Credit: 3, Grade: grading.GradeB},
		},
		Retakes: []model.RetakeEntry{
			{ID: "r1", Credit: 3, PreviousGrade: grading.GradeC, NewGrade: grading.GradeA},
		},
	}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)

	rep := BuildReport(in, res)

	assert.InDelta(t, res.NewCGPA-3.00, rep.CGPAChange, 1e-12)
	assert.Equal(t, grading.StandingVeryGood, rep.Standing)

	require.Len(t, rep.GradeDistribution, 11)
	assert.Equal(t, model.GradeCount{Grade: grading.GradeA, Count: 3, Percentage: 75}, rep.GradeDistribution[0])
	assert.Equal(t, grading.GradeB, rep.GradeDistribution[3].Grade)
	assert.Equal(t, 1, rep.GradeDistribution[3].Count)
	assert.Equal(t, 0, rep.GradeDistribution[6].Count) // C: previous grades are not counted

	require.Len(t, rep.Progression, 2)
	assert.Equal(t, "Previous", rep.Progression[0].Label)
	assert.Equal(t, 3.00, rep.Progression[0].CGPA)
	assert.Equal(t, res.NewCGPA, rep.Progression[1].CGPA)

	require.Len(t, rep.Entries, 4)
	assert.Equal(t, model.EntryKindCourse, rep.Entries[0].Kind)
	assert.InDelta(t, 12.0, rep.Entries[0].Points, 1e-9)
	last := rep.Entries[3]
	assert.Equal(t, "r1", last.ID)
	assert.Equal(t, model.EntryKindRetake, last.Kind)
	assert.Equal(t, grading.GradeC, last.PreviousGrade)
	assert.InDelta(t, 6.0, last.Points, 1e-9)
}

func TestBuildReport_EmptyDistribution(t *testing.T) {
	in := model.CGPAInput{Standing: standing(20, 1.80)}
	res, err := ProjectCGPA(in)
	require.NoError(t, err)

	rep := BuildReport(in, res)
	assert.Equal(t, grading.StandingProbation, rep.Standing)
	assert.Empty(t, rep.Entries)
	for _, gc := range rep.GradeDistribution {
		assert.Zero(t, gc.Count)
		assert.Zero(t, gc.Percentage)
	}
}
