package service

import (
	"unicalc_backend/internals/features/calculators/cgpa/model"
	grading "unicalc_backend/internals/features/calculators/grading/model"
)

// BuildReport merangkum hasil proyeksi untuk ditampilkan (distribusi nilai, standing, progres).
// in harus sama dengan input yang menghasilkan res (entry sudah divalidasi ProjectCGPA).
func BuildReport(in model.CGPAInput, res model.CGPAResult) model.CGPAReport {
	return model.CGPAReport{
		CGPAChange:        res.NewCGPA - res.PriorCGPA,
		Standing:          grading.StandingFor(res.NewCGPA),
		GradeDistribution: gradeDistribution(in),
		Progression: []model.ProgressionPoint{
			{Label: "Previous", CGPA: res.PriorCGPA},
			{Label: "Projected", CGPA: res.NewCGPA},
		},
		Entries: entryLines(in),
	}
}

// retake dihitung berdasarkan nilai barunya
func gradeDistribution(in model.CGPAInput) []model.GradeCount {
	counts := make(map[grading.Grade]int, len(in.Courses)+len(in.Retakes))
	for _, c := range in.Courses {
		counts[c.Grade]++
	}
	for _, r := range in.Retakes {
		counts[r.NewGrade]++
	}

	total := len(in.Courses) + len(in.Retakes)
	out := make([]model.GradeCount, 0, len(grading.Grades()))
	for _, g := range grading.Grades() {
		n := counts[g]
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		out = append(out, model.GradeCount{Grade: g, Count: n, Percentage: pct})
	}
	return out
}

func entryLines(in model.CGPAInput) []model.EntryLine {
	out := make([]model.EntryLine, 0, len(in.Courses)+len(in.Retakes))
	for _, c := range in.Courses {
		p, _ := c.Grade.Point()
		out = append(out, model.EntryLine{
			ID:     c.ID,
			Kind:   model.EntryKindCourse,
			Credit: c.Credit,
			Grade:  c.Grade,
			Points: c.Credit * p,
		})
	}
	for _, r := range in.Retakes {
		prev, _ := r.PreviousGrade.Point()
		next, _ := r.NewGrade.Point()
		out = append(out, model.EntryLine{
			ID:            r.ID,
			Kind:          model.EntryKindRetake,
			Credit:        r.Credit,
			Grade:         r.NewGrade,
			PreviousGrade: r.PreviousGrade,
			Points:        r.Credit*next - r.Credit*prev,
		})
	}
	return out
}
