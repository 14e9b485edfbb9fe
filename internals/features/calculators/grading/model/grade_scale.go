// file: internals/features/calculators/grading/model/grade_scale.go
package model

import (
	"strings"

	"unicalc_backend/internals/features/calculators/calcerr"
)

// Grade adalah huruf nilai pada skala 4.00.
type Grade string

const (
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// urutan skala, dari tertinggi ke terendah
var gradeOrder = [...]Grade{
	GradeA, GradeAMinus, GradeBPlus, GradeB, GradeBMinus,
	GradeCPlus, GradeC, GradeCMinus, GradeDPlus, GradeD, GradeF,
}

// Grades mengembalikan skala urut menurun (slice baru, aman diubah).
func Grades() []Grade {
	out := make([]Grade, len(gradeOrder))
	copy(out, gradeOrder[:])
	return out
}

// Point memetakan huruf ke grade point. Huruf tak dikenal → ErrInvalidInput.
func (g Grade) Point() (float64, error) {
	switch g {
	case GradeA:
		return 4.00, nil
	case GradeAMinus:
		return 3.67, nil
	case GradeBPlus:
		return 3.33, nil
	case GradeB:
		return 3.00, nil
	case GradeBMinus:
		return 2.67, nil
	case GradeCPlus:
		return 2.33, nil
	case GradeC:
		return 2.00, nil
	case GradeCMinus:
		return 1.67, nil
	case GradeDPlus:
		return 1.33, nil
	case GradeD:
		return 1.00, nil
	case GradeF:
		return 0.00, nil
	}
	return 0, calcerr.Invalid("grade", "%q is not on the grading scale", string(g))
}

func (g Grade) Valid() bool {
	_, err := g.Point()
	return err == nil
}

// ParseGrade menormalkan input user ("b+", " A- ") jadi Grade.
func ParseGrade(s string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := g.Point(); err != nil {
		return "", err
	}
	return g, nil
}

// GradePoint = satu baris skala.
type GradePoint struct {
	Grade Grade   `json:"grade"`
	Point float64 `json:"point"`
}

func Scale() []GradePoint {
	out := make([]GradePoint, 0, len(gradeOrder))
	for _, g := range gradeOrder {
		p, _ := g.Point()
		out = append(out, GradePoint{Grade: g, Point: p})
	}
	return out
}
