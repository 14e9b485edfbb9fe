package model

// Standing adalah kategori CGPA (Excellent, Very Good, ...).
type Standing string

const (
	StandingExcellent Standing = "Excellent"
	StandingVeryGood  Standing = "Very Good"
	StandingGood      Standing = "Good"
	StandingAverage   Standing = "Average"
	StandingProbation Standing = "Probation"
)

type StandingBand struct {
	Standing    Standing `json:"standing"`
	MinCGPA     float64  `json:"min_cgpa"`
	MaxCGPA     float64  `json:"max_cgpa"`
	Range       string   `json:"range"`
	Description string   `json:"description"`
}

var standingBands = [...]StandingBand{
	{StandingExcellent, 3.67, 4.00, "3.67-4.00", "Highest academic achievement"},
	{StandingVeryGood, 3.00, 3.66, "3.00-3.66", "Strong academic performance"},
	{StandingGood, 2.33, 2.99, "2.33-2.99", "Satisfactory academic performance"},
	{StandingAverage, 2.00, 2.32, "2.00-2.32", "Minimum satisfactory performance"},
	{StandingProbation, 0.00, 1.99, "Below 2.00", "Academic performance needs improvement"},
}

func StandingBands() []StandingBand {
	out := make([]StandingBand, len(standingBands))
	copy(out, standingBands[:])
	return out
}

// StandingFor memilih kategori berdasarkan batas bawah, jadi 3.665 tetap Very Good.
func StandingFor(cgpa float64) Standing {
	for _, b := range standingBands {
		if cgpa >= b.MinCGPA {
			return b.Standing
		}
	}
	return StandingProbation
}
