// file: internals/features/calculators/cgpa/model/cgpa_model.go
package model

import (
	grading "unicalc_backend/internals/features/calculators/grading/model"
)

// CourseEntry = satu mata kuliah yang sedang/akan diambil.
type CourseEntry struct {
	ID     string        `json:"id"`
	Credit float64       `json:"credit"`
	Grade  grading.Grade `json:"grade"`
}

// RetakeEntry = mata kuliah yang diulang.
type RetakeEntry struct {
	ID            string        `json:"id"`
	Credit        float64       `json:"credit"`
	PreviousGrade grading.Grade `json:"previous_grade"`
	NewGrade      grading.Grade `json:"new_grade"`
}

// AcademicStanding = rekam jejak sebelum trimester ini.
// Kedua field wajib, nil berarti tidak dikirim.
type AcademicStanding struct {
	PriorCredits *float64 `json:"prior_credits"`
	PriorCGPA    *float64 `json:"prior_cgpa"`
}

type CGPAInput struct {
	Standing AcademicStanding `json:"standing"`
	Courses  []CourseEntry    `json:"courses"`
	Retakes  []RetakeEntry    `json:"retakes"`
}

// CGPAResult = snapshot read-only hasil satu kali proyeksi.
type CGPAResult struct {
	NewCGPA                 float64 `json:"new_cgpa"`
	PriorCGPA               float64 `json:"prior_cgpa"`
	PriorCredits            float64 `json:"prior_credits"`
	NewCourseCredits        float64 `json:"new_course_credits"`
	NewCoursePoints         float64 `json:"new_course_points"`
	RetakeCourseCredits     float64 `json:"retake_course_credits"`
	RetakeImprovementPoints float64 `json:"retake_improvement_points"`
	TotalPoints             float64 `json:"total_points"`
	TotalCredits            float64 `json:"total_credits"`
}

/* ===============================
   Report (turunan dari result)
=================================*/

type GradeCount struct {
	Grade      grading.Grade `json:"grade"`
	Count      int           `json:"count"`
	Percentage float64       `json:"percentage"`
}

type ProgressionPoint struct {
	Label string  `json:"label"`
	CGPA  float64 `json:"cgpa"`
}

type EntryKind string

const (
	EntryKindCourse EntryKind = "course"
	EntryKindRetake EntryKind = "retake"
)

// EntryLine = kontribusi satu course/retake ke quality points.
type EntryLine struct {
	ID     string        `json:"id"`
	Kind   EntryKind     `json:"kind"`
	Credit float64       `json:"credit"`
	Grade  grading.Grade `json:"grade"`
	// hanya untuk retake
	PreviousGrade grading.Grade `json:"previous_grade,omitempty"`
	Points        float64       `json:"points"`
}

type CGPAReport struct {
	CGPAChange        float64            `json:"cgpa_change"`
	Standing          grading.Standing   `json:"standing"`
	GradeDistribution []GradeCount       `json:"grade_distribution"`
	Progression       []ProgressionPoint `json:"progression"`
	Entries           []EntryLine        `json:"entries"`
}
