// file: internals/features/references/service/reference_defaults.go
package service

import (
	grading "unicalc_backend/internals/features/calculators/grading/model"
	m "unicalc_backend/internals/features/references/model"

	"gorm.io/datatypes"
)

const DefaultFeeScheduleCode = "STANDARD"

func DefaultFeeSchedules() []m.FeeScheduleModel {
	return []m.FeeScheduleModel{
		{
			FeeScheduleCode:         DefaultFeeScheduleCode,
			FeeScheduleLabel:        "Standard undergraduate",
			FeeSchedulePerCreditFee: 6500,
			FeeScheduleTrimesterFee: 6500,
			FeeScheduleCurrency:     "BDT",
			FeeScheduleIsDefault:    true,
		},
	}
}

func DefaultWaiverPolicies() []m.WaiverPolicyModel {
	rows := []struct {
		cat       m.WaiverCategory
		name      string
		amount    string
		condition string
		tags      string
	}{
		{m.WaiverCategoryTuitionWaiver, "SSC & HSC GPA 5.00", "50%", "Maintain minimum CGPA of 3.50", `["result_based","cgpa_required"]`},
		{m.WaiverCategoryTuitionWaiver, "SSC & HSC GPA 4.50+", "25%", "Maintain minimum CGPA of 3.25", `["result_based","cgpa_required"]`},
		{m.WaiverCategoryTuitionWaiver, "Admission Test Top Performers", "25-100%", "Maintain minimum CGPA of 3.50", `["admission","cgpa_required"]`},
		{m.WaiverCategorySpecialWaiver, "Freedom Fighter's Children", "25%", "Valid documentation required", `["documentation"]`},
		{m.WaiverCategorySpecialWaiver, "Siblings", "25%", "For siblings studying at UIU simultaneously", `["family"]`},
		{m.WaiverCategorySpecialWaiver, "UIU Employee's Children", "50%", "For children of permanent UIU employees", `["family","employee"]`},
		{m.WaiverCategoryScholarship, "Dean's List Scholarship", "25-50% tuition fee", "Top performers in each department each semester", `["merit","per_semester"]`},
		{m.WaiverCategoryScholarship, "Vice-Chancellor's Scholarship", "50-100% tuition fee", "Top performers across the university", `["merit"]`},
		{m.WaiverCategoryScholarship, "Research Scholarship", "Variable", "Based on research contributions and publications", `["research"]`},
	}

	out := make([]m.WaiverPolicyModel, 0, len(rows))
	for i, r := range rows {
		out = append(out, m.WaiverPolicyModel{
			WaiverPolicyCategory:  r.cat,
			WaiverPolicyName:      r.name,
			WaiverPolicyAmount:    r.amount,
			WaiverPolicyCondition: r.condition,
			WaiverPolicyTags:      datatypes.JSON(r.tags),
			WaiverPolicySortOrder: i + 1,
		})
	}
	return out
}

// WaiverPolicyNotes ditampilkan bersama tabel waiver.
func WaiverPolicyNotes() []string {
	return []string{
		"Students can only receive one type of waiver or scholarship at a time (the highest applicable one).",
		"Waivers and scholarships apply only to tuition fees, not to other fees.",
		"Students must maintain the required CGPA to continue receiving waivers.",
		"Scholarships are typically awarded on a semester basis and may require reapplication.",
		"All waivers and scholarships are subject to the university's financial policies.",
		"For the most accurate and up-to-date information, please contact the UIU Accounts Office.",
	}
}

/* =========================
   Grading table
========================= */

type GradingRow struct {
	Grade       grading.Grade
	Point       float64
	MarksRange  string
	Description string
}

var gradeMarks = map[grading.Grade][2]string{
	grading.GradeA:      {"90-100", "Excellent"},
	grading.GradeAMinus: {"85-89", "Very Good"},
	grading.GradeBPlus:  {"80-84", "Good"},
	grading.GradeB:      {"75-79", "Satisfactory"},
	grading.GradeBMinus: {"70-74", "Above Average"},
	grading.GradeCPlus:  {"65-69", "Average"},
	grading.GradeC:      {"60-64", "Below Average"},
	grading.GradeCMinus: {"57-59", "Poor"},
	grading.GradeDPlus:  {"55-56", "Marginal Pass"},
	grading.GradeD:      {"50-54", "Pass"},
	grading.GradeF:      {"0-49", "Fail"},
}

// GradingTable = skala nilai + rentang marks, urut dari A ke F.
func GradingTable() []GradingRow {
	scale := grading.Scale()
	out := make([]GradingRow, 0, len(scale))
	for _, gp := range scale {
		mk := gradeMarks[gp.Grade]
		out = append(out, GradingRow{
			Grade:       gp.Grade,
			Point:       gp.Point,
			MarksRange:  mk[0],
			Description: mk[1],
		})
	}
	return out
}

func GraduationRequirements() []string {
	return []string{
		"Minimum CGPA of 2.00 is required for graduation",
		"All required courses must be completed with a passing grade",
		"Minimum grade of C is required for all major courses",
		"Completion of required credit hours for the specific program",
		"No pending disciplinary actions or financial dues",
	}
}
