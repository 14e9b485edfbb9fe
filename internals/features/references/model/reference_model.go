package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeeScheduleModel = tarif per kredit + biaya trimester untuk satu program.
type FeeScheduleModel struct {
	FeeScheduleID           uuid.UUID `gorm:"column:fee_schedule_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_schedule_id"`
	FeeScheduleCode         string    `gorm:"column:fee_schedule_code;type:varchar(40);not null;uniqueIndex" json:"fee_schedule_code"`
	FeeScheduleLabel        string    `gorm:"column:fee_schedule_label;type:text;not null" json:"fee_schedule_label"`
	FeeSchedulePerCreditFee float64   `gorm:"column:fee_schedule_per_credit_fee;type:numeric(12,2);not null" json:"fee_schedule_per_credit_fee"`
	FeeScheduleTrimesterFee float64   `gorm:"column:fee_schedule_trimester_fee;type:numeric(12,2);not null" json:"fee_schedule_trimester_fee"`
	FeeScheduleCurrency     string    `gorm:"column:fee_schedule_currency;type:varchar(3);not null;default:'BDT'" json:"fee_schedule_currency"`
	FeeScheduleIsDefault    bool      `gorm:"column:fee_schedule_is_default;not null;default:false" json:"fee_schedule_is_default"`
	FeeScheduleCreatedAt    time.Time `gorm:"column:fee_schedule_created_at;autoCreateTime" json:"fee_schedule_created_at"`
	FeeScheduleUpdatedAt    time.Time `gorm:"column:fee_schedule_updated_at;autoUpdateTime" json:"fee_schedule_updated_at"`
}

func (FeeScheduleModel) TableName() string { return "fee_schedules" }

type WaiverCategory string

const (
	WaiverCategoryTuitionWaiver WaiverCategory = "tuition_waiver"
	WaiverCategorySpecialWaiver WaiverCategory = "special_waiver"
	WaiverCategoryScholarship   WaiverCategory = "scholarship"
)

func (c WaiverCategory) Valid() bool {
	switch c {
	case WaiverCategoryTuitionWaiver, WaiverCategorySpecialWaiver, WaiverCategoryScholarship:
		return true
	}
	return false
}

// WaiverPolicyModel = satu baris tabel kebijakan waiver/scholarship.
type WaiverPolicyModel struct {
	WaiverPolicyID        uuid.UUID      `gorm:"column:waiver_policy_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"waiver_policy_id"`
	WaiverPolicyCategory  WaiverCategory `gorm:"column:waiver_policy_category;type:varchar(20);not null;index" json:"waiver_policy_category"`
	WaiverPolicyName      string         `gorm:"column:waiver_policy_name;type:text;not null;uniqueIndex" json:"waiver_policy_name"`
	WaiverPolicyAmount    string         `gorm:"column:waiver_policy_amount;type:varchar(40);not null" json:"waiver_policy_amount"` // "25%", "25-100%", "Variable"
	WaiverPolicyCondition string         `gorm:"column:waiver_policy_condition;type:text" json:"waiver_policy_condition"`
	WaiverPolicyTags      datatypes.JSON `gorm:"column:waiver_policy_tags;type:jsonb" json:"waiver_policy_tags"`
	WaiverPolicySortOrder int            `gorm:"column:waiver_policy_sort_order;not null;default:0" json:"waiver_policy_sort_order"`
	WaiverPolicyCreatedAt time.Time      `gorm:"column:waiver_policy_created_at;autoCreateTime" json:"waiver_policy_created_at"`
	WaiverPolicyUpdatedAt time.Time      `gorm:"column:waiver_policy_updated_at;autoUpdateTime" json:"waiver_policy_updated_at"`
}

func (WaiverPolicyModel) TableName() string { return "waiver_policies" }
