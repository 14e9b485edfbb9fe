// file: internals/features/references/service/reference_store.go
package service

import (
	"context"
	"errors"
	"strings"

	m "unicalc_backend/internals/features/references/model"

	"gorm.io/gorm"
)

var ErrFeeScheduleNotFound = errors.New("fee schedule not found")

// Store = sumber tabel referensi (read-only).
type Store interface {
	ListFeeSchedules(ctx context.Context) ([]m.FeeScheduleModel, error)
	FindFeeSchedule(ctx context.Context, code string) (*m.FeeScheduleModel, error)
	ListWaiverPolicies(ctx context.Context) ([]m.WaiverPolicyModel, error)
}

// NewStore: db nil → data bawaan, selain itu Postgres.
func NewStore(db *gorm.DB) Store {
	if db == nil {
		return NewStaticStore()
	}
	return NewGormStore(db)
}

// NormalizeCode: " standard " → "STANDARD"
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

/* =========================
   Gorm
========================= */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListFeeSchedules(ctx context.Context) ([]m.FeeScheduleModel, error) {
	var rows []m.FeeScheduleModel
	err := s.DB.WithContext(ctx).
		Order("fee_schedule_is_default DESC").
		Order("fee_schedule_code ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) FindFeeSchedule(ctx context.Context, code string) (*m.FeeScheduleModel, error) {
	var row m.FeeScheduleModel
	err := s.DB.WithContext(ctx).
		Where("fee_schedule_code = ?", NormalizeCode(code)).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFeeScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) ListWaiverPolicies(ctx context.Context) ([]m.WaiverPolicyModel, error) {
	var rows []m.WaiverPolicyModel
	err := s.DB.WithContext(ctx).
		Order("waiver_policy_sort_order ASC").
		Order("waiver_policy_name ASC").
		Find(&rows).Error
	return rows, err
}

/* =========================
   Static (tanpa DB)
========================= */

type StaticStore struct {
	feeSchedules   []m.FeeScheduleModel
	waiverPolicies []m.WaiverPolicyModel
}

func NewStaticStore() *StaticStore {
	return &StaticStore{
		feeSchedules:   DefaultFeeSchedules(),
		waiverPolicies: DefaultWaiverPolicies(),
	}
}

func (s *StaticStore) ListFeeSchedules(ctx context.Context) ([]m.FeeScheduleModel, error) {
	out := make([]m.FeeScheduleModel, len(s.feeSchedules))
	copy(out, s.feeSchedules)
	return out, nil
}

func (s *StaticStore) FindFeeSchedule(ctx context.Context, code string) (*m.FeeScheduleModel, error) {
	code = NormalizeCode(code)
	for _, fs := range s.feeSchedules {
		if fs.FeeScheduleCode == code {
			row := fs
			return &row, nil
		}
	}
	return nil, ErrFeeScheduleNotFound
}

func (s *StaticStore) ListWaiverPolicies(ctx context.Context) ([]m.WaiverPolicyModel, error) {
	out := make([]m.WaiverPolicyModel, len(s.waiverPolicies))
	copy(out, s.waiverPolicies)
	return out, nil
}
