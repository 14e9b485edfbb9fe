package feeschedules

import (
	"fmt"
	"log"
	"os"
	"strings"

	"unicalc_backend/internals/features/references/model"
	"unicalc_backend/internals/seeds/references"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

type FeeScheduleSeed struct {
	FeeScheduleCode         string  `json:"fee_schedule_code"`
	FeeScheduleLabel        string  `json:"fee_schedule_label"`
	FeeSchedulePerCreditFee float64 `json:"fee_schedule_per_credit_fee"`
	FeeScheduleTrimesterFee float64 `json:"fee_schedule_trimester_fee"`
	FeeScheduleCurrency     string  `json:"fee_schedule_currency"`
	FeeScheduleIsDefault    bool    `json:"fee_schedule_is_default"`
}

func LoadFeeScheduleSeeds(filePath string) ([]FeeScheduleSeed, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("baca %s: %w", filePath, err)
	}
	var seeds []FeeScheduleSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	for i, s := range seeds {
		if strings.TrimSpace(s.FeeScheduleCode) == "" {
			return nil, fmt.Errorf("seed[%d]: fee_schedule_code kosong", i)
		}
		if s.FeeSchedulePerCreditFee < 0 || s.FeeScheduleTrimesterFee < 0 {
			return nil, fmt.Errorf("seed[%d] %s: fee negatif", i, s.FeeScheduleCode)
		}
	}
	return seeds, nil
}

func (s FeeScheduleSeed) ToModel() model.FeeScheduleModel {
	currency := strings.ToUpper(strings.TrimSpace(s.FeeScheduleCurrency))
	if currency == "" {
		currency = "BDT"
	}
	return model.FeeScheduleModel{
		FeeScheduleCode:         strings.ToUpper(strings.TrimSpace(s.FeeScheduleCode)),
		FeeScheduleLabel:        s.FeeScheduleLabel,
		FeeSchedulePerCreditFee: s.FeeSchedulePerCreditFee,
		FeeScheduleTrimesterFee: s.FeeScheduleTrimesterFee,
		FeeScheduleCurrency:     currency,
		FeeScheduleIsDefault:    s.FeeScheduleIsDefault,
	}
}

func SeedFeeSchedulesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	seeds, err := LoadFeeScheduleSeeds(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal memuat seed fee schedule: %v", err)
	}

	for _, seed := range seeds {
		row := seed.ToModel()

		var existing model.FeeScheduleModel
		lookupErr := db.Where("fee_schedule_code = ?", row.FeeScheduleCode).First(&existing).Error
		insert, err := references.NeedsInsert(lookupErr)
		if err != nil {
			log.Printf("❌ Gagal cek '%s': %v", row.FeeScheduleCode, err)
			continue
		}
		if !insert {
			log.Printf("ℹ️ Fee schedule '%s' sudah ada, lewati...", row.FeeScheduleCode)
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert '%s': %v", row.FeeScheduleCode, err)
		} else {
			log.Printf("✅ Berhasil insert '%s'", row.FeeScheduleCode)
		}
	}
}
