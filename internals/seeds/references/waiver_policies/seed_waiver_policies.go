package waiverpolicies

import (
	"fmt"
	"log"
	"os"

	"unicalc_backend/internals/features/references/model"
	"unicalc_backend/internals/seeds/references"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WaiverPolicySeed struct {
	WaiverPolicyCategory  string   `json:"waiver_policy_category"`
	WaiverPolicyName      string   `json:"waiver_policy_name"`
	WaiverPolicyAmount    string   `json:"waiver_policy_amount"`
	WaiverPolicyCondition string   `json:"waiver_policy_condition"`
	WaiverPolicyTags      []string `json:"waiver_policy_tags"`
}

func LoadWaiverPolicySeeds(filePath string) ([]WaiverPolicySeed, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("baca %s: %w", filePath, err)
	}
	var seeds []WaiverPolicySeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	for i, s := range seeds {
		if !model.WaiverCategory(s.WaiverPolicyCategory).Valid() {
			return nil, fmt.Errorf("seed[%d] %q: kategori %q tidak dikenal", i, s.WaiverPolicyName, s.WaiverPolicyCategory)
		}
		if s.WaiverPolicyName == "" {
			return nil, fmt.Errorf("seed[%d]: waiver_policy_name kosong", i)
		}
	}
	return seeds, nil
}

// sortOrder = posisi di file (mulai 1)
func (s WaiverPolicySeed) ToModel(sortOrder int) (model.WaiverPolicyModel, error) {
	tags := s.WaiverPolicyTags
	if tags == nil {
		tags = []string{}
	}
	raw, err := sonic.Marshal(tags)
	if err != nil {
		return model.WaiverPolicyModel{}, err
	}
	return model.WaiverPolicyModel{
		WaiverPolicyCategory:  model.WaiverCategory(s.WaiverPolicyCategory),
		WaiverPolicyName:      s.WaiverPolicyName,
		WaiverPolicyAmount:    s.WaiverPolicyAmount,
		WaiverPolicyCondition: s.WaiverPolicyCondition,
		WaiverPolicyTags:      datatypes.JSON(raw),
		WaiverPolicySortOrder: sortOrder,
	}, nil
}

func SeedWaiverPoliciesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	seeds, err := LoadWaiverPolicySeeds(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal memuat seed waiver: %v", err)
	}

	for i, seed := range seeds {
		var existing model.WaiverPolicyModel
		lookupErr := db.Where("waiver_policy_name = ?", seed.WaiverPolicyName).First(&existing).Error
		insert, err := references.NeedsInsert(lookupErr)
		if err != nil {
			log.Printf("❌ Gagal cek '%s': %v", seed.WaiverPolicyName, err)
			continue
		}
		if !insert {
			log.Printf("ℹ️ Waiver '%s' sudah ada, lewati...", seed.WaiverPolicyName)
			continue
		}

		row, err := seed.ToModel(i + 1)
		if err != nil {
			log.Printf("❌ Gagal encode tags '%s': %v", seed.WaiverPolicyName, err)
			continue
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert '%s': %v", seed.WaiverPolicyName, err)
		} else {
			log.Printf("✅ Berhasil insert '%s'", seed.WaiverPolicyName)
		}
	}
}
