package seeds

import (
	"log"
	"path/filepath"

	feeschedules "unicalc_backend/internals/seeds/references/fee_schedules"
	waiverpolicies "unicalc_backend/internals/seeds/references/waiver_policies"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi tabel referensi dari dir (default internals/seeds/references/data).
func RunAllSeeds(db *gorm.DB, dir string) {
	log.Println("[INFO] Seeding tabel referensi dari", dir)

	//* Fee schedule
	feeschedules.SeedFeeSchedulesFromJSON(db, filepath.Join(dir, "fee_schedules.json"))

	//* Waiver & scholarship
	waiverpolicies.SeedWaiverPoliciesFromJSON(db, filepath.Join(dir, "waiver_policies.json"))
}
