package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"unicalc_backend/internals/configs"
	refModel "unicalc_backend/internals/features/references/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB nil = tidak ada database, tabel referensi pakai data bawaan.
var DB *gorm.DB

// ConnectDB hanya dipanggil kalau DB_HOST diset. Gagal konek = fatal.
func ConnectDB() bool {
	if os.Getenv("DB_HOST") == "" {
		log.Println("ℹ️ DB_HOST kosong, lewati koneksi database.")
		return false
	}
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=unicalc&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
	return true
}

func TunePool() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// data referensi kecil & read-mostly, pool kecil cukup
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate membuat tabel referensi (fee_schedules, waiver_policies).
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] AutoMigrate tabel referensi...")
	return db.AutoMigrate(&refModel.FeeScheduleModel{}, &refModel.WaiverPolicyModel{})
}

func Ping() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
