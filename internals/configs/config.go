package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	AppEnv           string
	CorsAllowOrigins []string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	RequestTimeout   time.Duration
	DBAutoMigrate    bool
	SeedReferences   bool
	SeedDir          string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	AppEnv = GetEnv("APP_ENV", "development")
	CorsAllowOrigins = GetEnvList("CORS_ALLOW_ORIGINS", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	})
	RateLimitMax = GetEnvInt("RATE_LIMIT_MAX", 120)
	RateLimitWindow = time.Duration(GetEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	RequestTimeout = time.Duration(GetEnvInt("REQUEST_TIMEOUT_SECONDS", 5)) * time.Second
	DBAutoMigrate = GetEnvBool("DB_AUTO_MIGRATE", false)
	SeedReferences = GetEnvBool("SEED_REFERENCES", false)
	SeedDir = GetEnv("SEED_DIR", "internals/seeds/references/data")

	if GetEnv("DB_HOST") == "" {
		log.Println("ℹ️ DB_HOST belum diset, tabel referensi memakai data bawaan.")
	} else {
		log.Println("✅ DB_HOST berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan angka, pakai default %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan boolean, pakai default %t", key, v, def)
		return def
	}
	return b
}

// GetEnvList membaca daftar dipisah koma.
func GetEnvList(key string, def []string) []string {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if AppEnv == "development" {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
