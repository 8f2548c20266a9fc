package configs

import (
	"context"
	"errors"
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
	JWTSecret string

	// AllowUserInfoHeader: terima header x-user-info (frontend lama, tanpa tanda tangan)
	AllowUserInfoHeader bool

	// LockCompletedEventMetadata: tolak edit event yang sudah selesai
	LockCompletedEventMetadata bool

	AuditBufferSize int
	AutoMigrate     bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if onManagedPlatform() {
		log.Println("🚀 Running di platform (Railway/Render), menggunakan ENV dari sistem")
	} else if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AllowUserInfoHeader = GetEnvBool("AUTH_ALLOW_USER_INFO_HEADER", false)
	LockCompletedEventMetadata = GetEnvBool("EVENT_LOCK_COMPLETED_METADATA", false)
	AuditBufferSize = GetEnvInt("AUDIT_BUFFER_SIZE", 256)
	AutoMigrate = GetEnvBool("DB_AUTO_MIGRATE", true)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	if AllowUserInfoHeader {
		log.Println("⚠️ Header x-user-info diaktifkan (tanpa verifikasi tanda tangan)")
	}
	if JWTSecret == "" && !AllowUserInfoHeader {
		log.Println("❌ Tidak ada metode autentikasi aktif, semua request privat akan 401")
	}
}

func onManagedPlatform() bool {
	return os.Getenv("RAILWAY_ENVIRONMENT") != "" || os.Getenv("RENDER") != ""
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvBool: nilai tidak valid → default (dengan warning)
func GetEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan boolean, pakai default %v", key, raw, def)
		return def
	}
	return b
}

// GetEnvInt: nilai tidak valid / <= 0 → default
func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q bukan angka positif, pakai default %d", key, raw, def)
		return def
	}
	return n
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

// NewGormLogger: hanya SQL error & query lambat (>200ms) yang dicatat
func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
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

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !isNotFound(err):
		sql, rows := fc()
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", utils.FileWithLineNum(), err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		sql, rows := fc()
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", utils.FileWithLineNum(), elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		sql, rows := fc()
		log.Printf("[QUERY] %s | %s | %d rows | %s", utils.FileWithLineNum(), elapsed, rows, sql)
	}
}

// record not found bukan error SQL; service yang menerjemahkannya
func isNotFound(err error) bool {
	return errors.Is(err, gormLogger.ErrRecordNotFound)
}
