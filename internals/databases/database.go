package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"halodkm_backend/internals/configs"
	auditModel "halodkm_backend/internals/features/audit/model"
	eventModel "halodkm_backend/internals/features/events/model"
	kasModel "halodkm_backend/internals/features/finance/kas/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

const applicationName = "halodkm"

// ErrNoDatabaseConfig: DATABASE_URL maupun DB_* tidak diset
var ErrNoDatabaseConfig = errors.New("konfigurasi database tidak ditemukan (DATABASE_URL atau DB_HOST/DB_USER/DB_NAME)")

// BuildDSN menyusun DSN dari env. DATABASE_URL diutamakan, TLS wajib.
func BuildDSN(getenv func(string) string) (string, error) {
	timeoutMs := 3000
	if raw := strings.TrimSpace(getenv("DB_STATEMENT_TIMEOUT_MS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("DB_STATEMENT_TIMEOUT_MS tidak valid: %q", raw)
		}
		timeoutMs = n
	}
	options := fmt.Sprintf("-c statement_timeout=%d", timeoutMs)

	if raw := strings.TrimSpace(getenv("DATABASE_URL")); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL tidak valid: %w", err)
		}
		if u.Scheme != "postgres" && u.Scheme != "postgresql" {
			return "", fmt.Errorf("DATABASE_URL harus postgres:// atau postgresql://, dapat %q", u.Scheme)
		}
		q := u.Query()
		if mode := q.Get("sslmode"); mode == "" || mode == "disable" || mode == "allow" || mode == "prefer" {
			q.Set("sslmode", "require")
		}
		if q.Get("application_name") == "" {
			q.Set("application_name", applicationName)
		}
		if q.Get("options") == "" {
			q.Set("options", options)
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	host, user, name := getenv("DB_HOST"), getenv("DB_USER"), getenv("DB_NAME")
	if host == "" || user == "" || name == "" {
		return "", ErrNoDatabaseConfig
	}
	port := getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslmode := getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, getenv("DB_PASSWORD")),
		Host:   host + ":" + port,
		Path:   "/" + name,
	}
	q := url.Values{}
	q.Set("sslmode", sslmode)
	q.Set("application_name", applicationName)
	q.Set("options", options)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	dsn, err := BuildDSN(os.Getenv)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:      configs.NewGormLogger(),
		PrepareStmt: false,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(ctx context.Context) error {
	if DB == nil {
		return errors.New("database belum terhubung")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate membuat/menyesuaikan tabel. Constraint yang tidak bisa
// diekspresikan lewat tag gorm dipasang dengan SQL mentah.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&eventModel.EventModel{},
		&eventModel.EventKasModel{},
		&eventModel.EventRecipientModel{},
		&eventModel.EventCommitteeModel{},
		&kasModel.KasMasjidModel{},
		&auditModel.AuditLogModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("constraint: %w", err)
		}
	}
	log.Println("✅ Migrasi selesai.")
	return nil
}

// status selesai <=> tanggal_selesai terisi
var constraints = []string{
	`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'ck_events_completion_date') THEN
		ALTER TABLE events ADD CONSTRAINT ck_events_completion_date
			CHECK ((status = 'selesai') = (tanggal_selesai IS NOT NULL));
	END IF;
END $$;`,
	`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'ck_event_kas_amount_positive') THEN
		ALTER TABLE event_kas ADD CONSTRAINT ck_event_kas_amount_positive CHECK (amount > 0);
	END IF;
END $$;`,
	`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'ck_kas_masjid_amount_positive') THEN
		ALTER TABLE kas_masjid ADD CONSTRAINT ck_kas_masjid_amount_positive CHECK (amount > 0);
	END IF;
END $$;`,
}
