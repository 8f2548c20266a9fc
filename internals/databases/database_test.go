package database

import (
	"errors"
	"net/url"
	"testing"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantSSLMode string
		wantHost    string
		wantOptions string
	}{
		{
			name:        "database url forces tls",
			env:         map[string]string{"DATABASE_URL": "postgres://u:p@db.local:5432/halo?sslmode=disable"},
			wantSSLMode: "require",
			wantHost:    "db.local:5432",
			wantOptions: "-c statement_timeout=3000",
		},
		{
			name:        "postgresql scheme keeps verify-full",
			env:         map[string]string{"DATABASE_URL": "postgresql://u:p@db.local/halo?sslmode=verify-full", "DB_STATEMENT_TIMEOUT_MS": "5000"},
			wantSSLMode: "verify-full",
			wantHost:    "db.local",
			wantOptions: "-c statement_timeout=5000",
		},
		{
			name:        "individual vars",
			env:         map[string]string{"DB_HOST": "localhost", "DB_USER": "dkm", "DB_PASSWORD": "p@ss", "DB_NAME": "halo"},
			wantSSLMode: "require",
			wantHost:    "localhost:5432",
			wantOptions: "-c statement_timeout=3000",
		},
		{
			name:        "individual vars with sslmode",
			env:         map[string]string{"DB_HOST": "localhost", "DB_PORT": "6543", "DB_USER": "dkm", "DB_NAME": "halo", "DB_SSLMODE": "disable"},
			wantSSLMode: "disable",
			wantHost:    "localhost:6543",
			wantOptions: "-c statement_timeout=3000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := BuildDSN(envOf(tt.env))
			if err != nil {
				t.Fatal(err)
			}
			u, err := url.Parse(dsn)
			if err != nil {
				t.Fatal(err)
			}
			q := u.Query()
			if q.Get("sslmode") != tt.wantSSLMode {
				t.Errorf("sslmode = %q, want %q", q.Get("sslmode"), tt.wantSSLMode)
			}
			if u.Host != tt.wantHost {
				t.Errorf("host = %q, want %q", u.Host, tt.wantHost)
			}
			if q.Get("options") != tt.wantOptions {
				t.Errorf("options = %q, want %q", q.Get("options"), tt.wantOptions)
			}
			if q.Get("application_name") != "halodkm" {
				t.Errorf("application_name = %q", q.Get("application_name"))
			}
		})
	}
}

func TestBuildDSNPasswordEscaped(t *testing.T) {
	dsn, err := BuildDSN(envOf(map[string]string{"DB_HOST": "h", "DB_USER": "dkm", "DB_PASSWORD": "p@ss/word", "DB_NAME": "halo"}))
	if err != nil {
		t.Fatal(err)
	}
	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatal(err)
	}
	if pw, _ := u.User.Password(); pw != "p@ss/word" {
		t.Fatalf("password = %q", pw)
	}
}

func TestBuildDSNErrors(t *testing.T) {
	if _, err := BuildDSN(envOf(nil)); !errors.Is(err, ErrNoDatabaseConfig) {
		t.Fatalf("err = %v, want ErrNoDatabaseConfig", err)
	}
	if _, err := BuildDSN(envOf(map[string]string{"DATABASE_URL": "mysql://u:p@h/db"})); err == nil {
		t.Fatal("expected error for non-postgres scheme")
	}
	if _, err := BuildDSN(envOf(map[string]string{"DB_HOST": "h", "DB_USER": "u", "DB_NAME": "n", "DB_STATEMENT_TIMEOUT_MS": "abc"})); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}
