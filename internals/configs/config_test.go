package configs

import (
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HALODKM_SET", "nilai")
	if got := GetEnv("HALODKM_SET", "default"); got != "nilai" {
		t.Fatalf("got %q", got)
	}
	if got := GetEnv("HALODKM_UNSET_KEY", "default"); got != "default" {
		t.Fatalf("got %q", got)
	}
	if got := GetEnv("HALODKM_UNSET_KEY"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"true", false, true},
		{"1", false, true},
		{"FALSE", true, false},
		{"bukan", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("HALODKM_BOOL", tt.raw)
			if got := GetEnvBool("HALODKM_BOOL", tt.def); got != tt.want {
				t.Fatalf("GetEnvBool(%q, %v) = %v", tt.raw, tt.def, got)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 256},
		{"64", 64},
		{"-3", 256},
		{"abc", 256},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("HALODKM_INT", tt.raw)
			if got := GetEnvInt("HALODKM_INT", 256); got != tt.want {
				t.Fatalf("GetEnvInt(%q) = %d", tt.raw, got)
			}
		})
	}
}

func TestLoadEnvReadsSettings(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "rahasia")
	t.Setenv("AUTH_ALLOW_USER_INFO_HEADER", "true")
	t.Setenv("EVENT_LOCK_COMPLETED_METADATA", "1")
	t.Setenv("AUDIT_BUFFER_SIZE", "32")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	LoadEnv()

	if JWTSecret != "rahasia" || !AllowUserInfoHeader || !LockCompletedEventMetadata || AuditBufferSize != 32 || AutoMigrate {
		t.Fatalf("settings: secret=%q header=%v lock=%v buf=%d migrate=%v",
			JWTSecret, AllowUserInfoHeader, LockCompletedEventMetadata, AuditBufferSize, AutoMigrate)
	}
}
