package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_DSN", "JWT_SECRET", "JWT_EXPIRY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, time.Hour)
	}
	if cfg.RateLimitBurst != 20 {
		t.Errorf("RateLimitBurst = %d, want 20", cfg.RateLimitBurst)
	}
	if cfg.DatabaseDSN != "" {
		t.Errorf("DatabaseDSN = %q, want empty", cfg.DatabaseDSN)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.JWTExpiry != 15*time.Minute {
		t.Errorf("JWTExpiry = %v, want 15m", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
	}
}

func TestLoadRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	unsetenv(t, "JWT_SECRET")

	_, err := Load()
	if !errors.Is(err, ErrInsecureSecret) {
		t.Fatalf("Load() error = %v, want %v", err, ErrInsecureSecret)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid duration")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level     string
		format    string
		wantDebug bool
	}{
		{level: "debug", format: "text", wantDebug: true},
		{level: "info", format: "json", wantDebug: false},
		{level: "bogus", format: "text", wantDebug: false},
	}

	for _, tt := range tests {
		logger := Config{LogLevel: tt.level, LogFormat: tt.format}.NewLogger()
		if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
			t.Errorf("NewLogger(%q).Enabled(debug) = %v, want %v", tt.level, got, tt.wantDebug)
		}
	}
}
