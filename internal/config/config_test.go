package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.DBDriver != "mysql" {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, "mysql")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.HashAlgo != "argon2id" {
		t.Errorf("HashAlgo = %q, want %q", cfg.HashAlgo, "argon2id")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("JWT_EXPIRY", "1h30m")
	t.Setenv("HASH_ALGO", "bcrypt")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.DBDriver != "sqlite3" {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, "sqlite3")
	}
	if cfg.JWTExpiry != 90*time.Minute {
		t.Errorf("JWTExpiry = %v, want 1h30m", cfg.JWTExpiry)
	}
	if cfg.HashAlgo != "bcrypt" {
		t.Errorf("HashAlgo = %q, want %q", cfg.HashAlgo, "bcrypt")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()

	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h fallback", cfg.JWTExpiry)
	}
}
