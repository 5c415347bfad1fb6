package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfigAppliesUnitsAndDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
jwt:
  secret: short
  expire_hours: 2
cache:
  question_ttl_minutes: 5
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.JWT.ExpireTime != 2*time.Hour {
		t.Fatalf("expected 2h jwt expiry, got %v", cfg.JWT.ExpireTime)
	}
	if cfg.Cache.QuestionTTL != 5*time.Minute {
		t.Fatalf("expected 5m question ttl, got %v", cfg.Cache.QuestionTTL)
	}
	if cfg.Database.Charset != "utf8mb4" {
		t.Fatalf("expected default charset, got %q", cfg.Database.Charset)
	}
	if cfg.RateLimit.MaxRequests != 6000 || cfg.RateLimit.WindowMinutes != 1 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: too-short
`)

	_, err := LoadConfig(dir)
	if err == nil || !strings.Contains(err.Error(), "JWT secret is too short") {
		t.Fatalf("expected weak secret error, got %v", err)
	}
}

func TestLoadConfigEnvOverridesSecret(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: too-short
`)
	t.Setenv("JWT_SECRET", strings.Repeat("s", 40))

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.JWT.Secret) != 40 {
		t.Fatalf("expected env secret to win, got %q", cfg.JWT.Secret)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
