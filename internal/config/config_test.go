package config

import (
	"os"
	"path/filepath"
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

func TestLoadConfigAppliesDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: debug
database:
  driver: sqlite
  path: test.db
jwt:
  secret: short
  expire_hours: 2
storage:
  type: minio
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JWT.ExpireTime != 2*time.Hour {
		t.Fatalf("expire time: got=%v want=%v", cfg.JWT.ExpireTime, 2*time.Hour)
	}
	if cfg.Generation.CoursesPerDegree != 8 {
		t.Fatalf("courses per degree default: got=%d", cfg.Generation.CoursesPerDegree)
	}
	if cfg.Subscription.TrialDays != 7 {
		t.Fatalf("trial days default: got=%d", cfg.Subscription.TrialDays)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port default: got=%q", cfg.Server.Port)
	}
	if cfg.RateLimit.GenerationMaxRequests != 20 {
		t.Fatalf("generation rate limit default: got=%d", cfg.RateLimit.GenerationMaxRequests)
	}
}

func TestRateLimitWindowHasFloor(t *testing.T) {
	if got := (RateLimitConfig{}).Window(); got != time.Minute {
		t.Fatalf("zero window: got=%v", got)
	}
	if got := (RateLimitConfig{WindowMinutes: 15}).Window(); got != 15*time.Minute {
		t.Fatalf("window: got=%v", got)
	}
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
database:
  driver: sqlite
jwt:
  secret: too-short
storage:
  type: minio
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected error for short secret in release mode")
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: oracle
storage:
  type: minio
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
