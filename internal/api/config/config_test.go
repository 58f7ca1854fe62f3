package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Fixture.Seed != 42 || cfg.Fixture.PostCount != 200 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Cron.WarmSpec != "@daily" || cfg.Redis.Enabled || cfg.MinIO.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := []byte("server:\n  port: 9090\nfixture:\n  seed: 7\n  anchor_date: \"2025-06-30\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CAMPAIGNLENS_FIXTURE_POST_COUNT", "50")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Fixture.Seed != 7 || cfg.Fixture.AnchorDate != "2025-06-30" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Fixture.PostCount != 50 {
		t.Fatalf("env override not applied: %d", cfg.Fixture.PostCount)
	}
	if cfg.Fixture.OrderRate != 0.7 {
		t.Fatalf("default lost: %v", cfg.Fixture.OrderRate)
	}
}
