package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DatabasePath != "nutriplan.db" {
		t.Errorf("database path = %q, want default", cfg.DatabasePath)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != 9090 || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics defaults = %+v", cfg.Metrics)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("database_path: /tmp/foods.db\nlog_level: debug\nmetrics:\n  enabled: false\n  port: 9191\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DatabasePath != "/tmp/foods.db" {
		t.Errorf("database path = %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.Port != 9191 {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("metrics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("NUTRIPLAN_JWT_SECRET", "hush")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("openai key = %q", cfg.OpenAIKey)
	}
	if cfg.JWTSecret != "hush" {
		t.Errorf("jwt secret = %q", cfg.JWTSecret)
	}
}
