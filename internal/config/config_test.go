package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Length != 24 {
		t.Fatalf("default length")
	}
	if cfg.Count != 1 {
		t.Fatalf("default count")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("default logging: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	data := []byte(`{"length":16,"count":5,"logLevel":"debug"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Length != 16 {
		t.Fatalf("expected 16, got %d", cfg.Length)
	}
	if cfg.Count != 5 {
		t.Fatalf("expected 5, got %d", cfg.Count)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug")
	}
	// Untouched keys keep defaults.
	if cfg.LogFormat != "text" {
		t.Fatalf("expected text, got %q", cfg.LogFormat)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte("length: 16\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected yaml rejection")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("CUID2_LENGTH", "8")
	t.Setenv("CUID2_COUNT", "3")
	t.Setenv("CUID2_LOG_LEVEL", "warn")
	t.Setenv("CUID2_LOG_FORMAT", "json")

	FromEnv(&cfg)
	if cfg.Length != 8 {
		t.Fatalf("env override length")
	}
	if cfg.Count != 3 {
		t.Fatalf("env override count")
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "json" {
		t.Fatalf("env override logging: %+v", cfg)
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	cfg := Default()
	t.Setenv("CUID2_LENGTH", "not-a-number")
	FromEnv(&cfg)
	if cfg.Length != Default().Length {
		t.Fatalf("garbage length applied: %d", cfg.Length)
	}
}
