package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rowanvale/toolloop/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TL_HOST", "")
	t.Setenv("TL_MODEL", "")
	t.Setenv("TL_TIMEOUT_SECONDS", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Endpoint() != "http://localhost:11434/api/chat" {
		t.Fatalf("endpoint mismatch: %s", cfg.Endpoint())
	}
	if cfg.Model != "llama3.1" {
		t.Fatalf("model mismatch: %s", cfg.Model)
	}
	if cfg.Timeout() != 120*time.Second {
		t.Fatalf("timeout mismatch: %v", cfg.Timeout())
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("TL_HOST", "")
	t.Setenv("TL_MODEL", "")
	t.Setenv("TL_TIMEOUT_SECONDS", "")

	p := filepath.Join(t.TempDir(), "toolloop.yaml")
	body := "host: http://models.internal:11434/\nmodel: qwen2.5\ntimeout_seconds: 30\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}

	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Endpoint() != "http://models.internal:11434/api/chat" {
		t.Fatalf("trailing slash not trimmed: %s", cfg.Endpoint())
	}
	if cfg.Model != "qwen2.5" || cfg.TimeoutSeconds != 30 {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "toolloop.yaml")
	if err := os.WriteFile(p, []byte("model: from-file\n"), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}
	t.Setenv("TL_MODEL", "from-env")

	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Model != "from-env" {
		t.Fatalf("env should override file, got %s", cfg.Model)
	}
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := config.Load(p); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_InvalidTimeoutEnvErrors(t *testing.T) {
	t.Setenv("TL_TIMEOUT_SECONDS", "abc")
	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error for non-numeric timeout")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("TL_HOST", "")
	t.Setenv("TL_MODEL", "")
	t.Setenv("TL_TIMEOUT_SECONDS", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Model != "llama3.1" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}
