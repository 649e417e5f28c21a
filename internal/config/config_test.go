package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gsteditor.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.HTTPPort != 8081 {
		t.Errorf("Expected http_port 8081, got %d", cfg.Server.HTTPPort)
	}
	if cfg.Editor.EventBuffer != 256 {
		t.Errorf("Expected event_buffer 256, got %d", cfg.Editor.EventBuffer)
	}
	if cfg.Journal.Path != "" {
		t.Errorf("Expected journal disabled, got %q", cfg.Journal.Path)
	}
	if cfg.Editor.DocumentsDir != "." {
		t.Errorf("Expected documents_dir \".\", got %q", cfg.Editor.DocumentsDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  bind: 0.0.0.0
  http_port: 9000
journal:
  path: /tmp/journal.db
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Bind != "0.0.0.0" || cfg.Server.HTTPPort != 9000 {
		t.Errorf("Expected 0.0.0.0:9000, got %s:%d", cfg.Server.Bind, cfg.Server.HTTPPort)
	}
	if cfg.Journal.Path != "/tmp/journal.db" {
		t.Errorf("Expected journal path, got %q", cfg.Journal.Path)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected json format, got %q", cfg.Log.Format)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8081\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GSTEDITOR_SERVER_HTTP_PORT", "9100")
	t.Setenv("GSTEDITOR_LOG_LEVEL", "warn")
	t.Setenv("GSTEDITOR_JOURNAL_PATH", "/var/lib/gsteditor.db")

	path := writeConfig(t, "server:\n  http_port: 9000\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.HTTPPort != 9100 {
		t.Errorf("Expected env to override port, got %d", cfg.Server.HTTPPort)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected level warn, got %q", cfg.Log.Level)
	}
	if cfg.Journal.Path != "/var/lib/gsteditor.db" {
		t.Errorf("Expected journal path from env, got %q", cfg.Journal.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.HTTPPort = 70000 }, "http_port"},
		{"pattern", func(c *Config) { c.Editor.CatalogPattern = "[" }, "catalog_pattern"},
		{"buffer", func(c *Config) { c.Editor.EventBuffer = -1 }, "event_buffer"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "level"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "format"},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error mentioning %s, got %v", tt.name, tt.want, err)
		}
	}
}
