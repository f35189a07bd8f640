package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "formbuilder.yaml", `
renderer: react
strict: true
logging:
  level: debug
theme:
  storage:
    driver: sqlite
    path: state.db
  randomization: creative
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	want.Renderer = "react"
	want.Strict = true
	want.Logging.Level = "debug"
	want.Theme.Storage = StorageConfig{Driver: DriverSQLite, Path: "state.db"}
	want.Theme.Randomization = "creative"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_TOMLAndMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", `
repair = true

[theme.storage]
driver = "memory"
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Repair || cfg.Theme.Storage.Driver != DriverMemory {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := LoadFile(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatal("expected an explicit missing file to fail")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FORMBUILDER_RENDERER", "vue")
	t.Setenv("FORMBUILDER_LOGGING_FORMAT", "json")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Renderer != "vue" || cfg.Logging.Format != "json" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Config)
		field string
	}{
		{"unknown driver", func(c *Config) { c.Theme.Storage.Driver = "redis" }, "theme.storage.driver"},
		{"missing path", func(c *Config) { c.Theme.Storage.Path = "" }, "theme.storage.path"},
		{"bad level", func(c *Config) { c.Theme.Randomization = "wild" }, "theme.randomization"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"empty renderer", func(c *Config) { c.Renderer = " " }, "renderer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(cfg)
			var cfgErr *Error
			if err := cfg.Validate(); !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Fatalf("expected error on %s, got %v", tt.field, err)
			}
		})
	}

	memory := DefaultConfig()
	memory.Theme.Storage = StorageConfig{Driver: DriverMemory}
	if err := memory.Validate(); err != nil {
		t.Fatalf("memory driver needs no path: %v", err)
	}
}
