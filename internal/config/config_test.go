package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Grid.Columns != 5 || cfg.Grid.Rows != 3 {
		t.Errorf("default grid = %dx%d, want 5x3", cfg.Grid.Columns, cfg.Grid.Rows)
	}
}

func TestLoadFrom_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
ui:
  selection_color: "#00FF00"
  notify_on_select: true
grid:
  cell_width: 20
  cell_height: 5
log:
  debug: true
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.UI.SelectionColor != "#00FF00" || !cfg.UI.NotifyOnSelect {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.UI.TabWidth != 14 {
		t.Errorf("unset tab width lost its default: %d", cfg.UI.TabWidth)
	}
	if !cfg.Log.Debug {
		t.Error("log.debug not read")
	}
	if w, h := cfg.CellSize(100, 30); w != 20 || h != 5 {
		t.Errorf("CellSize() = %dx%d, want 20x5", w, h)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad color", "ui:\n  selection_color: purple\n"},
		{"half cell size", "grid:\n  cell_width: 10\n"},
		{"negative cell", "grid:\n  cell_width: -1\n  cell_height: 4\n"},
		{"zero columns", "grid:\n  columns: 0\n"},
		{"negative tab", "catalog:\n  initial_tab: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := LoadFrom(writeConfig(t, "ui: [")); err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestCellSize_Fractions(t *testing.T) {
	cfg := DefaultConfig()
	if w, h := cfg.CellSize(100, 30); w != 20 || h != 10 {
		t.Errorf("CellSize() = %dx%d, want 20x10", w, h)
	}
}

func TestConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/custom.yaml" {
		t.Errorf("ConfigPath() = %q", path)
	}
}

func TestWriteTemplate_LoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigPath, path)

	written, err := WriteTemplate()
	if err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}
	if written != path {
		t.Errorf("WriteTemplate() wrote %q, want %q", written, path)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, DefaultConfig()) {
		t.Errorf("template config = %+v, want defaults %+v", loaded, DefaultConfig())
	}
}

func TestLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	if path, err := cfg.LogPath(); err != nil || path != "" {
		t.Errorf("LogPath() without debug = %q, %v; want discard", path, err)
	}

	cfg.Log.Debug = true
	path, err := cfg.LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if want := filepath.Join(home, ".config", "tabgrid", "tabgrid.log"); path != want {
		t.Errorf("LogPath() with debug = %q, want %q", path, want)
	}

	cfg.Log.Path = "/var/log/tabgrid.log"
	if path, _ := cfg.LogPath(); path != cfg.Log.Path {
		t.Errorf("configured path ignored: %q", path)
	}
}
