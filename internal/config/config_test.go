package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("QGRID_CONFIG_HOME", "/tmp/qgrid-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/qgrid-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/qgrid-config")
	}

	t.Setenv("QGRID_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/qgrid" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/qgrid")
	}
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Setenv("QGRID_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %#v, want defaults", cfg)
	}
}

func TestLoadWithThemeAndOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QGRID_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "theme", "test.toml"), `
foreground = "#111111"
background = "#222222"
special = "#333333"
`)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[grid]
rows = 10
columns = 40

[theme]
theme = "test"
background = "#123456"

[log]
debug = true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Grid.Rows != 10 || cfg.Grid.Columns != 40 {
		t.Fatalf("Grid = %dx%d, want 10x40", cfg.Grid.Rows, cfg.Grid.Columns)
	}
	if !cfg.Log.Debug {
		t.Fatalf("Log.Debug = false, want true")
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.Background != "#123456" {
		t.Fatalf("Background = %q, want %q", cfg.Theme.Background, "#123456")
	}
	if cfg.Theme.Special != "#333333" {
		t.Fatalf("Special = %q, want %q", cfg.Theme.Special, "#333333")
	}
}

func TestLoadMissingTheme(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QGRID_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[theme]
theme = "nope"
`)
	if _, err := Load(); err == nil {
		t.Fatalf("Load error = nil, want missing theme error")
	}
}

func TestLoadThemeWrapped(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QGRID_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "theme", "wrapped.toml"), `
[theme]
foreground = "#aaaaaa"
background = "#bbbbbb"
`)

	theme, err := LoadTheme("wrapped")
	if err != nil {
		t.Fatalf("LoadTheme error: %v", err)
	}
	if theme.Foreground != "#aaaaaa" {
		t.Fatalf("Foreground = %q, want %q", theme.Foreground, "#aaaaaa")
	}
	if theme.Background != "#bbbbbb" {
		t.Fatalf("Background = %q, want %q", theme.Background, "#bbbbbb")
	}
}

func TestParseColor(t *testing.T) {
	if got := ParseColor("#102030", tcell.ColorRed); got != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Fatalf("hex = %v, want rgb(16,32,48)", got)
	}
	if got := ParseColor("#zz0000", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("bad hex = %v, want fallback", got)
	}
	if got := ParseColor("  ", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Fatalf("empty = %v, want fallback", got)
	}
	if got := ParseColor("Default", tcell.ColorBlue); got != tcell.ColorDefault {
		t.Fatalf("default = %v, want ColorDefault", got)
	}
	if got := ParseColor("green", tcell.ColorBlue); got != tcell.ColorGreen {
		t.Fatalf("green = %v, want ColorGreen", got)
	}
}

func TestThemeColors(t *testing.T) {
	fg, bg, sp := Theme{Foreground: "#010203", Background: "garbage"}.Colors()
	if fg != tcell.NewRGBColor(1, 2, 3) {
		t.Fatalf("fg = %v", fg)
	}
	if bg != tcell.ColorDefault || sp != tcell.ColorDefault {
		t.Fatalf("bg, sp = %v, %v, want default", bg, sp)
	}
}
