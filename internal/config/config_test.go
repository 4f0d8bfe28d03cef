package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Window.Decorations != DecorationsFull {
		t.Fatalf("expected full decorations by default, got %q", cfg.Window.Decorations)
	}
	if !cfg.Window.DynamicTitleEnabled() {
		t.Fatalf("expected dynamic title enabled by default")
	}
	if !cfg.LiveConfigReloadEnabled() {
		t.Fatalf("expected live config reload enabled by default")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Title != "Termwin" {
		t.Fatalf("expected default title, got %q", cfg.Window.Title)
	}
}

func TestLoadFromPath_WindowSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")
	data := strings.Join([]string{
		"window:",
		"  decorations: buttonless",
		"  startup_mode: maximized",
		"  opacity: 0.85",
		"  blur: true",
		"  position:",
		"    x: 100",
		"    y: 200",
		"  title: scratchpad",
		"  class:",
		"    instance: Scratch",
		"    general: Termwin",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Decorations != DecorationsButtonless {
		t.Fatalf("expected buttonless, got %q", cfg.Window.Decorations)
	}
	if !cfg.Window.Maximized() {
		t.Fatalf("expected maximized startup mode")
	}
	if got := cfg.Window.WindowOpacity(); got != 0.85 {
		t.Fatalf("expected opacity 0.85, got %v", got)
	}
	if cfg.Window.Position == nil || cfg.Window.Position.X != 100 || cfg.Window.Position.Y != 200 {
		t.Fatalf("expected position (100, 200), got %+v", cfg.Window.Position)
	}
	if cfg.Window.Title != "scratchpad" {
		t.Fatalf("expected title scratchpad, got %q", cfg.Window.Title)
	}
	if cfg.Window.Class.Instance != "Scratch" {
		t.Fatalf("expected class instance Scratch, got %q", cfg.Window.Class.Instance)
	}
}

func TestLoadFromPath_UnknownKeyErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")
	if err := os.WriteFile(path, []byte("window:\n  frobnicate: 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "frobnicate") && !strings.Contains(err.Error(), "field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_InvalidEnumErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")
	if err := os.WriteFile(path, []byte("window:\n  decorations: fancy\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "decorations") {
		t.Fatalf("expected decorations error, got %v", err)
	}
}

func TestWindowOpacity_Clamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		w := WindowConfig{Opacity: &tt.in}
		if got := w.WindowOpacity(); got != tt.want {
			t.Fatalf("opacity %v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
	var w WindowConfig
	if got := w.WindowOpacity(); got != 1 {
		t.Fatalf("expected unset opacity to be 1, got %v", got)
	}
}

func TestStartupModeAccessors(t *testing.T) {
	w := WindowConfig{StartupMode: StartupFullscreen}
	if !w.Fullscreen() || w.Maximized() || w.SimpleFullscreen() {
		t.Fatalf("unexpected accessors for fullscreen: %+v", w)
	}
	w.StartupMode = StartupSimpleFullscreen
	if !w.SimpleFullscreen() || w.Fullscreen() {
		t.Fatalf("unexpected accessors for simple-fullscreen: %+v", w)
	}
}
