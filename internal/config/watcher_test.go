package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, path string) <-chan *Config {
	t.Helper()
	reloads := make(chan *Config, 8)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := NewWatcher(path, logger, func(cfg *Config) { reloads <- cfg })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Run(ctx)
	return reloads
}

func waitReload(t *testing.T, reloads <-chan *Config) *Config {
	t.Helper()
	select {
	case cfg := <-reloads:
		return cfg
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a reload")
		return nil
	}
}

func expectNoReload(t *testing.T, reloads <-chan *Config) {
	t.Helper()
	select {
	case cfg := <-reloads:
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: first\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reloads := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("window:\n  title: second\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := waitReload(t, reloads)
	if cfg.Window.Title != "second" {
		t.Fatalf("expected reloaded title second, got %q", cfg.Window.Title)
	}
}

func TestWatcher_DebounceCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")

	reloads := startWatcher(t, path)

	// Editors emit several events per save; a quick burst of writes
	// must collapse into a single reload.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("window:\n  title: burst\n"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	waitReload(t, reloads)
	expectNoReload(t, reloads)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")

	reloads := startWatcher(t, path)

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("scratch\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	expectNoReload(t, reloads)
}

func TestWatcher_KeepsRunningOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termwin.yaml")

	reloads := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("window:\n  frobnicate: 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	expectNoReload(t, reloads)

	// The next valid save goes through.
	if err := os.WriteFile(path, []byte("window:\n  title: fixed\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := waitReload(t, reloads)
	if cfg.Window.Title != "fixed" {
		t.Fatalf("expected reloaded title fixed, got %q", cfg.Window.Title)
	}
}
