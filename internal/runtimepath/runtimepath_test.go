package runtimepath

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestDir_UsesXDGRuntimeDirWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != td {
		t.Fatalf("Dir() = %q, want %q", got, td)
	}
}

func TestDir_FallbacksWhenXDGRuntimeDirMissing(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got == "" {
		t.Fatal("Dir() returned empty path")
	}

	wantRun := fmt.Sprintf("/run/user/%d", os.Getuid())
	wantTmp := fmt.Sprintf("/tmp/termwin-runtime-%d", os.Getuid())
	if got != wantRun && got != wantTmp {
		t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
	}
}

func TestSocketPath(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	socket, err := SocketPath(1234)
	if err != nil {
		t.Fatalf("SocketPath() error: %v", err)
	}
	if !strings.HasSuffix(socket, "/termwin-1234.sock") {
		t.Fatalf("SocketPath() = %q, missing suffix", socket)
	}
}

func TestActiveSocketPaths(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	for _, pid := range []int{100, 200} {
		path, err := SocketPath(pid)
		if err != nil {
			t.Fatalf("SocketPath() error: %v", err)
		}
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatalf("failed to create socket placeholder: %v", err)
		}
	}

	paths, err := ActiveSocketPaths()
	if err != nil {
		t.Fatalf("ActiveSocketPaths() error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 sockets, got %d: %v", len(paths), paths)
	}
}
