package platform

import (
	"os"
	"testing"
)

func TestTakeActivationToken_ConsumesAndClears(t *testing.T) {
	t.Setenv("XDG_ACTIVATION_TOKEN", "token-1")
	t.Setenv("DESKTOP_STARTUP_ID", "startup-1")

	token := TakeActivationToken()
	if token != "token-1" {
		t.Fatalf("expected token-1, got %q", token)
	}
	if v := os.Getenv("XDG_ACTIVATION_TOKEN"); v != "" {
		t.Fatalf("expected XDG_ACTIVATION_TOKEN cleared, got %q", v)
	}
	if v := os.Getenv("DESKTOP_STARTUP_ID"); v != "" {
		t.Fatalf("expected DESKTOP_STARTUP_ID cleared, got %q", v)
	}

	// A second window in the same process must not observe the token.
	if token := TakeActivationToken(); token != "" {
		t.Fatalf("expected empty token on second take, got %q", token)
	}
}

func TestTakeActivationToken_FallsBackToStartupID(t *testing.T) {
	os.Unsetenv("XDG_ACTIVATION_TOKEN")
	t.Setenv("DESKTOP_STARTUP_ID", "startup-2")

	if token := TakeActivationToken(); token != "startup-2" {
		t.Fatalf("expected startup-2, got %q", token)
	}
}

func TestTakeActivationToken_EmptyEnvironment(t *testing.T) {
	os.Unsetenv("XDG_ACTIVATION_TOKEN")
	os.Unsetenv("DESKTOP_STARTUP_ID")

	if token := TakeActivationToken(); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
}
