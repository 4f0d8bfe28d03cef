package platform

import "os"

// Activation token environment variables set by desktop session
// managers. XDG_ACTIVATION_TOKEN is the Wayland protocol name,
// DESKTOP_STARTUP_ID the X11 startup-notification one.
var tokenEnvVars = []string{"XDG_ACTIVATION_TOKEN", "DESKTOP_STARTUP_ID"}

// TakeActivationToken consumes the startup activation token from the
// process environment and clears it so windows spawned later in the
// same process do not reuse it. Returns "" when no token is present.
// Call it at most once per token, during window construction.
func TakeActivationToken() string {
	var token string
	for _, key := range tokenEnvVars {
		if v := os.Getenv(key); v != "" && token == "" {
			token = v
		}
		os.Unsetenv(key)
	}
	return token
}
