//go:build linux || freebsd || openbsd || netbsd

package backend

import (
	"github.com/lfrancke/termwin/internal/platform"
	"github.com/lfrancke/termwin/internal/x11"
)

// Connect opens the native windowing connection for this platform.
func Connect() (platform.EventLoop, error) {
	return x11.Connect()
}
