//go:build windows

package backend

import (
	"github.com/lfrancke/termwin/internal/platform"
	"github.com/lfrancke/termwin/internal/win32"
)

// Connect opens the native windowing connection for this platform.
func Connect() (platform.EventLoop, error) {
	return win32.Connect()
}
