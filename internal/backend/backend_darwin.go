//go:build darwin

package backend

import (
	"github.com/lfrancke/termwin/internal/cocoa"
	"github.com/lfrancke/termwin/internal/platform"
)

// Connect opens the native windowing connection for this platform.
func Connect() (platform.EventLoop, error) {
	return cocoa.Connect()
}
