// Package x11 implements the native windowing layer on top of the X
// protocol via xgb/xgbutil.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/lfrancke/termwin/internal/platform"
)

// Conn manages the X11 connection and acts as the window-creation
// context for the display layer.
type Conn struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	cursors map[uint16]xproto.Cursor
	blank   xproto.Cursor
}

var _ platform.EventLoop = (*Conn)(nil)

// Connect establishes a connection to the X server.
func Connect() (*Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &Conn{
		xu:      xu,
		root:    xu.RootWin(),
		cursors: make(map[uint16]xproto.Cursor),
	}, nil
}

// Platform identifies this connection's substrate family.
func (c *Conn) Platform() platform.Platform {
	return platform.X11
}

// XUtil exposes the underlying xgbutil connection for event hookup.
func (c *Conn) XUtil() *xgbutil.XUtil {
	return c.xu
}

// Run starts the X11 event loop (blocking).
func (c *Conn) Run() {
	xevent.Main(c.xu)
}

// Quit asks the event loop to exit after the current event.
func (c *Conn) Quit() {
	xevent.Quit(c.xu)
}

// Close disconnects from the X server.
func (c *Conn) Close() {
	c.xu.Conn().Close()
}

// scaleFactor derives the output scale from the default screen's pixel
// and millimeter extents, normalized to the 96 dpi baseline.
func (c *Conn) scaleFactor() float64 {
	screen := c.xu.Screen()
	if screen.WidthInMillimeters == 0 {
		return 1
	}
	dpi := float64(screen.WidthInPixels) / (float64(screen.WidthInMillimeters) / 25.4)
	if dpi <= 0 {
		return 1
	}
	return dpi / 96
}
