package main

import (
	"log/slog"
	"os"

	"github.com/lfrancke/termwin/internal/display"
	"github.com/lfrancke/termwin/internal/ipc"
	"github.com/lfrancke/termwin/internal/platform"
	"github.com/lfrancke/termwin/internal/runtimepath"
)

// windowController adapts the window to the control-socket surface.
type windowController struct {
	win        *display.Window
	loop       platform.EventLoop
	configPath string
}

func (c *windowController) SetTitle(title string) {
	c.win.SetTitle(title)
}

func (c *windowController) Title() string {
	return c.win.Title()
}

func (c *windowController) ToggleFullscreen() {
	c.win.ToggleFullscreen()
}

func (c *windowController) ToggleMaximized() {
	c.win.ToggleMaximized()
}

func (c *windowController) ScaleFactorValue() float64 {
	return c.win.ScaleFactor
}

func (c *windowController) State() (fullscreen, maximized bool) {
	return c.win.IsFullscreen(), c.win.IsMaximized()
}

func (c *windowController) PlatformName() string {
	return c.loop.Platform().String()
}

func (c *windowController) ReloadConfig() error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	// No renderer is attached here, so cell metrics are unknown and the
	// resize increment hint keeps its current value.
	c.win.ApplyConfigUpdate(&cfg.Window, display.SizeInfo{})
	if !cfg.Window.DynamicTitleEnabled() {
		c.win.SetTitle(cfg.Window.Title)
	}
	return nil
}

// startControlServer exposes the window on a per-process socket; it
// returns nil when the socket cannot be set up.
func startControlServer(win *display.Window, loop platform.EventLoop, configPath string) *ipc.Server {
	socketPath, err := runtimepath.SocketPath(os.Getpid())
	if err != nil {
		slog.Warn("control socket disabled", "error", err)
		return nil
	}

	server := ipc.NewServer(socketPath, &windowController{
		win:        win,
		loop:       loop,
		configPath: configPath,
	})
	if err := server.Start(); err != nil {
		slog.Warn("control socket disabled", "error", err)
		return nil
	}
	return server
}
