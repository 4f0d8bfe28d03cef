//go:build windows || darwin

package main

import (
	"github.com/lfrancke/termwin/internal/display"
	"github.com/lfrancke/termwin/internal/platform"
)

// hookEvents is a no-op on platforms whose drivers dispatch natively.
func hookEvents(loop platform.EventLoop, win *display.Window) {}
