//go:build linux || freebsd || openbsd || netbsd

package main

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/lfrancke/termwin/internal/display"
	"github.com/lfrancke/termwin/internal/platform"
	"github.com/lfrancke/termwin/internal/x11"
)

// hookEvents wires the X event stream into the window core.
func hookEvents(loop platform.EventLoop, win *display.Window) {
	conn, ok := loop.(*x11.Conn)
	if !ok {
		return
	}
	xu := conn.XUtil()
	id := xproto.Window(win.Handle().XID)

	xevent.ExposeFun(func(xu *xgbutil.XUtil, ev xevent.ExposeEvent) {
		// The renderer draws here; the pending-redraw flag resets so
		// the next damage can coalesce again.
		win.RequestedRedraw = false
		slog.Debug("expose", "count", ev.Count)
	}).Connect(xu, id)

	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		slog.Debug("resized", "width", ev.Width, "height", ev.Height)
	}).Connect(xu, id)

	deleteAtom, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		return
	}
	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		if xproto.Atom(ev.Data.Data32[0]) == deleteAtom {
			slog.Info("close requested")
			conn.Quit()
		}
	}).Connect(xu, id)
}
