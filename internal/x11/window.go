package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/lfrancke/termwin/internal/platform"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Window is an X11 top-level window implementing the native layer.
type Window struct {
	conn *Conn
	win  *xwindow.Window

	// Glyph cursor currently applied, kept to restore it after the
	// blank cursor used for hiding.
	currentCursor xproto.Cursor

	// Most recent IME anchor; the XIM transport owned by the input
	// layer reads it, core X has no property-based path for the spot.
	imeX, imeY, imeW, imeH float64

	imeAllowed  bool
	transparent bool
}

var _ platform.Window = (*Window)(nil)

// CreateWindow builds a native X11 window from the declarative request.
// The window is created unmapped unless opts.Visible is set.
func (c *Conn) CreateWindow(opts platform.Options) (platform.Window, error) {
	screen := c.xu.Screen()

	parent := c.root
	if opts.EmbedParent != 0 {
		parent = xproto.Window(opts.EmbedParent)
	}

	width, height := opts.InnerSize.Width, opts.InnerSize.Height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}
	var x, y int16
	if opts.Position != nil {
		x, y = int16(opts.Position.X), int16(opts.Position.Y)
	}

	depth, visual, err := c.pickVisual(opts)
	if err != nil {
		return nil, err
	}

	wid, err := xproto.NewWindowId(c.xu.Conn())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	// A visual other than the root's needs its own colormap or the
	// server answers CreateWindow with BadMatch.
	colormap := screen.DefaultColormap
	if visual != screen.RootVisual {
		cid, err := xproto.NewColormapId(c.xu.Conn())
		if err != nil {
			return nil, fmt.Errorf("failed to allocate colormap id: %w", err)
		}
		if err := xproto.CreateColormapChecked(
			c.xu.Conn(), xproto.ColormapAllocNone, cid, c.root, visual,
		).Check(); err != nil {
			return nil, fmt.Errorf("failed to create colormap: %w", err)
		}
		colormap = cid
	}

	eventMask := uint32(xproto.EventMaskExposure |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskFocusChange |
		xproto.EventMaskPropertyChange)

	err = xproto.CreateWindowChecked(
		c.xu.Conn(),
		depth,
		wid,
		parent,
		x, y,
		uint16(width), uint16(height),
		0,
		xproto.WindowClassInputOutput,
		visual,
		xproto.CwBorderPixel|xproto.CwEventMask|xproto.CwColormap,
		[]uint32{0, eventMask, uint32(colormap)},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("x11 window creation failed: %w", err)
	}

	w := &Window{
		conn:        c,
		win:         xwindow.New(c.xu, wid),
		transparent: opts.Transparent,
	}

	if opts.ClassInstance != "" || opts.ClassGeneral != "" {
		err := icccm.WmClassSet(c.xu, wid, &icccm.WmClass{
			Instance: opts.ClassInstance,
			Class:    opts.ClassGeneral,
		})
		if err != nil {
			w.win.Destroy()
			return nil, fmt.Errorf("failed to set WM_CLASS: %w", err)
		}
	}

	w.SetTitle(opts.Title)

	if opts.Icon != nil {
		if err := setWindowIcon(c.xu, wid, opts.Icon); err != nil {
			// The window proceeds without an icon.
			slog.Warn("failed to set window icon", "error", err)
		}
	}

	if err := setMotifDecorations(c.xu, wid, opts.Decorated); err != nil {
		w.win.Destroy()
		return nil, fmt.Errorf("failed to set decoration hints: %w", err)
	}

	_ = ewmh.WmWindowTypeSet(c.xu, wid, []string{"_NET_WM_WINDOW_TYPE_NORMAL"})
	_ = icccm.WmHintsSet(c.xu, wid, &icccm.Hints{
		Flags: icccm.HintInput,
		Input: 1,
	})

	if err := setDeleteProtocol(c.xu, wid); err != nil {
		w.win.Destroy()
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	if opts.Position != nil {
		// Tell the WM the position is user-specified so it is honored.
		_ = icccm.WmNormalHintsSet(c.xu, wid, &icccm.NormalHints{
			Flags: icccm.SizeHintUSPosition,
			X:     opts.Position.X,
			Y:     opts.Position.Y,
		})
	}

	if opts.ActivationToken != "" {
		_ = xprop.ChangeProp(c.xu, wid, 8, "_NET_STARTUP_ID", "UTF8_STRING",
			[]byte(opts.ActivationToken))
	}

	w.SetTheme(opts.Theme)
	if opts.Blur {
		w.SetBlur(true)
	}

	// Initial EWMH state has to be a property before mapping; state
	// requests only work on mapped windows.
	var initialState []string
	if opts.Fullscreen {
		initialState = append(initialState, "_NET_WM_STATE_FULLSCREEN")
	}
	if opts.Maximized {
		initialState = append(initialState,
			"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ")
	}
	if len(initialState) > 0 {
		_ = ewmh.WmStateSet(c.xu, wid, initialState)
	}

	if opts.Visible {
		w.win.Map()
	}

	return w, nil
}

// pickVisual resolves the visual/depth pair: an explicitly requested
// visual wins, then a 32-bit one for transparent windows, then the
// root's.
func (c *Conn) pickVisual(opts platform.Options) (byte, xproto.Visualid, error) {
	screen := c.xu.Screen()

	if opts.HasVisual {
		want := xproto.Visualid(opts.VisualID)
		for _, di := range screen.AllowedDepths {
			for _, vi := range di.Visuals {
				if vi.VisualId == want {
					return di.Depth, want, nil
				}
			}
		}
		return 0, 0, fmt.Errorf("requested visual 0x%x not found on screen", opts.VisualID)
	}

	if opts.Transparent {
		for _, di := range screen.AllowedDepths {
			if di.Depth != 32 {
				continue
			}
			for _, vi := range di.Visuals {
				if vi.Class == xproto.VisualClassTrueColor {
					return di.Depth, vi.VisualId, nil
				}
			}
		}
		// No ARGB visual available; fall back to the root visual.
	}

	return screen.RootDepth, screen.RootVisual, nil
}

// Handle returns the raw X11 handle.
func (w *Window) Handle() platform.Handle {
	return platform.Handle{Kind: platform.HandleX11, XID: uint32(w.win.Id)}
}

// ScaleFactor reports the connection's output scale.
func (w *Window) ScaleFactor() float64 {
	return w.conn.scaleFactor()
}

// SetTitle pushes both the EWMH and ICCCM window names.
func (w *Window) SetTitle(title string) {
	_ = ewmh.WmNameSet(w.conn.xu, w.win.Id, title)
	_ = icccm.WmNameSet(w.conn.xu, w.win.Id, title)
}

func (w *Window) SetVisible(visible bool) {
	if visible {
		w.win.Map()
	} else {
		w.win.Unmap()
	}
}

func (w *Window) InnerSize() platform.Size {
	geom, err := w.win.Geometry()
	if err != nil {
		return platform.Size{}
	}
	return platform.Size{Width: uint32(geom.Width()), Height: uint32(geom.Height())}
}

func (w *Window) RequestInnerSize(size platform.Size) {
	w.win.Resize(int(size.Width), int(size.Height))
}

// RequestRedraw posts an Expose event to the window itself.
func (w *Window) RequestRedraw() {
	ev := xproto.ExposeEvent{
		Window: w.win.Id,
		Width:  1,
		Height: 1,
	}
	xproto.SendEvent(w.conn.xu.Conn(), false, w.win.Id,
		xproto.EventMaskExposure, string(ev.Bytes()))
}

// RequestAttention sets or clears the ICCCM urgency hint together with
// the EWMH demands-attention state.
func (w *Window) RequestAttention(level platform.Attention) {
	hints, err := icccm.WmHintsGet(w.conn.xu, w.win.Id)
	if err != nil {
		hints = &icccm.Hints{Flags: icccm.HintInput, Input: 1}
	}
	action := ewmh.StateRemove
	if level == platform.AttentionCritical {
		hints.Flags |= icccm.HintUrgency
		action = ewmh.StateAdd
	} else {
		hints.Flags &^= icccm.HintUrgency
	}
	_ = icccm.WmHintsSet(w.conn.xu, w.win.Id, hints)
	_ = ewmh.WmStateReq(w.conn.xu, w.win.Id, action, "_NET_WM_STATE_DEMANDS_ATTENTION")
}

// SetTransparent records the transparency hint. The compositor derives
// per-pixel transparency from the ARGB visual chosen at creation, so
// there is nothing to push at runtime.
func (w *Window) SetTransparent(transparent bool) {
	w.transparent = transparent
}

// SetBlur toggles background blur behind the window (KWin protocol).
func (w *Window) SetBlur(blur bool) {
	if blur {
		_ = xprop.ChangeProp32(w.conn.xu, w.win.Id,
			"_KDE_NET_WM_BLUR_BEHIND_REGION", "CARDINAL", 0)
		return
	}
	if atom, err := xprop.Atm(w.conn.xu, "_KDE_NET_WM_BLUR_BEHIND_REGION"); err == nil {
		xproto.DeleteProperty(w.conn.xu.Conn(), w.win.Id, atom)
	}
}

func (w *Window) SetMaximized(maximized bool) {
	action := ewmh.StateRemove
	if maximized {
		action = ewmh.StateAdd
	}
	_ = ewmh.WmStateReqExtra(w.conn.xu, w.win.Id, action,
		"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 1)
}

func (w *Window) IsMaximized() bool {
	states, err := ewmh.WmStateGet(w.conn.xu, w.win.Id)
	if err != nil {
		return false
	}
	vert, horz := false, false
	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			vert = true
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			horz = true
		}
	}
	return vert && horz
}

// SetMinimized iconifies via WM_CHANGE_STATE; restoring re-maps.
func (w *Window) SetMinimized(minimized bool) {
	if !minimized {
		w.win.Map()
		return
	}

	atom, err := xprop.Atm(w.conn.xu, "WM_CHANGE_STATE")
	if err != nil {
		return
	}
	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.win.Id,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}
	xproto.SendEvent(
		w.conn.xu.Conn(),
		false,
		w.conn.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	)
}

func (w *Window) SetResizeIncrements(increments platform.Size) {
	_ = icccm.WmNormalHintsSet(w.conn.xu, w.win.Id, &icccm.NormalHints{
		Flags:     icccm.SizeHintPResizeInc,
		WidthInc:  uint(increments.Width),
		HeightInc: uint(increments.Height),
	})
}

// SetTheme publishes the GTK theme variant so the WM draws matching
// decorations; unset deletes the override.
func (w *Window) SetTheme(theme platform.Theme) {
	variant := themeVariantName(theme)
	if variant == "" {
		if atom, err := xprop.Atm(w.conn.xu, "_GTK_THEME_VARIANT"); err == nil {
			xproto.DeleteProperty(w.conn.xu.Conn(), w.win.Id, atom)
		}
		return
	}
	_ = xprop.ChangeProp(w.conn.xu, w.win.Id, 8,
		"_GTK_THEME_VARIANT", "UTF8_STRING", []byte(variant))
}

func themeVariantName(theme platform.Theme) string {
	switch theme {
	case platform.ThemeLight:
		return "light"
	case platform.ThemeDark:
		return "dark"
	}
	return ""
}

func (w *Window) SetFullscreen(fullscreen bool) {
	action := ewmh.StateRemove
	if fullscreen {
		action = ewmh.StateAdd
	}
	_ = ewmh.WmStateReq(w.conn.xu, w.win.Id, action, "_NET_WM_STATE_FULLSCREEN")
}

func (w *Window) IsFullscreen() bool {
	states, err := ewmh.WmStateGet(w.conn.xu, w.win.Id)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_FULLSCREEN" {
			return true
		}
	}
	return false
}

// SetIMEAllowed records the IME state chosen at construction. The XIM
// input context is owned by the input layer and reads this flag.
func (w *Window) SetIMEAllowed(allowed bool) {
	w.imeAllowed = allowed
}

// IMEAllowed reports the recorded IME state.
func (w *Window) IMEAllowed() bool {
	return w.imeAllowed
}

func (w *Window) SetIMEPurpose(purpose platform.IMEPurpose) {
	// XIM has no purpose hint.
}

// SetIMECursorArea records the candidate-window anchor for the XIM
// transport.
func (w *Window) SetIMECursorArea(x, y, width, height float64) {
	w.imeX, w.imeY, w.imeW, w.imeH = x, y, width, height
}

// IMECursorArea returns the most recent candidate-window anchor.
func (w *Window) IMECursorArea() (x, y, width, height float64) {
	return w.imeX, w.imeY, w.imeW, w.imeH
}

// PrePresentNotify is a no-op: presentation feedback on core X goes
// through the renderer's own swap interval.
func (w *Window) PrePresentNotify() {}

// Destroy releases the native window.
func (w *Window) Destroy() {
	w.win.Destroy()
}

func setDeleteProtocol(xu *xgbutil.XUtil, win xproto.Window) error {
	atom, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	return xprop.ChangeProp32(xu, win, "WM_PROTOCOLS", "ATOM", uint(atom))
}
