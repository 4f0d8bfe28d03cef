// Package display owns the native application window and presents one
// platform-uniform API for its construction and runtime mutation.
package display

import (
	"log/slog"

	"github.com/lfrancke/termwin/internal/config"
	"github.com/lfrancke/termwin/internal/platform"
)

// Window wraps the native windowing layer to provide a stable API to
// the rest of the application.
//
// All methods must run on the thread owning the event loop; the Window
// performs no locking. Cached fields mirror the last value pushed to
// the native window so redundant native calls are skipped.
type Window struct {
	// HasFrame tracks that a frame is ready to present; it gates
	// redraw requests.
	HasFrame bool

	// ScaleFactor is cached from the platform at creation and on
	// scale-change events.
	ScaleFactor float64

	// RequestedRedraw is set while a redraw request is in flight. The
	// frame-presentation logic clears it, not this package.
	RequestedRedraw bool

	native platform.Window

	title              string
	isX11              bool
	currentMouseCursor platform.CursorShape
	mouseVisible       bool
}

// New creates and fully initializes a window. The window is built
// hidden and should be made visible by the caller once the first frame
// is ready, so an unconfigured window never flashes on screen.
func New(eventLoop platform.EventLoop, cfg *config.Config, identity config.Identity, extra CreateOptions) (*Window, error) {
	wc := &cfg.Window
	opts := buildPlatformOptions(eventLoop.Platform(), identity, wc, extra)

	if wc.Position != nil {
		opts.Position = &platform.Pos{X: wc.Position.X, Y: wc.Position.Y}
	}

	switch eventLoop.Platform() {
	case platform.X11, platform.Wayland:
		if token := platform.TakeActivationToken(); token != "" {
			slog.Debug("activating window with token", "token", token)
			opts.ActivationToken = token
		}
	}

	if eventLoop.Platform() == platform.X11 && wc.Embed != 0 {
		opts.EmbedParent = wc.Embed
	}

	opts.Title = identity.Title
	opts.Theme = themeVariant(wc.ThemeVariant)
	opts.Visible = false
	opts.Transparent = true
	opts.Blur = wc.Blur
	opts.Maximized = wc.Maximized()
	opts.Fullscreen = wc.Fullscreen()

	native, err := eventLoop.CreateWindow(opts)
	if err != nil {
		return nil, NewWindowCreationError(err)
	}

	// Text cursor.
	currentMouseCursor := platform.CursorText
	native.SetCursorShape(currentMouseCursor)

	// Enable IME.
	native.SetIMEAllowed(true)
	native.SetIMEPurpose(platform.IMEPurposeTerminal)

	// Set initial transparency hint.
	native.SetTransparent(wc.WindowOpacity() < 1)

	// Wide-gamut displays shift colors unless the surface is pinned to
	// sRGB; only the color-managed platform implements this.
	if surface, ok := native.(platform.SurfaceProperties); ok {
		surface.UseSRGBColorSpace()
	}

	scaleFactor := native.ScaleFactor()
	slog.Info("window scale factor", "scale_factor", scaleFactor)
	isX11 := native.Handle().IsX11()

	return &Window{
		RequestedRedraw:    false,
		HasFrame:           true,
		ScaleFactor:        scaleFactor,
		native:             native,
		title:              identity.Title,
		isX11:              isX11,
		currentMouseCursor: currentMouseCursor,
		mouseVisible:       true,
	}, nil
}

// Handle returns the raw native handle for renderer surface creation.
func (w *Window) Handle() platform.Handle {
	return w.native.Handle()
}

// InnerSize returns the current content size in device pixels.
func (w *Window) InnerSize() platform.Size {
	return w.native.InnerSize()
}

// RequestInnerSize asks the windowing system for a new content size.
func (w *Window) RequestInnerSize(size platform.Size) {
	w.native.RequestInnerSize(size)
}

func (w *Window) SetVisible(visible bool) {
	w.native.SetVisible(visible)
}

// SetTitle sets the window title, skipping the native call when the
// title is unchanged.
func (w *Window) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	w.native.SetTitle(title)
}

// Title returns the last title pushed to the native window.
func (w *Window) Title() string {
	return w.title
}

// RequestRedraw schedules a redraw, coalescing duplicates until the
// presentation logic clears RequestedRedraw.
func (w *Window) RequestRedraw() {
	if !w.RequestedRedraw {
		w.RequestedRedraw = true
		w.native.RequestRedraw()
	}
}

// SetMouseCursor sets the cursor shape, skipping redundant updates.
func (w *Window) SetMouseCursor(shape platform.CursorShape) {
	if shape != w.currentMouseCursor {
		w.currentMouseCursor = shape
		w.native.SetCursorShape(shape)
	}
}

// SetMouseVisible toggles cursor visibility, skipping redundant updates.
func (w *Window) SetMouseVisible(visible bool) {
	if visible != w.mouseVisible {
		w.mouseVisible = visible
		w.native.SetCursorVisible(visible)
	}
}

// SetUrgent raises or cancels a critical user-attention request.
func (w *Window) SetUrgent(urgent bool) {
	level := platform.AttentionNone
	if urgent {
		level = platform.AttentionCritical
	}
	w.native.RequestAttention(level)
}

func (w *Window) SetTransparent(transparent bool) {
	w.native.SetTransparent(transparent)
}

func (w *Window) SetBlur(blur bool) {
	w.native.SetBlur(blur)
}

func (w *Window) SetMaximized(maximized bool) {
	w.native.SetMaximized(maximized)
}

func (w *Window) SetMinimized(minimized bool) {
	w.native.SetMinimized(minimized)
}

// SetResizeIncrements snaps interactive resizing to the given step.
func (w *Window) SetResizeIncrements(increments platform.Size) {
	w.native.SetResizeIncrements(increments)
}

func (w *Window) SetTheme(theme platform.Theme) {
	w.native.SetTheme(theme)
}

// SetFullscreen maps true to borderless fullscreen on the current
// output and false to windowed.
func (w *Window) SetFullscreen(fullscreen bool) {
	w.native.SetFullscreen(fullscreen)
}

// IsFullscreen reports the native fullscreen state.
func (w *Window) IsFullscreen() bool {
	return w.native.IsFullscreen()
}

// IsMaximized reports the native maximized state.
func (w *Window) IsMaximized() bool {
	return w.native.IsMaximized()
}

// ToggleFullscreen inverts the current native fullscreen state.
func (w *Window) ToggleFullscreen() {
	w.SetFullscreen(!w.native.IsFullscreen())
}

// ToggleMaximized inverts the current native maximized state.
func (w *Window) ToggleMaximized() {
	w.SetMaximized(!w.native.IsMaximized())
}

// SetSimpleFullscreen enters or leaves macOS non-space fullscreen; a
// no-op elsewhere.
func (w *Window) SetSimpleFullscreen(fullscreen bool) {
	if sf, ok := w.native.(platform.SimpleFullscreen); ok {
		sf.SetSimpleFullscreen(fullscreen)
	}
}

// ToggleSimpleFullscreen inverts the macOS non-space fullscreen state.
func (w *Window) ToggleSimpleFullscreen() {
	if sf, ok := w.native.(platform.SimpleFullscreen); ok {
		sf.SetSimpleFullscreen(!sf.IsSimpleFullscreen())
	}
}

// SetOptionAsAlt reconfigures macOS Option-key handling; a no-op
// elsewhere.
func (w *Window) SetOptionAsAlt(mode platform.OptionKeyMode) {
	if oa, ok := w.native.(platform.OptionAsAlt); ok {
		oa.SetOptionAsAlt(mode)
	}
}

// SetHasShadow toggles the macOS window shadow via the native surface;
// shadows cause rendering artifacts on transparent windows.
func (w *Window) SetHasShadow(hasShadow bool) {
	if surface, ok := w.native.(platform.SurfaceProperties); ok {
		surface.SetHasShadow(hasShadow)
	}
}

// SelectTabAt selects the macOS window tab at index.
func (w *Window) SelectTabAt(index int) {
	if tabs, ok := w.native.(platform.Tabbed); ok {
		tabs.SelectTabAt(index)
	}
}

// SelectLastTab selects the last macOS window tab.
func (w *Window) SelectLastTab() {
	if tabs, ok := w.native.(platform.Tabbed); ok {
		tabs.SelectTabAt(tabs.NumTabs() - 1)
	}
}

// SelectNextTab selects the next macOS window tab.
func (w *Window) SelectNextTab() {
	if tabs, ok := w.native.(platform.Tabbed); ok {
		tabs.SelectNextTab()
	}
}

// SelectPreviousTab selects the previous macOS window tab.
func (w *Window) SelectPreviousTab() {
	if tabs, ok := w.native.(platform.Tabbed); ok {
		tabs.SelectPreviousTab()
	}
}

// TabbingID returns the macOS tab group identifier, "" elsewhere.
func (w *Window) TabbingID() string {
	if tabs, ok := w.native.(platform.Tabbed); ok {
		return tabs.TabbingID()
	}
	return ""
}

// SetIMEAllowed toggles IME input. Runtime IME manipulation is skipped
// on X11 since it breaks some input methods there; the state chosen at
// construction is preserved.
func (w *Window) SetIMEAllowed(allowed bool) {
	if !w.isX11 {
		w.native.SetIMEAllowed(allowed)
	}
}

// PrePresentNotify informs the windowing system about an imminent
// present. Call it right before the buffer swap.
func (w *Window) PrePresentNotify() {
	w.native.PrePresentNotify()
}

// ApplyConfigUpdate re-applies the runtime-mutable window settings
// after a configuration reload. size carries the current cell
// geometry; with a zero size the resize increment hint is left
// untouched since cell metrics are unknown.
func (w *Window) ApplyConfigUpdate(wc *config.WindowConfig, size SizeInfo) {
	w.SetTransparent(wc.WindowOpacity() < 1)
	w.SetBlur(wc.Blur)
	w.SetTheme(themeVariant(wc.ThemeVariant))
	w.SetOptionAsAlt(optionKeyMode(wc.OptionAsAlt))
	if size.CellWidth > 0 && size.CellHeight > 0 {
		var increments platform.Size
		if wc.ResizeIncrements {
			increments = platform.Size{
				Width:  uint32(size.CellWidth),
				Height: uint32(size.CellHeight),
			}
		}
		w.SetResizeIncrements(increments)
	}
}

// Destroy releases the native window.
func (w *Window) Destroy() {
	w.native.Destroy()
}
