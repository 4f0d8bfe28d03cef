package platform

// Window is the native window abstraction every driver implements. All
// methods must be called from the thread that owns the event loop;
// drivers do no locking of their own.
type Window interface {
	// Handle returns the raw platform handle for renderer interop.
	Handle() Handle

	// ScaleFactor reports the current output scale of the window.
	ScaleFactor() float64

	SetTitle(title string)
	SetVisible(visible bool)

	InnerSize() Size
	RequestInnerSize(size Size)

	// RequestRedraw asks the windowing system to schedule a redraw.
	RequestRedraw()

	SetCursorShape(shape CursorShape)
	SetCursorVisible(visible bool)

	RequestAttention(level Attention)

	SetTransparent(transparent bool)
	SetBlur(blur bool)

	SetMaximized(maximized bool)
	IsMaximized() bool
	SetMinimized(minimized bool)

	SetResizeIncrements(increments Size)
	SetTheme(theme Theme)

	// SetFullscreen enters or leaves borderless fullscreen on the
	// window's current output.
	SetFullscreen(fullscreen bool)
	IsFullscreen() bool

	SetIMEAllowed(allowed bool)
	SetIMEPurpose(purpose IMEPurpose)

	// SetIMECursorArea anchors the input-method candidate popup to the
	// given rectangle in device pixels.
	SetIMECursorArea(x, y, width, height float64)

	// PrePresentNotify is invoked by the renderer immediately before the
	// buffer swap so the windowing layer can track presentation timing.
	PrePresentNotify()

	// Destroy releases the native window. The Window must not be used
	// afterwards.
	Destroy()
}

// Tabbed is the window tabbing capability (macOS). Drivers without
// native tabs simply do not implement it.
type Tabbed interface {
	SelectTabAt(index int)
	NumTabs() int
	SelectNextTab()
	SelectPreviousTab()
	TabbingID() string
}

// SurfaceProperties is the narrow direct-surface capability used on the
// color-managed platform: forcing the sRGB color space and toggling the
// window shadow.
type SurfaceProperties interface {
	UseSRGBColorSpace()
	SetHasShadow(hasShadow bool)
}

// SimpleFullscreen is the non-space fullscreen capability (macOS).
type SimpleFullscreen interface {
	SetSimpleFullscreen(fullscreen bool)
	IsSimpleFullscreen() bool
}

// OptionAsAlt is the Option-key remapping capability (macOS).
type OptionAsAlt interface {
	SetOptionAsAlt(mode OptionKeyMode)
}

// EventLoop is the window-creation context supplied by the dispatch
// runtime. A driver connection implements it.
type EventLoop interface {
	Platform() Platform
	CreateWindow(opts Options) (Window, error)

	// Run pumps native events until the loop is asked to stop.
	Run()

	Close()
}
