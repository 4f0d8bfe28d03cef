package platform

// HandleKind tags the variant carried by a Handle.
type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleX11
	HandleWayland
	HandleWin32
	HandleAppKit
)

// Handle is an opaque, platform-tagged reference to the native window
// object. The renderer uses it for surface creation; the macOS driver
// uses it for direct AppKit property access.
type Handle struct {
	Kind HandleKind

	// XID is the X11 window resource ID (HandleX11).
	XID uint32

	// Ptr carries the native pointer-sized handle: HWND on Win32,
	// NSWindow on AppKit, wl_surface on Wayland.
	Ptr uintptr
}

// IsX11 reports whether the handle refers to an X11 window.
func (h Handle) IsX11() bool {
	return h.Kind == HandleX11
}
