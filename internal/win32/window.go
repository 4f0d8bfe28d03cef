//go:build windows

package win32

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/lfrancke/termwin/internal/platform"
)

const (
	wsOverlappedWindow = 0x00CF0000
	wsPopup            = 0x80000000
	wsVisible          = 0x10000000
	wsThickFrame       = 0x00040000
	wsCaption          = 0x00C00000

	wsExAppWindow = 0x00040000

	swHide           = 0
	swShow           = 5
	swMinimize       = 6
	swRestore        = 9
	swShowMaximized  = 3
	swShowNoActivate = 4

	gwlStyle = ^uintptr(15) // -16

	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020
	swpNoMove       = 0x0002
	swpNoSize       = 0x0001

	wmSetIcon    = 0x0080
	wmClose      = 0x0010
	cwUseDefault = 0x80000000
)

// Window is a Win32 top-level window implementing the native layer.
type Window struct {
	conn *Conn
	hwnd windows.HWND

	// Saved placement for restoring out of borderless fullscreen.
	savedStyle uintptr
	savedRect  rect
	fullscreen bool

	imeAllowed   bool
	cursorHidden bool
	transparent  bool
}

var _ platform.Window = (*Window)(nil)

// CreateWindow builds a native Win32 window from the declarative
// request.
func (c *Conn) CreateWindow(opts platform.Options) (platform.Window, error) {
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return nil, err
	}
	class, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}

	style := uintptr(wsOverlappedWindow)
	if !opts.Decorated {
		style = wsPopup | wsThickFrame
	}

	x, y := uintptr(cwUseDefault), uintptr(cwUseDefault)
	if opts.Position != nil {
		x, y = uintptr(opts.Position.X), uintptr(opts.Position.Y)
	}
	width, height := uintptr(cwUseDefault), uintptr(cwUseDefault)
	if opts.InnerSize.Width != 0 && opts.InnerSize.Height != 0 {
		// The requested size is the client area; grow it by the frame.
		r := rect{Right: int32(opts.InnerSize.Width), Bottom: int32(opts.InnerSize.Height)}
		procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&r)), style, 0, wsExAppWindow)
		width, height = uintptr(r.Right-r.Left), uintptr(r.Bottom-r.Top)
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		wsExAppWindow,
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(title)),
		style,
		x, y, width, height,
		0, 0,
		uintptr(c.instance),
		0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("win32 window creation failed: %w", callErr)
	}

	w := &Window{
		conn:        c,
		hwnd:        windows.HWND(hwnd),
		transparent: opts.Transparent,
	}

	if opts.IconResourceID != 0 {
		w.setResourceIcon(opts.IconResourceID)
	}

	w.SetTheme(opts.Theme)

	if opts.Fullscreen {
		w.SetFullscreen(true)
	} else if opts.Maximized {
		procShowWindow.Call(hwnd, swShowMaximized)
	}
	if opts.Visible && !opts.Maximized && !opts.Fullscreen {
		procShowWindow.Call(hwnd, swShow)
	}

	return w, nil
}

// setResourceIcon loads the icon embedded in the executable's
// resources. Missing resources are tolerated: the window keeps the
// default icon.
func (w *Window) setResourceIcon(id uint16) {
	const (
		imageIcon     = 1
		lrDefaultSize = 0x0040
		iconBig       = 1
		iconSmall     = 0
	)
	icon, _, _ := procLoadImageW.Call(
		uintptr(w.conn.instance),
		uintptr(id),
		imageIcon,
		0, 0,
		lrDefaultSize,
	)
	if icon == 0 {
		slog.Warn("embedded icon resource not found", "id", id)
		return
	}
	procSendMessageW.Call(uintptr(w.hwnd), wmSetIcon, iconBig, icon)
	procSendMessageW.Call(uintptr(w.hwnd), wmSetIcon, iconSmall, icon)
}

// Handle returns the raw Win32 handle.
func (w *Window) Handle() platform.Handle {
	return platform.Handle{Kind: platform.HandleWin32, Ptr: uintptr(w.hwnd)}
}

// ScaleFactor derives the scale from the per-window DPI.
func (w *Window) ScaleFactor() float64 {
	if procGetDpiForWindow.Find() != nil {
		return 1
	}
	dpi, _, _ := procGetDpiForWindow.Call(uintptr(w.hwnd))
	if dpi == 0 {
		return 1
	}
	return float64(dpi) / 96
}

func (w *Window) SetTitle(title string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	procSetWindowTextW.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(t)))
}

func (w *Window) SetVisible(visible bool) {
	cmd := uintptr(swHide)
	if visible {
		cmd = swShow
	}
	procShowWindow.Call(uintptr(w.hwnd), cmd)
}

func (w *Window) InnerSize() platform.Size {
	var r rect
	procGetClientRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r)))
	return platform.Size{Width: uint32(r.Right - r.Left), Height: uint32(r.Bottom - r.Top)}
}

func (w *Window) RequestInnerSize(size platform.Size) {
	style, _, _ := procGetWindowLongPtrW.Call(uintptr(w.hwnd), gwlStyle)
	r := rect{Right: int32(size.Width), Bottom: int32(size.Height)}
	procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&r)), style, 0, wsExAppWindow)
	procSetWindowPos.Call(uintptr(w.hwnd), 0, 0, 0,
		uintptr(r.Right-r.Left), uintptr(r.Bottom-r.Top),
		swpNoMove|swpNoZOrder|swpNoActivate)
}

func (w *Window) RequestRedraw() {
	procInvalidateRect.Call(uintptr(w.hwnd), 0, 0)
}

func (w *Window) SetCursorShape(shape platform.CursorShape) {
	const gclpHCursor = ^uintptr(11) // -12
	cursor, _, _ := procLoadCursorW.Call(0, uintptr(cursorID(shape)))
	if cursor == 0 {
		return
	}
	procSetClassLongPtrW.Call(uintptr(w.hwnd), gclpHCursor, cursor)
}

func cursorID(shape platform.CursorShape) uint16 {
	const (
		idcArrow = 32512
		idcIBeam = 32513
		idcCross = 32515
		idcHand  = 32649
	)
	switch shape {
	case platform.CursorText:
		return idcIBeam
	case platform.CursorPointer:
		return idcHand
	case platform.CursorCrosshair:
		return idcCross
	default:
		return idcArrow
	}
}

func (w *Window) SetCursorVisible(visible bool) {
	if visible == !w.cursorHidden {
		return
	}
	w.cursorHidden = !visible
	show := uintptr(0)
	if visible {
		show = 1
	}
	procShowCursor.Call(show)
}

type flashWInfo struct {
	Size    uint32
	Hwnd    windows.HWND
	Flags   uint32
	Count   uint32
	Timeout uint32
}

// RequestAttention flashes the taskbar button until the window gains
// focus.
func (w *Window) RequestAttention(level platform.Attention) {
	const (
		flashWStop      = 0
		flashWAll       = 3
		flashWTimerNoFG = 12
	)
	fi := flashWInfo{
		Size: uint32(unsafe.Sizeof(flashWInfo{})),
		Hwnd: w.hwnd,
	}
	if level == platform.AttentionCritical {
		fi.Flags = flashWAll | flashWTimerNoFG
	} else {
		fi.Flags = flashWStop
	}
	procFlashWindowEx.Call(uintptr(unsafe.Pointer(&fi)))
}

func (w *Window) SetTransparent(transparent bool) {
	w.transparent = transparent
}

// SetBlur is not supported on the DWM compositor without undocumented
// APIs, so it is a no-op.
func (w *Window) SetBlur(blur bool) {}

func (w *Window) SetMaximized(maximized bool) {
	cmd := uintptr(swRestore)
	if maximized {
		cmd = swShowMaximized
	}
	procShowWindow.Call(uintptr(w.hwnd), cmd)
}

func (w *Window) IsMaximized() bool {
	ret, _, _ := procIsZoomed.Call(uintptr(w.hwnd))
	return ret != 0
}

func (w *Window) SetMinimized(minimized bool) {
	iconic, _, _ := procIsIconic.Call(uintptr(w.hwnd))
	if minimized == (iconic != 0) {
		return
	}
	cmd := uintptr(swRestore)
	if minimized {
		cmd = swMinimize
	}
	procShowWindow.Call(uintptr(w.hwnd), cmd)
}

// SetResizeIncrements is a no-op: Win32 has no size-increment hint,
// snapping to the cell grid happens in the resize handler.
func (w *Window) SetResizeIncrements(increments platform.Size) {}

// SetTheme switches the immersive dark-mode frame attribute.
func (w *Window) SetTheme(theme platform.Theme) {
	const dwmwaUseImmersiveDarkMode = 20
	dark := int32(0)
	if theme == platform.ThemeDark {
		dark = 1
	}
	procDwmSetWindowAttribute.Call(uintptr(w.hwnd), dwmwaUseImmersiveDarkMode,
		uintptr(unsafe.Pointer(&dark)), unsafe.Sizeof(dark))
}

type monitorInfo struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
}

// SetFullscreen toggles borderless fullscreen on the window's current
// monitor, restoring the previous style and placement on the way out.
func (w *Window) SetFullscreen(fullscreen bool) {
	if fullscreen == w.fullscreen {
		return
	}

	if fullscreen {
		const monitorDefaultToNearest = 2
		style, _, _ := procGetWindowLongPtrW.Call(uintptr(w.hwnd), gwlStyle)
		w.savedStyle = style
		procGetWindowRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&w.savedRect)))

		monitor, _, _ := procMonitorFromWindow.Call(uintptr(w.hwnd), monitorDefaultToNearest)
		mi := monitorInfo{Size: uint32(unsafe.Sizeof(monitorInfo{}))}
		procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&mi)))

		procSetWindowLongPtrW.Call(uintptr(w.hwnd), gwlStyle,
			(style&^uintptr(wsCaption|wsThickFrame))|wsVisible)
		procSetWindowPos.Call(uintptr(w.hwnd), 0,
			uintptr(mi.Monitor.Left), uintptr(mi.Monitor.Top),
			uintptr(mi.Monitor.Right-mi.Monitor.Left),
			uintptr(mi.Monitor.Bottom-mi.Monitor.Top),
			swpNoZOrder|swpFrameChanged)
		w.fullscreen = true
		return
	}

	procSetWindowLongPtrW.Call(uintptr(w.hwnd), gwlStyle, w.savedStyle)
	procSetWindowPos.Call(uintptr(w.hwnd), 0,
		uintptr(w.savedRect.Left), uintptr(w.savedRect.Top),
		uintptr(w.savedRect.Right-w.savedRect.Left),
		uintptr(w.savedRect.Bottom-w.savedRect.Top),
		swpNoZOrder|swpFrameChanged)
	w.fullscreen = false
}

func (w *Window) IsFullscreen() bool {
	return w.fullscreen
}

// SetIMEAllowed associates or detaches the default input context.
func (w *Window) SetIMEAllowed(allowed bool) {
	const iaceDefault = 0x0010
	w.imeAllowed = allowed
	if allowed {
		procImmAssociateContextEx.Call(uintptr(w.hwnd), 0, iaceDefault)
	} else {
		procImmAssociateContextEx.Call(uintptr(w.hwnd), 0, 0)
	}
}

// SetIMEPurpose is a no-op: IMM has no purpose hint.
func (w *Window) SetIMEPurpose(purpose platform.IMEPurpose) {}

type compositionForm struct {
	Style      uint32
	CurrentPos point
	Area       rect
}

// SetIMECursorArea positions the composition window at the text
// cursor.
func (w *Window) SetIMECursorArea(x, y, width, height float64) {
	const cfsPoint = 0x0002
	ctx, _, _ := procImmGetContext.Call(uintptr(w.hwnd))
	if ctx == 0 {
		return
	}
	form := compositionForm{
		Style:      cfsPoint,
		CurrentPos: point{X: int32(x), Y: int32(y)},
	}
	procImmSetCompositionWindow.Call(ctx, uintptr(unsafe.Pointer(&form)))
	procImmReleaseContext.Call(uintptr(w.hwnd), ctx)
}

// PrePresentNotify is a no-op: DWM paces presentation itself.
func (w *Window) PrePresentNotify() {}

func (w *Window) Destroy() {
	procDestroyWindow.Call(uintptr(w.hwnd))
}
