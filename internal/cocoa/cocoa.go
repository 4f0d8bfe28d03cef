//go:build darwin

// Package cocoa implements the native windowing layer on AppKit via
// cgo.
package cocoa

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AppKit

#include <stdlib.h>

#import <AppKit/AppKit.h>

static void twInit(void) {
	[NSApplication sharedApplication];
	[NSApp setActivationPolicy:NSApplicationActivationPolicyRegular];
}

static void twRun(void) {
	[NSApp run];
}

static void twQuit(void) {
	[NSApp stop:nil];
}

static void *twCreateWindow(int hasPos, double x, double y,
                            double width, double height,
                            const char *title,
                            int decorated, int titlebarTransparent,
                            int fullsizeContent, int buttonsHidden,
                            int titleHidden,
                            const char *tabbingID) {
	NSUInteger style = NSWindowStyleMaskBorderless;
	if (decorated) {
		style = NSWindowStyleMaskTitled | NSWindowStyleMaskClosable |
		        NSWindowStyleMaskMiniaturizable | NSWindowStyleMaskResizable;
		if (fullsizeContent) {
			style |= NSWindowStyleMaskFullSizeContentView;
		}
	} else {
		style |= NSWindowStyleMaskResizable;
	}

	NSRect frame = NSMakeRect(0, 0, width, height);
	NSWindow *win = [[NSWindow alloc]
		initWithContentRect:frame
		          styleMask:style
		            backing:NSBackingStoreBuffered
		              defer:NO];

	[win setTitle:[NSString stringWithUTF8String:title]];
	[win setReleasedWhenClosed:NO];
	[win setAcceptsMouseMovedEvents:YES];
	[win setRestorable:NO];

	if (titlebarTransparent) {
		[win setTitlebarAppearsTransparent:YES];
	}
	if (titleHidden) {
		[win setTitleVisibility:NSWindowTitleHidden];
	}
	if (buttonsHidden) {
		[[win standardWindowButton:NSWindowCloseButton] setHidden:YES];
		[[win standardWindowButton:NSWindowMiniaturizeButton] setHidden:YES];
		[[win standardWindowButton:NSWindowZoomButton] setHidden:YES];
	}
	if (tabbingID && tabbingID[0]) {
		[win setTabbingIdentifier:[NSString stringWithUTF8String:tabbingID]];
	}

	if (hasPos) {
		[win setFrameTopLeftPoint:NSMakePoint(x, y)];
	} else {
		[win center];
	}

	return (__bridge_retained void *)win;
}

static void twDestroy(void *w) {
	NSWindow *win = (__bridge_transfer NSWindow *)w;
	[win close];
}

static NSWindow *twWin(void *w) { return (__bridge NSWindow *)w; }

static void twSetTitle(void *w, const char *title) {
	[twWin(w) setTitle:[NSString stringWithUTF8String:title]];
}

static void twSetVisible(void *w, int visible) {
	if (visible) {
		[twWin(w) makeKeyAndOrderFront:nil];
	} else {
		[twWin(w) orderOut:nil];
	}
}

static void twContentSize(void *w, double *width, double *height) {
	NSRect r = [[twWin(w) contentView] frame];
	*width = r.size.width;
	*height = r.size.height;
}

static void twSetContentSize(void *w, double width, double height) {
	[twWin(w) setContentSize:NSMakeSize(width, height)];
}

static double twScaleFactor(void *w) {
	return [twWin(w) backingScaleFactor];
}

static void twRequestRedraw(void *w) {
	[[twWin(w) contentView] setNeedsDisplay:YES];
}

static int twRequestAttention(int critical) {
	return (int)[NSApp requestUserAttention:
		critical ? NSCriticalRequest : NSInformationalRequest];
}

static void twCancelAttention(int token) {
	[NSApp cancelUserAttentionRequest:token];
}

static void twSetTransparent(void *w, int transparent) {
	NSWindow *win = twWin(w);
	[win setOpaque:!transparent];
	if (transparent) {
		[win setBackgroundColor:[NSColor clearColor]];
	}
}

static void twSetMaximized(void *w, int maximized) {
	if ([twWin(w) isZoomed] != (BOOL)maximized) {
		[twWin(w) zoom:nil];
	}
}

static int twIsMaximized(void *w) {
	return [twWin(w) isZoomed];
}

static void twSetMinimized(void *w, int minimized) {
	if (minimized) {
		[twWin(w) miniaturize:nil];
	} else {
		[twWin(w) deminiaturize:nil];
	}
}

static void twSetResizeIncrements(void *w, double dx, double dy) {
	[twWin(w) setContentResizeIncrements:NSMakeSize(dx, dy)];
}

static void twSetTheme(void *w, int theme) {
	NSAppearance *appearance = nil;
	if (theme == 1) {
		appearance = [NSAppearance appearanceNamed:NSAppearanceNameAqua];
	} else if (theme == 2) {
		appearance = [NSAppearance appearanceNamed:NSAppearanceNameDarkAqua];
	}
	[twWin(w) setAppearance:appearance];
}

static void twToggleFullscreen(void *w) {
	[twWin(w) toggleFullScreen:nil];
}

static int twIsFullscreen(void *w) {
	return ([twWin(w) styleMask] & NSWindowStyleMaskFullScreen) != 0;
}

static void twEnterSimpleFullscreen(void *w, double *fx, double *fy,
                                    double *fw, double *fh) {
	NSWindow *win = twWin(w);
	NSRect frame = [win frame];
	*fx = frame.origin.x;
	*fy = frame.origin.y;
	*fw = frame.size.width;
	*fh = frame.size.height;

	[NSApp setPresentationOptions:NSApplicationPresentationAutoHideDock |
	                              NSApplicationPresentationAutoHideMenuBar];
	[win setStyleMask:NSWindowStyleMaskBorderless];
	[win setFrame:[[win screen] frame] display:YES];
}

static void twExitSimpleFullscreen(void *w, double fx, double fy,
                                   double fw, double fh, int decorated) {
	NSWindow *win = twWin(w);
	NSUInteger style = NSWindowStyleMaskBorderless | NSWindowStyleMaskResizable;
	if (decorated) {
		style = NSWindowStyleMaskTitled | NSWindowStyleMaskClosable |
		        NSWindowStyleMaskMiniaturizable | NSWindowStyleMaskResizable;
	}
	[NSApp setPresentationOptions:NSApplicationPresentationDefault];
	[win setStyleMask:style];
	[win setFrame:NSMakeRect(fx, fy, fw, fh) display:YES];
}

static void twSetHasShadow(void *w, int shadow) {
	[twWin(w) setHasShadow:(BOOL)shadow];
}

static void twUseSRGBColorSpace(void *w) {
	[twWin(w) setColorSpace:[NSColorSpace sRGBColorSpace]];
}

static int twNumTabs(void *w) {
	return (int)[[[twWin(w) tabGroup] windows] count];
}

static int twSelectTabAt(void *w, int index) {
	NSArray<NSWindow *> *tabs = [[twWin(w) tabGroup] windows];
	if (index < 0 || (NSUInteger)index >= [tabs count]) {
		return 0;
	}
	[tabs[index] makeKeyAndOrderFront:nil];
	return 1;
}

static void twSelectNextTab(void *w) {
	[twWin(w) selectNextTab:nil];
}

static void twSelectPreviousTab(void *w) {
	[twWin(w) selectPreviousTab:nil];
}

static void twSetCursor(int shape) {
	NSCursor *cursor;
	switch (shape) {
	case 1:
		cursor = [NSCursor IBeamCursor];
		break;
	case 2:
		cursor = [NSCursor pointingHandCursor];
		break;
	case 3:
		cursor = [NSCursor crosshairCursor];
		break;
	default:
		cursor = [NSCursor arrowCursor];
	}
	[cursor set];
}

static void twSetCursorHidden(int hidden) {
	if (hidden) {
		[NSCursor hide];
	} else {
		[NSCursor unhide];
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/lfrancke/termwin/internal/platform"
)

// Conn owns the shared NSApplication.
type Conn struct{}

var _ platform.EventLoop = (*Conn)(nil)

// Connect initializes the shared application instance. Must be called
// from the main goroutine.
func Connect() (*Conn, error) {
	C.twInit()
	return &Conn{}, nil
}

// Platform identifies this connection's substrate family.
func (c *Conn) Platform() platform.Platform {
	return platform.MacOS
}

// Run starts the AppKit run loop (blocking).
func (c *Conn) Run() {
	C.twRun()
}

// Quit stops the run loop after the current event.
func (c *Conn) Quit() {
	C.twQuit()
}

// Close releases per-connection resources.
func (c *Conn) Close() {}

// Window is an NSWindow-backed window implementing the native layer
// plus the AppKit-only capabilities.
type Window struct {
	ptr unsafe.Pointer

	tabbingID string
	optionKey platform.OptionKeyMode
	decorated bool

	simpleFullscreen bool
	savedX, savedY   float64
	savedW, savedH   float64

	attentionToken C.int
	hasAttention   bool

	imeAllowed             bool
	imeX, imeY, imeW, imeH float64
}

var (
	_ platform.Window            = (*Window)(nil)
	_ platform.Tabbed            = (*Window)(nil)
	_ platform.SurfaceProperties = (*Window)(nil)
	_ platform.SimpleFullscreen  = (*Window)(nil)
	_ platform.OptionAsAlt       = (*Window)(nil)
)

// CreateWindow builds an NSWindow from the declarative request.
func (c *Conn) CreateWindow(opts platform.Options) (platform.Window, error) {
	title := C.CString(opts.Title)
	defer C.free(unsafe.Pointer(title))
	tabbingID := C.CString(opts.TabbingID)
	defer C.free(unsafe.Pointer(tabbingID))

	hasPos, x, y := 0, 0.0, 0.0
	if opts.Position != nil {
		hasPos, x, y = 1, float64(opts.Position.X), float64(opts.Position.Y)
	}
	width, height := float64(opts.InnerSize.Width), float64(opts.InnerSize.Height)
	if width == 0 || height == 0 {
		width, height = 800, 600
	}

	ptr := C.twCreateWindow(
		C.int(hasPos), C.double(x), C.double(y),
		C.double(width), C.double(height),
		title,
		cbool(opts.Decorated),
		cbool(opts.TitlebarTransparent),
		cbool(opts.FullsizeContentView),
		cbool(opts.TitlebarButtonsHidden),
		cbool(opts.TitleHidden),
		tabbingID,
	)

	w := &Window{
		ptr:       ptr,
		tabbingID: opts.TabbingID,
		optionKey: opts.OptionKey,
		decorated: opts.Decorated,
	}

	if opts.Transparent {
		C.twSetTransparent(ptr, 1)
	}
	w.SetTheme(opts.Theme)
	if opts.Maximized {
		C.twSetMaximized(ptr, 1)
	}
	if opts.Fullscreen {
		C.twToggleFullscreen(ptr)
	}
	if opts.Visible {
		C.twSetVisible(ptr, 1)
	}

	return w, nil
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func (w *Window) Handle() platform.Handle {
	return platform.Handle{Kind: platform.HandleAppKit, Ptr: uintptr(w.ptr)}
}

func (w *Window) ScaleFactor() float64 {
	return float64(C.twScaleFactor(w.ptr))
}

func (w *Window) SetTitle(title string) {
	t := C.CString(title)
	defer C.free(unsafe.Pointer(t))
	C.twSetTitle(w.ptr, t)
}

func (w *Window) SetVisible(visible bool) {
	C.twSetVisible(w.ptr, cbool(visible))
}

func (w *Window) InnerSize() platform.Size {
	var width, height C.double
	C.twContentSize(w.ptr, &width, &height)
	scale := w.ScaleFactor()
	return platform.Size{
		Width:  uint32(float64(width) * scale),
		Height: uint32(float64(height) * scale),
	}
}

func (w *Window) RequestInnerSize(size platform.Size) {
	scale := w.ScaleFactor()
	if scale == 0 {
		scale = 1
	}
	C.twSetContentSize(w.ptr,
		C.double(float64(size.Width)/scale),
		C.double(float64(size.Height)/scale))
}

func (w *Window) RequestRedraw() {
	C.twRequestRedraw(w.ptr)
}

// RequestAttention bounces the Dock icon; AttentionNone cancels an
// outstanding request.
func (w *Window) RequestAttention(level platform.Attention) {
	if level == platform.AttentionCritical {
		w.attentionToken = C.twRequestAttention(1)
		w.hasAttention = true
		return
	}
	if w.hasAttention {
		C.twCancelAttention(w.attentionToken)
		w.hasAttention = false
	}
}

func (w *Window) SetCursorShape(shape platform.CursorShape) {
	C.twSetCursor(C.int(shape))
}

func (w *Window) SetCursorVisible(visible bool) {
	C.twSetCursorHidden(cbool(!visible))
}

func (w *Window) SetTransparent(transparent bool) {
	C.twSetTransparent(w.ptr, cbool(transparent))
}

// SetBlur is a no-op: AppKit exposes no public backdrop-blur API for
// plain windows.
func (w *Window) SetBlur(blur bool) {}

func (w *Window) SetMaximized(maximized bool) {
	C.twSetMaximized(w.ptr, cbool(maximized))
}

func (w *Window) IsMaximized() bool {
	return C.twIsMaximized(w.ptr) != 0
}

func (w *Window) SetMinimized(minimized bool) {
	C.twSetMinimized(w.ptr, cbool(minimized))
}

func (w *Window) SetResizeIncrements(increments platform.Size) {
	scale := w.ScaleFactor()
	if scale == 0 {
		scale = 1
	}
	C.twSetResizeIncrements(w.ptr,
		C.double(float64(increments.Width)/scale),
		C.double(float64(increments.Height)/scale))
}

func (w *Window) SetTheme(theme platform.Theme) {
	C.twSetTheme(w.ptr, C.int(theme))
}

func (w *Window) SetFullscreen(fullscreen bool) {
	if w.IsFullscreen() != fullscreen {
		C.twToggleFullscreen(w.ptr)
	}
}

func (w *Window) IsFullscreen() bool {
	return C.twIsFullscreen(w.ptr) != 0
}

// SetIMEAllowed records the IME state; the NSTextInputClient owned by
// the input layer reads it.
func (w *Window) SetIMEAllowed(allowed bool) {
	w.imeAllowed = allowed
}

// IMEAllowed reports the recorded IME state.
func (w *Window) IMEAllowed() bool {
	return w.imeAllowed
}

func (w *Window) SetIMEPurpose(purpose platform.IMEPurpose) {
	// AppKit derives behavior from the NSTextInputClient, no hint to
	// push here.
}

// SetIMECursorArea records the candidate-window anchor for the
// NSTextInputClient's firstRectForCharacterRange.
func (w *Window) SetIMECursorArea(x, y, width, height float64) {
	w.imeX, w.imeY, w.imeW, w.imeH = x, y, width, height
}

// IMECursorArea returns the most recent candidate-window anchor.
func (w *Window) IMECursorArea() (x, y, width, height float64) {
	return w.imeX, w.imeY, w.imeW, w.imeH
}

// PrePresentNotify is a no-op: CVDisplayLink paces presentation.
func (w *Window) PrePresentNotify() {}

func (w *Window) Destroy() {
	C.twDestroy(w.ptr)
	w.ptr = nil
}

// SelectTabAt brings the i-th tab of this window's tab group to the
// front. Out-of-range indices are ignored.
func (w *Window) SelectTabAt(index int) {
	C.twSelectTabAt(w.ptr, C.int(index))
}

// NumTabs reports the size of this window's tab group.
func (w *Window) NumTabs() int {
	return int(C.twNumTabs(w.ptr))
}

func (w *Window) SelectNextTab() {
	C.twSelectNextTab(w.ptr)
}

func (w *Window) SelectPreviousTab() {
	C.twSelectPreviousTab(w.ptr)
}

// TabbingID returns the identifier grouping windows into one tab bar.
func (w *Window) TabbingID() string {
	return w.tabbingID
}

func (w *Window) UseSRGBColorSpace() {
	C.twUseSRGBColorSpace(w.ptr)
}

func (w *Window) SetHasShadow(shadow bool) {
	C.twSetHasShadow(w.ptr, cbool(shadow))
}

// SetSimpleFullscreen covers the screen without a separate Space,
// saving the frame so leaving restores it.
func (w *Window) SetSimpleFullscreen(fullscreen bool) {
	if fullscreen == w.simpleFullscreen {
		return
	}
	if fullscreen {
		var fx, fy, fw, fh C.double
		C.twEnterSimpleFullscreen(w.ptr, &fx, &fy, &fw, &fh)
		w.savedX, w.savedY = float64(fx), float64(fy)
		w.savedW, w.savedH = float64(fw), float64(fh)
		w.simpleFullscreen = true
		return
	}
	C.twExitSimpleFullscreen(w.ptr,
		C.double(w.savedX), C.double(w.savedY),
		C.double(w.savedW), C.double(w.savedH),
		cbool(w.decorated))
	w.simpleFullscreen = false
}

// IsSimpleFullscreen reports whether the window covers the screen
// without a separate Space.
func (w *Window) IsSimpleFullscreen() bool {
	return w.simpleFullscreen
}

// SetOptionAsAlt records which Option keys the input layer treats as
// Alt.
func (w *Window) SetOptionAsAlt(mode platform.OptionKeyMode) {
	w.optionKey = mode
}

// OptionAsAltMode reports the recorded Option-as-Alt mode.
func (w *Window) OptionAsAltMode() platform.OptionKeyMode {
	return w.optionKey
}
