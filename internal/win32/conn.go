//go:build windows

// Package win32 implements the native windowing layer on the Win32
// API via golang.org/x/sys/windows.
package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/lfrancke/termwin/internal/platform"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	imm32  = windows.NewLazySystemDLL("imm32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procShowWindow         = user32.NewProc("ShowWindow")
	procSetWindowTextW     = user32.NewProc("SetWindowTextW")
	procGetClientRect      = user32.NewProc("GetClientRect")
	procSetWindowPos       = user32.NewProc("SetWindowPos")
	procGetWindowLongPtrW  = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW  = user32.NewProc("SetWindowLongPtrW")
	procSetClassLongPtrW   = user32.NewProc("SetClassLongPtrW")
	procSendMessageW       = user32.NewProc("SendMessageW")
	procLoadCursorW        = user32.NewProc("LoadCursorW")
	procLoadImageW         = user32.NewProc("LoadImageW")
	procFlashWindowEx      = user32.NewProc("FlashWindowEx")
	procIsZoomed           = user32.NewProc("IsZoomed")
	procIsIconic           = user32.NewProc("IsIconic")
	procInvalidateRect     = user32.NewProc("InvalidateRect")
	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procGetWindowRect      = user32.NewProc("GetWindowRect")
	procMonitorFromWindow  = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW    = user32.NewProc("GetMonitorInfoW")
	procGetDpiForWindow    = user32.NewProc("GetDpiForWindow")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostQuitMessage    = user32.NewProc("PostQuitMessage")
	procShowCursor         = user32.NewProc("ShowCursor")

	procImmGetContext           = imm32.NewProc("ImmGetContext")
	procImmReleaseContext       = imm32.NewProc("ImmReleaseContext")
	procImmSetCompositionWindow = imm32.NewProc("ImmSetCompositionWindow")
	procImmAssociateContextEx   = imm32.NewProc("ImmAssociateContextEx")

	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const className = "TermwinWindow"

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type point struct {
	X, Y int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type msg struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

// Conn owns the registered window class and the message loop.
type Conn struct {
	instance windows.Handle
	class    uint16
}

var _ platform.EventLoop = (*Conn)(nil)

// Connect registers the window class used by every window on this
// connection.
func Connect() (*Conn, error) {
	instance, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get module handle: %w", err)
	}

	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}

	const (
		csHRedraw   = 0x0002
		csVRedraw   = 0x0001
		csOwnDC     = 0x0020
		idcArrow    = 32512
		colorWindow = 5
	)
	cursor, _, _ := procLoadCursorW.Call(0, uintptr(idcArrow))
	wc := wndClassExW{
		Size:       uint32(unsafe.Sizeof(wndClassExW{})),
		Style:      csHRedraw | csVRedraw | csOwnDC,
		WndProc:    windows.NewCallback(wndProc),
		Instance:   instance,
		Cursor:     windows.Handle(cursor),
		Background: 0,
		ClassName:  name,
	}
	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return nil, fmt.Errorf("failed to register window class: %w", err)
	}

	return &Conn{instance: instance, class: uint16(atom)}, nil
}

func wndProc(hwnd windows.HWND, message uint32, wparam, lparam uintptr) uintptr {
	const wmDestroy = 0x0002
	if message == wmDestroy {
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wparam, lparam)
	return ret
}

// Platform identifies this connection's substrate family.
func (c *Conn) Platform() platform.Platform {
	return platform.Windows
}

// Run pumps the message loop until WM_QUIT.
func (c *Conn) Run() {
	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Close releases per-connection resources. The window class lives for
// the process lifetime.
func (c *Conn) Close() {}
