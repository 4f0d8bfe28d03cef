// Package backend selects the native windowing driver for the build
// target: X11 on the BSDs and Linux, Win32 on Windows, AppKit on
// macOS.
package backend
