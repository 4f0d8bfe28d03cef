// Package platform defines the platform-neutral contract between the
// window core and the native windowing layer. Concrete drivers live in
// internal/x11, internal/win32 and internal/cocoa; internal/backend
// selects one at build time.
package platform

// Platform identifies a windowing substrate family.
type Platform int

const (
	X11 Platform = iota
	Wayland
	Windows
	MacOS
)

func (p Platform) String() string {
	switch p {
	case X11:
		return "x11"
	case Wayland:
		return "wayland"
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	}
	return "unknown"
}

// Pos is a position in device pixels.
type Pos struct {
	X int
	Y int
}

// Size is an extent in device pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// CursorShape selects a native mouse cursor image.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorText
	CursorPointer
	CursorCrosshair
)

func (c CursorShape) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorText:
		return "text"
	case CursorPointer:
		return "pointer"
	case CursorCrosshair:
		return "crosshair"
	}
	return "unknown"
}

// Theme is the decoration theme variant requested from the window manager.
type Theme int

const (
	ThemeUnset Theme = iota // follow the system
	ThemeLight
	ThemeDark
)

// Attention is a user-attention request level.
type Attention int

const (
	AttentionNone Attention = iota
	AttentionCritical
)

// IMEPurpose hints the input method about the field being edited.
type IMEPurpose int

const (
	IMEPurposeNormal IMEPurpose = iota
	IMEPurposeTerminal
)

// OptionKeyMode controls macOS Option-key-as-Alt treatment.
type OptionKeyMode int

const (
	OptionKeyNone OptionKeyMode = iota
	OptionKeyOnlyLeft
	OptionKeyOnlyRight
	OptionKeyBoth
)
