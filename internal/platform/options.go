package platform

// Icon is a decoded window icon in 8-bit RGBA order.
type Icon struct {
	Width  int
	Height int
	RGBA   []byte
}

// Options is the declarative window construction request assembled by
// the per-platform builder and applied once by the driver. Fields a
// driver cannot express on its substrate are ignored by that driver.
type Options struct {
	Title string

	// WM_CLASS identity (X11 family).
	ClassInstance string
	ClassGeneral  string

	// Decorated requests server-side decorations where the substrate
	// draws them (X11 family, Windows).
	Decorated bool

	// Icon is attached as the window-manager icon when non-nil.
	Icon *Icon

	// IconResourceID names an icon in the executable's resource
	// manifest (Windows). Load failure is tolerated.
	IconResourceID uint16

	// VisualID requests an exact X11 visual, typically preselected for
	// GPU framebuffer compatibility. Only honored when HasVisual is set.
	VisualID  uint32
	HasVisual bool

	// Position fixes the initial outer position when non-nil.
	Position *Pos

	// InnerSize is the initial content size.
	InnerSize Size

	// ActivationToken is a consumed desktop startup token (Unix only).
	ActivationToken string

	// EmbedParent embeds the window into an existing X11 window when
	// non-zero.
	EmbedParent uint32

	Theme       Theme
	Visible     bool
	Transparent bool
	Blur        bool
	Maximized   bool
	Fullscreen  bool

	// macOS titlebar treatment, mapped from the decoration mode.
	TitleHidden           bool
	TitlebarTransparent   bool
	FullsizeContentView   bool
	TitlebarButtonsHidden bool
	TitlebarHidden        bool

	// TabbingID groups windows opened via new-tab commands (macOS).
	TabbingID string

	// OptionKey configures Option-as-Alt behavior (macOS).
	OptionKey OptionKeyMode
}
