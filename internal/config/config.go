package config

import (
	"fmt"
)

// Decorations selects the titlebar/border style.
type Decorations string

const (
	DecorationsFull        Decorations = "full"
	DecorationsTransparent Decorations = "transparent" // macOS only
	DecorationsButtonless  Decorations = "buttonless"  // macOS only
	DecorationsNone        Decorations = "none"
)

// StartupMode selects the initial window state.
type StartupMode string

const (
	StartupWindowed         StartupMode = "windowed"
	StartupMaximized        StartupMode = "maximized"
	StartupFullscreen       StartupMode = "fullscreen"
	StartupSimpleFullscreen StartupMode = "simple-fullscreen" // macOS only
)

// ThemeVariant overrides the window-manager decoration theme.
type ThemeVariant string

const (
	ThemeDefault ThemeVariant = ""
	ThemeLight   ThemeVariant = "light"
	ThemeDark    ThemeVariant = "dark"
)

// OptionAsAlt configures which macOS Option keys act as Alt.
type OptionAsAlt string

const (
	OptionAsAltNone      OptionAsAlt = "none"
	OptionAsAltOnlyLeft  OptionAsAlt = "only_left"
	OptionAsAltOnlyRight OptionAsAlt = "only_right"
	OptionAsAltBoth      OptionAsAlt = "both"
)

// Class is the X11 WM_CLASS identity pair.
type Class struct {
	Instance string `yaml:"instance"`
	General  string `yaml:"general"`
}

// Identity names the window towards the window manager.
type Identity struct {
	Title string `yaml:"title"`
	Class Class  `yaml:"class"`
}

// Position is a fixed initial window position in device pixels.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Dimensions is the initial terminal grid size.
type Dimensions struct {
	Columns int `yaml:"columns"`
	Lines   int `yaml:"lines"`
}

// WindowConfig is the declarative window section of the configuration.
type WindowConfig struct {
	Dimensions  Dimensions  `yaml:"dimensions,omitempty"`
	Position    *Position   `yaml:"position,omitempty"`
	Decorations Decorations `yaml:"decorations,omitempty"`

	// Opacity is the background opacity in [0, 1]; out-of-range values
	// are clamped rather than rejected.
	Opacity *float64 `yaml:"opacity,omitempty"`

	Blur        bool        `yaml:"blur,omitempty"`
	StartupMode StartupMode `yaml:"startup_mode,omitempty"`

	// DynamicTitle allows terminal escape sequences to retitle the
	// window. Defaults to true.
	DynamicTitle *bool `yaml:"dynamic_title,omitempty"`

	ThemeVariant ThemeVariant `yaml:"decorations_theme_variant,omitempty"`

	// ResizeIncrements snaps interactive resizing to cell boundaries.
	ResizeIncrements bool `yaml:"resize_increments,omitempty"`

	OptionAsAlt OptionAsAlt `yaml:"option_as_alt,omitempty"`

	// Embed is an X11 parent window ID to embed into, 0 for none.
	Embed uint32 `yaml:"embed,omitempty"`

	Identity `yaml:",inline"`
}

// Config is the root configuration document.
type Config struct {
	Window WindowConfig `yaml:"window,omitempty"`

	// LiveConfigReload enables the fsnotify watcher. Defaults to true.
	LiveConfigReload *bool `yaml:"live_config_reload,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Decorations: DecorationsFull,
			StartupMode: StartupWindowed,
			OptionAsAlt: OptionAsAltNone,
			Identity: Identity{
				Title: "Termwin",
				Class: Class{Instance: "Termwin", General: "Termwin"},
			},
		},
	}
}

// applyDefaults fills zero-valued fields after a file load.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Window.Decorations == "" {
		c.Window.Decorations = def.Window.Decorations
	}
	if c.Window.StartupMode == "" {
		c.Window.StartupMode = def.Window.StartupMode
	}
	if c.Window.OptionAsAlt == "" {
		c.Window.OptionAsAlt = def.Window.OptionAsAlt
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.Class.Instance == "" {
		c.Window.Class.Instance = def.Window.Class.Instance
	}
	if c.Window.Class.General == "" {
		c.Window.Class.General = def.Window.Class.General
	}
}

// Validate checks enumerated fields and reports the first offender.
func (c *Config) Validate() error {
	switch c.Window.Decorations {
	case DecorationsFull, DecorationsTransparent, DecorationsButtonless, DecorationsNone:
	default:
		return fmt.Errorf("window.decorations: unknown value %q", c.Window.Decorations)
	}
	switch c.Window.StartupMode {
	case StartupWindowed, StartupMaximized, StartupFullscreen, StartupSimpleFullscreen:
	default:
		return fmt.Errorf("window.startup_mode: unknown value %q", c.Window.StartupMode)
	}
	switch c.Window.ThemeVariant {
	case ThemeDefault, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("window.decorations_theme_variant: unknown value %q", c.Window.ThemeVariant)
	}
	switch c.Window.OptionAsAlt {
	case OptionAsAltNone, OptionAsAltOnlyLeft, OptionAsAltOnlyRight, OptionAsAltBoth:
	default:
		return fmt.Errorf("window.option_as_alt: unknown value %q", c.Window.OptionAsAlt)
	}
	if c.Window.Dimensions.Columns < 0 || c.Window.Dimensions.Lines < 0 {
		return fmt.Errorf("window.dimensions: negative grid size %dx%d",
			c.Window.Dimensions.Columns, c.Window.Dimensions.Lines)
	}
	return nil
}

// WindowOpacity returns the background opacity clamped to [0, 1].
func (w *WindowConfig) WindowOpacity() float64 {
	if w.Opacity == nil {
		return 1
	}
	o := *w.Opacity
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// Maximized reports whether the window starts maximized.
func (w *WindowConfig) Maximized() bool {
	return w.StartupMode == StartupMaximized
}

// Fullscreen reports whether the window starts in borderless fullscreen.
func (w *WindowConfig) Fullscreen() bool {
	return w.StartupMode == StartupFullscreen
}

// SimpleFullscreen reports whether the window starts in macOS
// non-space fullscreen.
func (w *WindowConfig) SimpleFullscreen() bool {
	return w.StartupMode == StartupSimpleFullscreen
}

// DynamicTitleEnabled returns the effective dynamic_title value,
// defaulting to true.
func (w *WindowConfig) DynamicTitleEnabled() bool {
	if w.DynamicTitle == nil {
		return true
	}
	return *w.DynamicTitle
}

// LiveConfigReloadEnabled returns the effective live_config_reload
// value, defaulting to true.
func (c *Config) LiveConfigReloadEnabled() bool {
	if c.LiveConfigReload == nil {
		return true
	}
	return *c.LiveConfigReload
}
