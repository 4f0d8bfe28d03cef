package display

import (
	"bytes"
	_ "embed"
	"image"
	"image/draw"
	"image/png"
	"sync"

	"github.com/lfrancke/termwin/internal/config"
	"github.com/lfrancke/termwin/internal/platform"
)

// Window icon attached as the _NET_WM_ICON property on X11.
//
//go:embed termwin.png
var windowIcon []byte

// IDIIcon must match the icon identifier baked into the Windows
// resource manifest.
const IDIIcon uint16 = 0x101

// CreateOptions carries the per-window platform extras supplied by the
// caller alongside the configuration snapshot.
type CreateOptions struct {
	// TabbingID groups windows opened via new-tab commands (macOS).
	TabbingID string

	// X11VisualID is a preselected visual for GPU-compatible
	// framebuffer configs, honored when HasX11Visual is set.
	X11VisualID  uint32
	HasX11Visual bool
}

var (
	embeddedIconOnce sync.Once
	embeddedIcon     platform.Icon
)

// decodeEmbeddedIcon decodes the compiled-in PNG into raw RGBA. The
// resource is verified by the build, so a decode failure is an
// unrecoverable defect rather than a runtime error path.
func decodeEmbeddedIcon() *platform.Icon {
	embeddedIconOnce.Do(func() {
		img, err := png.Decode(bytes.NewReader(windowIcon))
		if err != nil {
			panic("invalid embedded icon: " + err.Error())
		}
		b := img.Bounds()
		rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		embeddedIcon = platform.Icon{
			Width:  b.Dx(),
			Height: b.Dy(),
			RGBA:   rgba.Pix,
		}
	})
	return &embeddedIcon
}

// buildPlatformOptions maps the declarative window configuration onto a
// native construction request for the given platform family. It is a
// pure function: no side effects beyond decoding the embedded icon.
func buildPlatformOptions(p platform.Platform, identity config.Identity, wc *config.WindowConfig, extra CreateOptions) platform.Options {
	opts := platform.Options{}

	switch p {
	case platform.X11:
		opts.ClassInstance = identity.Class.Instance
		opts.ClassGeneral = identity.Class.General
		opts.Decorated = wc.Decorations != config.DecorationsNone
		opts.Icon = decodeEmbeddedIcon()
		if extra.HasX11Visual {
			opts.VisualID = extra.X11VisualID
			opts.HasVisual = true
		}

	case platform.Wayland:
		opts.ClassInstance = identity.Class.Instance
		opts.ClassGeneral = identity.Class.General
		opts.Decorated = wc.Decorations != config.DecorationsNone

	case platform.Windows:
		opts.Decorated = wc.Decorations != config.DecorationsNone
		// The driver loads the icon from the resource manifest and
		// tolerates failure: the window proceeds without an icon.
		opts.IconResourceID = IDIIcon

	case platform.MacOS:
		opts.OptionKey = optionKeyMode(wc.OptionAsAlt)
		opts.TabbingID = extra.TabbingID
		opts.Decorated = wc.Decorations != config.DecorationsNone
		switch wc.Decorations {
		case config.DecorationsFull:
			// Native titlebar and controls.
		case config.DecorationsTransparent:
			opts.TitleHidden = true
			opts.TitlebarTransparent = true
			opts.FullsizeContentView = true
		case config.DecorationsButtonless:
			opts.TitleHidden = true
			opts.TitlebarButtonsHidden = true
			opts.TitlebarTransparent = true
			opts.FullsizeContentView = true
		case config.DecorationsNone:
			opts.TitlebarHidden = true
		}
	}

	return opts
}

func themeVariant(v config.ThemeVariant) platform.Theme {
	switch v {
	case config.ThemeLight:
		return platform.ThemeLight
	case config.ThemeDark:
		return platform.ThemeDark
	}
	return platform.ThemeUnset
}

func optionKeyMode(v config.OptionAsAlt) platform.OptionKeyMode {
	switch v {
	case config.OptionAsAltOnlyLeft:
		return platform.OptionKeyOnlyLeft
	case config.OptionAsAltOnlyRight:
		return platform.OptionKeyOnlyRight
	case config.OptionAsAltBoth:
		return platform.OptionKeyBoth
	}
	return platform.OptionKeyNone
}
