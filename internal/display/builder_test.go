package display

import (
	"testing"

	"github.com/lfrancke/termwin/internal/config"
	"github.com/lfrancke/termwin/internal/platform"
)

func TestBuildPlatformOptions_X11(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := buildPlatformOptions(platform.X11, cfg.Window.Identity, &cfg.Window, CreateOptions{
		X11VisualID:  0x21,
		HasX11Visual: true,
	})

	if opts.ClassInstance != "Termwin" || opts.ClassGeneral != "Termwin" {
		t.Fatalf("expected WM_CLASS set, got %q/%q", opts.ClassInstance, opts.ClassGeneral)
	}
	if !opts.Decorated {
		t.Fatalf("expected decorations for full mode")
	}
	if opts.Icon == nil {
		t.Fatalf("expected embedded icon decoded")
	}
	if len(opts.Icon.RGBA) != opts.Icon.Width*opts.Icon.Height*4 {
		t.Fatalf("expected 8-bit RGBA icon, got %d bytes for %dx%d",
			len(opts.Icon.RGBA), opts.Icon.Width, opts.Icon.Height)
	}
	if !opts.HasVisual || opts.VisualID != 0x21 {
		t.Fatalf("expected preselected visual honored, got %+v", opts)
	}

	cfg.Window.Decorations = config.DecorationsNone
	opts = buildPlatformOptions(platform.X11, cfg.Window.Identity, &cfg.Window, CreateOptions{})
	if opts.Decorated {
		t.Fatalf("expected no decorations for none mode")
	}
}

func TestBuildPlatformOptions_Wayland(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := buildPlatformOptions(platform.Wayland, cfg.Window.Identity, &cfg.Window, CreateOptions{})

	if opts.ClassInstance == "" {
		t.Fatalf("expected app id identity set")
	}
	if opts.Icon != nil {
		t.Fatalf("expected no icon outside the X11 configuration")
	}
	if opts.HasVisual {
		t.Fatalf("expected no visual selection outside X11")
	}
}

func TestBuildPlatformOptions_Windows(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := buildPlatformOptions(platform.Windows, cfg.Window.Identity, &cfg.Window, CreateOptions{})

	if opts.IconResourceID != IDIIcon {
		t.Fatalf("expected resource icon id %#x, got %#x", IDIIcon, opts.IconResourceID)
	}
	if !opts.Decorated {
		t.Fatalf("expected decorations for full mode")
	}
}

func TestBuildPlatformOptions_MacDecorations(t *testing.T) {
	cfg := config.DefaultConfig()
	identity := cfg.Window.Identity

	tests := []struct {
		mode config.Decorations
		want platform.Options
	}{
		{config.DecorationsFull, platform.Options{}},
		{config.DecorationsTransparent, platform.Options{
			TitleHidden:         true,
			TitlebarTransparent: true,
			FullsizeContentView: true,
		}},
		{config.DecorationsButtonless, platform.Options{
			TitleHidden:           true,
			TitlebarTransparent:   true,
			FullsizeContentView:   true,
			TitlebarButtonsHidden: true,
		}},
		{config.DecorationsNone, platform.Options{
			TitlebarHidden: true,
		}},
	}

	for _, tt := range tests {
		cfg.Window.Decorations = tt.mode
		got := buildPlatformOptions(platform.MacOS, identity, &cfg.Window, CreateOptions{})
		if got.TitleHidden != tt.want.TitleHidden ||
			got.TitlebarTransparent != tt.want.TitlebarTransparent ||
			got.FullsizeContentView != tt.want.FullsizeContentView ||
			got.TitlebarButtonsHidden != tt.want.TitlebarButtonsHidden ||
			got.TitlebarHidden != tt.want.TitlebarHidden {
			t.Fatalf("%s: unexpected titlebar flags %+v", tt.mode, got)
		}
	}
}

func TestBuildPlatformOptions_MacTabbingAndOptionKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.OptionAsAlt = config.OptionAsAltBoth

	opts := buildPlatformOptions(platform.MacOS, cfg.Window.Identity, &cfg.Window, CreateOptions{
		TabbingID: "dev-tabs",
	})
	if opts.TabbingID != "dev-tabs" {
		t.Fatalf("expected tabbing id passed through, got %q", opts.TabbingID)
	}
	if opts.OptionKey != platform.OptionKeyBoth {
		t.Fatalf("expected option-as-alt both, got %v", opts.OptionKey)
	}
}
