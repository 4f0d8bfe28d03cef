package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/lfrancke/termwin/internal/config"
)

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  termwin config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  termwin config print [--path PATH] [--defaults]")
		fmt.Fprintln(os.Stderr, "  termwin config edit [--path PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		return runConfigValidate(args[1:])
	case "print":
		return runConfigPrint(args[1:])
	case "edit":
		return runConfigEdit(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

func configPathFlag(fs *flag.FlagSet) *string {
	return fs.String("path", "", "Config file path (default: ~/.config/termwin/termwin.yaml)")
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configPathFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var err error
	if *path == "" {
		_, err = config.Load()
	} else {
		_, err = config.LoadFromPath(*path)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("config: ok")
	return 0
}

func runConfigPrint(args []string) int {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configPathFlag(fs)
	printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg *config.Config
	if *printDefaults {
		cfg = config.DefaultConfig()
	} else {
		var err error
		if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}

// runConfigEdit walks the window settings in an interactive form and
// writes the result back.
func runConfigEdit(args []string) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	pathFlag := configPathFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "config edit requires an interactive terminal")
		return 1
	}

	path, err := resolveConfigPath(*pathFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	form, bound := buildConfigForm(cfg)
	if err := form.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := bound.apply(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := writeConfig(path, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	printConfigSummary(path, cfg)
	return 0
}

// formValues holds the string-bound form state, converted on submit.
type formValues struct {
	title        string
	decorations  string
	startupMode  string
	opacity      string
	blur         bool
	dynamicTitle bool
	liveReload   bool
}

func buildConfigForm(cfg *config.Config) (*huh.Form, *formValues) {
	v := &formValues{
		title:        cfg.Window.Title,
		decorations:  string(cfg.Window.Decorations),
		startupMode:  string(cfg.Window.StartupMode),
		opacity:      strconv.FormatFloat(cfg.Window.WindowOpacity(), 'f', -1, 64),
		blur:         cfg.Window.Blur,
		dynamicTitle: cfg.Window.DynamicTitleEnabled(),
		liveReload:   cfg.LiveConfigReloadEnabled(),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Window title").
				Value(&v.title),
			huh.NewSelect[string]().
				Title("Decorations").
				Options(
					huh.NewOption("full", string(config.DecorationsFull)),
					huh.NewOption("transparent", string(config.DecorationsTransparent)),
					huh.NewOption("buttonless", string(config.DecorationsButtonless)),
					huh.NewOption("none", string(config.DecorationsNone)),
				).
				Value(&v.decorations),
			huh.NewSelect[string]().
				Title("Startup mode").
				Options(
					huh.NewOption("windowed", string(config.StartupWindowed)),
					huh.NewOption("maximized", string(config.StartupMaximized)),
					huh.NewOption("fullscreen", string(config.StartupFullscreen)),
					huh.NewOption("simple fullscreen", string(config.StartupSimpleFullscreen)),
				).
				Value(&v.startupMode),
			huh.NewInput().
				Title("Opacity (0.0 - 1.0)").
				Value(&v.opacity).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("not a number: %s", s)
					}
					if f < 0 || f > 1 {
						return fmt.Errorf("opacity must be between 0 and 1")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Background blur").
				Value(&v.blur),
			huh.NewConfirm().
				Title("Dynamic title").
				Value(&v.dynamicTitle),
			huh.NewConfirm().
				Title("Live config reload").
				Value(&v.liveReload),
		),
	)
	return form, v
}

func (v *formValues) apply(cfg *config.Config) error {
	opacity, err := strconv.ParseFloat(v.opacity, 64)
	if err != nil {
		return fmt.Errorf("invalid opacity: %w", err)
	}

	cfg.Window.Title = v.title
	cfg.Window.Decorations = config.Decorations(v.decorations)
	cfg.Window.StartupMode = config.StartupMode(v.startupMode)
	cfg.Window.Opacity = &opacity
	cfg.Window.Blur = v.blur
	dynamicTitle := v.dynamicTitle
	cfg.Window.DynamicTitle = &dynamicTitle
	liveReload := v.liveReload
	cfg.LiveConfigReload = &liveReload
	return nil
}

func writeConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func printConfigSummary(path string, cfg *config.Config) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	fmt.Println(titleStyle.Render("Configuration written to " + path))
	row := func(key, val string) {
		fmt.Printf("  %s %s\n", keyStyle.Render(key+":"), valStyle.Render(val))
	}
	row("title", cfg.Window.Title)
	row("decorations", string(cfg.Window.Decorations))
	row("startup_mode", string(cfg.Window.StartupMode))
	row("opacity", strconv.FormatFloat(cfg.Window.WindowOpacity(), 'f', -1, 64))
	row("blur", strconv.FormatBool(cfg.Window.Blur))
}
