package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lfrancke/termwin/internal/backend"
	"github.com/lfrancke/termwin/internal/config"
	"github.com/lfrancke/termwin/internal/display"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runWindow(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWindow(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "msg":
		os.Exit(runMsg(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: termwin [command]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run       Open the terminal window (default)")
	fmt.Fprintln(w, "  config    Validate, print or edit the configuration")
	fmt.Fprintln(w, "  msg       Send a command to a running window")
	fmt.Fprintln(w, "  help      Show this help")
}

func runWindow(args []string) int {
	opts, code, done := parseRunFlags(args)
	if done {
		return code
	}

	setupLogging(opts.verbose)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loop, err := backend.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer loop.Close()

	win, err := display.New(loop, cfg, cfg.Window.Identity, display.CreateOptions{})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	win.SetVisible(true)
	slog.Info("window created", "platform", loop.Platform().String())

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.LiveConfigReloadEnabled() {
		startConfigWatcher(ctx, opts.configPath, win)
	}

	if server := startControlServer(win, loop, opts.configPath); server != nil {
		defer server.Stop()
	}

	hookEvents(loop, win)
	loop.Run()
	return 0
}

type runOptions struct {
	configPath string
	verbose    bool
}

func parseRunFlags(args []string) (runOptions, int, bool) {
	var opts runOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				return opts, 2, true
			}
			i++
			opts.configPath = args[i]
		case "-v", "--verbose":
			opts.verbose = true
		case "help", "-h", "--help":
			fmt.Fprintln(os.Stdout, "Usage: termwin run [--config PATH] [-v]")
			return opts, 0, true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", args[i])
			return opts, 2, true
		}
	}
	return opts, 0, false
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// startConfigWatcher reloads the file on change and reapplies the
// runtime-changeable window settings.
func startConfigWatcher(ctx context.Context, path string, win *display.Window) {
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			slog.Warn("live config reload disabled", "error", err)
			return
		}
		path = p
	}

	watcher, err := config.NewWatcher(path, slog.Default(), func(cfg *config.Config) {
		win.ApplyConfigUpdate(&cfg.Window, display.SizeInfo{})
	})
	if err != nil {
		slog.Warn("live config reload disabled", "error", err)
		return
	}
	go watcher.Run(ctx)
	slog.Debug("watching configuration", "path", path)
}
