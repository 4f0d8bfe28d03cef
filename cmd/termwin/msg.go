package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lfrancke/termwin/internal/ipc"
	"github.com/lfrancke/termwin/internal/runtimepath"
)

func runMsg(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  termwin msg set-title [--socket PATH] TITLE")
		fmt.Fprintln(os.Stderr, "  termwin msg toggle-fullscreen [--socket PATH]")
		fmt.Fprintln(os.Stderr, "  termwin msg toggle-maximized [--socket PATH]")
		fmt.Fprintln(os.Stderr, "  termwin msg get-state [--socket PATH]")
		fmt.Fprintln(os.Stderr, "  termwin msg reload-config [--socket PATH]")
		return 2
	}

	command := args[0]
	fs := flag.NewFlagSet("msg", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	socket := fs.String("socket", "", "Control socket path (default: newest running instance)")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	socketPath, err := resolveSocket(*socket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	client := ipc.NewClient(socketPath)

	switch command {
	case "set-title":
		if fs.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "set-title requires a title argument")
			return 2
		}
		err = client.SetTitle(fs.Arg(0))
	case "toggle-fullscreen":
		err = client.ToggleFullscreen()
	case "toggle-maximized":
		err = client.ToggleMaximized()
	case "get-state":
		var state *ipc.StateData
		state, err = client.GetState()
		if err == nil {
			fmt.Printf("title: %s\n", state.Title)
			fmt.Printf("platform: %s\n", state.Platform)
			fmt.Printf("fullscreen: %t\n", state.Fullscreen)
			fmt.Printf("maximized: %t\n", state.Maximized)
			fmt.Printf("scale_factor: %g\n", state.ScaleFactor)
		}
	case "reload-config":
		err = client.ReloadConfig()
	default:
		fmt.Fprintf(os.Stderr, "Unknown msg command: %s\n", command)
		return 2
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// resolveSocket picks an explicit socket or the newest running
// instance's.
func resolveSocket(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	paths, err := runtimepath.ActiveSocketPaths()
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no running termwin instance found")
	}
	return paths[len(paths)-1], nil
}
