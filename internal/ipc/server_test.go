package ipc

import (
	"encoding/json"
	"testing"
)

type fakeWindow struct {
	title      string
	fullscreen bool
	maximized  bool
	reloads    int
	reloadErr  error
}

func (f *fakeWindow) SetTitle(title string)     { f.title = title }
func (f *fakeWindow) Title() string             { return f.title }
func (f *fakeWindow) ToggleFullscreen()         { f.fullscreen = !f.fullscreen }
func (f *fakeWindow) ToggleMaximized()          { f.maximized = !f.maximized }
func (f *fakeWindow) ScaleFactorValue() float64 { return 2 }
func (f *fakeWindow) PlatformName() string      { return "x11" }
func (f *fakeWindow) State() (bool, bool)       { return f.fullscreen, f.maximized }

func (f *fakeWindow) ReloadConfig() error {
	f.reloads++
	return f.reloadErr
}

func TestHandleSetTitle(t *testing.T) {
	win := &fakeWindow{}
	s := &Server{win: win}

	payload, _ := json.Marshal(SetTitlePayload{Title: "vim"})
	resp := s.handleCommand(&Request{Command: CommandSetTitle, Payload: payload})

	if resp.Status != "OK" {
		t.Fatalf("expected OK, got %s (%s)", resp.Status, resp.Error)
	}
	if win.title != "vim" {
		t.Errorf("expected title vim, got %q", win.title)
	}
}

func TestHandleSetTitleInvalidPayload(t *testing.T) {
	s := &Server{win: &fakeWindow{}}

	resp := s.handleCommand(&Request{Command: CommandSetTitle, Payload: []byte("{")})
	if resp.Status != "ERROR" {
		t.Fatalf("expected ERROR for invalid payload, got %s", resp.Status)
	}
}

func TestHandleToggles(t *testing.T) {
	win := &fakeWindow{}
	s := &Server{win: win}

	s.handleCommand(&Request{Command: CommandToggleFullscreen})
	if !win.fullscreen {
		t.Error("expected fullscreen after toggle")
	}
	s.handleCommand(&Request{Command: CommandToggleMaximized})
	if !win.maximized {
		t.Error("expected maximized after toggle")
	}
}

func TestHandleGetState(t *testing.T) {
	win := &fakeWindow{title: "shell", fullscreen: true}
	s := &Server{win: win}

	resp := s.handleCommand(&Request{Command: CommandGetState})
	if resp.Status != "OK" {
		t.Fatalf("expected OK, got %s (%s)", resp.Status, resp.Error)
	}

	var state StateData
	if err := json.Unmarshal(resp.Data, &state); err != nil {
		t.Fatalf("failed to parse state: %v", err)
	}
	if state.Title != "shell" || !state.Fullscreen || state.Maximized {
		t.Errorf("unexpected state: %+v", state)
	}
	if state.ScaleFactor != 2 || state.Platform != "x11" {
		t.Errorf("unexpected state: %+v", state)
	}
}

func TestHandleReloadConfig(t *testing.T) {
	win := &fakeWindow{}
	s := &Server{win: win}

	resp := s.handleCommand(&Request{Command: CommandReloadConfig})
	if resp.Status != "OK" {
		t.Fatalf("expected OK, got %s (%s)", resp.Status, resp.Error)
	}
	if win.reloads != 1 {
		t.Errorf("expected 1 reload, got %d", win.reloads)
	}
}

func TestHandleUnknownCommand(t *testing.T) {
	s := &Server{win: &fakeWindow{}}

	resp := s.handleCommand(&Request{Command: "NOPE"})
	if resp.Status != "ERROR" {
		t.Fatalf("expected ERROR for unknown command, got %s", resp.Status)
	}
}
