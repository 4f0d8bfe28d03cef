package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
)

// WindowController is the slice of the window surface the control
// socket drives.
type WindowController interface {
	SetTitle(title string)
	Title() string
	ToggleFullscreen()
	ToggleMaximized()
	ScaleFactorValue() float64
	State() (fullscreen, maximized bool)
	PlatformName() string
	ReloadConfig() error
}

// Server handles control requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	win          WindowController
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a control server bound to the given socket path.
func NewServer(socketPath string, win WindowController) *Server {
	// Remove a stale socket from a crashed instance.
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		win:        win,
	}
}

// Start begins listening for control connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create control socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	slog.Info("control socket listening", "path", s.socketPath)

	go s.acceptLoop()

	return nil
}

// Stop closes the listener and removes the socket file.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			slog.Warn("control accept error", "error", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single control connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		slog.Warn("control read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		slog.Warn("failed to marshal response", "error", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		slog.Warn("failed to send response", "error", err)
	}
}

// handleCommand processes a control command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandSetTitle:
		return s.handleSetTitle(req.Payload)
	case CommandToggleFullscreen:
		s.win.ToggleFullscreen()
		resp, _ := NewOKResponse(nil)
		return resp
	case CommandToggleMaximized:
		s.win.ToggleMaximized()
		resp, _ := NewOKResponse(nil)
		return resp
	case CommandGetState:
		return s.handleGetState()
	case CommandReloadConfig:
		return s.handleReloadConfig()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

func (s *Server) handleSetTitle(payload json.RawMessage) *Response {
	var p SetTitlePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid SET_TITLE payload: %v", err))
	}
	s.win.SetTitle(p.Title)
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleGetState() *Response {
	fullscreen, maximized := s.win.State()
	state := StateData{
		Title:       s.win.Title(),
		Fullscreen:  fullscreen,
		Maximized:   maximized,
		ScaleFactor: s.win.ScaleFactorValue(),
		Platform:    s.win.PlatformName(),
	}
	resp, err := NewOKResponse(state)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func (s *Server) handleReloadConfig() *Response {
	if err := s.win.ReloadConfig(); err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	respData, err := resp.Marshal()
	if err != nil {
		return
	}
	respData = append(respData, '\n')
	conn.Write(respData)
}
