// Package ipc implements the control socket: a newline-framed JSON
// protocol for driving a running window from the command line.
package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different control command types
type CommandType string

const (
	CommandSetTitle         CommandType = "SET_TITLE"
	CommandToggleFullscreen CommandType = "TOGGLE_FULLSCREEN"
	CommandToggleMaximized  CommandType = "TOGGLE_MAXIMIZED"
	CommandGetState         CommandType = "GET_STATE"
	CommandReloadConfig     CommandType = "RELOAD_CONFIG"
)

// Request represents a control request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents a control response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// SetTitlePayload carries the SET_TITLE argument.
type SetTitlePayload struct {
	Title string `json:"title"`
}

// StateData represents the data returned by GET_STATE
type StateData struct {
	Title       string  `json:"title"`
	Fullscreen  bool    `json:"fullscreen"`
	Maximized   bool    `json:"maximized"`
	ScaleFactor float64 `json:"scale_factor"`
	Platform    string  `json:"platform"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
