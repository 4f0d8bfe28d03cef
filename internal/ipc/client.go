package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// Client handles control communication with a running window
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a control client for the given socket.
func NewClient(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to window: %w (is it running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("window error: %s", resp.Error)
	}

	return &resp, nil
}

// SetTitle retitles the running window.
func (c *Client) SetTitle(title string) error {
	payload, err := json.Marshal(SetTitlePayload{Title: title})
	if err != nil {
		return fmt.Errorf("failed to marshal title payload: %w", err)
	}

	req := &Request{
		Command: CommandSetTitle,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// ToggleFullscreen flips the window's fullscreen state.
func (c *Client) ToggleFullscreen() error {
	req := &Request{
		Command: CommandToggleFullscreen,
	}

	_, err := c.sendRequest(req)
	return err
}

// ToggleMaximized flips the window's maximized state.
func (c *Client) ToggleMaximized() error {
	req := &Request{
		Command: CommandToggleMaximized,
	}

	_, err := c.sendRequest(req)
	return err
}

// GetState retrieves the window's current state.
func (c *Client) GetState() (*StateData, error) {
	req := &Request{
		Command: CommandGetState,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var state StateData
	if err := json.Unmarshal(resp.Data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state data: %w", err)
	}

	return &state, nil
}

// ReloadConfig asks the window to reload its configuration from disk.
func (c *Client) ReloadConfig() error {
	req := &Request{
		Command: CommandReloadConfig,
	}

	_, err := c.sendRequest(req)
	return err
}

// Ping checks if the window is responding
func (c *Client) Ping() error {
	_, err := c.GetState()
	return err
}
