// Package api implements the TeamRedMiner status protocol: one TCP
// connection per request, an unframed JSON command, and a response
// read until the miner closes the connection.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"time"
)

// APIError is a failure reported inside the response STATUS envelope
// (status codes W, E and F).
type APIError struct {
	Msg  string
	Code int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (code %d)", e.Msg, e.Code)
}

type Client struct {
	Host    string
	Port    int
	Timeout time.Duration
	Log     *slog.Logger
}

type request struct {
	Command string `json:"command"`
}

// Request runs one command against the miner API and returns the
// decoded payload with the STATUS/id envelope stripped. Transport
// errors, JSON decode errors and *APIError are distinct conditions;
// the latter can be matched with errors.As.
func (c *Client) Request(ctx context.Context, command string) (any, error) {
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	dialer := &net.Dialer{Timeout: c.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	defer conn.Close()

	payload, err := json.Marshal(request{Command: command})
	if err != nil {
		return nil, err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(c.Timeout)); err != nil {
		return nil, err
	}
	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("send %q: %w", command, err)
	}

	// The protocol has no framing; the full response has arrived when
	// the peer closes the connection. The timeout applies per read.
	var buf bytes.Buffer
	chunk := make([]byte, 4096)
	for {
		if err := conn.SetReadDeadline(time.Now().Add(c.Timeout)); err != nil {
			return nil, err
		}
		n, err := conn.Read(chunk)
		buf.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %q response: %w", command, err)
		}
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("decode %q response: %w", command, err)
	}
	c.logger().Debug("api response", "command", command, "response", doc)

	if err := checkStatus(doc); err != nil {
		return nil, err
	}

	delete(doc, "STATUS")
	delete(doc, "id")
	for _, payload := range doc {
		return payload, nil
	}
	return nil, fmt.Errorf("%q response has no payload", command)
}

func (c *Client) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func checkStatus(doc map[string]any) error {
	entries, ok := doc["STATUS"].([]any)
	if !ok {
		return errors.New("response has no STATUS envelope")
	}
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			return errors.New("malformed STATUS entry")
		}
		status, _ := entry["STATUS"].(string)
		switch status {
		case "W", "E", "F":
			msg, _ := entry["Msg"].(string)
			code := 0
			if f, ok := entry["Code"].(float64); ok {
				code = int(f)
			}
			return &APIError{Msg: msg, Code: code}
		}
	}
	return nil
}
