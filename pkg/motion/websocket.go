// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketDialer opens sessions through a serial-over-WebSocket bridge
// (a Slate router exposing a module's RS232 port remotely). Frames
// travel as binary WebSocket messages.
type WebSocketDialer struct {
	URL      string
	Username string
	Password string

	// InsecureSkipVerify disables TLS certificate verification (wss:// only).
	InsecureSkipVerify bool
}

// Dial connects to the bridge with HTTP Basic auth.
func (d *WebSocketDialer) Dial() (Conn, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: d.InsecureSkipVerify,
		}
	}

	headers := http.Header{}
	if d.Username != "" && d.Password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(d.Username + ":" + d.Password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	conn, resp, err := dialer.Dial(d.URL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	return &wsConn{conn: conn}, nil
}

// wsConn adapts a WebSocket connection to byte-level reading.
type wsConn struct {
	conn        *websocket.Conn
	buf         []byte
	bufOffset   int
	readTimeout time.Duration
}

func (w *wsConn) Read(p []byte) (int, error) {
	// Serve buffered message bytes first.
	if w.bufOffset < len(w.buf) {
		n := copy(p, w.buf[w.bufOffset:])
		w.bufOffset += n
		return n, nil
	}

	if w.readTimeout > 0 {
		if err := w.conn.SetReadDeadline(time.Now().Add(w.readTimeout)); err != nil {
			return 0, err
		}
	}

	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			// Report deadline expiry the way a serial port does, so the
			// dispatcher's own deadline governs.
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				return 0, nil
			}
			return 0, err
		}

		// Only binary messages carry protocol frames.
		if messageType != websocket.BinaryMessage {
			continue
		}

		w.buf = data
		w.bufOffset = 0
		n := copy(p, w.buf)
		w.bufOffset = n
		return n, nil
	}
}

func (w *wsConn) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsConn) SetReadTimeout(d time.Duration) error {
	w.readTimeout = d
	return nil
}

func (w *wsConn) Close() error {
	return w.conn.Close()
}
