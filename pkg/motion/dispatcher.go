// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"errors"
	"fmt"
	"time"

	"github.com/Thermoquad/schunkctl/pkg/smp"
)

var (
	// ErrTimeout indicates that no complete response frame arrived
	// within the configured timeout. With no connection kept open
	// between calls, this is the only defense against a hung or
	// disconnected module.
	ErrTimeout = errors.New("timeout waiting for response")

	// ErrTransport indicates a failure of the underlying connection
	// surfaced by the transport adapter.
	ErrTransport = errors.New("transport failure")
)

// Pause between empty reads while waiting out the deadline, for
// transports whose reads return immediately.
const readRetryDelay = time.Millisecond

// exchange performs one request/response cycle: dial, write the encoded
// frame, read a complete response, close. The session is released on
// every exit path. accept lists the command codes a reply may carry;
// anything else is rejected as malformed.
func (m *Module) exchange(req *smp.Request, accept ...smp.CommandCode) (*smp.Response, error) {
	frame, err := smp.EncodeRequest(req)
	if err != nil {
		return nil, err
	}

	conn, err := m.dialer.Dial()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer conn.Close()

	if err := conn.SetReadTimeout(m.timeout); err != nil {
		return nil, fmt.Errorf("%w: set read timeout: %v", ErrTransport, err)
	}

	n, err := conn.Write(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrTransport, err)
	}
	if n != len(frame) {
		return nil, fmt.Errorf("%w: short write: %d of %d bytes", ErrTransport, n, len(frame))
	}
	m.logger.Debug("frame sent", "cmd", req.Cmd.String(), "bytes", len(frame))

	// The header declares the body length; read it first, then exactly
	// the declared number of bytes. Partial reads accumulate under one
	// deadline.
	deadline := time.Now().Add(m.timeout)

	header := make([]byte, smp.HeaderSize)
	if err := readFull(conn, header, deadline); err != nil {
		return nil, err
	}
	bodyLen, err := smp.DeclaredLen(header)
	if err != nil {
		return nil, err
	}
	body := make([]byte, bodyLen)
	if err := readFull(conn, body, deadline); err != nil {
		return nil, err
	}

	resp, err := smp.DecodeResponse(append(header, body...), req.ModuleID)
	if err != nil {
		return nil, err
	}

	if len(accept) > 0 {
		ok := false
		for _, cmd := range accept {
			if resp.Cmd == cmd {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("%w: unexpected command code 0x%02X in response to 0x%02X",
				smp.ErrMalformedFrame, uint8(resp.Cmd), uint8(req.Cmd))
		}
	}

	m.logger.Debug("frame received", "response", smp.FormatResponse(resp))
	return resp, nil
}

// readFull reads exactly len(buf) bytes, accumulating partial reads
// until the deadline passes.
func readFull(conn Conn, buf []byte, deadline time.Time) error {
	offset := 0
	for offset < len(buf) {
		n, err := conn.Read(buf[offset:])
		if err != nil {
			return fmt.Errorf("%w: read: %v", ErrTransport, err)
		}
		if n == 0 {
			if !time.Now().Before(deadline) {
				return ErrTimeout
			}
			time.Sleep(readRetryDelay)
			continue
		}
		offset += n
	}
	return nil
}
