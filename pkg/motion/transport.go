// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

// Package motion drives Schunk actuator modules over a byte-stream
// transport: request/response dispatch, the blocking-move polling loop
// and the per-command module facade. Frame encoding and decoding live
// in pkg/smp.
package motion

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Conn is one open transport session. Read returns (0, nil) when the
// session's read timeout elapses without data, mirroring serial port
// semantics; the dispatcher turns that into its own deadline handling.
type Conn interface {
	io.ReadWriteCloser
	SetReadTimeout(d time.Duration) error
}

// Dialer opens transport sessions. The dispatcher acquires exactly one
// session per request/response exchange and closes it unconditionally,
// so no connection state survives between calls.
type Dialer interface {
	Dial() (Conn, error)
}

// SerialDialer opens an RS232 serial session per exchange.
type SerialDialer struct {
	Port string
	Baud int
}

// Dial opens the serial port in the 8N1 framing the protocol requires.
func (d *SerialDialer) Dial() (Conn, error) {
	baud := d.Baud
	if baud == 0 {
		baud = 9600
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(d.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", d.Port, err)
	}

	// serial.Port already satisfies Conn.
	return port, nil
}
