// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Request is a command frame to be sent to a module: module id, command
// code and an ordered list of typed parameters. A Request is built fresh
// per call and encoded exactly once.
type Request struct {
	ModuleID uint8
	Cmd      CommandCode
	Params   []Param
}

// NewRequest creates a request frame for the given module and command.
func NewRequest(moduleID uint8, cmd CommandCode, params ...Param) *Request {
	return &Request{ModuleID: moduleID, Cmd: cmd, Params: params}
}

// Response is a decoded, CRC-verified response frame. Data holds the
// payload bytes following the command byte; its layout depends on the
// command that was sent (the wire format is not self-describing).
type Response struct {
	MsgType  uint8
	ModuleID uint8
	Cmd      CommandCode
	Data     []byte
}

// IsAck reports whether the payload is the plain "OK" acknowledgement.
func (r *Response) IsAck() bool {
	return len(r.Data) == 2 && r.Data[0] == 'O' && r.Data[1] == 'K'
}

// FloatAt decodes a float32 payload field at the given byte offset.
func (r *Response) FloatAt(offset int) (float64, error) {
	if offset < 0 || offset+4 > len(r.Data) {
		return 0, fmt.Errorf("%w: float field at %d exceeds %d payload bytes",
			ErrMalformedFrame, offset, len(r.Data))
	}
	bits := binary.LittleEndian.Uint32(r.Data[offset:])
	return float64(math.Float32frombits(bits)), nil
}

// Uint16At decodes a little-endian uint16 payload field.
func (r *Response) Uint16At(offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(r.Data) {
		return 0, fmt.Errorf("%w: uint16 field at %d exceeds %d payload bytes",
			ErrMalformedFrame, offset, len(r.Data))
	}
	return binary.LittleEndian.Uint16(r.Data[offset:]), nil
}

// Uint32At decodes a little-endian uint32 payload field.
func (r *Response) Uint32At(offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(r.Data) {
		return 0, fmt.Errorf("%w: uint32 field at %d exceeds %d payload bytes",
			ErrMalformedFrame, offset, len(r.Data))
	}
	return binary.LittleEndian.Uint32(r.Data[offset:]), nil
}

// Int32At decodes a little-endian int32 payload field.
func (r *Response) Int32At(offset int) (int32, error) {
	u, err := r.Uint32At(offset)
	return int32(u), err
}

// Int16At decodes a little-endian int16 payload field.
func (r *Response) Int16At(offset int) (int16, error) {
	u, err := r.Uint16At(offset)
	return int16(u), err
}
