// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import (
	"encoding/binary"
	"fmt"
)

// DeclaredLen extracts the body length a response header announces: the
// D-Len field plus the trailing CRC bytes. The transport reads exactly
// this many bytes after the fixed-size header.
func DeclaredLen(header []byte) (int, error) {
	if len(header) < HeaderSize {
		return 0, fmt.Errorf("%w: header is %d bytes, need %d", ErrMalformedFrame, len(header), HeaderSize)
	}
	return int(header[2]) + CRCSize, nil
}

// DecodeResponse validates a complete raw response frame and returns the
// decoded Response. moduleID is the address the outstanding request was
// sent to; frames from any other address are rejected.
//
// Validation order: structural checks (length, message type, module id,
// D-Len agreement), then CRC, then fault extraction. A frame reporting a
// module fault (D-Len == 2) decodes to a *DeviceError, not a Response.
func DecodeResponse(raw []byte, moduleID uint8) (*Response, error) {
	if len(raw) < MinFrameSize {
		return nil, fmt.Errorf("%w: %d bytes, minimum is %d", ErrMalformedFrame, len(raw), MinFrameSize)
	}

	msgType := raw[0]
	if msgType != MsgTypeReply && msgType != MsgTypeError {
		return nil, fmt.Errorf("%w: unexpected message type 0x%02X", ErrMalformedFrame, msgType)
	}
	if raw[1] != moduleID {
		return nil, fmt.Errorf("%w: module id 0x%02X, expected 0x%02X", ErrMalformedFrame, raw[1], moduleID)
	}

	dlen := int(raw[2])
	if len(raw) != HeaderSize+dlen+CRCSize {
		return nil, fmt.Errorf("%w: D-Len %d but %d body bytes received",
			ErrMalformedFrame, dlen, len(raw)-HeaderSize-CRCSize)
	}
	if dlen < 1 {
		return nil, fmt.Errorf("%w: empty D-Len", ErrMalformedFrame)
	}

	body := raw[:len(raw)-CRCSize]
	want := binary.LittleEndian.Uint16(raw[len(raw)-CRCSize:])
	if got := CalculateCRC(body); got != want {
		return nil, fmt.Errorf("%w: calculated 0x%04X, frame carries 0x%04X", ErrChecksum, got, want)
	}

	cmd := CommandCode(raw[3])

	// The error message type only ever carries a fault code.
	if msgType == MsgTypeError && dlen != 2 {
		return nil, fmt.Errorf("%w: message type 0x03 with D-Len %d", ErrMalformedFrame, dlen)
	}

	// D-Len 2 is the fault shape: command (or marker) byte plus code.
	// Every acknowledged command answers with at least "OK" (D-Len 3).
	if dlen == 2 {
		return nil, NewDeviceError(cmd, FaultCode(raw[4]))
	}

	return &Response{
		MsgType:  msgType,
		ModuleID: raw[1],
		Cmd:      cmd,
		Data:     body[HeaderSize+1:],
	}, nil
}
