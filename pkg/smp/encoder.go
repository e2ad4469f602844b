// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import "fmt"

// EncodeRequest serializes a request to wire format, including the
// master message-type byte and the trailing CRC16. Parameter values are
// range-validated before any byte is produced; an out-of-range value
// fails with ErrInvalidParameter and nothing is emitted.
func EncodeRequest(req *Request) ([]byte, error) {
	dataLen := 1 // command byte
	for _, p := range req.Params {
		dataLen += p.size()
	}
	if dataLen > MaxDataLen {
		return nil, fmt.Errorf("%w: D-Len %d exceeds %d", ErrInvalidParameter, dataLen, MaxDataLen)
	}

	frame := make([]byte, 0, HeaderSize+dataLen+CRCSize)
	frame = append(frame, MsgTypeMaster, req.ModuleID, uint8(dataLen), uint8(req.Cmd))

	var err error
	for _, p := range req.Params {
		if frame, err = p.appendTo(frame); err != nil {
			return nil, fmt.Errorf("command 0x%02X: %w", uint8(req.Cmd), err)
		}
	}

	// CRC covers every preceding byte, message type included.
	crc := CalculateCRC(frame)
	frame = append(frame, byte(crc&0xFF), byte(crc>>8))

	return frame, nil
}
