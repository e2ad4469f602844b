// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import "testing"

func TestCalculateCRC_Empty(t *testing.T) {
	if crc := CalculateCRC(nil); crc != 0 {
		t.Errorf("CRC of empty data should be 0, got 0x%04X", crc)
	}
}

// Expected values are taken from the worked examples in chapter 6 of the
// Motion Control manual.
func TestCalculateCRC_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{
			name:     "CMD REFERENCE frame",
			data:     []byte{0x05, 0x01, 0x01, 0x92},
			expected: 0x31D1,
		},
		{
			name:     "CMD ACK frame",
			data:     []byte{0x05, 0x01, 0x01, 0x8B},
			expected: 0xFB10,
		},
		{
			name:     "MOVE POS 10.0 frame",
			data:     []byte{0x05, 0x01, 0x05, 0xB0, 0x00, 0x00, 0x20, 0x41},
			expected: 0x8048,
		},
		{
			name:     "CMD REFERENCE reply",
			data:     []byte{0x07, 0x01, 0x03, 0x92, 'O', 'K'},
			expected: 0xD9E9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if crc := CalculateCRC(tt.data); crc != tt.expected {
				t.Errorf("CRC mismatch: expected 0x%04X, got 0x%04X", tt.expected, crc)
			}
		})
	}
}

func TestUpdateCRC_MatchesCalculate(t *testing.T) {
	data := []byte{0x05, 0x0B, 0x06, 0x95, 0x00, 0x00, 0x00, 0x00, 0x07}
	var crc uint16
	for _, b := range data {
		crc = UpdateCRC(crc, b)
	}
	if whole := CalculateCRC(data); crc != whole {
		t.Errorf("incremental CRC 0x%04X != whole-buffer CRC 0x%04X", crc, whole)
	}
}
