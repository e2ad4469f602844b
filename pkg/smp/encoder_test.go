// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// Expected wire bytes are the worked examples from chapter 6 of the
// Motion Control manual (module id 0x01).
func TestEncodeRequest_GoldenFrames(t *testing.T) {
	tests := []struct {
		name    string
		request *Request
		expect  []byte
	}{
		{
			name:    "CMD REFERENCE",
			request: NewRequest(0x01, CmdReference),
			expect:  []byte{0x05, 0x01, 0x01, 0x92, 0xD1, 0x31},
		},
		{
			name:    "CMD ACK",
			request: NewRequest(0x01, CmdAck),
			expect:  []byte{0x05, 0x01, 0x01, 0x8B, 0x10, 0xFB},
		},
		{
			name:    "MOVE POS 10.0",
			request: NewRequest(0x01, CmdMovePos, Float(10.0)),
			expect:  []byte{0x05, 0x01, 0x05, 0xB0, 0x00, 0x00, 0x20, 0x41, 0x48, 0x80},
		},
		{
			name:    "SET TARGET VEL 12.2",
			request: mustBuild(NewSetTarget(0x01, CmdSetTargetVel, 12.2)),
			expect: append([]byte{0x05, 0x01, 0x05, 0xA0, 0x33, 0x33, 0x43, 0x41},
				crcBytes([]byte{0x05, 0x01, 0x05, 0xA0, 0x33, 0x33, 0x43, 0x41})...),
		},
		{
			name:    "GET STATE position only",
			request: NewGetState(0x01, 0, StateModePosition),
			expect: append([]byte{0x05, 0x01, 0x06, 0x95, 0x00, 0x00, 0x00, 0x00, 0x01},
				crcBytes([]byte{0x05, 0x01, 0x06, 0x95, 0x00, 0x00, 0x00, 0x00, 0x01})...),
		},
		{
			name:    "CHECK PC MC COMMUNICATION",
			request: NewCheckPCMC(0x01),
			expect: []byte{
				0x05, 0x01, 0x15, 0xE5,
				0x19, 0x04, 0x9E, 0xBF, 0xA4, 0x70, 0x3C, 0x42,
				0x44, 0x33, 0x22, 0x11, 0xCC, 0xDD, 0xEE, 0xFF,
				0x00, 0x02, 0xFE, 0xAF,
				0x29, 0xD7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodeRequest(tt.request)
			if err != nil {
				t.Fatalf("EncodeRequest failed: %v", err)
			}
			if !bytes.Equal(frame, tt.expect) {
				t.Errorf("frame mismatch:\n got  % X\n want % X", frame, tt.expect)
			}
		})
	}
}

func TestEncodeRequest_FloatRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "zero", value: 0},
		{name: "boundary", value: math.MaxFloat32},
		{name: "negative boundary", value: -math.MaxFloat32},
		{name: "just above boundary", value: math.MaxFloat32 * (1 + 1e-9), wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "positive infinity", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeRequest(NewRequest(0x01, CmdMovePos, Float(tt.value)))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("expected ErrInvalidParameter, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewMove_ProfileLimits(t *testing.T) {
	if _, err := NewMove(0x01, CmdMovePos, 10.0, 1, 2, 3, 4); err != nil {
		t.Errorf("four profile parameters should be accepted: %v", err)
	}
	if _, err := NewMove(0x01, CmdMovePos, 10.0, 1, 2, 3, 4, 5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for five profile parameters, got %v", err)
	}
	if _, err := NewMove(0x01, CmdStop, 10.0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for non-move opcode, got %v", err)
	}
}

func TestEncodeRequest_RoundTrip(t *testing.T) {
	// A self-produced frame re-framed as a reply must decode back to the
	// original command and parameters with a passing CRC.
	req := NewRequest(0x0B, CmdMovePosRel, Float(-3.5), Float(20.0))
	frame, err := EncodeRequest(req)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}

	reply := append([]byte{}, frame[:len(frame)-CRCSize]...)
	reply[0] = MsgTypeReply
	crc := CalculateCRC(reply)
	reply = append(reply, byte(crc&0xFF), byte(crc>>8))

	resp, err := DecodeResponse(reply, 0x0B)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if resp.ModuleID != 0x0B || resp.Cmd != CmdMovePosRel {
		t.Errorf("header mismatch: id=0x%02X cmd=0x%02X", resp.ModuleID, uint8(resp.Cmd))
	}
	if v, _ := resp.FloatAt(0); v != -3.5 {
		t.Errorf("first parameter: got %v, want -3.5", v)
	}
	if v, _ := resp.FloatAt(4); v != 20.0 {
		t.Errorf("second parameter: got %v, want 20.0", v)
	}
}

func mustBuild(req *Request, err error) *Request {
	if err != nil {
		panic(err)
	}
	return req
}

func crcBytes(data []byte) []byte {
	crc := CalculateCRC(data)
	return []byte{byte(crc & 0xFF), byte(crc >> 8)}
}
