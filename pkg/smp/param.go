// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import (
	"encoding/binary"
	"fmt"
	"math"
)

// paramKind enumerates the wire encodings a parameter can use.
type paramKind int

const (
	kindFloat paramKind = iota
	kindUint8
	kindUint16
	kindUint32
	kindInt16
	kindInt32
	kindBytes
)

// Param is a single typed command parameter. Parameters encode to the
// packed little-endian layout the protocol uses; floats are transmitted
// as IEEE-754 float32 (the protocol's floating-point unit system).
type Param struct {
	kind paramKind
	f    float64
	u    uint32
	i    int32
	b    []byte
}

// Float builds a floating-point parameter. Values that cannot be
// represented as float32 (NaN, infinities, magnitudes beyond
// math.MaxFloat32) are rejected at encode time.
func Float(v float64) Param { return Param{kind: kindFloat, f: v} }

// Uint8 builds a one-byte unsigned parameter.
func Uint8(v uint8) Param { return Param{kind: kindUint8, u: uint32(v)} }

// Uint16 builds a two-byte unsigned parameter.
func Uint16(v uint16) Param { return Param{kind: kindUint16, u: uint32(v)} }

// Uint32 builds a four-byte unsigned parameter.
func Uint32(v uint32) Param { return Param{kind: kindUint32, u: v} }

// Int16 builds a two-byte signed parameter.
func Int16(v int16) Param { return Param{kind: kindInt16, i: int32(v)} }

// Int32 builds a four-byte signed parameter.
func Int32(v int32) Param { return Param{kind: kindInt32, i: v} }

// Bytes builds a raw byte-sequence parameter (sub-command bytes,
// passwords, EEPROM blocks).
func Bytes(v []byte) Param { return Param{kind: kindBytes, b: v} }

// size returns the encoded size in bytes.
func (p Param) size() int {
	switch p.kind {
	case kindUint8:
		return 1
	case kindUint16, kindInt16:
		return 2
	case kindBytes:
		return len(p.b)
	default:
		return 4
	}
}

// appendTo validates the parameter and appends its wire encoding.
func (p Param) appendTo(dst []byte) ([]byte, error) {
	switch p.kind {
	case kindFloat:
		if math.IsNaN(p.f) || math.IsInf(p.f, 0) || math.Abs(p.f) > math.MaxFloat32 {
			return nil, fmt.Errorf("%w: %v not representable as float32", ErrInvalidParameter, p.f)
		}
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(p.f))), nil
	case kindUint8:
		return append(dst, uint8(p.u)), nil
	case kindUint16:
		return binary.LittleEndian.AppendUint16(dst, uint16(p.u)), nil
	case kindUint32:
		return binary.LittleEndian.AppendUint32(dst, p.u), nil
	case kindInt16:
		return binary.LittleEndian.AppendUint16(dst, uint16(int16(p.i))), nil
	case kindInt32:
		return binary.LittleEndian.AppendUint32(dst, uint32(p.i)), nil
	case kindBytes:
		return append(dst, p.b...), nil
	default:
		return nil, fmt.Errorf("%w: unknown parameter kind %d", ErrInvalidParameter, p.kind)
	}
}

// Floats converts a list of float64 values to Float parameters.
func Floats(values ...float64) []Param {
	params := make([]Param, len(values))
	for i, v := range values {
		params[i] = Float(v)
	}
	return params
}
