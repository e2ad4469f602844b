// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a caller-supplied value outside the
	// protocol's representable range. Detected before transmission.
	ErrInvalidParameter = errors.New("parameter outside protocol range")

	// ErrMalformedFrame indicates a response that fails structural
	// validation: too short, D-Len disagreeing with the received byte
	// count, an unexpected message type, or a module id mismatch.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrChecksum indicates a response whose trailing CRC16 does not
	// match the checksum computed over the received bytes.
	ErrChecksum = errors.New("checksum mismatch")
)

// Severity classifies a module fault report by its reply marker byte.
type Severity int

// Fault severities
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// FaultCode is a vendor fault/diagnosis code reported by a module.
type FaultCode uint8

// String returns the vendor name for the code, or "UNKNOWN" for codes
// not listed in the manual. The raw value is always included.
func (c FaultCode) String() string {
	name, ok := faultNames[c]
	if !ok {
		name = "UNKNOWN"
	}
	return fmt.Sprintf("%s (0x%02X)", name, uint8(c))
}

// DeviceError is a fault reported by the module itself: a command-level
// or hardware-level failure carried in an error reply frame or in the
// error byte of a state response. The raw vendor code is preserved for
// diagnostics even when it is not listed in the manual.
type DeviceError struct {
	Code     FaultCode
	Severity Severity
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("module fault: %s: %s", e.Severity, e.Code)
}

// NewDeviceError builds a DeviceError from a reply marker command byte
// and the fault code it carries. Markers other than CMD WARNING and
// CMD INFO (including an echoed command code) classify as errors.
func NewDeviceError(marker CommandCode, code FaultCode) *DeviceError {
	sev := SeverityError
	switch marker {
	case CmdCmdWarning:
		sev = SeverityWarning
	case CmdCmdInfo:
		sev = SeverityInfo
	}
	return &DeviceError{Code: code, Severity: sev}
}

// Fault names copied from the Schunk Motion Control manual.
var faultNames = map[FaultCode]string{
	0x00: "NO ERROR",
	0x01: "INFO BOOT",
	0x02: "INFO NO FREE SPACE",
	0x03: "INFO NO RIGHTS",
	0x04: "INFO UNKNOWN COMMAND",
	0x05: "INFO FAILED",
	0x06: "NOT REFERENCED",
	0x07: "INFO SEARCH SINE VECTOR",
	0x08: "INFO NO ERROR",
	0x09: "INFO COMMUNICATION ERROR",
	0x10: "INFO TIMEOUT",
	0x16: "INFO WRONG BAUDRATE",
	0x19: "INFO CHECKSUM",
	0x1D: "INFO MESSAGE LENGTH",
	0x1E: "INFO WRONG PARAMETER",
	0x1F: "INFO PROGRAM END",
	0x40: "INFO TRIGGER",
	0x41: "INFO READY",
	0x42: "INFO GUI CONNECTED",
	0x43: "INFO GUI DISCONNECTED",
	0x44: "INFO PROGRAM CHANGED",
	0x70: "ERROR TEMP LOW",
	0x71: "ERROR TEMP HIGH",
	0x72: "ERROR LOGIC LOW",
	0x73: "ERROR LOGIC HIGH",
	0x74: "ERROR MOTOR VOLTAGE LOW",
	0x75: "ERROR MOTOR VOLTAGE HIGH",
	0x76: "ERROR CABLE BREAK",
	0x78: "ERROR MOTOR TEMP",
	0xC8: "ERROR WRONG RAMP TYPE",
	0xD2: "ERROR CONFIG MEMORY",
	0xD3: "ERROR PROGRAM MEMORY",
	0xD4: "ERROR INVALID PHRASE",
	0xD5: "ERROR SOFT LOW",
	0xD6: "ERROR SOFT HIGH",
	0xD7: "ERROR PRESSURE",
	0xD8: "ERROR SERVICE",
	0xD9: "ERROR EMERGENCY STOP",
	0xDA: "ERROR TOW",
	0xDB: "ERROR VPC3",
	0xDC: "ERROR FRAGMENTATION",
	0xDE: "ERROR CURRENT",
	0xDF: "ERROR I2T",
	0xE0: "ERROR INITIALIZE",
	0xE1: "ERROR INTERNAL",
	0xE2: "ERROR HARD LOW",
	0xE3: "ERROR HARD HIGH",
	0xE4: "ERROR COMMUTATION",
	0xEC: "ERROR MATH",
}
