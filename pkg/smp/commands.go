// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import "fmt"

// Request builder functions create Request frames ready for encoding.
// Per-command argument shapes live here, next to the command table, so
// the opcode and its parameter layout cannot drift apart.

// Motion profile parameter limits for the MOVE POS family: position plus
// up to velocity, acceleration, current and jerk (or time for the timed
// variants). Trailing parameters may be omitted, interior ones may not,
// which a variadic float list expresses naturally.
const maxProfileParams = 4

// moveCommands is the MOVE POS command family.
var moveCommands = map[CommandCode]bool{
	CmdMovePos:        true,
	CmdMovePosRel:     true,
	CmdMovePosTime:    true,
	CmdMovePosTimeRel: true,
}

// setTargetCommands is the SET TARGET command family.
var setTargetCommands = map[CommandCode]bool{
	CmdSetTargetVel:  true,
	CmdSetTargetAcc:  true,
	CmdSetTargetJerk: true,
	CmdSetTargetCur:  true,
	CmdSetTargetTime: true,
}

// NewMove creates a frame for one of the MOVE POS variants.
func NewMove(moduleID uint8, cmd CommandCode, position float64, profile ...float64) (*Request, error) {
	if !moveCommands[cmd] {
		return nil, fmt.Errorf("%w: 0x%02X is not a move command", ErrInvalidParameter, uint8(cmd))
	}
	if len(profile) > maxProfileParams {
		return nil, fmt.Errorf("%w: %d profile parameters, maximum is %d",
			ErrInvalidParameter, len(profile), maxProfileParams)
	}
	params := append([]Param{Float(position)}, Floats(profile...)...)
	return NewRequest(moduleID, cmd, params...), nil
}

// NewSetTarget creates a frame for one of the SET TARGET variants.
func NewSetTarget(moduleID uint8, cmd CommandCode, value float64) (*Request, error) {
	if !setTargetCommands[cmd] {
		return nil, fmt.Errorf("%w: 0x%02X is not a set-target command", ErrInvalidParameter, uint8(cmd))
	}
	return NewRequest(moduleID, cmd, Float(value)), nil
}

// NewGetState creates a GET STATE frame. interval requests periodic
// resending by the module (0 for a single reply); mode selects which of
// position, velocity and current the reply carries.
func NewGetState(moduleID uint8, interval float64, mode uint8) *Request {
	return NewRequest(moduleID, CmdGetState, Float(interval), Uint8(mode))
}

// NewGetConfig creates a GET CONFIG frame. With no sub-command the
// module answers with the full identification record.
func NewGetConfig(moduleID uint8, sub ...uint8) *Request {
	if len(sub) == 0 {
		return NewRequest(moduleID, CmdGetConfig)
	}
	return NewRequest(moduleID, CmdGetConfig, Bytes(sub))
}

// NewSetConfig creates a SET CONFIG frame for one sub-parameter.
func NewSetConfig(moduleID uint8, sub uint8, value Param) *Request {
	return NewRequest(moduleID, CmdSetConfig, Uint8(sub), value)
}

// NewChangeUser creates a CHANGE USER frame. An empty password drops
// back to the default user level.
func NewChangeUser(moduleID uint8, password string) *Request {
	if password == "" {
		return NewRequest(moduleID, CmdChangeUser)
	}
	return NewRequest(moduleID, CmdChangeUser, Bytes([]byte(password)))
}

// commTestParams is the fixed data set exchanged by the CHECK MC PC and
// CHECK PC MC communication tests (2.5.7, 2.5.8): two floats, two
// int32s, two int16s.
func commTestParams() []Param {
	return []Param{
		Float(commTestFloats[0]), Float(commTestFloats[1]),
		Int32(commTestInts[0]), Int32(commTestInts[1]),
		Int16(commTestShorts[0]), Int16(commTestShorts[1]),
	}
}

var (
	commTestFloats = [2]float64{-1.2345, 47.11}
	commTestInts   = [2]int32{287454020, -1122868}
	commTestShorts = [2]int16{512, -20482}
)

// NewCheckMCPC creates a CHECK MC PC COMMUNICATION frame; the module
// answers with the fixed test data set.
func NewCheckMCPC(moduleID uint8) *Request {
	return NewRequest(moduleID, CmdCheckMCPC)
}

// NewCheckPCMC creates a CHECK PC MC COMMUNICATION frame carrying the
// fixed test data set.
func NewCheckPCMC(moduleID uint8) *Request {
	return NewRequest(moduleID, CmdCheckPCMC, commTestParams()...)
}

// commandNames maps every known command code to its manual name.
var commandNames = map[CommandCode]string{
	CmdGetConfig:            "GET CONFIG",
	CmdSetConfig:            "SET CONFIG",
	CmdCmdError:             "CMD ERROR",
	CmdCmdWarning:           "CMD WARNING",
	CmdCmdInfo:              "CMD INFO",
	CmdAck:                  "CMD ACK",
	CmdStop:                 "CMD STOP",
	CmdReference:            "CMD REFERENCE",
	CmdPosReached:           "CMD POS REACHED",
	CmdGetState:             "GET STATE",
	CmdGetDetailedErrorInfo: "GET DETAILED ERROR INFO",
	CmdSetTargetVel:         "SET TARGET VEL",
	CmdSetTargetAcc:         "SET TARGET ACC",
	CmdSetTargetJerk:        "SET TARGET JERK",
	CmdSetTargetCur:         "SET TARGET CUR",
	CmdSetTargetTime:        "SET TARGET TIME",
	CmdMovePos:              "MOVE POS",
	CmdMovePosTime:          "MOVE POS TIME",
	CmdMovePosRel:           "MOVE POS REL",
	CmdMovePosTimeRel:       "MOVE POS TIME REL",
	CmdReboot:               "CMD REBOOT",
	CmdChangeUser:           "CHANGE USER",
	CmdCheckMCPC:            "CHECK MC PC COMMUNICATION",
	CmdCheckPCMC:            "CHECK PC MC COMMUNICATION",
	CmdToggleImpulse:        "CMD TOGGLE IMPULSE MESSAGE",
}

// String returns the manual name for a command code.
func (c CommandCode) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(c))
}
