// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

// Package smp implements the Schunk Motion Protocol frame codec.
//
// The package covers encoding of command frames, decoding and validation
// of response frames (CRC16 verification, fault-code mapping) and the
// protocol tables shared by both directions. It performs no I/O; the
// serial transport lives in pkg/motion.
//
// Wire format follows the Schunk Motion Control manual byte-for-byte:
//
//	request:  [0x05][module id][D-Len][cmd][params...][CRC16 lo][CRC16 hi]
//	response: [msg type][module id][D-Len][cmd][data...][CRC16 lo][CRC16 hi]
//
// D-Len counts the command byte plus the parameter/data bytes. Error
// responses always carry D-Len == 2: the command byte (or one of the
// CMD ERROR / CMD WARNING / CMD INFO markers) followed by a fault code.
package smp

// Message type bytes (first byte of every frame)
const (
	MsgTypeMaster = 0x05 // master -> module
	MsgTypeReply  = 0x07 // module -> master, regular reply
	MsgTypeError  = 0x03 // module -> master, error reply (D-Len == 2)
)

// Frame geometry
const (
	HeaderSize   = 3 // msg type + module id + D-Len
	CRCSize      = 2
	MinFrameSize = HeaderSize + 1 + CRCSize // smallest frame carries just a command byte
	MaxDataLen   = 0xFF
)

// CommandCode identifies a Schunk Motion Protocol command.
type CommandCode uint8

// Command codes (section numbers refer to the Motion Control manual)
const (
	CmdGetConfig            CommandCode = 0x80 // 2.3.2 GET CONFIG
	CmdSetConfig            CommandCode = 0x81 // 2.3.1 SET CONFIG
	CmdCmdError             CommandCode = 0x88 // error reply marker
	CmdCmdWarning           CommandCode = 0x89 // warning reply marker
	CmdCmdInfo              CommandCode = 0x8A // info reply marker
	CmdAck                  CommandCode = 0x8B // 2.8.1.4 CMD ACK
	CmdStop                 CommandCode = 0x91 // 2.1.19 CMD STOP
	CmdReference            CommandCode = 0x92 // 2.1.1 CMD REFERENCE
	CmdPosReached           CommandCode = 0x94 // CMD POS REACHED impulse
	CmdGetState             CommandCode = 0x95 // 2.5.1 GET STATE
	CmdGetDetailedErrorInfo CommandCode = 0x96 // 2.8.1.5 GET DETAILED ERROR INFO
	CmdSetTargetVel         CommandCode = 0xA0 // 2.1.14 SET TARGET VEL
	CmdSetTargetAcc         CommandCode = 0xA1 // 2.1.15 SET TARGET ACC
	CmdSetTargetJerk        CommandCode = 0xA2 // 2.1.16 SET TARGET JERK
	CmdSetTargetCur         CommandCode = 0xA3 // 2.1.17 SET TARGET CUR
	CmdSetTargetTime        CommandCode = 0xA4 // 2.1.18 SET TARGET TIME
	CmdMovePos              CommandCode = 0xB0 // 2.1.3 MOVE POS
	CmdMovePosTime          CommandCode = 0xB1 // 2.1.5 MOVE POS TIME
	CmdMovePosRel           CommandCode = 0xB8 // 2.1.4 MOVE POS REL
	CmdMovePosTimeRel       CommandCode = 0xB9 // 2.1.6 MOVE POS TIME REL
	CmdReboot               CommandCode = 0xE0 // 2.5.2 CMD REBOOT
	CmdChangeUser           CommandCode = 0xE3 // 2.5.6 CHANGE USER
	CmdCheckMCPC            CommandCode = 0xE4 // 2.5.7 CHECK MC PC COMMUNICATION
	CmdCheckPCMC            CommandCode = 0xE5 // 2.5.8 CHECK PC MC COMMUNICATION
	CmdToggleImpulse        CommandCode = 0xE7 // 2.2.6 CMD TOGGLE IMPULSE MESSAGE
)

// 2.1.20 CMD EMERGENCY STOP (0x90) is deliberately not exposed; the
// manual warns against issuing it from software.

// GET CONFIG / SET CONFIG sub-command bytes (2.3)
const (
	ConfModuleID        = 0x01
	ConfGroupID         = 0x02
	ConfRS232Baudrate   = 0x03
	ConfCANBaudrate     = 0x04
	ConfCommMode        = 0x05
	ConfUnitSystem      = 0x06
	ConfSoftHigh        = 0x07
	ConfSoftLow         = 0x08
	ConfMaxVelocity     = 0x09
	ConfMaxAcceleration = 0x0A
	ConfMaxCurrent      = 0x0B
	ConfNomCurrent      = 0x0C
	ConfMaxJerk         = 0x0D
	ConfOffsetPhaseA    = 0x0E
	ConfOffsetPhaseB    = 0x0F
	ConfDataCRC         = 0x13
	ConfReferenceOffset = 0x14
	ConfSerialNumber    = 0x15
	ConfOrderNumber     = 0x16
	ConfEEPROM          = 0xFE
)

// GET STATE request mode bits (2.5.1)
const (
	StateModePosition = 0x01
	StateModeVelocity = 0x02
	StateModeCurrent  = 0x04
	StateModeAll      = StateModePosition | StateModeVelocity | StateModeCurrent
)
