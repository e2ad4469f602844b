// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import "strings"

// Status is the decoded module status byte from a GET STATE response.
type Status struct {
	Referenced      bool
	Moving          bool
	ProgramMode     bool
	Warning         bool
	Error           bool
	Brake           bool
	MoveEnd         bool
	PositionReached bool
}

// Status byte bit positions (2.5.1)
const (
	statusReferenced = 1 << iota
	statusMoving
	statusProgramMode
	statusWarning
	statusError
	statusBrake
	statusMoveEnd
	statusPositionReached
)

// DecodeStatus expands a status byte into its flags.
func DecodeStatus(b uint8) Status {
	return Status{
		Referenced:      b&statusReferenced != 0,
		Moving:          b&statusMoving != 0,
		ProgramMode:     b&statusProgramMode != 0,
		Warning:         b&statusWarning != 0,
		Error:           b&statusError != 0,
		Brake:           b&statusBrake != 0,
		MoveEnd:         b&statusMoveEnd != 0,
		PositionReached: b&statusPositionReached != 0,
	}
}

// String lists the set flags, or "idle" when none are set.
func (s Status) String() string {
	var flags []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{s.Referenced, "referenced"},
		{s.Moving, "moving"},
		{s.ProgramMode, "program-mode"},
		{s.Warning, "warning"},
		{s.Error, "error"},
		{s.Brake, "brake"},
		{s.MoveEnd, "move-end"},
		{s.PositionReached, "position-reached"},
	} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return "idle"
	}
	return strings.Join(flags, ",")
}
