// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/Thermoquad/schunkctl/pkg/smp"
)

// Module is the logical actuator: one physical unit addressed by its
// module id, reached through a Dialer. Every method performs a complete
// request/response exchange on a fresh transport session and blocks the
// calling goroutine until it finishes.
//
// A Module carries no connection state, but it must not be used from
// multiple goroutines concurrently when its Dialer opens a shared
// physical port; serialize calls externally in that case.
type Module struct {
	id           uint8
	dialer       Dialer
	timeout      time.Duration
	pollInterval time.Duration
	logger       *slog.Logger
}

// Option configures a Module.
type Option func(*Module)

// WithTimeout sets the per-exchange response timeout (default 1s).
func WithTimeout(d time.Duration) Option {
	return func(m *Module) { m.timeout = d }
}

// WithPollInterval sets the delay between status polls during blocking
// moves (default 50ms). Shorter intervals react faster at the cost of
// bus traffic.
func WithPollInterval(d time.Duration) Option {
	return func(m *Module) { m.pollInterval = d }
}

// WithLogger attaches a logger for frame-level debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) { m.logger = l }
}

// New creates a Module for the given address and transport.
func New(dialer Dialer, moduleID uint8, opts ...Option) *Module {
	m := &Module{
		id:           moduleID,
		dialer:       dialer,
		timeout:      time.Second,
		pollInterval: 50 * time.Millisecond,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromConfig creates a Module with a serial dialer built from cfg.
func NewFromConfig(cfg Config, opts ...Option) *Module {
	base := []Option{WithTimeout(cfg.Timeout), WithPollInterval(cfg.PollInterval)}
	dialer := &SerialDialer{Port: cfg.Port, Baud: cfg.Baud}
	return New(dialer, cfg.ModuleID, append(base, opts...)...)
}

// ID returns the module address.
func (m *Module) ID() uint8 { return m.id }

// ackCommand sends a request whose only valid reply is "OK".
func (m *Module) ackCommand(req *smp.Request) error {
	resp, err := m.exchange(req, req.Cmd)
	if err != nil {
		return err
	}
	if !resp.IsAck() {
		return fmt.Errorf("%w: expected OK, got % X", smp.ErrMalformedFrame, resp.Data)
	}
	return nil
}

// Reference starts a reference movement (2.1.1). The module will not
// accept positioning commands until it has been referenced.
func (m *Module) Reference() error {
	return m.ackCommand(smp.NewRequest(m.id, smp.CmdReference))
}

// Stop aborts the current movement (2.1.19).
func (m *Module) Stop() error {
	return m.ackCommand(smp.NewRequest(m.id, smp.CmdStop))
}

// Ack acknowledges a pending error message (2.8.1.4).
func (m *Module) Ack() error {
	return m.ackCommand(smp.NewRequest(m.id, smp.CmdAck))
}

// Reboot restarts the module (2.5.2).
func (m *Module) Reboot() error {
	return m.ackCommand(smp.NewRequest(m.id, smp.CmdReboot))
}

// move issues one of the MOVE POS variants and interprets the reply:
// either a float32 estimated travel time or a bare OK (no estimate
// available, reported as 0).
func (m *Module) move(cmd smp.CommandCode, position float64, profile ...float64) (float64, error) {
	req, err := smp.NewMove(m.id, cmd, position, profile...)
	if err != nil {
		return 0, err
	}
	resp, err := m.exchange(req, cmd)
	if err != nil {
		return 0, err
	}
	if resp.IsAck() {
		return 0, nil
	}
	if len(resp.Data) == 4 {
		return resp.FloatAt(0)
	}
	return 0, fmt.Errorf("%w: unexpected move reply % X", smp.ErrMalformedFrame, resp.Data)
}

// MovePos moves to an absolute position (2.1.3). profile optionally
// supplies velocity, acceleration, current and jerk; trailing values
// may be omitted. Returns the estimated travel time (0 when the module
// cannot estimate it). The call returns as soon as the module accepts
// the target; it does not wait for arrival.
func (m *Module) MovePos(position float64, profile ...float64) (float64, error) {
	return m.move(smp.CmdMovePos, position, profile...)
}

// MovePosRel moves by a relative offset (2.1.4).
func (m *Module) MovePosRel(position float64, profile ...float64) (float64, error) {
	return m.move(smp.CmdMovePosRel, position, profile...)
}

// MovePosTime moves to an absolute position within a given time
// (2.1.5); the optional profile is velocity, acceleration, current,
// time.
func (m *Module) MovePosTime(position float64, profile ...float64) (float64, error) {
	return m.move(smp.CmdMovePosTime, position, profile...)
}

// MovePosTimeRel moves by a relative offset within a given time (2.1.6).
func (m *Module) MovePosTimeRel(position float64, profile ...float64) (float64, error) {
	return m.move(smp.CmdMovePosTimeRel, position, profile...)
}

// setTarget issues one of the SET TARGET variants.
func (m *Module) setTarget(cmd smp.CommandCode, value float64) error {
	req, err := smp.NewSetTarget(m.id, cmd, value)
	if err != nil {
		return err
	}
	return m.ackCommand(req)
}

// SetTargetVel sets the target velocity (2.1.14). Modules boot with 10%
// of the maximum.
func (m *Module) SetTargetVel(velocity float64) error {
	return m.setTarget(smp.CmdSetTargetVel, velocity)
}

// SetTargetAcc sets the target acceleration (2.1.15).
func (m *Module) SetTargetAcc(acceleration float64) error {
	return m.setTarget(smp.CmdSetTargetAcc, acceleration)
}

// SetTargetJerk sets the target jerk (2.1.16).
func (m *Module) SetTargetJerk(jerk float64) error {
	return m.setTarget(smp.CmdSetTargetJerk, jerk)
}

// SetTargetCur sets the target current (2.1.17).
func (m *Module) SetTargetCur(current float64) error {
	return m.setTarget(smp.CmdSetTargetCur, current)
}

// SetTargetTime sets the target time for the timed move variants
// (2.1.18).
func (m *Module) SetTargetTime(t float64) error {
	return m.setTarget(smp.CmdSetTargetTime, t)
}

// State is one GET STATE record.
type State struct {
	Position float64
	Velocity float64
	Current  float64
	Status   smp.Status
	Fault    smp.FaultCode
}

// GetState queries position, velocity, current, the status flags and
// the pending fault code (2.5.1).
func (m *Module) GetState() (State, error) {
	resp, err := m.exchange(smp.NewGetState(m.id, 0, smp.StateModeAll), smp.CmdGetState)
	if err != nil {
		return State{}, err
	}
	if len(resp.Data) != 14 {
		return State{}, fmt.Errorf("%w: GET STATE reply carries %d bytes, want 14",
			smp.ErrMalformedFrame, len(resp.Data))
	}
	pos, _ := resp.FloatAt(0)
	vel, _ := resp.FloatAt(4)
	cur, _ := resp.FloatAt(8)
	return State{
		Position: pos,
		Velocity: vel,
		Current:  cur,
		Status:   smp.DecodeStatus(resp.Data[12]),
		Fault:    smp.FaultCode(resp.Data[13]),
	}, nil
}

// ToggleImpulseMessage toggles unsolicited impulse messages (2.2.6) and
// reports whether they are now enabled.
func (m *Module) ToggleImpulseMessage() (bool, error) {
	resp, err := m.exchange(smp.NewRequest(m.id, smp.CmdToggleImpulse), smp.CmdToggleImpulse)
	if err != nil {
		return false, err
	}
	switch {
	case bytes.Equal(resp.Data, []byte("ON")):
		return true, nil
	case bytes.Equal(resp.Data, []byte("OFF")):
		return false, nil
	}
	return false, fmt.Errorf("%w: unexpected toggle reply % X", smp.ErrMalformedFrame, resp.Data)
}

// UserLevel is the access level granted by CHANGE USER.
type UserLevel uint8

// User levels
const (
	UserDefault UserLevel = 0x00
	UserProfi   UserLevel = 0x02
)

func (u UserLevel) String() string {
	switch u {
	case UserDefault:
		return "User"
	case UserProfi:
		return "Profi"
	}
	return fmt.Sprintf("unknown (0x%02X)", uint8(u))
}

// ChangeUser switches the access level (2.5.6). An empty password
// returns to the default level.
func (m *Module) ChangeUser(password string) (UserLevel, error) {
	resp, err := m.exchange(smp.NewChangeUser(m.id, password), smp.CmdChangeUser)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) != 3 || resp.Data[0] != 'O' || resp.Data[1] != 'K' {
		return 0, fmt.Errorf("%w: unexpected change-user reply % X", smp.ErrMalformedFrame, resp.Data)
	}
	return UserLevel(resp.Data[2]), nil
}

// CheckMCPCCommunication requests the fixed test data set from the
// module and verifies it arrived intact (2.5.7).
func (m *Module) CheckMCPCCommunication() error {
	resp, err := m.exchange(smp.NewCheckMCPC(m.id), smp.CmdCheckMCPC)
	if err != nil {
		return err
	}
	if len(resp.Data) != 20 {
		return fmt.Errorf("%w: test reply carries %d bytes, want 20", smp.ErrMalformedFrame, len(resp.Data))
	}
	for i, want := range []float64{-1.2345, 47.11} {
		got, _ := resp.FloatAt(i * 4)
		if math.Abs(got-want) > 1e-6 {
			return fmt.Errorf("communication check: float %d is %v, want %v", i, got, want)
		}
	}
	for i, want := range []int32{287454020, -1122868} {
		got, _ := resp.Int32At(8 + i*4)
		if got != want {
			return fmt.Errorf("communication check: int %d is %d, want %d", i, got, want)
		}
	}
	for i, want := range []int16{512, -20482} {
		got, _ := resp.Int16At(16 + i*2)
		if got != want {
			return fmt.Errorf("communication check: short %d is %d, want %d", i, got, want)
		}
	}
	return nil
}

// CheckPCMCCommunication sends the fixed test data set to the module
// (2.5.8).
func (m *Module) CheckPCMCCommunication() error {
	resp, err := m.exchange(smp.NewCheckPCMC(m.id), smp.CmdCheckPCMC)
	if err != nil {
		return err
	}
	if !bytes.Equal(resp.Data, []byte{'O', 'K', 0x00}) {
		return fmt.Errorf("%w: unexpected test reply % X", smp.ErrMalformedFrame, resp.Data)
	}
	return nil
}

// DetailedError is the record returned by GET DETAILED ERROR INFO.
type DetailedError struct {
	Marker smp.CommandCode
	Code   smp.FaultCode
	Value  float64
}

// GetDetailedErrorInfo fetches details on the active error (2.8.1.5).
// When no error is active the module itself answers with an INFO FAILED
// fault, surfaced as a *smp.DeviceError.
func (m *Module) GetDetailedErrorInfo() (DetailedError, error) {
	resp, err := m.exchange(smp.NewRequest(m.id, smp.CmdGetDetailedErrorInfo), smp.CmdGetDetailedErrorInfo)
	if err != nil {
		return DetailedError{}, err
	}
	if len(resp.Data) != 6 {
		return DetailedError{}, fmt.Errorf("%w: detailed error reply carries %d bytes, want 6",
			smp.ErrMalformedFrame, len(resp.Data))
	}
	value, _ := resp.FloatAt(2)
	return DetailedError{
		Marker: smp.CommandCode(resp.Data[0]),
		Code:   smp.FaultCode(resp.Data[1]),
		Value:  value,
	}, nil
}
