// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"context"
	"fmt"
	"time"

	"github.com/Thermoquad/schunkctl/pkg/smp"
)

// waitState tracks progress of a blocking move.
type waitState int

const (
	waitPolling waitState = iota
	waitReached
	waitFailed
)

// WaitUntilPositionReached polls the module until the current movement
// finishes and returns the final position. A module fault reported
// during the movement surfaces as a *smp.DeviceError. When ctx is
// cancelled the movement is stopped before ctx.Err() is returned.
//
// The first poll happens immediately, subsequent polls at the
// configured poll interval. Modules with impulse messages enabled may
// answer a poll with a CMD POS REACHED frame instead of a state
// record; both count as arrival.
func (m *Module) WaitUntilPositionReached(ctx context.Context) (float64, error) {
	state := waitPolling
	var position float64
	var failure error

	for state == waitPolling {
		resp, err := m.exchange(
			smp.NewGetState(m.id, 0, smp.StateModePosition),
			smp.CmdGetState, smp.CmdPosReached,
		)
		if err != nil {
			state, failure = waitFailed, err
			break
		}

		switch resp.Cmd {
		case smp.CmdPosReached:
			if position, err = resp.FloatAt(0); err != nil {
				state, failure = waitFailed, err
			} else {
				state = waitReached
			}
		case smp.CmdGetState:
			if len(resp.Data) < 6 {
				state = waitFailed
				failure = fmt.Errorf("%w: state reply carries %d bytes, want 6",
					smp.ErrMalformedFrame, len(resp.Data))
				break
			}
			pos, _ := resp.FloatAt(0)
			status := smp.DecodeStatus(resp.Data[4])
			switch {
			case status.Error:
				state = waitFailed
				failure = smp.NewDeviceError(smp.CmdCmdError, smp.FaultCode(resp.Data[5]))
			case status.PositionReached || status.MoveEnd:
				state, position = waitReached, pos
			}
		}

		if state != waitPolling {
			break
		}

		timer := time.NewTimer(m.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if err := m.Stop(); err != nil {
				m.logger.Warn("stop after cancellation failed", "error", err)
			}
			return 0, ctx.Err()
		case <-timer.C:
		}
	}

	if state == waitFailed {
		return 0, failure
	}
	return position, nil
}

// MovePosBlocking moves to an absolute position and waits for arrival,
// returning the final position.
func (m *Module) MovePosBlocking(ctx context.Context, position float64, profile ...float64) (float64, error) {
	if _, err := m.MovePos(position, profile...); err != nil {
		return 0, err
	}
	return m.WaitUntilPositionReached(ctx)
}

// MovePosRelBlocking moves by a relative offset and waits for arrival.
func (m *Module) MovePosRelBlocking(ctx context.Context, position float64, profile ...float64) (float64, error) {
	if _, err := m.MovePosRel(position, profile...); err != nil {
		return 0, err
	}
	return m.WaitUntilPositionReached(ctx)
}

// MovePosTimeBlocking performs a timed absolute move and waits for
// arrival.
func (m *Module) MovePosTimeBlocking(ctx context.Context, position float64, profile ...float64) (float64, error) {
	if _, err := m.MovePosTime(position, profile...); err != nil {
		return 0, err
	}
	return m.WaitUntilPositionReached(ctx)
}

// MovePosTimeRelBlocking performs a timed relative move and waits for
// arrival.
func (m *Module) MovePosTimeRelBlocking(ctx context.Context, position float64, profile ...float64) (float64, error) {
	if _, err := m.MovePosTimeRel(position, profile...); err != nil {
		return 0, err
	}
	return m.WaitUntilPositionReached(ctx)
}
