// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thermoquad/schunkctl/pkg/smp"
)

// stateReply builds a position-only GET STATE reply: position, status
// byte, fault byte.
func stateReply(moduleID uint8, position float32, status, fault uint8) []byte {
	data := append(floatLE(position), status, fault)
	return replyFrame(smp.MsgTypeReply, moduleID, smp.CmdGetState, data)
}

const (
	statusMoving  = 0x03 // referenced + moving
	statusReached = 0x81 // referenced + position reached
	statusFaulted = 0x11 // referenced + error
)

func pollScript(reply []byte) exchangeScript {
	return exchangeScript{reply: reply}
}

func newWaitModule(d *scriptDialer) *Module {
	return New(d, 0x01,
		WithTimeout(50*time.Millisecond),
		WithPollInterval(time.Millisecond),
	)
}

func TestWaitUntilPositionReached(t *testing.T) {
	dialer := &scriptDialer{t: t, scripts: []exchangeScript{
		pollScript(stateReply(0x01, 2.0, statusMoving, 0x00)),
		pollScript(stateReply(0x01, 6.5, statusMoving, 0x00)),
		pollScript(stateReply(0x01, 10.0, statusReached, 0x00)),
	}}
	m := newWaitModule(dialer)

	position, err := m.WaitUntilPositionReached(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 10.0, position, 1e-6)
	dialer.done()
}

func TestWaitUntilPositionReached_ModuleFault(t *testing.T) {
	dialer := &scriptDialer{t: t, scripts: []exchangeScript{
		pollScript(stateReply(0x01, 2.0, statusMoving, 0x00)),
		pollScript(stateReply(0x01, 3.1, statusFaulted, 0xD5)),
	}}
	m := newWaitModule(dialer)

	_, err := m.WaitUntilPositionReached(context.Background())
	var devErr *smp.DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, smp.FaultCode(0xD5), devErr.Code)
	// polling stops at the fault
	assert.Len(t, dialer.conns, 2)
	dialer.done()
}

func TestWaitUntilPositionReached_ImpulseReply(t *testing.T) {
	impulse := replyFrame(smp.MsgTypeReply, 0x01, smp.CmdPosReached, floatLE(42.5))
	dialer := &scriptDialer{t: t, scripts: []exchangeScript{
		pollScript(stateReply(0x01, 40.0, statusMoving, 0x00)),
		pollScript(impulse),
	}}
	m := newWaitModule(dialer)

	position, err := m.WaitUntilPositionReached(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 42.5, position, 1e-6)
	dialer.done()
}

func TestWaitUntilPositionReached_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dialer := &scriptDialer{t: t, scripts: []exchangeScript{
		pollScript(stateReply(0x01, 2.0, statusMoving, 0x00)),
		{
			want:  requestFrame(t, smp.NewRequest(0x01, smp.CmdStop)),
			reply: okReply(0x01, smp.CmdStop),
		},
	}}
	m := newWaitModule(dialer)

	_, err := m.WaitUntilPositionReached(ctx)
	require.ErrorIs(t, err, context.Canceled)
	// the module was told to stop before returning
	dialer.done()
}

func TestMovePosBlocking(t *testing.T) {
	dialer := &scriptDialer{t: t, scripts: []exchangeScript{
		{
			want:  []byte{0x05, 0x01, 0x05, 0xB0, 0x00, 0x00, 0x20, 0x41, 0x48, 0x80},
			reply: okReply(0x01, smp.CmdMovePos),
		},
		pollScript(stateReply(0x01, 3.0, statusMoving, 0x00)),
		pollScript(stateReply(0x01, 7.5, statusMoving, 0x00)),
		pollScript(stateReply(0x01, 10.0, statusReached, 0x00)),
	}}
	m := newWaitModule(dialer)

	position, err := m.MovePosBlocking(context.Background(), 10.0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, position, 1e-6)
	// exactly three poll exchanges after the accepted move
	assert.Len(t, dialer.conns, 4)
	dialer.done()
}

func TestMovePosBlocking_RejectedMove(t *testing.T) {
	dialer := &scriptDialer{t: t, scripts: []exchangeScript{{
		reply: replyFrame(smp.MsgTypeError, 0x01, smp.CmdCmdError, []byte{0xC8}),
	}}}
	m := newWaitModule(dialer)

	_, err := m.MovePosBlocking(context.Background(), 10.0)
	var devErr *smp.DeviceError
	require.ErrorAs(t, err, &devErr)
	// no polling after a rejected move
	assert.Len(t, dialer.conns, 1)
	dialer.done()
}
