// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SCHUNK_PORT", "/dev/ttyUSB0")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Port)
	assert.Equal(t, 9600, cfg.Baud)
	assert.Equal(t, uint8(11), cfg.ModuleID)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SCHUNK_PORT", "/dev/ttyS1")
	t.Setenv("SCHUNK_BAUD", "19200")
	t.Setenv("SCHUNK_MODULE_ID", "12")
	t.Setenv("SCHUNK_TIMEOUT", "250ms")
	t.Setenv("SCHUNK_POLL_INTERVAL", "10ms")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyS1", cfg.Port)
	assert.Equal(t, 19200, cfg.Baud)
	assert.Equal(t, uint8(12), cfg.ModuleID)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
}

func TestNewFromConfig(t *testing.T) {
	cfg := Config{
		Port:         "/dev/ttyUSB0",
		Baud:         9600,
		ModuleID:     11,
		Timeout:      200 * time.Millisecond,
		PollInterval: 20 * time.Millisecond,
	}
	m := NewFromConfig(cfg)
	assert.Equal(t, uint8(11), m.ID())
	assert.Equal(t, 200*time.Millisecond, m.timeout)
	assert.Equal(t, 20*time.Millisecond, m.pollInterval)
}
