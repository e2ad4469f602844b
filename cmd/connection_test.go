// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvConfig_SeedsFlagDefaults(t *testing.T) {
	t.Setenv("SCHUNK_PORT", "/dev/ttyUSB3")
	t.Setenv("SCHUNK_BAUD", "19200")
	t.Setenv("SCHUNK_MODULE_ID", "12")
	t.Setenv("SCHUNK_TIMEOUT", "250ms")
	t.Setenv("SCHUNK_POLL_INTERVAL", "10ms")

	cfg := envConfig()
	require.NoError(t, envErr)
	assert.Equal(t, "/dev/ttyUSB3", cfg.Port)
	assert.Equal(t, 19200, cfg.Baud)
	assert.Equal(t, uint8(12), cfg.ModuleID)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
}

func TestEnvConfig_MalformedVariableFallsBack(t *testing.T) {
	t.Setenv("SCHUNK_TIMEOUT", "soon")
	defer func() { envErr = nil }()

	cfg := envConfig()
	require.Error(t, envErr)
	// Built-in defaults still let --help and explicit flags work.
	assert.Equal(t, 9600, cfg.Baud)
	assert.Equal(t, uint8(11), cfg.ModuleID)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval)
}

func TestRootFlags_EnvDefaultsApplied(t *testing.T) {
	// Flag registration happened at init time from envConfig(); the
	// flags must exist and carry usable defaults.
	for _, name := range []string{"port", "baud", "id", "timeout", "poll-interval"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s not registered", name)
	}
}
