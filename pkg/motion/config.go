// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config collects the connection settings, filled from the environment
// by ConfigFromEnv or by hand.
type Config struct {
	Port         string        `env:"SCHUNK_PORT"`
	Baud         int           `env:"SCHUNK_BAUD" envDefault:"9600"`
	ModuleID     uint8         `env:"SCHUNK_MODULE_ID" envDefault:"11"`
	Timeout      time.Duration `env:"SCHUNK_TIMEOUT" envDefault:"1s"`
	PollInterval time.Duration `env:"SCHUNK_POLL_INTERVAL" envDefault:"50ms"`
}

// ConfigFromEnv reads the SCHUNK_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
