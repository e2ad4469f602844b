// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad
//
// Schunkctl - Schunk Motion Protocol module control
//
// A CLI tool for commanding Schunk motorized actuators: referencing,
// positioning, status queries and communication diagnostics.

package main

import (
	"os"

	"github.com/Thermoquad/schunkctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
