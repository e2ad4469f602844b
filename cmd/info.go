// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show module type, versions and configuration",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := newModule()
	if err != nil {
		return err
	}

	info, err := m.GetModuleInfo()
	if err != nil {
		return err
	}

	fmt.Printf("Module type:      %s\n", info.ModuleType)
	fmt.Printf("Order number:     %d\n", info.OrderNumber)
	fmt.Printf("Firmware version: %d\n", info.FirmwareVersion)
	fmt.Printf("Protocol version: %d\n", info.ProtocolVersion)
	fmt.Printf("Hardware version: %d\n", info.HardwareVersion)
	fmt.Printf("Firmware date:    %s\n", info.FirmwareDate)

	// Modules answer these independently of the identity block; a
	// failure here is reported but does not fail the command.
	if unit, err := m.UnitSystem(); err == nil {
		fmt.Printf("Unit system:      %s\n", unit)
	} else {
		logger.Warn("unit system query failed", "error", err)
	}
	if mode, err := m.CommMode(); err == nil {
		fmt.Printf("Comm mode:        %s\n", mode)
	} else {
		logger.Warn("comm mode query failed", "error", err)
	}

	return nil
}
