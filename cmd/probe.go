// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Test communication in both directions",
	Long: `Test communication in both directions.

Sends a fixed data set to the module and requests one back, verifying
that floats, integers and shorts survive the wire intact. Useful for
diagnosing baud rate and cabling problems.

Exit codes:
  0 - Both directions passed
  1 - Test failed`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	m, err := newModule()
	if err != nil {
		return err
	}

	failed := false

	if err := m.CheckPCMCCommunication(); err != nil {
		fmt.Fprintf(os.Stderr, "PC -> MC: FAILED (%v)\n", err)
		failed = true
	} else {
		fmt.Println("PC -> MC: OK")
	}

	if err := m.CheckMCPCCommunication(); err != nil {
		fmt.Fprintf(os.Stderr, "MC -> PC: FAILED (%v)\n", err)
		failed = true
	} else {
		fmt.Println("MC -> PC: OK")
	}

	if failed {
		return fmt.Errorf("communication test failed")
	}
	return nil
}
