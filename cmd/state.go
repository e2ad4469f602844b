// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show position, velocity, current and status",
	Args:  cobra.NoArgs,
	RunE:  runState,
}

var (
	stateWatch    bool
	stateInterval time.Duration
)

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVarP(&stateWatch, "watch", "w", false, "Poll continuously")
	stateCmd.Flags().DurationVar(&stateInterval, "interval", 500*time.Millisecond, "Polling interval with --watch")
}

func runState(cmd *cobra.Command, args []string) error {
	m, err := newModule()
	if err != nil {
		return err
	}

	for {
		state, err := m.GetState()
		if err != nil {
			return err
		}

		fmt.Printf("Position: %10.4f  Velocity: %10.4f  Current: %8.4f  [%s]\n",
			state.Position, state.Velocity, state.Current, state.Status)

		if state.Status.Error || state.Status.Warning {
			fmt.Printf("Fault: %s\n", state.Fault)
			if detail, err := m.GetDetailedErrorInfo(); err == nil {
				fmt.Printf("Detail: %s, value %g\n", detail.Code, detail.Value)
			}
		}

		if !stateWatch {
			return nil
		}
		time.Sleep(stateInterval)
	}
}
