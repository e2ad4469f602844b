// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <position> [velocity [acceleration [current [jerk]]]]",
	Short: "Move the module to a position",
	Long: `Move the module to a position in the configured unit system.

By default the target is an absolute position and the command returns as
soon as the module accepts it. With --relative the target is an offset
from the current position. With --wait the command polls the module and
returns only when the position is reached; Ctrl+C stops the movement.`,
	Args: cobra.RangeArgs(1, 5),
	RunE: runMove,
}

var (
	moveRelative bool
	moveWait     bool
)

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().BoolVarP(&moveRelative, "relative", "r", false, "Move relative to the current position")
	moveCmd.Flags().BoolVarP(&moveWait, "wait", "w", false, "Block until the position is reached")
}

func runMove(cmd *cobra.Command, args []string) error {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %v", arg, err)
		}
		values[i] = v
	}
	position, profile := values[0], values[1:]

	m, err := newModule()
	if err != nil {
		return err
	}

	if moveWait {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var final float64
		if moveRelative {
			final, err = m.MovePosRelBlocking(ctx, position, profile...)
		} else {
			final, err = m.MovePosBlocking(ctx, position, profile...)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Position reached: %g\n", final)
		return nil
	}

	var estimated float64
	if moveRelative {
		estimated, err = m.MovePosRel(position, profile...)
	} else {
		estimated, err = m.MovePos(position, profile...)
	}
	if err != nil {
		return err
	}
	if estimated > 0 {
		fmt.Printf("Moving, estimated time: %.3fs\n", estimated)
	} else {
		fmt.Println("Moving")
	}
	return nil
}
