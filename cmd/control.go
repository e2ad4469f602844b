// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Thermoquad/schunkctl/pkg/motion"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Start a reference movement",
	Long: `Start a reference movement.

The module must be referenced before it accepts positioning commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simpleCommand((*motion.Module).Reference, "Referencing")
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current movement",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simpleCommand((*motion.Module).Stop, "Stopped")
	},
}

var ackCmd = &cobra.Command{
	Use:   "ack",
	Short: "Acknowledge a pending error",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simpleCommand((*motion.Module).Ack, "Acknowledged")
	},
}

var rebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Restart the module",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simpleCommand((*motion.Module).Reboot, "Rebooting")
	},
}

var targetCmd = &cobra.Command{
	Use:   "target <vel|acc|jerk|cur|time> <value>",
	Short: "Set a motion profile target",
	Long: `Set one of the motion profile targets used by subsequent moves.

Targets reset to their defaults when the module reboots; velocity in
particular boots at 10% of the maximum.`,
	Args: cobra.ExactArgs(2),
	RunE: runTarget,
}

func init() {
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(ackCmd)
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(targetCmd)
}

func simpleCommand(call func(*motion.Module) error, done string) error {
	m, err := newModule()
	if err != nil {
		return err
	}
	if err := call(m); err != nil {
		return err
	}
	fmt.Println(done)
	return nil
}

func runTarget(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %v", args[1], err)
	}

	m, err := newModule()
	if err != nil {
		return err
	}

	switch args[0] {
	case "vel":
		err = m.SetTargetVel(value)
	case "acc":
		err = m.SetTargetAcc(value)
	case "jerk":
		err = m.SetTargetJerk(value)
	case "cur":
		err = m.SetTargetCur(value)
	case "time":
		err = m.SetTargetTime(value)
	default:
		return fmt.Errorf("unknown target %q (use vel, acc, jerk, cur or time)", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("Target %s set to %g\n", args[0], value)
	return nil
}
