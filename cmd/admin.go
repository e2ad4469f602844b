// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var impulseCmd = &cobra.Command{
	Use:   "impulse",
	Short: "Toggle unsolicited impulse messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newModule()
		if err != nil {
			return err
		}
		on, err := m.ToggleImpulseMessage()
		if err != nil {
			return err
		}
		if on {
			fmt.Println("Impulse messages: ON")
		} else {
			fmt.Println("Impulse messages: OFF")
		}
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Change the access level",
	Long: `Change the access level.

The password is read from the SCHUNK_PASSWORD environment variable, or
prompted interactively if not set. Use --reset to drop back to the
default level without a password.`,
	Args: cobra.NoArgs,
	RunE: runUser,
}

var userReset bool

var setIDCmd = &cobra.Command{
	Use:   "set-id <new-id>",
	Short: "Reassign the module address",
	Long: `Reassign the module address.

Requires the Profi access level (see the user command). The new address
takes effect immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetID,
}

func init() {
	rootCmd.AddCommand(impulseCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(setIDCmd)
	userCmd.Flags().BoolVar(&userReset, "reset", false, "Return to the default access level")
}

func runUser(cmd *cobra.Command, args []string) error {
	password := ""
	if !userReset {
		var err error
		password, err = GetPassword()
		if err != nil {
			return err
		}
	}

	m, err := newModule()
	if err != nil {
		return err
	}
	level, err := m.ChangeUser(password)
	if err != nil {
		return err
	}
	fmt.Printf("Access level: %s\n", level)
	return nil
}

func runSetID(cmd *cobra.Command, args []string) error {
	newID, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return fmt.Errorf("invalid module id %q: %v", args[0], err)
	}

	m, err := newModule()
	if err != nil {
		return err
	}
	if err := m.SetModuleID(uint8(newID)); err != nil {
		return err
	}
	fmt.Printf("Module address set to %d\n", newID)
	return nil
}
