// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Module addressing and timing
	moduleID uint8
	verbose  bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "schunkctl",
	Short: "Schunk Motion Protocol module control",
	Long: `Schunkctl - A CLI tool for commanding Schunk motorized actuators over the
Schunk Motion Protocol.

Provides commands for referencing, positioning, status queries and
communication diagnostics.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 9600]
  WebSocket: --url ws://host/path [--username user]

Connection flags default from the SCHUNK_PORT, SCHUNK_BAUD,
SCHUNK_MODULE_ID, SCHUNK_TIMEOUT and SCHUNK_POLL_INTERVAL environment
variables.

For WebSocket authentication, the password is read from the SCHUNK_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envErr != nil {
			return envErr
		}
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
			Level: level,
		}))
		return nil
	},
}

func init() {
	// Environment variables seed the flag defaults; flags override.
	cfg := envConfig()

	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", cfg.Port, "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", cfg.Baud, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().Uint8Var(&moduleID, "id", cfg.ModuleID, "Module address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", cfg.Timeout, "Response timeout")
	rootCmd.PersistentFlags().DurationVar(&pollInterval, "poll-interval", cfg.PollInterval, "Status polling interval for blocking moves")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log protocol frames")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
