// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/Thermoquad/schunkctl/pkg/motion"
)

var (
	timeout      time.Duration
	pollInterval time.Duration

	// envErr defers malformed SCHUNK_* variables until a command runs,
	// so --help still works.
	envErr error
)

// envConfig reads the SCHUNK_* environment defaults, falling back to
// the built-in defaults when a variable fails to parse.
func envConfig() motion.Config {
	cfg, err := motion.ConfigFromEnv()
	if err != nil {
		envErr = err
		return motion.Config{
			Baud:         9600,
			ModuleID:     11,
			Timeout:      time.Second,
			PollInterval: 50 * time.Millisecond,
		}
	}
	return cfg
}

// GetPassword reads the password from SCHUNK_PASSWORD, or prompts on
// stderr with echo disabled.
func GetPassword() (string, error) {
	if pw := os.Getenv("SCHUNK_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	defer fmt.Fprintln(os.Stderr)

	if pw, err := term.ReadPassword(int(syscall.Stdin)); err == nil {
		return string(pw), nil
	}

	// Not a terminal; read a plain line instead.
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %v", err)
	}
	return strings.TrimSpace(line), nil
}

// newDialer builds a transport from the connection flags
func newDialer() (motion.Dialer, string, error) {
	if wsURL != "" {
		// WebSocket mode
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}

		dialer := &motion.WebSocketDialer{
			URL:                wsURL,
			Username:           wsUsername,
			Password:           password,
			InsecureSkipVerify: wsNoSSLVerify,
		}
		return dialer, fmt.Sprintf("WebSocket %s", wsURL), nil
	}

	if portName == "" {
		return nil, "", fmt.Errorf("no connection specified (use --port, --url or SCHUNK_PORT)")
	}

	dialer := &motion.SerialDialer{Port: portName, Baud: baudRate}
	return dialer, fmt.Sprintf("Serial %s @ %d baud", portName, baudRate), nil
}

// newModule builds a Module from the global flags
func newModule() (*motion.Module, error) {
	dialer, connInfo, err := newDialer()
	if err != nil {
		return nil, err
	}

	logger.Debug("connection configured", "via", connInfo, "module", moduleID)

	return motion.New(dialer, moduleID,
		motion.WithTimeout(timeout),
		motion.WithPollInterval(pollInterval),
		motion.WithLogger(logger),
	), nil
}
