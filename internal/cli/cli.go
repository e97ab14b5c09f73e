// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and usage text for seclock.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLoop
	CmdReset
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config PATH overrides the default config file
	Quiet      bool

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `seclock - keypad security lock controller

Seclock drives a PIN-guarded lock: keypad entry against a stored
credential, a bounded attempt budget with lockout, a remote override
channel, and an in-field PIN change protocol.

Usage:
  seclock                    Start the device simulator TUI (default)
  seclock tui                Same as above
  seclock loop               Run the headless device loop (no TUI)
  seclock reset              Factory reset: erase the stored credential
  seclock version, -v        Show version information
  seclock help, -h           Show this help

Global flags:
  --config PATH              Use PATH instead of ~/.seclock/config.toml
  --quiet, -q                Suppress non-essential output

Simulator keys:
  0-9        keypad digits
  # / enter  submit
  * / backspace  delete last digit
  A          start PIN change
  B / esc    cancel PIN change
  tab        focus the remote console (type UNLOCK during lockout)
  ?          help overlay
  ctrl+c     quit

After three wrong PINs the lock refuses all keypad input until the
remote channel delivers the override token. With [remote] enabled in
the config, remotectl (or any line client) can send it over TCP.
`

// Parse reads os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	raw := os.Args[1:]

	var args Args
	remaining := make([]string, 0, len(raw))

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case "--config":
			if i+1 < len(raw) {
				args.ConfigPath = raw[i+1]
				i++
			}
		case "--quiet", "-q":
			args.Quiet = true
		case "--version", "-v":
			return CmdVersion, args
		case "--help", "-h":
			return CmdHelp, args
		default:
			remaining = append(remaining, raw[i])
		}
	}

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, args
	case "loop", "run":
		return CmdLoop, args
	case "reset":
		return CmdReset, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("seclock %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
	fmt.Printf("  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
