// remotectl - operator console for the seclock remote override channel.
//
// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const defaultAddr = "127.0.0.1:4321"

const historyFile = "remotectl_history"

func main() {
	addr := defaultAddr
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: connect %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("Connected to %s. Type a line to send it (UNLOCK clears a lockout).\n", addr)
	fmt.Println("Commands: .quit to exit")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("remote> ")
		if err != nil {
			// Ctrl-C / Ctrl-D / closed terminal all end the session.
			break
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == ".quit" || trimmed == ".exit" {
			break
		}

		line.AppendHistory(trimmed)

		if _, err := fmt.Fprintf(conn, "%s\n", trimmed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: send: %v\n", err)
			break
		}
		fmt.Printf("sent %q\n", trimmed)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

// historyPath returns the liner history file under ~/.seclock, or "" when
// the home directory is unavailable.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".seclock")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return ""
	}
	return filepath.Join(dir, historyFile)
}
