// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseArgv(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"seclock"}, argv...)
	t.Cleanup(func() { os.Args = old })
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgv(t)
	if cmd != CmdTUI {
		t.Errorf("Parse() = %v, want CmdTUI", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"tui"}, CmdTUI},
		{[]string{"loop"}, CmdLoop},
		{[]string{"run"}, CmdLoop},
		{[]string{"reset"}, CmdReset},
		{[]string{"version"}, CmdVersion},
		{[]string{"-v"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"bogus"}, CmdHelp},
	}
	for _, tt := range tests {
		cmd, _ := parseArgv(t, tt.argv...)
		if cmd != tt.want {
			t.Errorf("Parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
		}
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgv(t, "--config", "/tmp/alt.toml", "--quiet", "reset")
	if cmd != CmdReset {
		t.Errorf("command = %v, want CmdReset", cmd)
	}
	if args.ConfigPath != "/tmp/alt.toml" {
		t.Errorf("ConfigPath = %q, want /tmp/alt.toml", args.ConfigPath)
	}
	if !args.Quiet {
		t.Error("Quiet = false, want true")
	}
}
