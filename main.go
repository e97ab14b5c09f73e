// seclock - keypad security lock controller and device simulator.
//
// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/cli"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/config"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/credential"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/device"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/lock"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/remote"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/storage"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdLoop:
		runLoop(args)
	case cli.CmdReset:
		handleReset(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// loadConfig loads the configuration (honoring --config) and installs it as
// the process global.
func loadConfig(args cli.Args) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: config: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)
	return cfg
}

// openStore opens the configured credential storage backend. The returned
// func releases the backend.
func openStore(cfg *config.Config) (storage.ByteStore, func(), error) {
	size := cfg.Device.StorageSize
	path := cfg.Device.StoragePath

	switch cfg.Device.StorageBackend {
	case "memory":
		return storage.NewMemStore(size), func() {}, nil

	case "file":
		if path == "" {
			var err error
			path, err = config.DefaultStoragePath("file")
			if err != nil {
				return nil, nil, err
			}
		}
		fs, err := storage.OpenFileStore(path, size)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil

	case "sqlite":
		if path == "" {
			var err error
			path, err = config.DefaultStoragePath("sqlite")
			if err != nil {
				return nil, nil, err
			}
		}
		db, err := storage.OpenSQLiteStore(path, size)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Device.StorageBackend)
}

// buildController assembles the ledger and controller from the configuration.
func buildController(cfg *config.Config, bs storage.ByteStore) *lock.Controller {
	ledger := lock.NewLedger(
		lock.WithMaxAttempts(cfg.Security.MaxAttempts),
		lock.WithLockoutDuration(time.Duration(cfg.Security.LockoutSecs)*time.Second),
	)
	return lock.NewController(
		credential.NewStore(bs),
		ledger,
		lock.WithUnlockToken(cfg.Security.UnlockToken),
		lock.WithTones(configuredTones(cfg)),
	)
}

// configuredTones converts the configured note table.
func configuredTones(cfg *config.Config) lock.Tones {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return lock.Tones{
		Key:     device.Tone{FrequencyHz: cfg.Tones.KeyHz, Duration: ms(cfg.Tones.KeyMS)},
		Success: device.Tone{FrequencyHz: cfg.Tones.SuccessHz, Duration: ms(cfg.Tones.SuccessMS)},
		Error:   device.Tone{FrequencyHz: cfg.Tones.ErrorHz, Duration: ms(cfg.Tones.ErrorMS)},
		Lockout: device.Tone{FrequencyHz: cfg.Tones.LockoutHz, Duration: ms(cfg.Tones.LockoutMS)},
	}
}

// startRemote starts the TCP override listener when enabled. The returned
// channel is nil when the listener is off; callers treat nil as "no remote".
func startRemote(cfg *config.Config, logw io.Writer) (<-chan string, string, func()) {
	if !cfg.Remote.Enabled {
		return nil, "", func() {}
	}

	srv := remote.NewServer(
		remote.WithRateLimit(cfg.Remote.LinesPerMinute),
		remote.WithMaxLineBytes(cfg.Remote.MaxLineBytes),
		remote.WithLogWriter(logw),
	)
	if err := srv.Listen(cfg.Remote.ListenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: remote channel disabled: %v\n", err)
		return nil, "", func() {}
	}
	go func() {
		if err := srv.Serve(); err != nil && err != remote.ErrClosed {
			fmt.Fprintf(logw, "remote: serve: %v\n", err)
		}
	}()
	return srv.Lines(), srv.Addr(), func() { _ = srv.Close() }
}

// runTUI starts the device simulator.
func runTUI(args cli.Args) {
	cfg := loadConfig(args)

	bs, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	ctrl := buildController(cfg, bs)

	lines, addr, stopRemote := startRemote(cfg, os.Stderr)
	defer stopRemote()

	// Hot-reload keeps the global fresh for the next boot; the running
	// controller keeps its policy until restart.
	if watcher, err := config.NewWatcher(nil); err == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(ui.New(ctrl, cfg, lines, addr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runLoop runs the headless device loop on the terminal: stdin is the
// keypad, stdout the display, stderr the buzzer.
func runLoop(args cli.Args) {
	cfg := loadConfig(args)

	bs, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	ctrl := buildController(cfg, bs)

	lines, addr, stopRemote := startRemote(cfg, os.Stderr)
	defer stopRemote()
	if addr != "" && !args.Quiet {
		fmt.Fprintf(os.Stderr, "remote override listening on %s\n", addr)
	}

	loop := device.NewLoop(
		ctrl,
		device.NewReaderKeypad(os.Stdin),
		device.NewConsoleDisplay(os.Stdout),
		device.NewConsoleBuzzer(os.Stderr),
		device.WithPollInterval(time.Duration(cfg.Device.PollIntervalMS)*time.Millisecond),
		device.WithRemote(lines),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// handleReset performs a factory reset: the stored credential is erased so
// the next boot falls back to the default PIN.
func handleReset(args cli.Args) {
	cfg := loadConfig(args)

	if cfg.Device.StorageBackend == "memory" {
		fmt.Println("Storage backend is \"memory\"; nothing persisted to reset.")
		return
	}

	bs, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := credential.NewStore(bs).Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: reset: %v\n", err)
		os.Exit(1)
	}

	if !args.Quiet {
		fmt.Println("Stored credential erased. The lock boots with the default PIN.")
	}
}
