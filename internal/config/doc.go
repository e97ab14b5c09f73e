// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for seclock.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// # Key Types
//
//   - Config: main configuration structure with all settings
//   - DeviceConfig: storage backend, display geometry, poll interval
//   - SecurityConfig: attempt budget, lockout window, override token
//   - RemoteConfig: remote override channel listener
//   - TonesConfig: buzzer frequencies and durations
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SECLOCK_*)
//   - ~/.seclock/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	addr := cfg.Remote.ListenAddr
//	attempts := cfg.Security.MaxAttempts
package config
