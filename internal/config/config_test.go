// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultSecurityConstants(t *testing.T) {
	cfg := Default()
	if cfg.Security.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Security.MaxAttempts)
	}
	if cfg.Security.LockoutSecs != 30 {
		t.Errorf("LockoutSecs = %d, want 30", cfg.Security.LockoutSecs)
	}
	if cfg.Security.UnlockToken != "UNLOCK" {
		t.Errorf("UnlockToken = %q, want UNLOCK", cfg.Security.UnlockToken)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad backend", func(c *Config) { c.Device.StorageBackend = "eeprom" }, "device.storage_backend"},
		{"zero attempts", func(c *Config) { c.Security.MaxAttempts = -1 }, "security.max_attempts"},
		{"blank token", func(c *Config) { c.Security.UnlockToken = "   " }, "security.unlock_token"},
		{"padded token", func(c *Config) { c.Security.UnlockToken = " UNLOCK " }, "security.unlock_token"},
		{"bad addr", func(c *Config) { c.Remote.ListenAddr = "no-port" }, "remote.listen_addr"},
		{"tiny display", func(c *Config) { c.Device.DisplayColumns = 4 }, "device.display_columns"},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, "ui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestValidateSkipsListenAddrWhenRemoteDisabled(t *testing.T) {
	cfg := Default()
	cfg.Remote.Enabled = false
	cfg.Remote.ListenAddr = "not-an-address"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when remote is disabled", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Security.MaxAttempts = 5
	cfg.Security.UnlockToken = "LET-ME-IN"
	cfg.Device.StorageBackend = "sqlite"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	got, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if got.Security.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", got.Security.MaxAttempts)
	}
	if got.Security.UnlockToken != "LET-ME-IN" {
		t.Errorf("UnlockToken = %q", got.Security.UnlockToken)
	}
	if got.Device.StorageBackend != "sqlite" {
		t.Errorf("StorageBackend = %q", got.Device.StorageBackend)
	}
}

func TestPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[security]\nmax_attempts = 4\n"
	if err := os.WriteFile(path, []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if got.Security.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, want 4", got.Security.MaxAttempts)
	}
	if got.Security.UnlockToken != "UNLOCK" {
		t.Errorf("UnlockToken = %q, want default", got.Security.UnlockToken)
	}
	if got.Device.DisplayColumns != 16 {
		t.Errorf("DisplayColumns = %d, want default 16", got.Device.DisplayColumns)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SECLOCK_UNLOCK_TOKEN", "SESAME")
	t.Setenv("SECLOCK_MAX_ATTEMPTS", "7")
	t.Setenv("SECLOCK_REMOTE_ENABLED", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Security.UnlockToken != "SESAME" {
		t.Errorf("UnlockToken = %q, want SESAME", cfg.Security.UnlockToken)
	}
	if cfg.Security.MaxAttempts != 7 {
		t.Errorf("MaxAttempts = %d, want 7", cfg.Security.MaxAttempts)
	}
	if cfg.Remote.Enabled {
		t.Error("Remote.Enabled = true, want false")
	}
}

func TestGlobalConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
