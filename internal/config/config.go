// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete seclock configuration.
type Config struct {
	Version string `toml:"version"`

	// Device holds peripheral and storage settings.
	Device DeviceConfig `toml:"device"`

	// Security holds the attempt/lockout policy.
	Security SecurityConfig `toml:"security"`

	// Remote holds the remote override channel settings.
	Remote RemoteConfig `toml:"remote"`

	// Tones holds the buzzer note table.
	Tones TonesConfig `toml:"tones"`

	// UI holds simulator presentation settings.
	UI UIConfig `toml:"ui"`
}

// DeviceConfig contains peripheral and storage configuration.
type DeviceConfig struct {
	// StorageBackend selects the credential storage: "memory", "file", "sqlite".
	StorageBackend string `toml:"storage_backend"`
	// StoragePath is the image/database path for the file and sqlite
	// backends (empty = default under ~/.seclock).
	StoragePath string `toml:"storage_path"`
	// StorageSize is the number of addressable storage bytes.
	StorageSize int `toml:"storage_size"`
	// DisplayColumns is the character display width (16x2 module by default).
	DisplayColumns int `toml:"display_columns"`
	// PollIntervalMS is the idle poll interval of the device loop.
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// SecurityConfig contains the verification attempt and lockout policy.
type SecurityConfig struct {
	// MaxAttempts is the number of failed verifications before lockout.
	MaxAttempts int `toml:"max_attempts"`
	// LockoutSecs is the advisory lockout window in seconds. The expiry it
	// produces is recorded but never consulted: only the remote override
	// clears a lockout.
	LockoutSecs int `toml:"lockout_secs"`
	// UnlockToken is the remote override token, compared case-sensitively
	// after trimming surrounding whitespace.
	UnlockToken string `toml:"unlock_token"`
}

// RemoteConfig contains the remote override channel settings.
type RemoteConfig struct {
	// Enabled starts the TCP listener when true.
	Enabled bool `toml:"enabled"`
	// ListenAddr is the TCP listen address.
	ListenAddr string `toml:"listen_addr"`
	// LinesPerMinute caps how many lines one connection may deliver.
	LinesPerMinute int `toml:"lines_per_minute"`
	// MaxLineBytes caps the length of a single remote line.
	MaxLineBytes int `toml:"max_line_bytes"`
}

// TonesConfig contains the buzzer note table. Durations are milliseconds.
type TonesConfig struct {
	KeyHz         int `toml:"key_hz"`
	KeyMS         int `toml:"key_ms"`
	SuccessHz     int `toml:"success_hz"`
	SuccessMS     int `toml:"success_ms"`
	ErrorHz       int `toml:"error_hz"`
	ErrorMS       int `toml:"error_ms"`
	LockoutHz     int `toml:"lockout_hz"`
	LockoutMS     int `toml:"lockout_ms"`
}

// UIConfig contains simulator presentation settings.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto".
	Theme string `toml:"theme"`
	// ShowKeymap renders the keypad legend under the panel.
	ShowKeymap bool `toml:"show_keymap"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with the factory values. The security numbers are
// the device constants: 3 attempts, 30 s advisory lockout, token "UNLOCK".
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Device: DeviceConfig{
			StorageBackend: "file",
			StoragePath:    "",
			StorageSize:    64,
			DisplayColumns: 16,
			PollIntervalMS: 20,
		},

		Security: SecurityConfig{
			MaxAttempts: 3,
			LockoutSecs: 30,
			UnlockToken: "UNLOCK",
		},

		Remote: RemoteConfig{
			Enabled:        true,
			ListenAddr:     "127.0.0.1:4321",
			LinesPerMinute: 30,
			MaxLineBytes:   256,
		},

		Tones: TonesConfig{
			KeyHz: 880, KeyMS: 60,
			SuccessHz: 1320, SuccessMS: 300,
			ErrorHz: 220, ErrorMS: 400,
			LockoutHz: 110, LockoutMS: 800,
		},

		UI: UIConfig{
			Theme:      "auto",
			ShowKeymap: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the seclock configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".seclock"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DefaultStoragePath returns the storage path for a backend when the config
// leaves it empty.
func DefaultStoragePath(backend string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	switch backend {
	case "sqlite":
		return filepath.Join(dir, "eeprom.db"), nil
	default:
		return filepath.Join(dir, "eeprom.bin"), nil
	}
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when none exists. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	d := Default()

	if c.Version == "" {
		c.Version = d.Version
	}
	if c.Device.StorageBackend == "" {
		c.Device.StorageBackend = d.Device.StorageBackend
	}
	if c.Device.StorageSize == 0 {
		c.Device.StorageSize = d.Device.StorageSize
	}
	if c.Device.DisplayColumns == 0 {
		c.Device.DisplayColumns = d.Device.DisplayColumns
	}
	if c.Device.PollIntervalMS == 0 {
		c.Device.PollIntervalMS = d.Device.PollIntervalMS
	}
	if c.Security.MaxAttempts == 0 {
		c.Security.MaxAttempts = d.Security.MaxAttempts
	}
	if c.Security.LockoutSecs == 0 {
		c.Security.LockoutSecs = d.Security.LockoutSecs
	}
	if c.Security.UnlockToken == "" {
		c.Security.UnlockToken = d.Security.UnlockToken
	}
	if c.Remote.ListenAddr == "" {
		c.Remote.ListenAddr = d.Remote.ListenAddr
	}
	if c.Remote.LinesPerMinute == 0 {
		c.Remote.LinesPerMinute = d.Remote.LinesPerMinute
	}
	if c.Remote.MaxLineBytes == 0 {
		c.Remote.MaxLineBytes = d.Remote.MaxLineBytes
	}
	if c.Tones.KeyHz == 0 {
		c.Tones = d.Tones
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies SECLOCK_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SECLOCK_STORAGE_BACKEND"); v != "" {
		c.Device.StorageBackend = strings.ToLower(v)
	}
	if v := os.Getenv("SECLOCK_STORAGE_PATH"); v != "" {
		c.Device.StoragePath = v
	}
	if v := os.Getenv("SECLOCK_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Security.MaxAttempts = n
		}
	}
	if v := os.Getenv("SECLOCK_LOCKOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Security.LockoutSecs = n
		}
	}
	if v := os.Getenv("SECLOCK_UNLOCK_TOKEN"); v != "" {
		c.Security.UnlockToken = v
	}
	if v := os.Getenv("SECLOCK_REMOTE_ADDR"); v != "" {
		c.Remote.ListenAddr = v
	}
	if v := os.Getenv("SECLOCK_REMOTE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Remote.Enabled = b
		}
	}
	if v := os.Getenv("SECLOCK_THEME"); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validBackends := map[string]bool{"memory": true, "file": true, "sqlite": true}
	if !validBackends[strings.ToLower(c.Device.StorageBackend)] {
		errs = append(errs, ValidationError{
			Field:   "device.storage_backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: memory, file, sqlite", c.Device.StorageBackend),
		})
	}
	if c.Device.StorageSize < 8 || c.Device.StorageSize > 4096 {
		errs = append(errs, ValidationError{
			Field:   "device.storage_size",
			Message: fmt.Sprintf("storage size %d outside [8, 4096]", c.Device.StorageSize),
		})
	}
	if c.Device.DisplayColumns < 8 || c.Device.DisplayColumns > 40 {
		errs = append(errs, ValidationError{
			Field:   "device.display_columns",
			Message: fmt.Sprintf("display width %d outside [8, 40]", c.Device.DisplayColumns),
		})
	}
	if c.Device.PollIntervalMS < 5 || c.Device.PollIntervalMS > 1000 {
		errs = append(errs, ValidationError{
			Field:   "device.poll_interval_ms",
			Message: fmt.Sprintf("poll interval %d outside [5, 1000]", c.Device.PollIntervalMS),
		})
	}

	if c.Security.MaxAttempts < 1 || c.Security.MaxAttempts > 10 {
		errs = append(errs, ValidationError{
			Field:   "security.max_attempts",
			Message: fmt.Sprintf("max attempts %d outside [1, 10]", c.Security.MaxAttempts),
		})
	}
	if c.Security.LockoutSecs < 1 {
		errs = append(errs, ValidationError{
			Field:   "security.lockout_secs",
			Message: "lockout window must be at least 1 second",
		})
	}
	if strings.TrimSpace(c.Security.UnlockToken) == "" {
		errs = append(errs, ValidationError{
			Field:   "security.unlock_token",
			Message: "unlock token must not be blank",
		})
	}
	if strings.TrimSpace(c.Security.UnlockToken) != c.Security.UnlockToken {
		errs = append(errs, ValidationError{
			Field:   "security.unlock_token",
			Message: "unlock token must not carry surrounding whitespace (remote lines are trimmed before comparison)",
		})
	}

	if c.Remote.Enabled {
		if _, _, err := net.SplitHostPort(c.Remote.ListenAddr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "remote.listen_addr",
				Message: fmt.Sprintf("invalid listen address: %v", err),
			})
		}
	}
	if c.Remote.LinesPerMinute < 1 {
		errs = append(errs, ValidationError{
			Field:   "remote.lines_per_minute",
			Message: "rate limit must be at least 1 line per minute",
		})
	}
	if c.Remote.MaxLineBytes < 8 {
		errs = append(errs, ValidationError{
			Field:   "remote.max_line_bytes",
			Message: "line cap must be at least 8 bytes",
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# seclock configuration file")
	fmt.Fprintln(file, "# Generated by seclock - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal re-reads the configuration from disk and swaps it in.
func ReloadGlobal() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	SetGlobal(cfg)
	return cfg, nil
}

// ResetGlobalForTesting clears the global config. Tests only.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}
