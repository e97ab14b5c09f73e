// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the seclock application.
//
// This package contains common helper functions used throughout the
// application for fixed-width display text and file operations.
//
// # Key Functions
//
// Display Utilities:
//   - PadWidth: pad/clip a string to an exact display width
//   - ClipWidth: clip a string to a maximum display width
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Fit a message onto one 16-column LCD line
//	line := util.PadWidth("Access granted", 16)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
