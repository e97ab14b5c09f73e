// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package remote implements the out-of-band override channel: a line-oriented
// TCP listener that forwards trimmed text lines to the controller owner.
//
// The channel carries exactly one recognized command, the unlock token, and
// the recognition happens in the controller, not here. This package only
// moves lines: it accepts connections, enforces a per-connection rate limit
// and a line-length cap, and pushes lines into a buffered channel the device
// loop polls non-blocking.
package remote
