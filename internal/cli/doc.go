// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the seclock command line. Parsing is deliberately
// flat: a handful of commands, a couple of global flags, no external
// flag library.
package cli
