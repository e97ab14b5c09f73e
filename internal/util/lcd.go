// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DISPLAY: Width-aware padding keeps the simulated LCD grid aligned.
// The character LCD is a fixed grid; every rendered line must occupy
// exactly the configured number of columns or the panel border drifts.

// PadWidth pads or clips s to exactly width display columns.
// Double-width characters (CJK) are accounted for via go-runewidth.
func PadWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// ClipWidth clips s to at most width display columns without padding.
func ClipWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// CenterWidth centers s within width display columns, padding with spaces.
// Strings wider than width are clipped.
func CenterWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
