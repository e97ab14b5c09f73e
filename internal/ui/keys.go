// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/device"
)

// keypadKeyFor maps a terminal key event onto a matrix keypad key. Beyond
// the keypad legend characters, the common terminal keys map to their
// obvious counterparts: Enter submits, Backspace deletes, Esc cancels.
func keypadKeyFor(msg tea.KeyMsg) (device.Key, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return device.KeySubmit, true
	case tea.KeyBackspace:
		return device.KeyBackspace, true
	case tea.KeyEsc:
		return device.KeyCancel, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return device.KeyFromRune(msg.Runes[0])
		}
	}
	return 0, false
}
