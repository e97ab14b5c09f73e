// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/lock"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the simulator: LCD panel, status bar, keypad legend and the
// remote console. The help overlay replaces the legend when open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render("seclock simulator"))
	b.WriteString("\n\n")
	b.WriteString(m.renderLCD())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.help)
	} else {
		if m.cfg.UI.ShowKeymap {
			b.WriteString(m.renderLegend())
			b.WriteString("\n")
		}
		b.WriteString(m.renderConsole())
	}

	return b.String()
}

// renderLCD draws the two-line character display at its configured width.
func (m Model) renderLCD() string {
	cols := m.cfg.Device.DisplayColumns
	l1 := m.theme.LCD.Render(util.PadWidth(util.ClipWidth(m.line1, cols), cols))
	l2 := m.theme.LCD.Render(util.PadWidth(util.ClipWidth(m.line2, cols), cols))
	return m.theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, l1, l2))
}

// renderStatus draws the state line under the LCD: lock state, remaining
// attempts, the remote listen address and the most recent buzzer tone.
func (m Model) renderStatus() string {
	parts := make([]string, 0, 4)

	switch m.ctrl.State() {
	case lock.StateLockedOut:
		parts = append(parts, m.theme.Danger.Render("LOCKED OUT"))
	case lock.StateInChangeFlow:
		parts = append(parts, m.theme.Accent.Render("changing PIN"))
	default:
		parts = append(parts, m.theme.Good.Render("armed"))
	}

	parts = append(parts, fmt.Sprintf("attempts %d/%d",
		m.ctrl.AttemptsRemaining(), m.cfg.Security.MaxAttempts))

	if m.remoteAddr != "" {
		parts = append(parts, "remote "+m.remoteAddr)
	}

	if toast := m.renderToast(); toast != "" {
		parts = append(parts, toast)
	}

	return m.theme.Status.Render(strings.Join(parts, "  |  "))
}

// renderToast shows the most recent buzzer tone for a short while.
func (m Model) renderToast() string {
	if m.lastToneAt.IsZero() || time.Since(m.lastToneAt) > toastDuration {
		return ""
	}
	return m.theme.Accent.Render(fmt.Sprintf("♪ %dHz", m.lastTone.FrequencyHz))
}

// renderLegend draws the keyboard-to-keypad mapping hint.
func (m Model) renderLegend() string {
	return m.theme.Legend.Render(
		"0-9 digits  # or enter submit  * or backspace delete\n" +
			"A new PIN  B or esc cancel  tab remote console  ? help  ctrl+c quit")
}

// renderConsole draws the remote-line injection field.
func (m Model) renderConsole() string {
	label := "remote"
	if m.remoteFocused {
		label = m.theme.Accent.Render("remote")
	}
	return label + " > " + m.remoteInput.View()
}
