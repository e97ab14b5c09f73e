// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the terminal capabilities and the composed styles the
// simulator renders with.
type Theme struct {
	// ColorProfile is the detected terminal color capability.
	ColorProfile termenv.Profile

	// IsDark reports whether the terminal background is dark.
	IsDark bool

	Title  lipgloss.Style
	Panel  lipgloss.Style
	LCD    lipgloss.Style
	Status lipgloss.Style
	Legend lipgloss.Style
	Accent lipgloss.Style
	Danger lipgloss.Style
	Good   lipgloss.Style
}

// NewTheme builds a Theme for the current terminal. The mode argument forces
// "dark" or "light"; "auto" (or anything else) detects the background.
func NewTheme(mode string) *Theme {
	isDark := termenv.HasDarkBackground()
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}

	return &Theme{
		ColorProfile: termenv.ColorProfile(),
		IsDark:       isDark,

		Title: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),

		LCD: lipgloss.NewStyle().
			Background(LCDBackground).
			Foreground(LCDText).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(TextSecondary),

		Legend: lipgloss.NewStyle().
			Foreground(TextSecondary),

		Accent: lipgloss.NewStyle().
			Foreground(Cyan),

		Danger: lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true),

		Good: lipgloss.NewStyle().
			Foreground(Emerald),
	}
}

// GlamourStyle returns the glamour style name matching the theme background.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}
