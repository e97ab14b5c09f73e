// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Cyan - brand color, prompts, key hints
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - success states (access granted, credential saved)
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - errors, denied attempts, lockout
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - warnings, attempts running low
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// LCDBackground - the green-on-dark character display look
var LCDBackground = lipgloss.AdaptiveColor{Light: "#DCF5DC", Dark: "#0F2A0F"}

// LCDText - display glyph color
var LCDText = lipgloss.AdaptiveColor{Light: "#14532D", Dark: "#86EFAC"}

// Text - primary text
var Text = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}

// TextSecondary - dimmed text, legends, status
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// Border - panel borders
var Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
