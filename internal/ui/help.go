// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import "github.com/charmbracelet/glamour"

// helpMarkdown is the operator manual shown by the help overlay.
const helpMarkdown = `# seclock simulator

A terminal stand-in for the keypad lock hardware.

## Keypad

| Keyboard | Keypad | Function |
|----------|--------|----------|
| 0-9      | 0-9    | enter PIN digits |
| Enter, # | #      | submit entry |
| Backspace, * | *  | delete last digit |
| A        | A      | start PIN change |
| Esc, B   | B      | cancel PIN change |
| C, D, E  | C D E  | reserved, no function |

## Simulator

- **Tab** focuses the remote console; type a line and press Enter to
  inject it on the override channel (the real channel also listens on TCP).
- **?** toggles this help.
- **Ctrl+C** quits.

## Lockout

Three wrong PINs lock the keypad. The lock stays down until the remote
channel delivers the override token (default ` + "`UNLOCK`" + `). There is
no timed recovery.
`

// renderHelp renders the manual for the given glamour style ("dark"/"light").
// On render failure the raw markdown is shown; help must never be the thing
// that breaks.
func renderHelp(style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
