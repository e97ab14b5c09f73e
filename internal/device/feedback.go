// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import "time"

// Feedback is the effect a state-machine step asks the hardware to perform:
// render two display lines, sound a tone, and hold off further input for a
// fixed window. The consumer decides how to realize the hold (the headless
// loop sleeps, the simulator ignores keys until the window passes); the
// controller logic is identical either way.
type Feedback struct {
	Line1 string
	Line2 string
	Tone  Tone
	Hold  time.Duration
}

// IsZero reports whether f carries no effect at all.
func (f Feedback) IsZero() bool {
	return f.Line1 == "" && f.Line2 == "" && f.Tone.IsSilent() && f.Hold == 0
}
