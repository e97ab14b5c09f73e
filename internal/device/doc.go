// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device defines the peripheral capabilities of the lock hardware
// and the cooperative polling loop that drives them.
//
// The controller core never talks to hardware directly; it consumes and
// produces the small value types defined here:
//
//   - Key: one debounced keypad key (digits plus function keys)
//   - Tone: a buzzer note (frequency + duration)
//   - Feedback: a display/tone effect with an input-hold window
//
// The capabilities themselves are interfaces (Keypad, Display, Buzzer) so the
// same core runs against the terminal simulator, the headless loop used in
// tests, or a real peripheral driver.
package device
