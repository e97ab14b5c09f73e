// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package lock

import (
	"fmt"
	"time"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/device"
)

// =============================================================================
// TONES
// =============================================================================

// Tones groups the buzzer notes the controller emits. Frequencies and
// durations are configurable; the mapping of event to tone is not.
type Tones struct {
	Key     device.Tone
	Success device.Tone
	Error   device.Tone
	Lockout device.Tone
}

// DefaultTones returns the factory tone set.
func DefaultTones() Tones {
	return Tones{
		Key:     device.Tone{FrequencyHz: 880, Duration: 60 * time.Millisecond},
		Success: device.Tone{FrequencyHz: 1320, Duration: 300 * time.Millisecond},
		Error:   device.Tone{FrequencyHz: 220, Duration: 400 * time.Millisecond},
		Lockout: device.Tone{FrequencyHz: 110, Duration: 800 * time.Millisecond},
	}
}

// =============================================================================
// HOLD WINDOWS
// =============================================================================

// Feedback holds block the operator's input for a fixed window. Simplicity
// over responsiveness: a single human operator, no concurrent session.
const (
	holdShort   = 500 * time.Millisecond
	holdMessage = 1200 * time.Millisecond
	holdLockout = 1500 * time.Millisecond
)

// =============================================================================
// FEEDBACK CATALOGUE
// =============================================================================

// The display is a 16x2 character module; every line below fits 16 columns.

func (c *Controller) fbEcho(line1 string) device.Feedback {
	return device.Feedback{
		Line1: line1,
		Line2: c.buf.Mask(),
		Tone:  c.tones.Key,
	}
}

func (c *Controller) fbMaxLength() device.Feedback {
	return device.Feedback{
		Line1: fmt.Sprintf("Max %d digits", maxLen),
		Line2: c.buf.Mask(),
		Tone:  c.tones.Error,
		Hold:  holdShort,
	}
}

func (c *Controller) fbNoInput() device.Feedback {
	return device.Feedback{
		Line1: "No PIN entered",
		Line2: "Type digits 0-9",
		Tone:  c.tones.Error,
		Hold:  holdShort,
	}
}

func (c *Controller) fbGranted() device.Feedback {
	return device.Feedback{
		Line1: "Access granted",
		Line2: "Welcome",
		Tone:  c.tones.Success,
		Hold:  holdMessage,
	}
}

func (c *Controller) fbDenied(remaining int) device.Feedback {
	plural := "s"
	if remaining == 1 {
		plural = ""
	}
	return device.Feedback{
		Line1: "Access denied",
		Line2: fmt.Sprintf("%d attempt%s left", remaining, plural),
		Tone:  c.tones.Error,
		Hold:  holdMessage,
	}
}

func (c *Controller) fbLockedOut() device.Feedback {
	return device.Feedback{
		Line1: "LOCKED OUT",
		Line2: "Await override",
		Tone:  c.tones.Lockout,
		Hold:  holdLockout,
	}
}

func (c *Controller) fbRemoteUnlocked() device.Feedback {
	return device.Feedback{
		Line1: "Remote override",
		Line2: "Lock re-armed",
		Tone:  c.tones.Success,
		Hold:  holdMessage,
	}
}

func (c *Controller) fbHint() device.Feedback {
	return device.Feedback{
		Line1: "0-9 PIN  #=enter",
		Line2: "*=del  A=new PIN",
		Tone:  c.tones.Key,
		Hold:  holdShort,
	}
}

func (c *Controller) fbCancelled() device.Feedback {
	return device.Feedback{
		Line1: "Change cancelled",
		Line2: "PIN unchanged",
		Tone:  c.tones.Key,
		Hold:  holdShort,
	}
}

func (c *Controller) fbWrongCurrent() device.Feedback {
	return device.Feedback{
		Line1: "Wrong PIN",
		Line2: "Change aborted",
		Tone:  c.tones.Error,
		Hold:  holdMessage,
	}
}

func (c *Controller) fbConfirmMismatch() device.Feedback {
	return device.Feedback{
		Line1: "PINs differ",
		Line2: "Not changed",
		Tone:  c.tones.Error,
		Hold:  holdMessage,
	}
}

func (c *Controller) fbSaved() device.Feedback {
	return device.Feedback{
		Line1: "PIN updated",
		Line2: "Saved",
		Tone:  c.tones.Success,
		Hold:  holdMessage,
	}
}

func (c *Controller) fbSaveFailed() device.Feedback {
	return device.Feedback{
		Line1: "Save failed",
		Line2: "PIN unchanged",
		Tone:  c.tones.Error,
		Hold:  holdMessage,
	}
}
