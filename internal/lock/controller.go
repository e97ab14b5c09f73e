// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package lock

import (
	"strings"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/credential"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/device"
)

// maxLen mirrors the credential capacity for display text.
const maxLen = credential.MaxLen

// DefaultUnlockToken is the remote override token. The remote channel
// recognizes no other command.
const DefaultUnlockToken = "UNLOCK"

// =============================================================================
// STATES
// =============================================================================

// State is the top-level controller state.
type State int

const (
	// StateAwaitingEntry accepts keypad credential entry.
	StateAwaitingEntry State = iota

	// StateLockedOut ignores the keypad entirely; only the remote override
	// token exits this state. There is no timer-based exit.
	StateLockedOut

	// StateInChangeFlow runs the guarded credential-change protocol.
	StateInChangeFlow
)

// String returns a short name for s.
func (s State) String() string {
	switch s {
	case StateAwaitingEntry:
		return "awaiting-entry"
	case StateLockedOut:
		return "locked-out"
	case StateInChangeFlow:
		return "change-flow"
	}
	return "unknown"
}

// ChangeStep is the sub-state of the credential-change protocol.
type ChangeStep int

const (
	// ChangeIdle means no change session is active.
	ChangeIdle ChangeStep = iota

	// ChangeAwaitingCurrent re-authenticates the operator against the stored
	// credential before anything else. This is the system's only
	// re-authentication point.
	ChangeAwaitingCurrent

	// ChangeAwaitingNew collects the replacement candidate.
	ChangeAwaitingNew

	// ChangeAwaitingConfirm collects the confirmation that must byte-equal
	// the candidate before the commit.
	ChangeAwaitingConfirm
)

// String returns a short name for st.
func (st ChangeStep) String() string {
	switch st {
	case ChangeIdle:
		return "idle"
	case ChangeAwaitingCurrent:
		return "awaiting-current"
	case ChangeAwaitingNew:
		return "awaiting-new"
	case ChangeAwaitingConfirm:
		return "awaiting-confirm"
	}
	return "unknown"
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller is the lock state machine. It is the sole owner of the volatile
// credential, the pending entry buffer, the change-flow scratch state and the
// top-level state tag. Not internally synchronized; see the package doc.
type Controller struct {
	store  *credential.Store
	ledger *Ledger
	tones  Tones
	token  string

	cred      credential.Credential
	buf       credential.Buffer
	state     State
	step      ChangeStep
	candidate credential.Credential
}

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*Controller)

// WithTones replaces the factory tone set.
func WithTones(t Tones) ControllerOption {
	return func(c *Controller) {
		c.tones = t
	}
}

// WithUnlockToken replaces the remote override token.
func WithUnlockToken(token string) ControllerOption {
	return func(c *Controller) {
		if token != "" {
			c.token = token
		}
	}
}

// NewController creates a Controller, loading the persisted credential (or
// the factory default when storage is uninitialized).
func NewController(store *credential.Store, ledger *Ledger, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		ledger: ledger,
		tones:  DefaultTones(),
		token:  DefaultUnlockToken,
		state:  StateAwaitingEntry,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cred = store.Load()
	return c
}

// =============================================================================
// EVENT HANDLING
// =============================================================================

// HandleKey processes one keypad key and performs at most one transition.
// It returns ok=false when the event is ignored outright, which is every
// keypad event while locked out.
func (c *Controller) HandleKey(k device.Key) (device.Feedback, bool) {
	switch c.state {
	case StateLockedOut:
		// Keypad input is not dispatched at all during lockout.
		return device.Feedback{}, false
	case StateInChangeFlow:
		return c.handleChangeKey(k), true
	default:
		return c.handleEntryKey(k), true
	}
}

// handleEntryKey handles keys in the AwaitingEntry state.
func (c *Controller) handleEntryKey(k device.Key) device.Feedback {
	switch {
	case k.IsDigit():
		if !c.buf.Append(k.Digit()) {
			return c.fbMaxLength()
		}
		return c.fbEcho(promptEntry)

	case k == device.KeyBackspace:
		c.buf.Backspace()
		return c.fbEcho(promptEntry)

	case k == device.KeySubmit:
		return c.submitEntry()

	case k == device.KeyChange:
		c.buf.Clear()
		c.state = StateInChangeFlow
		c.step = ChangeAwaitingCurrent
		return c.fbEcho(promptCurrent)

	default:
		// Cancel and the reserved keys have no function here.
		return c.fbHint()
	}
}

// submitEntry compares the pending buffer against the stored credential.
func (c *Controller) submitEntry() device.Feedback {
	if c.buf.IsEmpty() {
		return c.fbNoInput()
	}

	entered := c.buf.Credential()
	c.buf.Clear()

	if entered.Equal(c.cred) {
		c.ledger.RecordSuccess()
		return c.fbGranted()
	}

	out := c.ledger.RecordFailure()
	if out.Exhausted {
		c.state = StateLockedOut
		return c.fbLockedOut()
	}
	return c.fbDenied(out.Remaining)
}

// handleChangeKey handles keys inside the change flow. Digit entry,
// backspace and length enforcement behave exactly as in AwaitingEntry; only
// submit differs per step.
func (c *Controller) handleChangeKey(k device.Key) device.Feedback {
	switch {
	case k == device.KeyCancel:
		c.abortChange()
		return c.fbCancelled()

	case k.IsDigit():
		if !c.buf.Append(k.Digit()) {
			return c.fbMaxLength()
		}
		return c.fbEcho(c.stepPrompt())

	case k == device.KeyBackspace:
		c.buf.Backspace()
		return c.fbEcho(c.stepPrompt())

	case k == device.KeySubmit:
		return c.submitChange()

	default:
		return c.fbHint()
	}
}

// submitChange advances the change protocol by one step.
func (c *Controller) submitChange() device.Feedback {
	if c.buf.IsEmpty() {
		return c.fbNoInput()
	}

	entered := c.buf.Credential()
	c.buf.Clear()

	switch c.step {
	case ChangeAwaitingCurrent:
		// SECURITY: Re-authentication guard. A mismatch cancels the whole
		// flow; it is not retried in place.
		if !entered.Equal(c.cred) {
			c.abortChange()
			return c.fbWrongCurrent()
		}
		c.step = ChangeAwaitingNew
		return c.fbEcho(promptNew)

	case ChangeAwaitingNew:
		c.candidate = entered
		c.step = ChangeAwaitingConfirm
		return c.fbEcho(promptConfirm)

	case ChangeAwaitingConfirm:
		// SECURITY: The confirm step must byte-equal the candidate; this is
		// the only credential mutation path. Anything else discards the
		// whole change.
		if !entered.Equal(c.candidate) {
			c.abortChange()
			return c.fbConfirmMismatch()
		}

		candidate := c.candidate
		c.abortChange()

		if err := c.store.Save(candidate); err != nil {
			// Volatile credential unchanged: the device keeps verifying
			// against what is actually persisted.
			return c.fbSaveFailed()
		}
		c.cred = candidate
		return c.fbSaved()
	}

	// ChangeIdle submit is unreachable while in the change flow.
	c.abortChange()
	return c.fbHint()
}

// abortChange discards all change-flow scratch state and returns to entry.
func (c *Controller) abortChange() {
	c.buf.Clear()
	c.candidate = credential.Credential{}
	c.step = ChangeIdle
	c.state = StateAwaitingEntry
}

// HandleRemoteLine processes one line from the remote channel. The only
// recognized command is the unlock token, compared case-sensitively after
// trimming surrounding whitespace, and only while locked out. Everything
// else is ignored.
func (c *Controller) HandleRemoteLine(line string) (device.Feedback, bool) {
	if c.state != StateLockedOut {
		return device.Feedback{}, false
	}
	if strings.TrimSpace(line) != c.token {
		return device.Feedback{}, false
	}

	c.ledger.ClearLockout()
	c.buf.Clear()
	c.state = StateAwaitingEntry
	return c.fbRemoteUnlocked(), true
}

// =============================================================================
// PROMPTS & ACCESSORS
// =============================================================================

const (
	promptEntry   = "Enter PIN:"
	promptCurrent = "Current PIN:"
	promptNew     = "New PIN:"
	promptConfirm = "Confirm PIN:"
)

// Prompt returns the idle display content for the current state. The locked
// banner is returned on every call so the polling loop refreshes it each
// cycle.
func (c *Controller) Prompt() (string, string) {
	switch c.state {
	case StateLockedOut:
		return "LOCKED OUT", "Await override"
	case StateInChangeFlow:
		return c.stepPrompt(), c.buf.Mask()
	default:
		return promptEntry, c.buf.Mask()
	}
}

// stepPrompt returns the first display line for the active change step.
func (c *Controller) stepPrompt() string {
	switch c.step {
	case ChangeAwaitingNew:
		return promptNew
	case ChangeAwaitingConfirm:
		return promptConfirm
	default:
		return promptCurrent
	}
}

// State returns the top-level state.
func (c *Controller) State() State {
	return c.state
}

// ChangeStep returns the active change-flow step.
func (c *Controller) ChangeStep() ChangeStep {
	return c.step
}

// AttemptsRemaining returns the attempts left before lockout.
func (c *Controller) AttemptsRemaining() int {
	return c.ledger.Remaining()
}

// BufferLen returns the number of digits pending in the entry buffer.
func (c *Controller) BufferLen() int {
	return c.buf.Len()
}
