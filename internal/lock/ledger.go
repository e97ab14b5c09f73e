// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package lock

import (
	"sync"
	"time"
)

// =============================================================================
// ATTEMPT LEDGER
// =============================================================================

const (
	// DefaultMaxAttempts is the number of failed verifications before lockout.
	DefaultMaxAttempts = 3

	// DefaultLockoutDuration is the advisory lockout window. The expiry it
	// produces is recorded but never consulted: lockout is cleared solely by
	// the authenticated remote override. Kept because the device records it.
	DefaultLockoutDuration = 30 * time.Second
)

// AttemptOutcome is the result of recording a failed verification.
type AttemptOutcome struct {
	// Remaining is the number of attempts left after this failure.
	Remaining int

	// Exhausted is true when this failure consumed the last attempt and
	// triggered lockout.
	Exhausted bool
}

// Ledger tracks remaining verification attempts and lockout state for the
// single lock the device guards.
type Ledger struct {
	mu sync.Mutex

	maxAttempts     int
	lockoutDuration time.Duration
	now             func() time.Time

	remaining int
	locked    bool
	lockedAt  time.Time
	expiry    time.Time
}

// LedgerOption is a functional option for configuring a Ledger.
type LedgerOption func(*Ledger)

// WithMaxAttempts sets the number of failures before lockout.
func WithMaxAttempts(max int) LedgerOption {
	return func(l *Ledger) {
		if max > 0 {
			l.maxAttempts = max
		}
	}
}

// WithLockoutDuration sets the advisory lockout duration.
func WithLockoutDuration(d time.Duration) LedgerOption {
	return func(l *Ledger) {
		if d > 0 {
			l.lockoutDuration = d
		}
	}
}

// WithClock replaces the time source. Tests use this to pin the advisory
// expiry timestamp.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLedger creates a Ledger with the full attempt budget available.
func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{
		maxAttempts:     DefaultMaxAttempts,
		lockoutDuration: DefaultLockoutDuration,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.remaining = l.maxAttempts
	return l
}

// RecordFailure decrements the attempt counter. When the last attempt is
// consumed it enters lockout and stamps the advisory expiry. Calls while
// already locked out change nothing.
func (l *Ledger) RecordFailure() AttemptOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locked {
		return AttemptOutcome{Remaining: 0}
	}

	if l.remaining > 0 {
		l.remaining--
	}
	if l.remaining > 0 {
		return AttemptOutcome{Remaining: l.remaining}
	}

	l.locked = true
	l.lockedAt = l.now()
	l.expiry = l.lockedAt.Add(l.lockoutDuration)
	return AttemptOutcome{Remaining: 0, Exhausted: true}
}

// RecordSuccess resets the counter to the full attempt budget.
func (l *Ledger) RecordSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.remaining = l.maxAttempts
}

// IsLockedOut reports whether the device is locked out.
func (l *Ledger) IsLockedOut() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locked
}

// Remaining returns the attempts left before lockout.
func (l *Ledger) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}

// MaxAttempts returns the configured attempt budget.
func (l *Ledger) MaxAttempts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxAttempts
}

// ClearLockout exits lockout and restores the full attempt budget. Invoked
// only from the authenticated remote-override path.
func (l *Ledger) ClearLockout() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked = false
	l.lockedAt = time.Time{}
	l.expiry = time.Time{}
	l.remaining = l.maxAttempts
}

// LockoutExpiry returns the advisory expiry timestamp and whether the ledger
// is locked. Nothing in the controller consults it; timer-based recovery is
// deliberately absent and the field exists for status display only.
func (l *Ledger) LockoutExpiry() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.expiry, l.locked
}
