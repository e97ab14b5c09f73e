// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package lock

import (
	"testing"
	"time"
)

func TestLedgerLocksOnExactlyMaxAttempts(t *testing.T) {
	l := NewLedger()

	// The (MaxAttempts-1)-th mismatch does not lock.
	for i := 0; i < DefaultMaxAttempts-1; i++ {
		out := l.RecordFailure()
		if out.Exhausted {
			t.Fatalf("failure %d triggered lockout early", i+1)
		}
		if want := DefaultMaxAttempts - 1 - i; out.Remaining != want {
			t.Errorf("failure %d: remaining = %d, want %d", i+1, out.Remaining, want)
		}
	}
	if l.IsLockedOut() {
		t.Fatal("locked out before the final attempt")
	}

	// The MaxAttempts-th mismatch does.
	out := l.RecordFailure()
	if !out.Exhausted || out.Remaining != 0 {
		t.Errorf("final failure: outcome = %+v, want exhausted", out)
	}
	if !l.IsLockedOut() {
		t.Error("not locked out after exhausting attempts")
	}
}

func TestLedgerSuccessResetsCounter(t *testing.T) {
	l := NewLedger()
	l.RecordFailure()
	l.RecordFailure()
	l.RecordSuccess()

	if got := l.Remaining(); got != DefaultMaxAttempts {
		t.Errorf("Remaining = %d, want %d", got, DefaultMaxAttempts)
	}
}

func TestLedgerClearLockout(t *testing.T) {
	l := NewLedger(WithMaxAttempts(2))
	l.RecordFailure()
	l.RecordFailure()
	if !l.IsLockedOut() {
		t.Fatal("expected lockout")
	}

	l.ClearLockout()
	if l.IsLockedOut() {
		t.Error("still locked out after clear")
	}
	if got := l.Remaining(); got != 2 {
		t.Errorf("Remaining = %d, want 2", got)
	}
}

func TestLedgerFailureWhileLockedIsNoOp(t *testing.T) {
	l := NewLedger(WithMaxAttempts(1))
	l.RecordFailure()

	out := l.RecordFailure()
	if out.Exhausted {
		t.Error("already-locked failure reported Exhausted again")
	}
	if !l.IsLockedOut() {
		t.Error("lockout lost")
	}
}

func TestLedgerAdvisoryExpiryStamped(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLedger(
		WithMaxAttempts(1),
		WithLockoutDuration(30*time.Second),
		WithClock(func() time.Time { return at }),
	)
	l.RecordFailure()

	expiry, locked := l.LockoutExpiry()
	if !locked {
		t.Fatal("expected lockout")
	}
	if want := at.Add(30 * time.Second); !expiry.Equal(want) {
		t.Errorf("expiry = %v, want %v", expiry, want)
	}

	// The expiry is advisory only: well past it, the ledger stays locked.
	at = at.Add(time.Hour)
	if !l.IsLockedOut() {
		t.Error("lockout expired on its own; only the remote override may clear it")
	}
}
