// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import "sync"

// =============================================================================
// KEY TYPE
// =============================================================================

// Key is one debounced keypress from the matrix keypad.
type Key int

const (
	// Key0 through Key9 are the digit keys. Their digit value is Key - Key0.
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// KeyBackspace removes the last entered digit ('*' on the legend).
	KeyBackspace

	// KeySubmit submits the pending entry ('#' on the legend).
	KeySubmit

	// KeyChange starts the credential-change flow ('A' on the legend).
	KeyChange

	// KeyCancel aborts an in-progress change flow ('B' on the legend).
	KeyCancel

	// KeyReservedC, KeyReservedD and KeyReservedE are wired on the matrix but
	// have no function assigned.
	KeyReservedC
	KeyReservedD
	KeyReservedE
)

// IsDigit reports whether k is one of the ten digit keys.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// Digit returns the digit value (0-9) of a digit key. It is only meaningful
// when IsDigit reports true.
func (k Key) Digit() byte {
	return byte(k - Key0)
}

// String returns the keypad legend for k.
func (k Key) String() string {
	switch {
	case k.IsDigit():
		return string(rune('0' + k - Key0))
	case k == KeyBackspace:
		return "*"
	case k == KeySubmit:
		return "#"
	case k == KeyChange:
		return "A"
	case k == KeyCancel:
		return "B"
	case k == KeyReservedC:
		return "C"
	case k == KeyReservedD:
		return "D"
	case k == KeyReservedE:
		return "E"
	}
	return "?"
}

// KeyFromRune maps a legend character to its Key. The mapping accepts both
// cases for the letter keys.
func KeyFromRune(r rune) (Key, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	case r == '*':
		return KeyBackspace, true
	case r == '#':
		return KeySubmit, true
	case r == 'A' || r == 'a':
		return KeyChange, true
	case r == 'B' || r == 'b':
		return KeyCancel, true
	case r == 'C' || r == 'c':
		return KeyReservedC, true
	case r == 'D' || r == 'd':
		return KeyReservedD, true
	case r == 'E' || r == 'e':
		return KeyReservedE, true
	}
	return 0, false
}

// =============================================================================
// KEYPAD CAPABILITY
// =============================================================================

// Keypad is the non-blocking keypad capability: Poll returns the next pressed
// key if one is pending, with ok=false when nothing is buffered. Scanning and
// debouncing live behind this interface.
type Keypad interface {
	Poll() (Key, bool)
}

// QueueKeypad is an in-memory Keypad fed by Press. It backs the simulator and
// the scripted loop tests.
type QueueKeypad struct {
	mu   sync.Mutex
	keys []Key
}

// NewQueueKeypad creates an empty QueueKeypad.
func NewQueueKeypad() *QueueKeypad {
	return &QueueKeypad{}
}

// Press enqueues keys in order.
func (q *QueueKeypad) Press(keys ...Key) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = append(q.keys, keys...)
}

// Poll returns the oldest pending key, if any.
func (q *QueueKeypad) Poll() (Key, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.keys) == 0 {
		return 0, false
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, true
}

// Pending returns the number of buffered keys.
func (q *QueueKeypad) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.keys)
}
