// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package credential

import (
	"fmt"
	"strings"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// MaxLen is the maximum credential length in digits.
const MaxLen = 6

// DefaultPIN is the factory credential a freshly provisioned (or corrupt)
// device falls back to until it is explicitly changed.
const DefaultPIN = "1234"

// =============================================================================
// CREDENTIAL
// =============================================================================

// Credential is an ordered sequence of decimal digits, 1..MaxLen long.
// The zero value is empty and never valid for storage; construct via Parse
// or Buffer.Credential.
type Credential struct {
	digits [MaxLen]byte
	n      int
}

// Parse builds a Credential from a string of ASCII digits.
func Parse(s string) (Credential, error) {
	var c Credential
	if len(s) == 0 {
		return c, fmt.Errorf("credential must not be empty")
	}
	if len(s) > MaxLen {
		return c, fmt.Errorf("credential exceeds %d digits", MaxLen)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return c, fmt.Errorf("credential must be decimal digits, got %q", s[i])
		}
		c.digits[i] = s[i] - '0'
	}
	c.n = len(s)
	return c, nil
}

// MustParse is Parse for compile-time constants; it panics on invalid input.
func MustParse(s string) Credential {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the factory credential.
func Default() Credential {
	return MustParse(DefaultPIN)
}

// Len returns the number of digits.
func (c Credential) Len() int {
	return c.n
}

// IsEmpty reports whether c holds no digits.
func (c Credential) IsEmpty() bool {
	return c.n == 0
}

// Digit returns the digit value at position i (0-9).
func (c Credential) Digit(i int) byte {
	return c.digits[i]
}

// Equal reports exact sequence equality with other.
func (c Credential) Equal(other Credential) bool {
	if c.n != other.n {
		return false
	}
	for i := 0; i < c.n; i++ {
		if c.digits[i] != other.digits[i] {
			return false
		}
	}
	return true
}

// String returns the credential digits. Callers that render user-facing text
// want Mask instead.
func (c Credential) String() string {
	var b strings.Builder
	for i := 0; i < c.n; i++ {
		b.WriteByte('0' + c.digits[i])
	}
	return b.String()
}

// Mask returns one asterisk per digit for display.
func (c Credential) Mask() string {
	return strings.Repeat("*", c.n)
}

// =============================================================================
// ENTRY BUFFER
// =============================================================================

// Buffer is the pending-input buffer for one entry attempt: an ordered,
// mutable digit sequence of length 0..MaxLen. It is never persisted.
type Buffer struct {
	digits [MaxLen]byte
	n      int
}

// Append adds a digit (0-9) to the end of the buffer. It returns false
// without altering the buffer when the buffer is already at MaxLen.
func (b *Buffer) Append(digit byte) bool {
	if b.n >= MaxLen {
		return false
	}
	b.digits[b.n] = digit
	b.n++
	return true
}

// Backspace removes the last digit. On an empty buffer it is a no-op and
// returns false.
func (b *Buffer) Backspace() bool {
	if b.n == 0 {
		return false
	}
	b.n--
	return true
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.n = 0
}

// Len returns the number of buffered digits.
func (b *Buffer) Len() int {
	return b.n
}

// IsEmpty reports whether the buffer holds no digits.
func (b *Buffer) IsEmpty() bool {
	return b.n == 0
}

// Credential snapshots the buffer contents as a Credential value.
func (b *Buffer) Credential() Credential {
	var c Credential
	copy(c.digits[:], b.digits[:b.n])
	c.n = b.n
	return c
}

// Mask returns one asterisk per buffered digit for display.
func (b *Buffer) Mask() string {
	return strings.Repeat("*", b.n)
}
