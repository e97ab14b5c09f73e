// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package credential

import (
	"fmt"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/storage"
)

// =============================================================================
// PERSISTED LAYOUT
// =============================================================================

// The credential record occupies the first MaxLen+1 bytes of storage:
//
//	addr 0            credential length (1..MaxLen; anything else, including
//	                  the erased 0xFF cell, means uninitialized/corrupt)
//	addr 1..length    credential digits as raw byte values (0-9)
const (
	addrLength = 0
	addrDigits = 1
)

// =============================================================================
// STORE
// =============================================================================

// Store persists a single credential over the byte-storage capability.
type Store struct {
	bytes storage.ByteStore
}

// NewStore creates a Store over bs.
func NewStore(bs storage.ByteStore) *Store {
	return &Store{bytes: bs}
}

// Load returns the persisted credential. A length byte outside [1, MaxLen]
// is treated as uninitialized or corrupt, not a fatal error, and the
// factory default is returned instead. Storage read errors degrade the same
// way: the device must always boot to a verifiable state.
func (s *Store) Load() Credential {
	length, err := s.bytes.ReadByte(addrLength)
	if err != nil || length < 1 || int(length) > MaxLen {
		return Default()
	}

	var c Credential
	for i := 0; i < int(length); i++ {
		d, err := s.bytes.ReadByte(addrDigits + i)
		if err != nil || d > 9 {
			// A stored digit outside 0-9 means the record is stale or torn;
			// treat the whole record as corrupt.
			return Default()
		}
		c.digits[i] = d
	}
	c.n = int(length)
	return c
}

// Save persists c: length byte first, then each digit byte. Over-length or
// empty credentials are silently rejected (caller precondition violation;
// input-length enforcement upstream makes them unreachable).
//
// There is no atomicity guarantee across the individual byte writes; a power
// loss mid-save can leave a stale-content record whose length still parses.
// Known limitation carried over from the device storage contract.
func (s *Store) Save(c Credential) error {
	if c.n < 1 || c.n > MaxLen {
		return nil
	}

	if err := s.bytes.WriteByte(addrLength, byte(c.n)); err != nil {
		return fmt.Errorf("failed to persist credential length: %w", err)
	}
	for i := 0; i < c.n; i++ {
		if err := s.bytes.WriteByte(addrDigits+i, c.digits[i]); err != nil {
			return fmt.Errorf("failed to persist credential digit %d: %w", i, err)
		}
	}
	return nil
}

// Reset writes the uninitialized sentinel so the next Load returns the
// factory default. Used by the factory-reset command.
func (s *Store) Reset() error {
	if err := s.bytes.WriteByte(addrLength, storage.Erased); err != nil {
		return fmt.Errorf("failed to reset credential record: %w", err)
	}
	return nil
}
