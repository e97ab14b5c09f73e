// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"sync"
)

// =============================================================================
// BYTE STORE CAPABILITY
// =============================================================================

// Erased is the value an address reads back before it is ever written.
// Matches the erased state of EEPROM cells.
const Erased byte = 0xFF

// DefaultSize is the default number of addressable bytes. The credential
// record needs only MaxLen+1 bytes; the rest is headroom.
const DefaultSize = 64

// ByteStore is the persistent storage capability: durable byte cells
// addressed from 0 to Size()-1.
type ByteStore interface {
	// ReadByte returns the byte at addr.
	ReadByte(addr int) (byte, error)

	// WriteByte durably stores b at addr.
	WriteByte(addr int, b byte) error

	// Size returns the number of addressable bytes.
	Size() int
}

// ErrAddressRange is returned for reads or writes outside [0, Size).
var ErrAddressRange = fmt.Errorf("storage: address out of range")

// =============================================================================
// MEMORY STORE
// =============================================================================

// MemStore is an in-memory ByteStore. It is not durable; it exists for tests
// and for simulator runs that should not touch the filesystem.
type MemStore struct {
	mu    sync.Mutex
	cells []byte
}

// NewMemStore creates a MemStore with size addressable bytes, all erased.
// A size <= 0 falls back to DefaultSize.
func NewMemStore(size int) *MemStore {
	if size <= 0 {
		size = DefaultSize
	}
	cells := make([]byte, size)
	for i := range cells {
		cells[i] = Erased
	}
	return &MemStore{cells: cells}
}

// ReadByte returns the byte at addr.
func (m *MemStore) ReadByte(addr int) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if addr < 0 || addr >= len(m.cells) {
		return 0, fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}
	return m.cells[addr], nil
}

// WriteByte stores b at addr.
func (m *MemStore) WriteByte(addr int, b byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if addr < 0 || addr >= len(m.cells) {
		return fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}
	m.cells[addr] = b
	return nil
}

// Size returns the number of addressable bytes.
func (m *MemStore) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cells)
}
