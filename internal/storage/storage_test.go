// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMemStoreErasedState(t *testing.T) {
	s := NewMemStore(8)
	for addr := 0; addr < s.Size(); addr++ {
		b, err := s.ReadByte(addr)
		if err != nil {
			t.Fatalf("ReadByte(%d): %v", addr, err)
		}
		if b != Erased {
			t.Errorf("ReadByte(%d) = %#x, want erased %#x", addr, b, Erased)
		}
	}
}

func TestMemStoreReadWrite(t *testing.T) {
	s := NewMemStore(8)
	if err := s.WriteByte(0, 0x04); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	b, err := s.ReadByte(0)
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0x04 {
		t.Errorf("ReadByte = %#x, want 0x04", b)
	}
}

func TestMemStoreAddressRange(t *testing.T) {
	s := NewMemStore(4)
	if _, err := s.ReadByte(4); !errors.Is(err, ErrAddressRange) {
		t.Errorf("ReadByte(4) err = %v, want ErrAddressRange", err)
	}
	if err := s.WriteByte(-1, 0); !errors.Is(err, ErrAddressRange) {
		t.Errorf("WriteByte(-1) err = %v, want ErrAddressRange", err)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")

	s, err := OpenFileStore(path, 16)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	if err := s.WriteByte(0, 4); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	for i, d := range []byte{1, 2, 3, 4} {
		if err := s.WriteByte(1+i, d); err != nil {
			t.Fatalf("WriteByte(%d): %v", 1+i, err)
		}
	}

	// Reopen and verify the image survived.
	s2, err := OpenFileStore(path, 16)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	b, err := s2.ReadByte(0)
	if err != nil || b != 4 {
		t.Fatalf("ReadByte(0) = %v, %v; want 4", b, err)
	}
	for i, want := range []byte{1, 2, 3, 4} {
		b, err := s2.ReadByte(1 + i)
		if err != nil || b != want {
			t.Errorf("ReadByte(%d) = %v, %v; want %d", 1+i, b, err, want)
		}
	}

	// Addresses never written stay erased.
	b, _ = s2.ReadByte(10)
	if b != Erased {
		t.Errorf("ReadByte(10) = %#x, want erased", b)
	}
}

func TestFileStoreFreshImageIsErased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")
	s, err := OpenFileStore(path, 8)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	b, err := s.ReadByte(0)
	if err != nil || b != Erased {
		t.Errorf("fresh ReadByte(0) = %#x, %v; want erased", b, err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.db")

	s, err := OpenSQLiteStore(path, 16)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	defer s.Close()

	// Unwritten cells read erased.
	b, err := s.ReadByte(3)
	if err != nil || b != Erased {
		t.Fatalf("ReadByte(3) = %#x, %v; want erased", b, err)
	}

	if err := s.WriteByte(3, 7); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	// Overwrite the same cell.
	if err := s.WriteByte(3, 9); err != nil {
		t.Fatalf("WriteByte overwrite: %v", err)
	}
	b, err = s.ReadByte(3)
	if err != nil || b != 9 {
		t.Fatalf("ReadByte(3) = %#x, %v; want 9", b, err)
	}

	if _, err := s.ReadByte(16); !errors.Is(err, ErrAddressRange) {
		t.Errorf("ReadByte(16) err = %v, want ErrAddressRange", err)
	}
}
