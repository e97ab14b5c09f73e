// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/util"
)

// FileStore is a ByteStore backed by a fixed-size image file: one file byte
// per storage address. The whole image is loaded at open and rewritten
// atomically on every WriteByte.
//
// RELIABILITY: The per-write rewrite sounds expensive but the image is tiny
// (64 bytes) and writes happen only when the credential changes. The atomic
// temp-file + fsync + rename pattern means a power loss mid-save leaves either
// the old image or the new one, never a torn file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	cells []byte
}

// OpenFileStore opens (or creates) the image file at path with size
// addressable bytes. A shorter existing image is padded with erased bytes; a
// longer one is clipped. A size <= 0 falls back to DefaultSize.
func OpenFileStore(path string, size int) (*FileStore, error) {
	if size <= 0 {
		size = DefaultSize
	}

	cells := make([]byte, size)
	for i := range cells {
		cells[i] = Erased
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		copy(cells, data)
	case os.IsNotExist(err):
		// First boot: start from the erased image without creating the file.
		// It is written on the first WriteByte.
	default:
		return nil, fmt.Errorf("failed to read storage image %s: %w", path, err)
	}

	return &FileStore{path: path, cells: cells}, nil
}

// ReadByte returns the byte at addr.
func (f *FileStore) ReadByte(addr int) (byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if addr < 0 || addr >= len(f.cells) {
		return 0, fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}
	return f.cells[addr], nil
}

// WriteByte stores b at addr and persists the image.
func (f *FileStore) WriteByte(addr int, b byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if addr < 0 || addr >= len(f.cells) {
		return fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}

	old := f.cells[addr]
	f.cells[addr] = b

	if err := util.AtomicWriteFile(f.path, f.cells, 0600); err != nil {
		// Keep the in-memory image consistent with what is on disk.
		f.cells[addr] = old
		return fmt.Errorf("failed to persist storage image: %w", err)
	}
	return nil
}

// Size returns the number of addressable bytes.
func (f *FileStore) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cells)
}

// Path returns the image file path.
func (f *FileStore) Path() string {
	return f.path
}
