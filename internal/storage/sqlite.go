// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore is a ByteStore backed by a local SQLite database with one
// (addr, value) row per written cell. Unwritten addresses read back erased.
//
// SQLite gives each WriteByte transactional durability for free, which is
// strictly stronger than the device contract requires.
type SQLiteStore struct {
	db   *sql.DB
	size int
}

// OpenSQLiteStore opens (or creates) the database at path with size
// addressable bytes. A size <= 0 falls back to DefaultSize.
func OpenSQLiteStore(path string, size int) (*SQLiteStore, error) {
	if size <= 0 {
		size = DefaultSize
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}

	// Single writer; the driver serializes access to one connection.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS cells (
		addr  INTEGER PRIMARY KEY,
		value INTEGER NOT NULL CHECK (value BETWEEN 0 AND 255)
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create storage schema: %w", err)
	}

	return &SQLiteStore{db: db, size: size}, nil
}

// ReadByte returns the byte at addr. Addresses never written read as Erased.
func (s *SQLiteStore) ReadByte(addr int) (byte, error) {
	if addr < 0 || addr >= s.size {
		return 0, fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}

	var value int
	err := s.db.QueryRow(`SELECT value FROM cells WHERE addr = ?`, addr).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Erased, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cell %d: %w", addr, err)
	}
	return byte(value), nil
}

// WriteByte durably stores b at addr.
func (s *SQLiteStore) WriteByte(addr int, b byte) error {
	if addr < 0 || addr >= s.size {
		return fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}

	_, err := s.db.Exec(
		`INSERT INTO cells (addr, value) VALUES (?, ?)
		 ON CONFLICT(addr) DO UPDATE SET value = excluded.value`,
		addr, int(b),
	)
	if err != nil {
		return fmt.Errorf("failed to write cell %d: %w", addr, err)
	}
	return nil
}

// Size returns the number of addressable bytes.
func (s *SQLiteStore) Size() int {
	return s.size
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
