// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistent byte-storage capability used to
// hold the lock credential across power cycles.
//
// The device contract is deliberately narrow: read a byte at an address,
// write a byte at an address, survive power loss. Three backends satisfy it:
//
//   - MemStore: volatile, erased-state bytes; used by tests and the simulator
//   - FileStore: a fixed-size image file rewritten atomically on every write
//   - SQLiteStore: one (addr, value) row per cell in a local database
//
// An address that has never been written reads back as the erased value
// (0xFF), matching EEPROM behavior.
package storage
