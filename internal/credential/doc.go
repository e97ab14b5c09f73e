// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package credential defines the numeric secret the lock verifies against
// and its persistence over the byte-storage capability.
//
// A Credential is a fixed-capacity sequence of decimal digits, 1 to MaxLen
// long. The Store persists it as a length byte followed by raw digit bytes;
// anything implausible in storage (uninitialized cells, out-of-range length)
// degrades to the factory default credential rather than an error; the
// device must always boot to a verifiable state.
package credential
