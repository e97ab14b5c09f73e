// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lock implements the access-control core: credential verification,
// attempt accounting, lockout arbitration and the guarded credential-change
// protocol.
//
// # Components
//
//   - Ledger: tracks remaining verification attempts and lockout state.
//     Exhausting the attempts locks the device; only the remote override
//     clears it. The recorded lockout expiry is advisory and never consulted.
//   - Controller: the state machine. It owns all mutable state (volatile
//     credential, pending entry buffer, change-flow scratch state) and
//     performs at most one transition per handled event.
//
// # Ownership
//
// The Controller is not internally synchronized. Exactly one goroutine (the
// device loop or the simulator update function) may call its methods; remote
// channel lines reach that owner through a channel. This preserves the
// single-operator, one-step-at-a-time execution model of the device.
package lock
