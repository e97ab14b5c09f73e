// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the terminal simulator for the lock hardware: a
// Bubble Tea program that renders the 16x2 character display, maps the
// keyboard onto the matrix keypad, sounds the buzzer as a visual toast, and
// injects remote-channel lines.
//
// The Update function is the single owner of the lock controller, so every
// state-machine step is serialized through the Bubble Tea event loop, just
// as the physical device serializes steps through its polling loop.
package ui
