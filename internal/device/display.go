// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import "sync"

// Columns is the width of the character display in columns (16x2 module).
const Columns = 16

// Display is the two-line character display capability. Render overwrites
// the previous content entirely.
type Display interface {
	Render(line1, line2 string)
}

// MemoryDisplay records the most recent render. It backs the loop tests.
type MemoryDisplay struct {
	mu      sync.Mutex
	line1   string
	line2   string
	renders int
}

// NewMemoryDisplay creates an empty MemoryDisplay.
func NewMemoryDisplay() *MemoryDisplay {
	return &MemoryDisplay{}
}

// Render stores the lines.
func (d *MemoryDisplay) Render(line1, line2 string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.line1, d.line2 = line1, line2
	d.renders++
}

// Lines returns the most recently rendered lines.
func (d *MemoryDisplay) Lines() (string, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.line1, d.line2
}

// Renders returns the number of Render calls seen.
func (d *MemoryDisplay) Renders() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renders
}
