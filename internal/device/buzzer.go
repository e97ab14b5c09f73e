// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import (
	"sync"
	"time"
)

// Tone is one buzzer note. A zero Tone is silence.
type Tone struct {
	FrequencyHz int
	Duration    time.Duration
}

// IsSilent reports whether t produces no sound.
func (t Tone) IsSilent() bool {
	return t.FrequencyHz <= 0 || t.Duration <= 0
}

// Buzzer is the tone capability. Emit is fire-and-forget; any spacing delay
// is the caller's concern (it arrives as the Feedback hold).
type Buzzer interface {
	Emit(t Tone)
}

// MemoryBuzzer records emitted tones for tests.
type MemoryBuzzer struct {
	mu    sync.Mutex
	tones []Tone
}

// NewMemoryBuzzer creates an empty MemoryBuzzer.
func NewMemoryBuzzer() *MemoryBuzzer {
	return &MemoryBuzzer{}
}

// Emit records t. Silent tones are ignored.
func (b *MemoryBuzzer) Emit(t Tone) {
	if t.IsSilent() {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tones = append(b.tones, t)
}

// Tones returns a copy of the emitted tones in order.
func (b *MemoryBuzzer) Tones() []Tone {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Tone, len(b.tones))
	copy(out, b.tones)
	return out
}
