// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// =============================================================================
// CONSOLE PERIPHERALS (headless loop)
// =============================================================================

// ReaderKeypad adapts a byte stream to the Keypad capability: a background
// goroutine decodes runes and enqueues the ones that map onto the keypad
// legend. A newline counts as submit so the loop is usable on a line-buffered
// terminal.
type ReaderKeypad struct {
	queue *QueueKeypad
}

// NewReaderKeypad starts reading r until EOF or read error.
func NewReaderKeypad(r io.Reader) *ReaderKeypad {
	k := &ReaderKeypad{queue: NewQueueKeypad()}
	go k.read(r)
	return k
}

func (k *ReaderKeypad) read(r io.Reader) {
	br := bufio.NewReader(r)
	for {
		ru, _, err := br.ReadRune()
		if err != nil {
			return
		}
		if ru == '\n' {
			k.queue.Press(KeySubmit)
			continue
		}
		if key, ok := KeyFromRune(ru); ok {
			k.queue.Press(key)
		}
	}
}

// Poll returns the next decoded key, if any.
func (k *ReaderKeypad) Poll() (Key, bool) {
	return k.queue.Poll()
}

// ConsoleDisplay renders the two display lines to a writer. It only writes
// when the content changes, so the continuous prompt refresh of the loop does
// not flood the terminal.
type ConsoleDisplay struct {
	mu    sync.Mutex
	w     io.Writer
	line1 string
	line2 string
	drawn bool
}

// NewConsoleDisplay creates a ConsoleDisplay over w.
func NewConsoleDisplay(w io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{w: w}
}

// Render writes the lines if they differ from the previous render.
func (d *ConsoleDisplay) Render(line1, line2 string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.drawn && line1 == d.line1 && line2 == d.line2 {
		return
	}
	d.line1, d.line2, d.drawn = line1, line2, true
	fmt.Fprintf(d.w, "[%s] [%s]\n", line1, line2)
}

// ConsoleBuzzer prints tone events to a writer.
type ConsoleBuzzer struct {
	w io.Writer
}

// NewConsoleBuzzer creates a ConsoleBuzzer over w.
func NewConsoleBuzzer(w io.Writer) *ConsoleBuzzer {
	return &ConsoleBuzzer{w: w}
}

// Emit prints the tone unless it is silent.
func (b *ConsoleBuzzer) Emit(t Tone) {
	if t.IsSilent() {
		return
	}
	fmt.Fprintf(b.w, "(tone %dHz %s)\n", t.FrequencyHz, t.Duration)
}
