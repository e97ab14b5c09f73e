// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import (
	"context"
	"testing"
	"time"
)

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
		ok   bool
	}{
		{'0', Key0, true},
		{'9', Key9, true},
		{'*', KeyBackspace, true},
		{'#', KeySubmit, true},
		{'A', KeyChange, true},
		{'a', KeyChange, true},
		{'B', KeyCancel, true},
		{'C', KeyReservedC, true},
		{'x', 0, false},
		{' ', 0, false},
	}

	for _, tt := range tests {
		got, ok := KeyFromRune(tt.r)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyFromRune(%q) = %v, %v; want %v, %v", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyDigit(t *testing.T) {
	if !Key7.IsDigit() || Key7.Digit() != 7 {
		t.Errorf("Key7: IsDigit=%v Digit=%d", Key7.IsDigit(), Key7.Digit())
	}
	if KeySubmit.IsDigit() {
		t.Error("KeySubmit.IsDigit() = true")
	}
}

func TestQueueKeypadOrder(t *testing.T) {
	q := NewQueueKeypad()
	if _, ok := q.Poll(); ok {
		t.Fatal("empty keypad returned a key")
	}
	q.Press(Key1, Key2, KeySubmit)
	for _, want := range []Key{Key1, Key2, KeySubmit} {
		got, ok := q.Poll()
		if !ok || got != want {
			t.Fatalf("Poll = %v, %v; want %v", got, ok, want)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Fatal("drained keypad returned a key")
	}
}

// scriptedMachine is a minimal StateMachine used to test the loop's
// dispatch, feedback and hold behavior.
type scriptedMachine struct {
	keys    []Key
	remotes []string
}

func (m *scriptedMachine) HandleKey(k Key) (Feedback, bool) {
	m.keys = append(m.keys, k)
	return Feedback{
		Line1: "key " + k.String(),
		Tone:  Tone{FrequencyHz: 1000, Duration: 50 * time.Millisecond},
		Hold:  10 * time.Millisecond,
	}, true
}

func (m *scriptedMachine) HandleRemoteLine(line string) (Feedback, bool) {
	m.remotes = append(m.remotes, line)
	return Feedback{Line1: "remote"}, true
}

func (m *scriptedMachine) Prompt() (string, string) {
	return "prompt", ""
}

func TestLoopDispatchesKeypadThenRemote(t *testing.T) {
	machine := &scriptedMachine{}
	keypad := NewQueueKeypad()
	display := NewMemoryDisplay()
	buzzer := NewMemoryBuzzer()
	remote := make(chan string, 1)

	keypad.Press(Key1, KeySubmit)
	remote <- "UNLOCK"

	loop := NewLoop(machine, keypad, display, buzzer,
		WithRemote(remote),
		WithSleep(func(time.Duration) {}),
	)

	// Keypad events drain before the remote line is read.
	for loop.Step() {
	}

	if len(machine.keys) != 2 || machine.keys[0] != Key1 || machine.keys[1] != KeySubmit {
		t.Errorf("keys = %v", machine.keys)
	}
	if len(machine.remotes) != 1 || machine.remotes[0] != "UNLOCK" {
		t.Errorf("remotes = %v", machine.remotes)
	}
	if got := buzzer.Tones(); len(got) != 2 {
		t.Errorf("tones = %v, want 2 key tones", got)
	}
}

func TestLoopRunRefreshesPromptAndStops(t *testing.T) {
	machine := &scriptedMachine{}
	keypad := NewQueueKeypad()
	display := NewMemoryDisplay()
	buzzer := NewMemoryBuzzer()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	loop := NewLoop(machine, keypad, display, buzzer,
		WithPollInterval(time.Millisecond),
		WithSleep(func(time.Duration) {}),
	)
	go func() { done <- loop.Run(ctx) }()

	// Give the loop a few iterations, then stop it.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	if display.Renders() == 0 {
		t.Error("prompt was never rendered")
	}
	l1, _ := display.Lines()
	if l1 != "prompt" {
		t.Errorf("last line1 = %q, want prompt", l1)
	}
}
