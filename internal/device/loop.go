// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import (
	"context"
	"time"
)

// =============================================================================
// COOPERATIVE POLLING LOOP
// =============================================================================

// StateMachine is what the loop drives: the lock controller. All three
// methods return the feedback to perform and whether the event produced a
// step at all.
type StateMachine interface {
	// HandleKey processes one keypad key.
	HandleKey(k Key) (Feedback, bool)

	// HandleRemoteLine processes one line from the remote channel.
	HandleRemoteLine(line string) (Feedback, bool)

	// Prompt returns the idle display content for the current state.
	Prompt() (line1, line2 string)
}

// Loop is the single-threaded cooperative polling loop: one iteration
// performs at most one state transition. Keypad and remote polls are
// non-blocking; feedback holds block the loop on purpose: the device has a
// single operator and no event queueing requirement.
type Loop struct {
	machine StateMachine
	keypad  Keypad
	display Display
	buzzer  Buzzer
	remote  <-chan string

	interval time.Duration
	sleep    func(time.Duration)
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithPollInterval sets the idle poll interval.
func WithPollInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithRemote attaches the remote channel line source.
func WithRemote(lines <-chan string) LoopOption {
	return func(l *Loop) {
		l.remote = lines
	}
}

// WithSleep replaces the blocking sleep. Tests use this to run the loop at
// full speed.
func WithSleep(sleep func(time.Duration)) LoopOption {
	return func(l *Loop) {
		if sleep != nil {
			l.sleep = sleep
		}
	}
}

// NewLoop creates a Loop over the given machine and peripherals.
func NewLoop(machine StateMachine, keypad Keypad, display Display, buzzer Buzzer, opts ...LoopOption) *Loop {
	l := &Loop{
		machine:  machine,
		keypad:   keypad,
		display:  display,
		buzzer:   buzzer,
		interval: 20 * time.Millisecond,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run polls until ctx is done. Every iteration refreshes the idle prompt
// (the locked banner must be redrawn each cycle), then dispatches at most one
// pending event.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.display.Render(l.machine.Prompt())

		if l.Step() {
			continue
		}

		l.sleep(l.interval)
	}
}

// Step dispatches one pending event, preferring the keypad. It returns true
// when an event was consumed (even if the machine ignored it).
func (l *Loop) Step() bool {
	if key, ok := l.keypad.Poll(); ok {
		if fb, acted := l.machine.HandleKey(key); acted {
			l.perform(fb)
		}
		return true
	}

	if l.remote != nil {
		select {
		case line, ok := <-l.remote:
			if !ok {
				l.remote = nil
				return false
			}
			if fb, acted := l.machine.HandleRemoteLine(line); acted {
				l.perform(fb)
			}
			return true
		default:
		}
	}

	return false
}

// perform realizes a feedback effect: render, sound, hold.
func (l *Loop) perform(fb Feedback) {
	if fb.IsZero() {
		return
	}
	if fb.Line1 != "" || fb.Line2 != "" {
		l.display.Render(fb.Line1, fb.Line2)
	}
	if !fb.Tone.IsSilent() {
		l.buzzer.Emit(fb.Tone)
	}
	if fb.Hold > 0 {
		l.sleep(fb.Hold)
	}
}
