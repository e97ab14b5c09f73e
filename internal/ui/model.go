// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/config"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/device"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/lock"
	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// tickMsg drives the display refresh and the feedback-hold expiry.
type tickMsg time.Time

// remoteLineMsg carries one line received on the remote override channel.
type remoteLineMsg string

// remoteClosedMsg signals that the remote channel shut down.
type remoteClosedMsg struct{}

const refreshInterval = 50 * time.Millisecond

// toastDuration is how long a buzzer toast stays visible.
const toastDuration = 1500 * time.Millisecond

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the simulator. Its Update function is
// the sole owner of the lock controller.
type Model struct {
	ctrl  *lock.Controller
	cfg   *config.Config
	theme *styles.Theme

	width  int
	height int

	// LCD content currently shown.
	line1 string
	line2 string

	// holdUntil is the end of the current feedback hold window; keypad input
	// is ignored until it passes, like the blocking hold on the device.
	holdUntil time.Time

	// Buzzer toast.
	lastTone   device.Tone
	lastToneAt time.Time

	// Remote console.
	remoteInput   textinput.Model
	remoteFocused bool
	remoteLines   <-chan string
	remoteAddr    string

	// Help overlay.
	showHelp bool
	help     string

	quitting bool
}

// New creates the simulator model. remoteLines may be nil when the TCP
// channel is disabled; the in-UI console still works.
func New(ctrl *lock.Controller, cfg *config.Config, remoteLines <-chan string, remoteAddr string) Model {
	ti := textinput.New()
	ti.Placeholder = "remote line (try UNLOCK)"
	ti.CharLimit = cfg.Remote.MaxLineBytes
	ti.Width = 30

	line1, line2 := ctrl.Prompt()

	return Model{
		ctrl:        ctrl,
		cfg:         cfg,
		theme:       styles.NewTheme(cfg.UI.Theme),
		line1:       line1,
		line2:       line2,
		remoteInput: ti,
		remoteLines: remoteLines,
		remoteAddr:  remoteAddr,
	}
}

// Init starts the refresh ticker and the remote-channel reader.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitRemote(m.remoteLines))
}

// tick schedules the next display refresh.
func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitRemote blocks on the remote channel and surfaces the next line as a
// message. The blocking happens inside the command goroutine; the controller
// itself is only touched from Update.
func waitRemote(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return remoteClosedMsg{}
		}
		return remoteLineMsg(line)
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles one message. At most one controller step happens per call.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showHelp {
			m.help = renderHelp(m.theme.GlamourStyle(), m.helpWidth())
		}
		return m, nil

	case tickMsg:
		// Once the hold window passes, the idle prompt takes the display
		// back. The locked banner refreshes through here every cycle.
		if time.Now().After(m.holdUntil) {
			m.line1, m.line2 = m.ctrl.Prompt()
		}
		return m, tick()

	case remoteLineMsg:
		m.applyFeedback(m.ctrl.HandleRemoteLine(string(msg)))
		return m, waitRemote(m.remoteLines)

	case remoteClosedMsg:
		m.remoteLines = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a terminal key to the console, the help overlay or the
// keypad.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.remoteFocused = !m.remoteFocused
		if m.remoteFocused {
			m.remoteInput.Focus()
		} else {
			m.remoteInput.Blur()
		}
		return m, nil

	case "?":
		if !m.remoteFocused {
			m.showHelp = !m.showHelp
			if m.showHelp && m.help == "" {
				m.help = renderHelp(m.theme.GlamourStyle(), m.helpWidth())
			}
			return m, nil
		}
	}

	if m.remoteFocused {
		return m.handleConsoleKey(msg)
	}

	if m.showHelp {
		// Any keypad key dismisses the overlay first.
		m.showHelp = false
		return m, nil
	}

	// Feedback hold: the device ignores input during the hold window.
	if time.Now().Before(m.holdUntil) {
		return m, nil
	}

	if key, ok := keypadKeyFor(msg); ok {
		m.applyFeedback(m.ctrl.HandleKey(key))
	}
	return m, nil
}

// handleConsoleKey feeds the remote console text input. Enter injects the
// line as if it had arrived on the override channel.
func (m Model) handleConsoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		line := m.remoteInput.Value()
		m.remoteInput.SetValue("")
		m.applyFeedback(m.ctrl.HandleRemoteLine(line))
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.remoteFocused = false
		m.remoteInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.remoteInput, cmd = m.remoteInput.Update(msg)
	return m, cmd
}

// applyFeedback realizes a controller feedback: swap the LCD content, post
// the buzzer toast, open the hold window.
func (m *Model) applyFeedback(fb device.Feedback, acted bool) {
	if !acted || fb.IsZero() {
		return
	}
	if fb.Line1 != "" || fb.Line2 != "" {
		m.line1, m.line2 = fb.Line1, fb.Line2
	}
	if !fb.Tone.IsSilent() {
		m.lastTone = fb.Tone
		m.lastToneAt = time.Now()
	}
	if fb.Hold > 0 {
		m.holdUntil = time.Now().Add(fb.Hold)
	}
}

// helpWidth returns the word-wrap width for the help overlay.
func (m Model) helpWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 60
	}
	if w > 80 {
		w = 80
	}
	return w
}
