// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package remote

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultLinesPerMinute caps how many lines one connection may deliver.
	DefaultLinesPerMinute = 30

	// DefaultMaxLineBytes caps a single line. The only meaningful payload is
	// the unlock token; anything long is noise.
	DefaultMaxLineBytes = 256

	// lineBuffer is the capacity of the channel toward the controller owner.
	// The loop polls it non-blocking; overflow lines are dropped.
	lineBuffer = 16
)

// ErrClosed is returned by Serve after Close.
var ErrClosed = errors.New("remote: server closed")

// =============================================================================
// SERVER
// =============================================================================

// Server is the remote channel listener. Lines received from any connection
// are trimmed of the trailing newline and delivered on Lines() in arrival
// order.
type Server struct {
	limit    rate.Limit
	burst    int
	maxLine  int
	logw     io.Writer
	lines    chan string

	mu     sync.Mutex
	ln     net.Listener
	conns  map[string]net.Conn
	closed bool

	wg sync.WaitGroup
}

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithRateLimit sets the per-connection line budget per minute.
func WithRateLimit(linesPerMinute int) ServerOption {
	return func(s *Server) {
		if linesPerMinute > 0 {
			s.limit = rate.Limit(float64(linesPerMinute) / 60.0)
			s.burst = linesPerMinute
		}
	}
}

// WithMaxLineBytes sets the per-line length cap.
func WithMaxLineBytes(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxLine = n
		}
	}
}

// WithLogWriter sets the destination for operational log lines.
func WithLogWriter(w io.Writer) ServerOption {
	return func(s *Server) {
		if w != nil {
			s.logw = w
		}
	}
}

// NewServer creates a Server. Call Listen then Serve.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		limit:   rate.Limit(float64(DefaultLinesPerMinute) / 60.0),
		burst:   DefaultLinesPerMinute,
		maxLine: DefaultMaxLineBytes,
		logw:    io.Discard,
		lines:   make(chan string, lineBuffer),
		conns:   make(map[string]net.Conn),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen binds the TCP listener.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	return nil
}

// Addr returns the bound listener address, or "" before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Lines returns the channel carrying received lines toward the controller
// owner.
func (s *Server) Lines() <-chan string {
	return s.lines
}

// Serve accepts connections until Close. It returns ErrClosed on a clean
// shutdown.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return errors.New("remote: Serve before Listen")
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return ErrClosed
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		id := uuid.New().String()[:8]
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return ErrClosed
		}
		s.conns[id] = conn
		s.mu.Unlock()

		s.logf("remote: connection %s from %s", id, conn.RemoteAddr())

		s.wg.Add(1)
		go s.handleConn(id, conn)
	}
}

// handleConn reads lines from one connection until it closes or misbehaves.
func (s *Server) handleConn(id string, conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, id)
		s.mu.Unlock()
		s.logf("remote: connection %s closed", id)
	}()

	limiter := rate.NewLimiter(s.limit, s.burst)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, s.maxLine), s.maxLine)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if !limiter.Allow() {
			// Rate-limited lines are dropped, not queued: a flooding client
			// must not be able to bank override attempts.
			s.logf("remote: connection %s rate limited", id)
			continue
		}

		select {
		case s.lines <- line:
		default:
			s.logf("remote: connection %s line dropped (buffer full)", id)
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		// Over-long lines land here via bufio.ErrTooLong; the connection is
		// dropped rather than resynchronized.
		s.logf("remote: connection %s read error: %v", id, err)
	}
}

// Close stops the listener and drops all live connections. Safe to call more
// than once.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	ln := s.ln
	for _, conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}

	// Wait for connection handlers, then release the consumer.
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
	close(s.lines)

	return err
}

// logf writes one operational log line.
func (s *Server) logf(format string, args ...interface{}) {
	fmt.Fprintf(s.logw, format+"\n", args...)
}
