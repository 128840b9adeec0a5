// Package errors provides domain-specific error types for ncpipe.
//
// The exit-status contract depends on error classification: a failed
// connection attempt must terminate the process silently with status 1,
// while argument mistakes get conventional usage reporting.  The types
// here carry the context (operation, address) that main needs to make
// that call without string matching.
package errors

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// ── Structured error types ───────────────────────────────────────────

// ConnectError represents a failed attempt to establish the outbound
// connection.  The process exits quietly with status 1 when it sees
// one of these, mirroring nc's probe ergonomics.
type ConnectError struct {
	Addr string // network address dialed
	Err  error  // underlying error (refused, unreachable, DNS, ...)
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Connect wraps err as a ConnectError for addr.
func Connect(addr string, err error) *ConnectError {
	return &ConnectError{Addr: addr, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsConnectFailure reports whether err is (or wraps) a failed
// connection attempt.
func IsConnectFailure(err error) bool {
	var ce *ConnectError
	return errors.As(err, &ce)
}

// IsHarmless reports whether err is an expected outcome of connection
// shutdown rather than a real failure.  Clean peer closes and the
// local teardown of an abandoned loop both land here.
func IsHarmless(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	// net.OpError wrapping "use of closed network connection"
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These let callers use ncpipe/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
