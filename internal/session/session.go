// Package session represents a single connection lifecycle, binding a
// network connection with I/O endpoints and shared context.
//
// Sessions decouple the relay from concrete I/O sources — it doesn't
// need to know whether it's reading from os.Stdin or a test buffer, it
// just uses the session's Reader/Writer.
package session

import (
	"io"
	"net"

	"ncpipe/internal/metrics"
	"ncpipe/util"
)

// Session encapsulates the runtime context for a single connection:
// the socket, the local stream endpoints, and observability hooks.
// The stream endpoints are inherited, never closed by the session —
// only the socket is ours to shut down.
type Session struct {
	Conn    net.Conn
	Stdin   io.Reader
	Stdout  io.Writer
	Logger  *util.Logger
	Metrics *metrics.Collector // nil disables collection
}

// New creates a Session bound to the given connection and I/O pair.
func New(conn net.Conn, stdin io.Reader, stdout io.Writer, logger *util.Logger, m *metrics.Collector) *Session {
	return &Session{
		Conn:    conn,
		Stdin:   stdin,
		Stdout:  stdout,
		Logger:  logger,
		Metrics: m,
	}
}
