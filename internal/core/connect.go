package core

import (
	"context"
	"io"
	"os"

	"ncpipe/config"
	"ncpipe/internal/capability"
	ncerrors "ncpipe/internal/errors"
	"ncpipe/internal/metrics"
	"ncpipe/internal/session"
	"ncpipe/internal/transport"
	"ncpipe/util"
)

// ConnectMode dials the remote address and runs a capability on the
// resulting connection — the default relay mode.
type ConnectMode struct {
	Dialer     transport.Dialer
	Capability capability.Capability
	Address    string
	Logger     *util.Logger
	Metrics    *metrics.Collector

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *ConnectMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *ConnectMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run dials the remote address, creates a session, and hands it to
// the capability.  The transport is closed when Run returns.  Dial
// failures come back as ConnectError so main can exit silently.
func (m *ConnectMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	m.Logger.Verbose("connecting to %s (%s)", m.Address, config.DialNetwork)

	conn, err := m.Dialer.Dial(ctx, config.DialNetwork, m.Address)
	if err != nil {
		return ncerrors.Connect(m.Address, err)
	}
	defer conn.Close()

	m.Metrics.ConnectionOpened()
	defer func() {
		m.Metrics.ConnectionClosed()
		m.Logger.Debug("session stats: %s", m.Metrics.JSON())
	}()

	m.Logger.Verbose("connected to %s", conn.RemoteAddr())

	sess := session.New(conn, m.stdin(), m.stdout(), m.Logger, m.Metrics)
	return m.Capability.Handle(ctx, sess)
}
