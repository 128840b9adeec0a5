package core

import (
	"context"

	"ncpipe/config"
	ncerrors "ncpipe/internal/errors"
	"ncpipe/internal/transport"
	"ncpipe/util"
)

// ProbeMode tests whether the remote port accepts connections — the
// zero-I/O (-z) mode.  A successful dial is the whole result; the
// connection is discarded before any payload can move in either
// direction.
type ProbeMode struct {
	Dialer  transport.Dialer
	Address string
	Logger  *util.Logger
}

// Run dials the remote address once and immediately closes the
// connection.  Failures come back as ConnectError so main can exit
// silently with status 1, like a conventional port probe.
func (m *ProbeMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	m.Logger.Verbose("probing %s", m.Address)

	conn, err := m.Dialer.Dial(ctx, config.DialNetwork, m.Address)
	if err != nil {
		return ncerrors.Connect(m.Address, err)
	}
	conn.Close()

	m.Logger.Verbose("%s accepted the connection", m.Address)
	return nil
}
