package capability

import (
	"context"
	"io"
	"net"

	ncerrors "ncpipe/internal/errors"
	"ncpipe/internal/session"
	"ncpipe/util"
)

// Relay shuttles bytes between the connection and the session's
// stdin/stdout — the default pipe mode.
//
// Two independent loops share the socket: the send loop owns the write
// half, the receive loop owns the read half.  Payloads are copied as
// raw byte chunks, never line-split, so binary protocols pass through
// unaltered.  Neither endpoint buffers beyond one chunk: writes go
// straight to the socket and to stdout, so line-by-line protocol
// exchanges work interactively.
type Relay struct{}

// Handle runs the two copy loops.  Its return marks the end of the
// session: the receive loop alone decides when that is.
func (r *Relay) Handle(ctx context.Context, sess *session.Session) error {
	conn := sess.Conn

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Closing the connection is the only way to unblock a pending
	// socket read on interrupt.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	// stdin → socket in the background.  Fire-and-forget: the process
	// lifetime is tied to the receive loop alone, so a peer that
	// closes while we still wait on stdin must not keep us alive.
	go func() {
		buf := util.GetBuf()
		defer util.PutBuf(buf)

		n, err := io.CopyBuffer(conn, sess.Stdin, *buf)
		sess.Metrics.BytesSent(n)
		if err != nil {
			// A peer that stopped reading mid-send is routine; how
			// the session ends is the receive loop's call.
			sess.Logger.Debug("send loop: %v", err)
		}

		// Half-close so the peer sees EOF on its inbound stream but
		// can still deliver a trailing response.
		if err := closeWrite(conn); err != nil {
			sess.Logger.Debug("half-close: %v", err)
		}
		sess.Logger.Verbose("input exhausted, send half closed (%d bytes sent)", n)
	}()

	// socket → stdout in the foreground; when the peer closes its
	// side the session is over.
	buf := util.GetBuf()
	defer util.PutBuf(buf)

	n, err := io.CopyBuffer(sess.Stdout, conn, *buf)
	sess.Metrics.BytesReceived(n)
	if err != nil && !ncerrors.IsHarmless(err) {
		// Receive-direction transport errors end the session the
		// same way a clean close does; there is no distinct
		// "transmission failed" exit in this tool.
		sess.Logger.Debug("receive loop: %v", err)
	}
	sess.Logger.Verbose("peer finished sending (%d bytes received)", n)
	return nil
}

// closeWrite shuts down the send direction while leaving the receive
// direction open.  Connections without a write half (test pipes) are
// left alone; closing them fully would tear down the receive loop too.
func closeWrite(conn net.Conn) error {
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return nil
}
