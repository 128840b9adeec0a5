package transport

import (
	"context"
	"net"
)

// TCPDialer establishes plain TCP connections relying on the operating
// system's default connect timeout.  The tool deliberately layers no
// timeout of its own on top: a hung connect is indistinguishable from
// a slow network, and harnesses that care wrap the invocation.
type TCPDialer struct{}

// Dial connects to address.
func (d *TCPDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	var dialer net.Dialer
	return dialer.DialContext(ctx, network, address)
}

// Close is a no-op for stateless TCP dialers.
func (d *TCPDialer) Close() error { return nil }
