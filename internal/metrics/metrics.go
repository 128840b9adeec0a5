// Package metrics provides lightweight counters for a single relay
// session: bytes moved in each direction and connection lifecycle.
//
// All methods are safe for concurrent use — the two copy loops update
// opposite directions without coordination.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// Collector tracks runtime statistics for one ncpipe session.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	bytesIn   atomic.Int64 // socket → stdout
	bytesOut  atomic.Int64 // stdin → socket
	connected atomic.Bool

	startTime time.Time
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Connection lifecycle ─────────────────────────────────────────────

// ConnectionOpened records a successful dial.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.connected.Store(true)
}

// ConnectionClosed records the session's connection going away.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connected.Store(false)
}

// Connected reports whether the session currently holds a connection.
func (c *Collector) Connected() bool {
	if c == nil {
		return false
	}
	return c.connected.Load()
}

// ── I/O counters ─────────────────────────────────────────────────────

// BytesReceived records n bytes read from the socket.
func (c *Collector) BytesReceived(n int64) {
	if c == nil {
		return
	}
	c.bytesIn.Add(n)
}

// BytesSent records n bytes written to the socket.
func (c *Collector) BytesSent(n int64) {
	if c == nil {
		return
	}
	c.bytesOut.Add(n)
}

// TotalBytesIn returns total bytes received from the socket.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent to the socket.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all session metrics.
type Snapshot struct {
	Uptime    string `json:"uptime"`
	Connected bool   `json:"connected"`
	BytesIn   int64  `json:"bytes_in"`
	BytesOut  int64  `json:"bytes_out"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Uptime:    time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Connected: c.connected.Load(),
		BytesIn:   c.bytesIn.Load(),
		BytesOut:  c.bytesOut.Load(),
	}
}

// JSON returns the snapshot as a compact JSON string, suitable for a
// single debug log line.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.Marshal(s)
	return string(data)
}
