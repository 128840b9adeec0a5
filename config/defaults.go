package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneables live here so they are easy to audit and reuse across
// CLI flags and environment variable loading.

const (
	// MinPort and MaxPort bound valid TCP destination ports.
	MinPort = 1
	MaxPort = 65535

	// DialNetwork is the only transport this tool speaks.  The relay
	// is payload-agnostic but connection-oriented, so UDP is out.
	DialNetwork = "tcp"
)
