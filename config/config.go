// Package config defines the runtime configuration for ncpipe and
// provides port parsing and validation.
package config

import (
	"fmt"
	"strconv"
)

// Config holds every tuneable for a single ncpipe invocation.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	Host  string
	Port  int
	NoDNS bool // -n: numeric-only, host must be a literal IP

	// ── Mode ─────────────────────────────────────────────────────────
	Probe  bool // -z: test connectivity only, relay nothing
	DryRun bool // validate the configuration and exit

	// ── Output ───────────────────────────────────────────────────────
	Verbose int // diagnostics to stderr; 0 keeps the data plane silent
}

// ParsePort parses a positional port argument.
func ParsePort(spec string) (int, error) {
	port, err := strconv.Atoi(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", spec)
	}
	if port < MinPort || port > MaxPort {
		return 0, fmt.Errorf("port %d out of range %d-%d", port, MinPort, MaxPort)
	}
	return port, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("hostname is required (use --help for usage)")
	}
	if c.Port < MinPort || c.Port > MaxPort {
		return fmt.Errorf("destination port is required")
	}
	return nil
}
