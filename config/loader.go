package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)
//
// Only diagnostic knobs are env-configurable; the data plane (host,
// port, probe mode) is CLI-only so that harness invocations stay
// self-describing.

import (
	"os"
	"strconv"
	"strings"
)

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  Call this AFTER flag
// registration (registering a flag writes its default into the bound
// field) and BEFORE parsing, so that parsed flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := envInt("NCPIPE_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("NCPIPE_NO_DNS") {
		cfg.NoDNS = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// envBool accepts "1", "true", "yes" (case-insensitive).
func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
