// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"ncpipe/config"
	"ncpipe/internal/core"
	"ncpipe/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X ncpipe/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the selected ncpipe mode.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{}

	fs := flag.NewFlagSet("ncpipe", flag.ContinueOnError)

	// ── mode ─────────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Probe, "probe", "z", false, "Probe mode: test connectivity only, relay nothing")
	fs.BoolVarP(&cfg.NoDNS, "no-dns", "n", false, "Numeric-only, no DNS resolution")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate arguments and exit without connecting")

	fs.Usage = func() { printUsage(fs) }

	// ── environment overlay ──────────────────────────────────────
	// Registering a flag writes its default into the bound field, so
	// the overlay must land after registration and before Parse for
	// flags to win without clobbering env values.
	config.LoadFromEnv(cfg)

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("ncpipe %s\n", version)
		return nil
	}

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DryRun {
		return nil
	}

	// ── build and run ────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)

	if !cfg.Probe && term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Verbose("stdin is a terminal; end input with ^D")
	}

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

func parsePositional(cfg *config.Config, remaining []string) error {
	if len(remaining) < 1 {
		return fmt.Errorf("hostname required (use --help for usage)")
	}
	cfg.Host = remaining[0]

	if len(remaining) < 2 {
		return fmt.Errorf("port required")
	}
	port, err := config.ParsePort(remaining[1])
	if err != nil {
		return err
	}
	cfg.Port = port

	if len(remaining) > 2 {
		return fmt.Errorf("too many arguments (one host, one port)")
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `ncpipe – connect-and-pipe TCP relay v%s

A portable nc substitute for test harnesses: bridges stdin/stdout with
a single outbound TCP connection.

Usage:
  ncpipe [options] <host> <port>              Relay stdin/stdout
  ncpipe -z [options] <host> <port>           Probe connectivity

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Exit status:
  0  probe succeeded, or the peer cleanly ended the relay
  1  connection could not be established (silent)
  2  usage error

Examples:
  ncpipe -z 127.0.0.1 1025                    Is the daemon up yet?
  echo "EHLO localhost" | ncpipe mail 25      Pipe an SMTP exchange
`)
}
