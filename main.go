// ncpipe - a portable connect-and-pipe substitute for nc, built for
// test harnesses that need to speak raw protocols over TCP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ncpipe/cmd"
	ncerrors "ncpipe/internal/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cmd.Execute(ctx, os.Args[1:])
	if err == nil {
		return
	}

	// Failed connections exit quietly with status 1, like nc: scripts
	// probing ports must not see diagnostics on routine refusals.
	if ncerrors.IsConnectFailure(err) {
		os.Exit(1)
	}

	// Everything else (bad flags, bad port, validation) is a usage
	// error and gets conventional reporting.
	fmt.Fprintf(os.Stderr, "ncpipe: %v\n", err)
	os.Exit(2)
}
