// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that manage their own output return an ExitError
		// carrying the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	args, verbose := stripVerbose(os.Args[1:])
	logger := cli.NewLogger(verbose)

	return commands.Root().Execute(ctx, args, logger)
}

// stripVerbose removes --verbose/-v from the argument list. The flag
// is global and can appear anywhere on the command line, so it is
// handled here rather than in each command's flag set.
func stripVerbose(args []string) ([]string, bool) {
	kept := make([]string, 0, len(args))
	verbose := false
	for _, arg := range args {
		if arg == "--verbose" || arg == "-v" {
			verbose = true
			continue
		}
		kept = append(kept, arg)
	}
	return kept, verbose
}
