// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// ghreact lists, adds, and removes GitHub reactions on issues, comments,
// releases, and team discussions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		// Commands that already reported the failure return an error
		// carrying the exit code; don't print a second "error:" line.
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

	return newApp(ctx, os.Stdout, os.Stderr).root().Execute(os.Args[1:])
}
