// Package main starts the terminal preview of the process card stack.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/volt-agency/site/internal/cmd/stackpreview"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := stackpreview.NewCommand().Run(ctx, os.Args); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "stackpreview: %v\n", err)
		os.Exit(1)
	}
}
