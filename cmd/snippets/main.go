// Package main provides the snippets CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one command with args and returns the process exit code.
func run(args []string) int {
	// A missing .env is normal.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(Version)
	cli.SetBootstrap(&bootstrap{})
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
