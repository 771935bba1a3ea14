// Package appshell is the process boundary: signals, real stdio, os.Exit.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a command entry point that returns an exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with the process arguments and exits with its code.
func Main(run RunFunc) {
	os.Exit(Exec(context.Background(), run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec runs run under a context cancelled by SIGINT or SIGTERM. An
// interrupted run never reports success.
func Exec(parent context.Context, run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
