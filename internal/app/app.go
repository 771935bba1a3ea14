// Package app is the hpscan command tree.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"hpscan/internal/appcore"
	"hpscan/internal/config"
)

// exitError carries a non-zero exit code out of a cobra RunE.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// session is the per-invocation state shared by the commands.
type session struct {
	stdout, stderr io.Writer
	cfgFile        string
	loader         *config.Loader
	cfg            *config.Config
	logger         *slog.Logger
}

// RunContext executes argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	s := &session{stdout: stdout, stderr: stderr, loader: config.NewLoader()}
	root := newRootCmd(s)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return appcore.ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		return appcore.ExitInterrupted
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		_, _ = fmt.Fprintln(stderr, "Run 'hpscan --help' for usage.")
	}
	return appcore.ExitUsage
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
