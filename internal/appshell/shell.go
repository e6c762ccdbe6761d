// Package appshell is the process boundary: signals in, exit code out.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a whole CLI invocation.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with an interrupt-aware context and exits with its code.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without os.Exit. A run that was interrupted but reported
// success exits 130.
func Exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitInterrupted
	}
	return code
}

// Process exit codes.
const (
	ExitOK          = 0
	ExitNoResult    = 1
	ExitUsage       = 2
	ExitOutput      = 3
	ExitInterrupted = 130
)
