// internal/cli/exit.go
package cli

import (
	"context"
	"errors"

	"oligotile/internal/appshell"
)

// exitError carries a process exit code alongside the error to report.
// A nil err with a non-zero code exits quietly.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error { return &exitError{code: code, err: err} }

// exitCode maps a command error to a process exit code. Anything not
// classified by a command is a usage error from flag parsing.
func exitCode(err error) int {
	if err == nil {
		return appshell.ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return appshell.ExitInterrupted
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return appshell.ExitUsage
}
