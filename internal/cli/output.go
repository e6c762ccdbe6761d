// internal/cli/output.go
package cli

import (
	"bufio"
	"io"

	"oligotile/internal/appshell"
	"oligotile/internal/writers"
)

// outputErr classifies a write failure. Broken pipes are not errors.
func outputErr(err error) error {
	if err == nil || writers.IsBrokenPipe(err) {
		return nil
	}
	return withCode(appshell.ExitOutput, err)
}

// emit buffers render's output to w and flushes it.
func emit(w io.Writer, render func(io.Writer) error) error {
	bw := bufio.NewWriter(w)
	if err := render(bw); err != nil {
		return outputErr(err)
	}
	return outputErr(bw.Flush())
}
