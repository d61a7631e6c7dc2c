package cmd

import (
	"errors"
	"fmt"
	"io"
)

// usageError marks a malformed invocation. A nil err means help has already
// been printed and there is nothing more to say.
type usageError struct {
	cmdPath string
	err     error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "missing subcommand"
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// reportError is the only place errors are rendered. It prints at most one
// error line plus a usage hint, and returns the process exit code.
func reportError(w io.Writer, err error, quiet bool) int {
	var usageErr *usageError
	if !errors.As(err, &usageErr) {
		if !quiet {
			fmt.Fprintln(w, "Error:", err)
		}
		return exitFailure
	}

	if !quiet && usageErr.err != nil {
		fmt.Fprintln(w, "Error:", usageErr.err)
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", usageErr.cmdPath)
	}
	return exitUsage
}
