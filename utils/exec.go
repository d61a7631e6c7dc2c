package utils

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// Executer abstracts running commands
type Executer interface {
	Execute(name string, arg ...string) Commander
}

// Commander is a single prepared command. Output returns its standard output;
// a run that ended badly yields an *ExitError.
type Commander interface {
	Output() ([]byte, error)
}

type CmdExecutor struct{}

func (c *CmdExecutor) Execute(name string, arg ...string) Commander {
	return &ExecCommand{cmd: exec.Command(name, arg...)}
}

type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) Output() ([]byte, error) {
	output, err := e.cmd.Output()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, newExitError(exitErr)
	}

	return output, err
}

// ExitError reports a command that started but exited with a non-zero status
// or was killed by a signal.
type ExitError struct {
	// Code is the exit status, or -1 if the process was terminated by a signal.
	Code int
	// Signal is the name of the terminating signal when it is known.
	Signal string
	Stderr []byte
}

func (e *ExitError) Signaled() bool {
	return e.Code < 0
}

func (e *ExitError) Error() string {
	if !e.Signaled() {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	if e.Signal != "" {
		return "signal: " + e.Signal
	}
	return "terminated by a signal"
}

func newExitError(exitErr *exec.ExitError) *ExitError {
	e := &ExitError{
		Code:   exitErr.ExitCode(),
		Stderr: exitErr.Stderr,
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		e.Code = -1
		e.Signal = status.Signal().String()
	}

	return e
}
