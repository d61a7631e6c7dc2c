package prime

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectorFailed matches any prime-select run that could not be
	// started, exited non-zero or was killed by a signal.
	ErrSelectorFailed = errors.New("prime-select failed")

	// ErrUnknownGPU matches query output other than "intel" or "nvidia".
	ErrUnknownGPU = errors.New("unknown GPU name")
)

type SelectorError struct {
	Helper string
	Arg    string
	// Code is the helper's exit status, -1 when it was terminated by a signal.
	Code   int
	Signal string
	// Err is set when the helper could not be run at all.
	Err error
}

func (e *SelectorError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("couldn't run %s: %v", e.Helper, e.Err)
	case e.Code < 0 && e.Signal != "":
		return fmt.Sprintf("%s failed due to a signal (%s)", e.Helper, e.Signal)
	case e.Code < 0:
		return fmt.Sprintf("%s failed due to a signal", e.Helper)
	default:
		return fmt.Sprintf("%s failed with %d", e.Helper, e.Code)
	}
}

func (e *SelectorError) Unwrap() error {
	return e.Err
}

func (e *SelectorError) Is(target error) bool {
	return target == ErrSelectorFailed
}

type UnknownGPUError struct {
	Raw string
}

func (e *UnknownGPUError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownGPU, e.Raw)
}

func (e *UnknownGPUError) Is(target error) bool {
	return target == ErrUnknownGPU
}
