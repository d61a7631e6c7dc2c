package power

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceUnavailable matches any failure to open, read or write the
	// bbswitch pseudo-file, usually because the kernel module is not loaded.
	ErrSurfaceUnavailable = errors.New("bbswitch not available")

	// ErrUnknownState matches bbswitch contents that end in neither ON nor OFF.
	ErrUnknownState = errors.New("unknown bbswitch state")
)

type SurfaceError struct {
	Op   string
	Path string
	Err  error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("couldn't %s bbswitch: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

func (e *SurfaceError) Is(target error) bool {
	return target == ErrSurfaceUnavailable
}

// UnknownStateError carries the trimmed contents that could not be classified.
type UnknownStateError struct {
	Raw string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownState, e.Raw)
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}
