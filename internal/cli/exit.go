package cli

import (
	"context"
	"errors"
)

// ErrCycleDetected is returned by the check command after a cycle has been
// reported. It only carries the exit status.
var ErrCycleDetected = errors.New("circular dependency detected")

// reportedError marks an error whose details were already written to the
// command output, so main only needs to set the exit status.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// IsReported reports whether err has already been shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return errors.Is(err, ErrCycleDetected) || errors.As(err, &r)
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	default:
		return 1
	}
}
