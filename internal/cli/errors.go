package cli

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/envloader/launch"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitResolution    = 1
	ExitUsage         = 2
	ExitCannotExecute = 126
	ExitNotFound      = 127
)

// ExitError carries the process exit code for a failed run. A nil Err means
// the code is reported without a message, as for a child's own exit status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// launchError maps a launch failure to its exit code.
func launchError(err error) error {
	if err == nil {
		return nil
	}
	var status *launch.ExitStatus
	switch {
	case errors.As(err, &status):
		return &ExitError{Code: status.Code}
	case errors.Is(err, launch.ErrCommandNotFound):
		return &ExitError{Code: ExitNotFound, Err: err}
	case errors.Is(err, launch.ErrNoCommand):
		return &ExitError{Code: ExitUsage, Err: err}
	default:
		return &ExitError{Code: ExitCannotExecute, Err: err}
	}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitResolution
}
