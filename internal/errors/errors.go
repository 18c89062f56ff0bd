// Package errors defines how skel commands report failure: an
// ExitError carrying the process exit code and an optional suggestion
// line, plus the sentinels shared across commands.
package errors

import (
	"errors"
	"fmt"
)

// Process exit codes. skel keeps the contract narrow: success or not.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrAborted reports that the user backed out of an interactive prompt
// or picker. Commands treat it as a quiet cancel, not a failure.
var ErrAborted = errors.New("aborted")

// ExitError decorates an error with the exit code and an optional
// suggestion the root command prints under the failure line. A nil Err
// with a non-zero Code means the command already rendered its own
// report and only the code matters.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError pairs err with an exit code. err may be nil.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewFailure marks err as a command failure. An empty suggestion
// suppresses the suggestion line.
func NewFailure(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitFailure, Suggestion: suggestion}
}

// Code returns the exit code carried in err's chain, ExitFailure for
// any other non-nil error, and ExitSuccess for nil.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}
