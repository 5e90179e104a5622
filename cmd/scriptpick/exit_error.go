// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

type (
	// ExitCode is a process exit status.
	ExitCode int

	// ExitError signals a non-zero exit code without forcing os.Exit in
	// RunE handlers.
	ExitError struct {
		Code ExitCode
		Err  error
	}
)

// Exit codes of the picker's fatal condition classes.
const (
	// ExitFailure covers format errors and reconciliation failure.
	ExitFailure ExitCode = 1
	// ExitUsage covers startup argument errors.
	ExitUsage ExitCode = 2
)

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
