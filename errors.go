package dotted

import (
	"errors"
	"fmt"
)

// ErrNotSupported indicates that the requested feature (e.g. a PTY) is not
// available from the provider.
var ErrNotSupported = errors.New("operation not supported")

// ErrEnvironmentClosed indicates that an operation was attempted on a closed environment.
var ErrEnvironmentClosed = errors.New("environment is closed")

// ErrSameFile reports a copy whose destination is its own source.
var ErrSameFile = errors.New("source and destination are the same file")

// ExitError reports a command that ran to completion with a non-zero exit code.
// Callers relaying a child's status (dockershell) take ExitCode from here.
type ExitError struct {
	Command  *Command
	ExitCode int
	Stderr   []byte
	Cause    error
}

func (e *ExitError) Error() string {
	if e.Command == nil {
		return fmt.Sprintf("command exited with code %d", e.ExitCode)
	}

	return fmt.Sprintf("command %q exited with code %d", e.Command.String(), e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// TransportError reports that a command could not be run at all
// (binary not on PATH, spawn failure).
type TransportError struct {
	Command *Command
	Err     error
}

func (e *TransportError) Error() string {
	if e.Command == nil {
		return fmt.Sprintf("cannot run command: %v", e.Err)
	}

	return fmt.Sprintf("cannot run %q: %v", e.Command.String(), e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit status: 0 for nil, the child's code for
// an *ExitError, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
		return exitErr.ExitCode
	}

	return 1
}
