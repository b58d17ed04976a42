package execx

import (
	"errors"
	"fmt"
	"os/exec"
)

// ExecutionError reports a process that could not be started or that exited
// unsuccessfully.
type ExecutionError struct {
	Inner   error
	Command string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Command, e.Inner)
}

func (e *ExecutionError) Unwrap() error {
	return e.Inner
}

// ExitCode returns the exit status of the process, or -1 when it did not
// exit normally or never started.
func (e *ExecutionError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Inner, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func NewExecutionError(err error, command string) error {
	return &ExecutionError{Inner: err, Command: command}
}
