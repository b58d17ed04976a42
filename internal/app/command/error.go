package command

import (
	"errors"
	"fmt"

	"github.com/rmcl/rmcl/internal/pkg/execx"
)

type Error struct {
	Inner error
	Msg   string
	// ExitCode is the process exit status rmcl should report, 1 unless the
	// failure came from a child process with its own status.
	ExitCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Inner)
}

func (e *Error) Unwrap() error {
	return e.Inner
}

func WrapError(err error) error {
	if err == nil {
		return nil
	}

	code := 1
	var execErr *execx.ExecutionError
	if errors.As(err, &execErr) && execErr.ExitCode() > 0 {
		code = execErr.ExitCode()
	}

	return &Error{
		Inner:    err,
		Msg:      "command failed",
		ExitCode: code,
	}
}
