package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Exec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := Exec(context.Background(), Command{
		Args:      []string{"sh", "-c", `echo "$RMCL_TEST" && pwd && echo oops >&2`},
		ExtraVars: []string{"RMCL_TEST=hello"},
		Dir:       dir,
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "hello\n")
	require.Equal(t, "oops\n", stderr.String())
}

func Test_ExecErrors(t *testing.T) {
	err := Exec(context.Background(), Command{})
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))

	err = Exec(context.Background(), Command{Args: []string{"rmcl-definitely-not-a-binary"}})
	require.True(t, errors.As(err, &execErr))
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.Equal(t, -1, execErr.ExitCode())

	if runtime.GOOS == "windows" {
		return
	}
	err = Exec(context.Background(), Command{Args: []string{"sh", "-c", "exit 3"}})
	require.True(t, errors.As(err, &execErr))
	require.Equal(t, 3, execErr.ExitCode())
}
