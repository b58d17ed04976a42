package execx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Command defines a command specification.
type Command struct {
	Args      []string
	ExtraVars []string
	Dir       string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}

// Exec runs the command and waits for it to exit. Output goes to the given
// writers, or to the process stdout and stderr when they are nil. The process
// is killed when ctx is done.
func Exec(ctx context.Context, opts Command) error {
	if len(opts.Args) == 0 {
		return NewExecutionError(exec.ErrNotFound, "empty command")
	}

	slog.Info("exec",
		slog.Any("cmd", opts.Args),
		slog.Any("extra-vars", opts.ExtraVars),
		slog.String("cwd", opts.Dir))

	cmd := exec.CommandContext(ctx, opts.Args[0], opts.Args[1:]...)
	cmd.Env = append(os.Environ(), opts.ExtraVars...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = writerOr(opts.Stdout, os.Stdout)
	cmd.Stderr = writerOr(opts.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return NewExecutionError(err, opts.Args[0])
	}
	slog.Debug("Process started", slog.Int("pid", cmd.Process.Pid))

	if err := cmd.Wait(); err != nil {
		return NewExecutionError(err, opts.Args[0])
	}
	return nil
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
