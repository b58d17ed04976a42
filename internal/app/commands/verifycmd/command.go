package verifycmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/download"
	"github.com/rmcl/rmcl/pkg/launch"
	"github.com/rmcl/rmcl/pkg/platform"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <version>...",
		Short: "check installed client archives and libraries against their declared checksums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args))
		},
	}
}

func execute(_ context.Context, cmd *cobra.Command, ids []string) error {
	root, err := command.GetGameDir(cmd)
	if err != nil {
		return err
	}

	filter := platform.NewFilter()
	out := cmd.OutOrStdout()
	var failed error
	for _, id := range ids {
		desc, err := launch.ReadInstalled(root, id)
		if err != nil {
			return err
		}
		report, err := download.Verify(root, desc, filter)
		if err != nil {
			return fmt.Errorf("verify %s: %w", id, err)
		}
		slog.Debug("Verified",
			slog.String("version", id),
			slog.Int("checked", report.Checked),
			slog.String("fingerprint", report.Fingerprint))

		if report.OK() {
			fmt.Fprintf(out, "%s ok, %d files checked\n", id, report.Checked)
			continue
		}
		rows := make([][]string, 0, len(report.Problems))
		for _, p := range report.Problems {
			rows = append(rows, []string{string(p.Kind), p.Name, p.Path})
		}
		if err := command.PrintTable(out, []string{"PROBLEM", "NAME", "PATH"}, rows); err != nil {
			return err
		}
		if failed == nil {
			failed = report.Err()
		}
	}
	return failed
}
