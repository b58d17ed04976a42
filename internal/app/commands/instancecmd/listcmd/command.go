package listcmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list registered installation roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WrapError(execute(ctx, cmd))
		},
	}
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	reg, _, err := command.OpenRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	all, err := reg.All(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(all))
	for _, idx := range all {
		_, shots := idx.Screenshots()
		rows = append(rows, []string{
			idx.Name(),
			idx.Path(),
			strconv.Itoa(len(idx.Versions())),
			strconv.Itoa(len(idx.AllMods())),
			strconv.Itoa(len(shots)),
		})
	}
	return command.PrintTable(cmd.OutOrStdout(), []string{"NAME", "PATH", "VERSIONS", "MODS", "SCREENSHOTS"}, rows)
}
