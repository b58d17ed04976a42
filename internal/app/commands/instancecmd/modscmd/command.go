package modscmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/instance"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "mods [location]",
		Short: "list mods of the game directory, all of them or those of one location (global or a version name)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args))
		},
	}
}

func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	_, idx, err := command.OpenRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	mods := idx.AllMods()
	if len(args) == 1 {
		if mods, err = idx.ModsAt(args[0]); err != nil {
			return err
		}
	}

	return command.PrintTable(cmd.OutOrStdout(), []string{"NAME", "LOCATION", "PATH"}, rows(mods))
}

func rows(mods []instance.ModEntry) [][]string {
	out := make([][]string, 0, len(mods))
	for _, m := range mods {
		out = append(out, []string{m.Name, m.Location, m.Path})
	}
	return out
}
