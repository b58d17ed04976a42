package addmodcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add-mod <location> <jar>",
		Short: "copy a mod jar into the global mods directory or the mods directory of a version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args[0], args[1]))
		},
	}
}

func execute(ctx context.Context, cmd *cobra.Command, location, src string) error {
	reg, idx, err := command.OpenRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	entry, err := idx.InstallMod(location, src)
	if err != nil {
		return err
	}

	updated, err := reg.Replace(ctx, idx.Path(), idx.Name())
	if err != nil {
		return fmt.Errorf("rescan %s: %w", idx.Path(), err)
	}

	mods, err := updated.ModsAt(location)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "installed %s, %d mods at %s\n", entry.Path, len(mods), location)
	return nil
}
