package nativescmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/launch"
	"github.com/rmcl/rmcl/pkg/natives"
	"github.com/rmcl/rmcl/pkg/platform"
)

const destFlag = "dest"

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "natives <version>",
		Short: "extract the native libraries of an installed version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args[0]))
		},
	}
	cmd.Flags().String(destFlag, "", "target directory, versions/<version>/natives by default")
	return cmd
}

func execute(_ context.Context, cmd *cobra.Command, versionID string) error {
	root, err := command.GetGameDir(cmd)
	if err != nil {
		return err
	}
	dest, err := cmd.Flags().GetString(destFlag)
	if err != nil {
		return fmt.Errorf("get %s flag: %w", destFlag, err)
	}
	if dest == "" {
		dest = root.NativesDir(versionID)
	}

	desc, err := launch.ReadInstalled(root, versionID)
	if err != nil {
		return err
	}
	written, err := natives.ExtractAll(desc, root, platform.NewFilter(), dest)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range written {
		fmt.Fprintln(out, name)
	}
	return nil
}
