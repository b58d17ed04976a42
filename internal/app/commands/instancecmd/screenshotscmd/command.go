package screenshotscmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "screenshots",
		Short: "print the screenshots directory and the screenshots it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WrapError(execute(ctx, cmd))
		},
	}
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	_, idx, err := command.OpenRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	dir, shots := idx.Screenshots()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, dir)
	for _, shot := range shots {
		fmt.Fprintln(out, shot)
	}
	return nil
}
