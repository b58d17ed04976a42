package downloadcmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/catalog"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "download <version>...",
		Short: "download versions with their libraries into the game directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args))
		},
	}
}

func execute(ctx context.Context, cmd *cobra.Command, ids []string) error {
	root, err := command.GetGameDir(cmd)
	if err != nil {
		return err
	}

	f := command.NewFetcher()
	client, err := command.NewCatalogClient(cmd, f)
	if err != nil {
		return err
	}
	cat, err := client.Fetch(ctx)
	if err != nil {
		return err
	}

	idx := catalog.NewIndex(cat.Versions)
	pipeline := command.NewPipeline(f)
	for _, id := range ids {
		if err := pipeline.AcquireByID(ctx, idx, id, root); err != nil {
			return fmt.Errorf("download %s: %w", id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s installed\n", id)
	}

	slog.Info("Versions were downloaded", slog.Any("versions", ids), slog.String("root", root.String()))
	return nil
}
