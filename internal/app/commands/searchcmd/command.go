package searchcmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/catalog"
	"github.com/rmcl/rmcl/pkg/manifest"
)

const typeFlag = "type"

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [filter]",
		Short: "list catalog versions of a type, optionally filtered by an id substring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args))
		},
	}
	cmd.Flags().StringP(typeFlag, "t", string(manifest.Release), "version type: release, snapshot, old_beta or old_alpha")
	return cmd
}

func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	typeName, err := cmd.Flags().GetString(typeFlag)
	if err != nil {
		return fmt.Errorf("get %s flag: %w", typeFlag, err)
	}
	versionType := manifest.VersionType(typeName)
	if !versionType.Valid() {
		return fmt.Errorf("unknown version type %q", typeName)
	}

	filter := ""
	if len(args) == 1 {
		filter = args[0]
	}

	client, err := command.NewCatalogClient(cmd, command.NewFetcher())
	if err != nil {
		return err
	}
	cat, err := client.Fetch(ctx)
	if err != nil {
		return err
	}

	found := catalog.Search(cat.Versions, versionType, filter)
	slog.Debug("Search",
		slog.String("type", typeName),
		slog.String("filter", filter),
		slog.Int("found", len(found)))

	rows := make([][]string, 0, len(found))
	for _, entry := range found {
		rows = append(rows, []string{entry.ID, string(entry.Type), entry.ReleaseTime})
	}
	return command.PrintTable(cmd.OutOrStdout(), []string{"ID", "TYPE", "RELEASED"}, rows)
}
