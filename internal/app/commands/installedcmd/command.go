package installedcmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/instance"
)

func New(_ context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "installed",
		Short: "list versions present in the game directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WrapError(execute(cmd))
		},
	}
}

func execute(cmd *cobra.Command) error {
	root, err := command.GetGameDir(cmd)
	if err != nil {
		return err
	}

	idx, err := instance.New(root.String(), "")
	if err != nil {
		return err
	}

	var rows [][]string
	for _, v := range idx.Versions() {
		rows = append(rows, []string{v.Name, string(v.Type), v.DescriptorID})
	}
	return command.PrintTable(cmd.OutOrStdout(), []string{"NAME", "TYPE", "ID"}, rows)
}
