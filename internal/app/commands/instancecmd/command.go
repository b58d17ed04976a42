package instancecmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/internal/app/commands/instancecmd/addmodcmd"
	"github.com/rmcl/rmcl/internal/app/commands/instancecmd/listcmd"
	"github.com/rmcl/rmcl/internal/app/commands/instancecmd/modscmd"
	"github.com/rmcl/rmcl/internal/app/commands/instancecmd/screenshotscmd"
)

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instance",
		Short: "inspect installation roots",
	}
	command.AddRootFlag(cmd)
	cmd.AddCommand(
		listcmd.New(ctx),
		modscmd.New(ctx),
		screenshotscmd.New(ctx),
		addmodcmd.New(ctx),
	)
	return cmd
}
