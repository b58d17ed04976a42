package launchcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/internal/app/command"
	"github.com/rmcl/rmcl/pkg/launch"
)

const (
	usernameFlag = "username"
	javaFlag     = "java"

	defaultUsername = "Player"
)

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch <version>",
		Short: "run an installed version in offline mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WrapError(execute(ctx, cmd, args[0]))
		},
	}
	cmd.Flags().StringP(usernameFlag, "u", defaultUsername, "player name")
	cmd.Flags().String(javaFlag, command.DefaultJava(),
		fmt.Sprintf("java executable (env %s)", command.JavaEnvVar))
	return cmd
}

func execute(ctx context.Context, cmd *cobra.Command, versionID string) error {
	root, err := command.GetGameDir(cmd)
	if err != nil {
		return err
	}
	username, err := cmd.Flags().GetString(usernameFlag)
	if err != nil {
		return fmt.Errorf("get %s flag: %w", usernameFlag, err)
	}
	java, err := cmd.Flags().GetString(javaFlag)
	if err != nil {
		return fmt.Errorf("get %s flag: %w", javaFlag, err)
	}

	return launch.NewLauncher(launch.WithJava(java)).Launch(ctx, root, versionID, username)
}
