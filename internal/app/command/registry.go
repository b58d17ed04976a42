package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/pkg/instance"
)

const (
	rootFlag       = "root"
	defaultRootTag = "default"
)

func AddRootFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSlice(rootFlag, nil, "additional installation roots, may be repeated")
}

// OpenRegistry registers the game directory and every --root in a new
// registry. The index of the game directory is returned alongside.
func OpenRegistry(ctx context.Context, cmd *cobra.Command) (*instance.Registry, *instance.Index, error) {
	root, err := GetGameDir(cmd)
	if err != nil {
		return nil, nil, err
	}
	extra, err := cmd.Flags().GetStringSlice(rootFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("get %s flag: %w", rootFlag, err)
	}

	reg := instance.NewRegistry()
	main, err := reg.Add(ctx, root.String(), defaultRootTag)
	if err != nil {
		return nil, nil, fmt.Errorf("register %s: %w", root, err)
	}
	for _, path := range extra {
		if _, err := reg.Add(ctx, path, filepath.Base(path)); err != nil {
			return nil, nil, fmt.Errorf("register %s: %w", path, err)
		}
	}
	return reg, main, nil
}
