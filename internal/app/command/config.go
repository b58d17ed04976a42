package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/pkg/catalog"
	"github.com/rmcl/rmcl/pkg/layout"
)

const (
	GameDirEnvVar     = "RMCL_GAME_DIR"
	ManifestURLEnvVar = "RMCL_MANIFEST_URL"
	JavaEnvVar        = "RMCL_JAVA"

	gameDirFlag     = "game-dir"
	manifestURLFlag = "manifest-url"

	defaultGameDirName = ".minecraft"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DefaultGameDir is .minecraft in the working directory.
func DefaultGameDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, defaultGameDirName), nil
}

func AddGameDirFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(gameDirFlag, "g", os.Getenv(GameDirEnvVar),
		fmt.Sprintf("game directory (env %s, default ./%s)", GameDirEnvVar, defaultGameDirName))
}

// GetGameDir returns --game-dir, falling back to $RMCL_GAME_DIR and then to
// DefaultGameDir.
func GetGameDir(cmd *cobra.Command) (layout.Root, error) {
	dir, err := cmd.Flags().GetString(gameDirFlag)
	if err != nil {
		return "", fmt.Errorf("get %s flag: %w", gameDirFlag, err)
	}
	if dir == "" {
		if dir, err = DefaultGameDir(); err != nil {
			return "", err
		}
	}
	return layout.Root(dir), nil
}

func AddManifestURLFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(manifestURLFlag, envOr(ManifestURLEnvVar, catalog.DefaultURL),
		fmt.Sprintf("version manifest URL (env %s)", ManifestURLEnvVar))
}

func GetManifestURL(cmd *cobra.Command) (string, error) {
	url, err := cmd.Flags().GetString(manifestURLFlag)
	if err != nil {
		return "", fmt.Errorf("get %s flag: %w", manifestURLFlag, err)
	}
	return url, nil
}

// DefaultJava is $RMCL_JAVA, or java from PATH.
func DefaultJava() string {
	return envOr(JavaEnvVar, "java")
}
