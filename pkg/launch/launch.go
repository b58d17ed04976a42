// Package launch assembles the command line of an installed version and runs
// it with a Java runtime.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rmcl/rmcl/internal/pkg/execx"
	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/natives"
	"github.com/rmcl/rmcl/pkg/platform"
)

const (
	DefaultJava = "java"
	// LauncherVersionType is passed to the game as --versionType.
	LauncherVersionType = "RMCL 0.1.0"
	offlineAccessToken  = "0"
)

// ReadInstalled reads the descriptor of an installed version. The client
// archive versions/<id>/<id>.jar and a descriptor located by
// layout.LocateDescriptor must exist.
func ReadInstalled(root layout.Root, versionID string) (*manifest.Descriptor, error) {
	ok, err := filesys.Exists(root.ClientJar(versionID))
	if err != nil {
		return nil, errkind.Filesystemf(err, "check version %s", versionID)
	}
	if !ok {
		return nil, errkind.NotFoundf("version %s", versionID)
	}

	descPath, err := layout.LocateDescriptor(root, versionID)
	if err != nil {
		return nil, errkind.Filesystemf(err, "check version %s", versionID)
	}
	if descPath == "" {
		return nil, errkind.NotFoundf("version %s", versionID)
	}

	data, err := os.ReadFile(descPath)
	if err != nil {
		return nil, errkind.Filesystemf(err, "read descriptor of %s", versionID)
	}
	return manifest.DecodeDescriptor(data)
}

// Classpath joins the paths of every allowed library artifact and the client
// archive with the OS list separator.
func Classpath(desc *manifest.Descriptor, root layout.Root, filter platform.Filter) string {
	var parts []string
	for _, lib := range filter.Libraries(desc) {
		if lib.Downloads.Artifact == nil {
			continue
		}
		parts = append(parts, root.Library(lib.Downloads.Artifact.Path))
	}
	parts = append(parts, root.ClientJar(desc.ID))
	return strings.Join(parts, string(os.PathListSeparator))
}

type Options struct {
	Root       layout.Root
	Descriptor *manifest.Descriptor
	Username   string
	Classpath  string
	NativesDir string
}

// Arguments returns the runtime arguments, without the runtime executable.
func Arguments(opts Options) []string {
	desc := opts.Descriptor
	return []string{
		"-Djava.library.path=" + opts.NativesDir,
		"-cp", opts.Classpath,
		desc.MainClass,
		"--username", opts.Username,
		"--version", desc.ID,
		"--gameDir", opts.Root.String(),
		"--assetsDir", opts.Root.AssetsDir(),
		"--assetIndex", desc.AssetIndex.ID,
		"--accessToken", offlineAccessToken,
		"--versionType", LauncherVersionType,
	}
}

type Option func(*Launcher)

func WithJava(path string) Option {
	return func(l *Launcher) {
		if path != "" {
			l.java = path
		}
	}
}

func WithFilter(f platform.Filter) Option {
	return func(l *Launcher) {
		l.filter = f
	}
}

type Launcher struct {
	java   string
	filter platform.Filter
	exec   func(ctx context.Context, cmd execx.Command) error
}

func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		java:   DefaultJava,
		filter: platform.NewFilter(),
		exec:   execx.Exec,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch extracts the natives of versionID into its natives directory and
// runs the game in root until it exits.
func (l *Launcher) Launch(ctx context.Context, root layout.Root, versionID, username string) error {
	desc, err := ReadInstalled(root, versionID)
	if err != nil {
		return err
	}

	nativesDir := root.NativesDir(versionID)
	if _, err := natives.ExtractAll(desc, root, l.filter, nativesDir); err != nil {
		return fmt.Errorf("extract natives: %w", err)
	}

	args := Arguments(Options{
		Root:       root,
		Descriptor: desc,
		Username:   username,
		Classpath:  Classpath(desc, root, l.filter),
		NativesDir: nativesDir,
	})

	slog.Info("Launching", slog.String("version", versionID), slog.String("user", username))
	if err := l.exec(ctx, execx.Command{
		Args: append([]string{l.java}, args...),
		Dir:  root.String(),
	}); err != nil {
		return fmt.Errorf("launch %s: %w", versionID, err)
	}
	return nil
}
