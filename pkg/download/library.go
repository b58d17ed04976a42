package download

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
	"github.com/rmcl/rmcl/pkg/manifest"
)

// LibraryDownloader places dependency artifacts below a libraries directory.
type LibraryDownloader struct {
	transport Transport
	dir       string
}

func NewLibraryDownloader(transport Transport, librariesDir string) *LibraryDownloader {
	return &LibraryDownloader{transport: transport, dir: librariesDir}
}

// Path returns where artifact is stored.
func (d *LibraryDownloader) Path(artifact manifest.Artifact) string {
	return filepath.Join(d.dir, filepath.FromSlash(artifact.Path))
}

// Fetch downloads artifact unless a file is already present at its path.
// The content of an existing file is not checked; see Verify.
func (d *LibraryDownloader) Fetch(ctx context.Context, artifact manifest.Artifact) error {
	target := d.Path(artifact)

	exists, err := filesys.Exists(target)
	if err != nil {
		return errkind.Filesystemf(err, "check library")
	}
	if exists {
		slog.Debug("Library present", slog.String("path", target))
		return nil
	}

	slog.Info("Downloading library", slog.String("path", artifact.Path))
	return d.transport.ToFile(ctx, artifact.URL, target)
}
