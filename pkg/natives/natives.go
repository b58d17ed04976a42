// Package natives unpacks native payloads shipped inside library archives.
package natives

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/platform"
)

const metaInfMarker = "META-INF"

// Extract writes every regular file of the zip archive at archivePath into
// destDir, flattened to the part of its name after the last slash or
// backslash. Entries whose name contains META-INF are skipped, as are names
// flattening to nothing, "." or "..". Entries sharing a base name overwrite
// each other, the last one in archive order wins. The written paths are returned in archive order.
func Extract(archivePath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errkind.Filesystemf(err, "open archive %s", archivePath)
	}
	defer r.Close()

	var written []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !f.Mode().IsRegular() {
			continue
		}
		if strings.Contains(f.Name, metaInfMarker) {
			continue
		}

		base := baseName(f.Name)
		if base == "" || base == "." || base == ".." {
			slog.Debug("Skipping archive entry", slog.String("entry", f.Name))
			continue
		}

		target := filepath.Join(destDir, base)
		if err := extractFile(f, target); err != nil {
			return written, errkind.Filesystemf(err, "extract %s from %s", f.Name, archivePath)
		}
		written = append(written, target)
	}
	return written, nil
}

// baseName returns the part of an entry name after the last slash or
// backslash.
func baseName(name string) string {
	return name[strings.LastIndexAny(name, `/\`)+1:]
}

func extractFile(f *zip.File, target string) error {
	if err := filesys.RemoveIfExists(target); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy entry: %w", err)
	}
	return dst.Close()
}

// ExtractAll runs Extract for every library of desc that carries natives and
// is allowed by filter. destDir is created first.
func ExtractAll(desc *manifest.Descriptor, root layout.Root, filter platform.Filter, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return nil, errkind.Filesystemf(err, "create natives directory %s", destDir)
	}

	var written []string
	for _, lib := range filter.Libraries(desc) {
		if !lib.Natives() || lib.Downloads.Artifact == nil {
			continue
		}

		slog.Debug("Extracting natives", slog.String("library", lib.Name))
		files, err := Extract(root.Library(lib.Downloads.Artifact.Path), destDir)
		if err != nil {
			return written, fmt.Errorf("library %s: %w", lib.Name, err)
		}
		written = append(written, files...)
	}
	return written, nil
}
