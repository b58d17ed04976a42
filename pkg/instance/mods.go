package instance

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
)

// InstallMod copies the jar at src into the mods directory of location,
// GlobalLocation or a version name known to the index. An existing file of
// the same name is replaced. The index itself is not updated; rescan the
// root to see the new mod.
func (idx *Index) InstallMod(location, src string) (ModEntry, error) {
	if !isJar(src) {
		return ModEntry{}, fmt.Errorf("install mod %s: not a jar file", src)
	}

	info, err := os.Stat(src)
	if err != nil {
		return ModEntry{}, errkind.Filesystemf(err, "install mod %s", src)
	}
	if !info.Mode().IsRegular() {
		return ModEntry{}, fmt.Errorf("install mod %s: not a regular file", src)
	}

	dir := idx.root.ModsDir()
	if location != GlobalLocation {
		if _, err := idx.ModsForVersion(location); err != nil {
			return ModEntry{}, fmt.Errorf("install mod: %w", err)
		}
		dir = idx.root.VersionModsDir(location)
	}

	target := filepath.Join(dir, filepath.Base(src))
	if err := filesys.ReplaceWithCopy(src, target); err != nil {
		return ModEntry{}, errkind.Filesystemf(err, "install mod %s", src)
	}

	slog.Info("Installed mod", slog.String("path", target), slog.String("location", location))
	return ModEntry{
		Name:     filesys.GetBaseName(target),
		Path:     target,
		Location: location,
	}, nil
}
