// Package instance scans installation roots into point-in-time snapshots of
// their versions, mods and screenshots.
package instance

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
)

var errNotDir = errors.New("not a directory")

// GlobalLocation tags mods found directly under the root mods directory.
const GlobalLocation = "global"

var screenshotExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
}

type ModEntry struct {
	// Name is the file name without extension.
	Name     string
	Path     string
	Location string
}

type VersionEntry struct {
	Name string
	Path string
	Mods []ModEntry

	// DescriptorID and Type are read from the descriptor file of the
	// version, see layout.LocateDescriptor, and stay empty when there is none
	// or it is unreadable.
	DescriptorID string
	Type         manifest.VersionType
}

// Index is an immutable snapshot of an installation root.
type Index struct {
	root        layout.Root
	name        string
	screenshots []string
	hasShots    bool
	rootMods    []ModEntry
	versions    []VersionEntry
}

// New scans root. A missing root or facet directory produces empty results,
// and so does a facet that cannot be read, which is logged. The only failure
// is a root that exists but is not a directory.
func New(root, name string) (*Index, error) {
	idx := &Index{root: layout.Root(root), name: name}

	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return nil, errkind.Filesystemf(errNotDir, "scan %s", root)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		slog.Warn("Cannot stat installation root", slog.String("path", root), slog.Any("error", err))
	}

	idx.hasShots = dirExists(idx.root.ScreenshotsDir())
	idx.screenshots = scanScreenshots(idx.root.ScreenshotsDir())
	idx.rootMods = scanMods(idx.root.ModsDir(), GlobalLocation)
	idx.versions = scanVersions(idx.root)

	slog.Debug("Scanned installation",
		slog.String("path", root),
		slog.Int("versions", len(idx.versions)),
		slog.Int("mods", len(idx.rootMods)),
		slog.Int("screenshots", len(idx.screenshots)))
	return idx, nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// listFacet lists dir, treating an unreadable or non-directory path as empty.
func listFacet(dir string, keep func(os.DirEntry) bool) []os.DirEntry {
	entries, err := filesys.ListDir(dir, keep)
	if err != nil {
		slog.Warn("Skipping unreadable directory", slog.String("path", dir), slog.Any("error", err))
		return nil
	}
	return entries
}

func isFile(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}

func isDir(dir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}

func hasExt(name string, exts map[string]struct{}) bool {
	_, ok := exts[strings.ToLower(filepath.Ext(name))]
	return ok
}

func isJar(name string) bool {
	return strings.EqualFold(filepath.Ext(name), layout.JarExt)
}

func scanScreenshots(dir string) []string {
	entries := listFacet(dir, func(e os.DirEntry) bool {
		return isFile(dir, e) && hasExt(e.Name(), screenshotExts)
	})

	shots := make([]string, 0, len(entries))
	for _, e := range entries {
		shots = append(shots, filepath.Join(dir, e.Name()))
	}
	return shots
}

func scanMods(dir, location string) []ModEntry {
	entries := listFacet(dir, func(e os.DirEntry) bool {
		return isFile(dir, e) && isJar(e.Name())
	})

	mods := make([]ModEntry, 0, len(entries))
	for _, e := range entries {
		mods = append(mods, ModEntry{
			Name:     filesys.GetBaseName(e.Name()),
			Path:     filepath.Join(dir, e.Name()),
			Location: location,
		})
	}
	return mods
}

func scanVersions(root layout.Root) []VersionEntry {
	dir := root.VersionsDir()
	entries := listFacet(dir, func(e os.DirEntry) bool {
		return isDir(dir, e)
	})

	versions := make([]VersionEntry, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		v := VersionEntry{
			Name: name,
			Path: root.VersionDir(name),
			Mods: scanMods(root.VersionModsDir(name), name),
		}
		peekDescriptor(root, &v)
		versions = append(versions, v)
	}
	return versions
}

// peekDescriptor fills the descriptor id and type of v from its descriptor
// file, leaving them empty when there is none or it is unreadable.
func peekDescriptor(root layout.Root, v *VersionEntry) {
	path, err := layout.LocateDescriptor(root, v.Name)
	if err != nil || path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil || !gjson.ValidBytes(data) {
		return
	}
	res := gjson.GetManyBytes(data, "id", "type")
	v.DescriptorID = res[0].String()
	v.Type = manifest.VersionType(res[1].String())
}

func (idx *Index) Path() string {
	return idx.root.String()
}

func (idx *Index) Name() string {
	return idx.name
}

func (idx *Index) Root() layout.Root {
	return idx.root
}

func (idx *Index) Versions() []VersionEntry {
	out := make([]VersionEntry, len(idx.versions))
	for i, v := range idx.versions {
		v.Mods = append([]ModEntry{}, v.Mods...)
		out[i] = v
	}
	return out
}

func (idx *Index) RootMods() []ModEntry {
	return append([]ModEntry{}, idx.rootMods...)
}

// ModsForVersion returns the mods of the version directory called name.
func (idx *Index) ModsForVersion(name string) ([]ModEntry, error) {
	for _, v := range idx.versions {
		if v.Name == name {
			return append([]ModEntry{}, v.Mods...), nil
		}
	}
	return nil, errkind.NotFoundf("version %s in %s", name, idx.root)
}

// ModsAt returns the mods of a location tag, GlobalLocation or a version name.
func (idx *Index) ModsAt(location string) ([]ModEntry, error) {
	if location == GlobalLocation {
		return idx.RootMods(), nil
	}
	return idx.ModsForVersion(location)
}

// AllMods returns the root mods followed by the mods of every version in
// directory listing order.
func (idx *Index) AllMods() []ModEntry {
	all := append([]ModEntry{}, idx.rootMods...)
	for _, v := range idx.versions {
		all = append(all, v.Mods...)
	}
	return all
}

// Screenshots returns the screenshots directory and the files captured when
// the index was built. The list is empty if the directory did not exist then.
func (idx *Index) Screenshots() (string, []string) {
	dir := idx.root.ScreenshotsDir()
	if !idx.hasShots {
		return dir, []string{}
	}
	return dir, append([]string{}, idx.screenshots...)
}
