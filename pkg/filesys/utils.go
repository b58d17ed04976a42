package filesys

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/otiai10/copy"
)

// GetBaseName Get filename without extension.
func GetBaseName(fileName string) string {
	filename := path.Base(filepath.ToSlash(fileName))

	return filename[:len(filename)-len(filepath.Ext(filename))]
}

// Exists reports whether anything is present at p.
func Exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", p, err)
}

// RemoveIfExists deletes the file at p. A missing file is not an error.
func RemoveIfExists(p string) error {
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", p, err)
	}
	return nil
}

// ListDir returns the entries of dir accepted by keep, in directory listing
// order. A missing dir yields no entries and no error.
func ListDir(dir string, keep func(os.DirEntry) bool) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var kept []os.DirEntry
	for _, entry := range entries {
		if keep(entry) {
			kept = append(kept, entry)
		}
	}
	return kept, nil
}

// ReplaceWithCopy copies the file or directory src to dst, removing whatever
// was at dst before. Parent directories of dst are created.
func ReplaceWithCopy(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("remove existing %s: %w", dst, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	if err := copy.Copy(src, dst); err != nil {
		return fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	return nil
}
