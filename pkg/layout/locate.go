package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocateDescriptor returns the descriptor file of the version directory id.
// versions/<id>/<id>.json is preferred; an aliased install keeps its
// descriptor under the requested id, so the single *.json of the directory is
// used otherwise. An empty path means no descriptor could be chosen.
func LocateDescriptor(r Root, id string) (string, error) {
	own := r.DescriptorFile(id, id)
	info, err := os.Stat(own)
	switch {
	case err == nil && info.Mode().IsRegular():
		return own, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("stat %s: %w", own, err)
	}

	matches, err := filepath.Glob(filepath.Join(r.VersionDir(id), "*"+JSONExt))
	if err != nil {
		return "", fmt.Errorf("list descriptors of %s: %w", id, err)
	}
	var found []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		return "", nil
	}
	return found[0], nil
}
