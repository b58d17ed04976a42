package testsupp

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ZipEntry is a file of an archive built by WriteZip. Names ending with a
// slash become directory entries.
type ZipEntry struct {
	Name string
	Body string
}

// WriteZip writes a zip archive with entries, in order, to target.
func WriteZip(t *testing.T, target string, entries ...ZipEntry) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(target), os.ModePerm))
	f, err := os.Create(target)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.Body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}
