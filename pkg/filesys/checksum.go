package filesys

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rogpeppe/go-internal/dirhash"
	"github.com/zeebo/xxh3"
)

func hashXXH3(files []string, open func(string) (io.ReadCloser, error)) (string, error) {
	h := xxh3.New()
	files = append([]string(nil), files...)
	sort.Strings(files)
	for _, file := range files {
		if strings.Contains(file, "\n") {
			return "", errors.New("dirhash: filenames with newlines are not supported")
		}
		r, err := open(file)
		if err != nil {
			return "", err
		}
		hf := xxh3.New()
		_, err = io.Copy(hf, r)
		r.Close()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%x  %s\n", hf.Sum(nil), file)
	}
	return "xxh3:" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// ComputeDirectoryHash fingerprints every file below dir. The result only
// depends on relative file names and contents.
func ComputeDirectoryHash(dir string) (string, error) {
	return dirhash.HashDir(dir, "", hashXXH3)
}

// ComputeSHA1 returns the lower-case hex SHA1 digest of the file at path.
func ComputeSHA1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MatchesSHA1 compares the digest of the file at path with expected,
// ignoring case.
func MatchesSHA1(path, expected string) (bool, error) {
	actual, err := ComputeSHA1(path)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(actual, expected), nil
}
