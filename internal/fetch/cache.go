package fetch

import (
	"os"
	"path/filepath"
)

// readCache returns the cached body at path. Empty files count as misses.
func readCache(path string) (string, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the cache dir and an id
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// writeCache stores body at path through a temporary file so an
// interrupted run never leaves a truncated page behind.
func writeCache(path string, body []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".page-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(body); err != nil {
		tmp.Close() //nolint:errcheck,gosec
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
