package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrCorrupted marks archives that cannot be opened or read. Callers skip
// the archive and keep going.
var ErrCorrupted = errors.New("corrupted zip file")

// List returns the paths of all zip archives directly under dir, sorted by
// filename so runs process archives in a deterministic order.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".zip") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// EntryFunc receives each text entry of an archive. Returning an error
// aborts the walk and propagates.
type EntryFunc func(name string, r io.Reader) error

// Walk opens the archive at path and calls fn for every .txt entry inside
// it. Entries with other extensions are ignored. A corrupted or unreadable
// archive surfaces as the returned error.
func Walk(path string, fn EntryFunc) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupted, path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".txt") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("%w: %s: entry %s: %v", ErrCorrupted, path, f.Name, err)
		}
		err = fn(f.Name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
