// Package discovery finds fixture files in a data directory.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FixturePattern matches the names the generator writes.
const FixturePattern = "test_*.csv"

// Scanner looks for fixture files that are not part of the known set
type Scanner struct {
	known map[string]bool
}

// NewScanner creates a new Scanner; knownFiles are file names relative to
// the scanned directory.
func NewScanner(knownFiles []string) *Scanner {
	known := make(map[string]bool)
	for _, name := range knownFiles {
		known[filepath.Clean(name)] = true
	}
	return &Scanner{known: known}
}

// Scan returns the unknown fixture-like files under root, relative to root
// and sorted. A missing root has no files.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir is not a directory: %s", root)
	}

	var strays []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if ok, _ := filepath.Match(FixturePattern, d.Name()); !ok {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !s.known[rel] {
			strays = append(strays, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(strays)
	return strays, nil
}
