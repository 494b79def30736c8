// Package catalog holds the fixed table of fixture sizes the benchmark
// harness expects, and the rule that maps a size to its file name.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"csvprep/internal/domain"
)

// AllSizes is the selector that expands to every configuration.
const AllSizes = "all"

// sizes must stay in sync with the benchmark harness. Accessors hand out copies.
var sizes = []domain.SizeConfig{
	{Name: "small", Rows: 1000, Cols: 5},
	{Name: "medium", Rows: 100000, Cols: 10},
	{Name: "large", Rows: 1000000, Cols: 15},
}

// All returns every configuration in table order.
func All() []domain.SizeConfig {
	out := make([]domain.SizeConfig, len(sizes))
	copy(out, sizes)
	return out
}

// Names returns the configuration names in table order.
func Names() []string {
	names := make([]string, 0, len(sizes))
	for _, s := range sizes {
		names = append(names, s.Name)
	}
	return names
}

// Lookup returns the configuration with the given name.
func Lookup(name string) (domain.SizeConfig, bool) {
	for _, s := range sizes {
		if s.Name == name {
			return s, true
		}
	}
	return domain.SizeConfig{}, false
}

// Select resolves user supplied size names. An empty list or any "all"
// entry selects the whole table; otherwise the named sizes are returned in
// the requested order, each at most once.
func Select(names []string) ([]domain.SizeConfig, error) {
	if len(names) == 0 {
		return All(), nil
	}
	for _, name := range names {
		if strings.TrimSpace(name) == AllSizes {
			return All(), nil
		}
	}

	seen := make(map[string]bool)
	var selected []domain.SizeConfig
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		cfg, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown size %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		seen[name] = true
		selected = append(selected, cfg)
	}
	if len(selected) == 0 {
		return All(), nil
	}
	return selected, nil
}

// FileName returns the fixture file name, e.g. "test_small_1000x5.csv".
func FileName(cfg domain.SizeConfig) string {
	return fmt.Sprintf("test_%s_%dx%d.csv", cfg.Name, cfg.Rows, cfg.Cols)
}

// Path returns the fixture location under dataDir.
func Path(dataDir string, cfg domain.SizeConfig) string {
	return filepath.Join(dataDir, FileName(cfg))
}
