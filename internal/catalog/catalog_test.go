package catalog

import (
	"path/filepath"
	"testing"

	"csvprep/internal/domain"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
		wantErr  bool
	}{
		{name: "empty selects all", input: nil, expected: []string{"small", "medium", "large"}},
		{name: "all keyword", input: []string{"all"}, expected: []string{"small", "medium", "large"}},
		{name: "all mixed with names", input: []string{"small", "all"}, expected: []string{"small", "medium", "large"}},
		{name: "single size", input: []string{"small"}, expected: []string{"small"}},
		{name: "keeps requested order", input: []string{"large", "small"}, expected: []string{"large", "small"}},
		{name: "drops duplicates", input: []string{"medium", "medium"}, expected: []string{"medium"}},
		{name: "unknown size", input: []string{"huge"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Select(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d sizes, got %d", len(tt.expected), len(result))
			}
			for i, name := range tt.expected {
				if result[i].Name != name {
					t.Errorf("position %d: expected %s, got %s", i, name, result[i].Name)
				}
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Rows = 1

	cfg, ok := Lookup("small")
	if !ok {
		t.Fatal("small should exist")
	}
	if cfg.Rows != 1000 {
		t.Errorf("table was mutated through All(): rows = %d", cfg.Rows)
	}
}

func TestFileName(t *testing.T) {
	cfg := domain.SizeConfig{Name: "small", Rows: 1000, Cols: 5}
	if got := FileName(cfg); got != "test_small_1000x5.csv" {
		t.Errorf("expected test_small_1000x5.csv, got %s", got)
	}
	if got := Path("/app/data", cfg); got != filepath.Join("/app/data", "test_small_1000x5.csv") {
		t.Errorf("unexpected path %s", got)
	}
}
