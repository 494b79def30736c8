package domain

import "testing"

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{100000, "100,000"},
		{1000000, "1,000,000"},
		{-12345, "-12,345"},
	}

	for _, tt := range tests {
		if got := GroupThousands(tt.n); got != tt.want {
			t.Errorf("GroupThousands(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSizeConfigString(t *testing.T) {
	cfg := SizeConfig{Name: "medium", Rows: 100000, Cols: 10}
	want := "medium (100,000 rows × 10 columns)"
	if got := cfg.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRunSummary(t *testing.T) {
	var s RunSummary
	if s.Failed() {
		t.Fatal("empty summary must not be failed")
	}

	s.AddFile(100)
	s.AddFile(50)
	if s.FilesProcessed != 2 || s.TotalBytes != 150 {
		t.Errorf("got %d files / %d bytes, want 2 / 150", s.FilesProcessed, s.TotalBytes)
	}

	s.AddError("test_small_1000x5.csv: File not found")
	if !s.Failed() {
		t.Error("summary with an error must be failed")
	}
}

func TestManifestUpsert(t *testing.T) {
	var m Manifest
	m.Upsert(FixtureRecord{Name: "small", Status: StatusGenerated})
	m.Upsert(FixtureRecord{Name: "medium", Status: StatusMissing, UpdatedAt: "2024-01-01T00:00:00Z"})
	m.Upsert(FixtureRecord{Name: "small", Status: StatusVerified})

	if len(m.Fixtures) != 2 {
		t.Fatalf("expected 2 records, got %d", len(m.Fixtures))
	}

	small, ok := m.Find("small")
	if !ok {
		t.Fatal("small not found")
	}
	if small.Status != StatusVerified {
		t.Errorf("small status = %s, want %s", small.Status, StatusVerified)
	}
	if small.UpdatedAt == "" {
		t.Error("UpdatedAt should be stamped")
	}

	medium, _ := m.Find("medium")
	if medium.UpdatedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("explicit UpdatedAt overwritten: %q", medium.UpdatedAt)
	}

	if _, ok := m.Find("large"); ok {
		t.Error("large should not be found")
	}
}
