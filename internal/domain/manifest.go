package domain

import "time"

// FixtureStatus is the last known state of a fixture on disk.
type FixtureStatus string

const (
	StatusGenerated FixtureStatus = "generated"
	StatusSkipped   FixtureStatus = "skipped"
	StatusVerified  FixtureStatus = "verified"
	StatusFailed    FixtureStatus = "failed"
	StatusMissing   FixtureStatus = "missing"
)

// FixtureRecord describes one fixture as seen by the most recent run that touched it.
type FixtureRecord struct {
	Name      string        `json:"name"`
	File      string        `json:"file"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Bytes     int64         `json:"bytes"`
	Checksum  string        `json:"checksum,omitempty"`
	Status    FixtureStatus `json:"status"`
	Message   string        `json:"message,omitempty"`
	UpdatedAt string        `json:"updated_at"`
}

// Manifest is the persisted record of the data directory.
type Manifest struct {
	RunID     string          `json:"run_id"`
	Timestamp string          `json:"timestamp"`
	Mode      string          `json:"mode"`
	DataDir   string          `json:"data_dir"`
	Fixtures  []FixtureRecord `json:"fixtures"`
}

// Find returns the record for the named fixture.
func (m *Manifest) Find(name string) (FixtureRecord, bool) {
	for _, rec := range m.Fixtures {
		if rec.Name == name {
			return rec, true
		}
	}
	return FixtureRecord{}, false
}

// Upsert replaces the record with the same name or appends a new one.
func (m *Manifest) Upsert(rec FixtureRecord) {
	if rec.UpdatedAt == "" {
		rec.UpdatedAt = time.Now().Format(time.RFC3339)
	}
	for i := range m.Fixtures {
		if m.Fixtures[i].Name == rec.Name {
			m.Fixtures[i] = rec
			return
		}
	}
	m.Fixtures = append(m.Fixtures, rec)
}
