package storage

import (
	"csvprep/internal/config"
	"csvprep/internal/domain"
)

// Storage persists the fixture manifest of a data directory.
type Storage interface {
	Load() (*domain.Manifest, error)
	Save(manifest *domain.Manifest) error
}

// JSONStorage keeps the manifest as an indented JSON file inside the data directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's manifest path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
