package commands

import (
	"os"

	"csvprep/internal/catalog"
	"csvprep/internal/config"
	"csvprep/internal/discovery"
	"csvprep/internal/domain"
	"csvprep/internal/storage"
	"csvprep/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	storage storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, scanner *discovery.Scanner, st storage.Storage) *ListCommand {
	return &ListCommand{
		config:  cfg,
		scanner: scanner,
		storage: st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	var manifest *domain.Manifest
	if lc.config.Manifest {
		m, err := lc.storage.Load()
		if err != nil {
			zap.L().Warn("Ignoring unreadable manifest", zap.Error(err))
		} else {
			manifest = m
		}
	}

	sizes := catalog.All()
	entries := make([]ui.ListEntry, 0, len(sizes))
	for _, size := range sizes {
		entry := ui.ListEntry{
			Config: size,
			File:   catalog.FileName(size),
		}
		if info, err := os.Stat(catalog.Path(lc.config.DataDir, size)); err == nil {
			entry.Exists = true
			entry.Size = info.Size()
		}
		if manifest != nil {
			if rec, ok := manifest.Find(size.Name); ok {
				entry.Record = &rec
			}
		}
		entries = append(entries, entry)
	}

	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	console.PrintFixtureList(lc.config.DataDir, entries)

	strays, err := lc.scanner.Scan(lc.config.DataDir)
	if err != nil {
		return err
	}
	console.PrintStrayFiles(strays)
	return nil
}
