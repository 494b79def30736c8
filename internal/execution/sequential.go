package execution

import (
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"csvprep/internal/config"
	"csvprep/internal/domain"
	"csvprep/internal/storage"
)

// SequentialExecutor prepares fixtures one after another and keeps the
// manifest up to date.
type SequentialExecutor struct {
	config  *config.Config
	runner  *Runner
	storage storage.Storage
	logger  *zap.Logger
}

// NewSequentialExecutor creates a new SequentialExecutor. st may be nil to
// skip the manifest.
func NewSequentialExecutor(cfg *config.Config, runner *Runner, st storage.Storage, logger *zap.Logger) *SequentialExecutor {
	return &SequentialExecutor{
		config:  cfg,
		runner:  runner,
		storage: st,
		logger:  logger,
	}
}

// Execute runs the pass. Failures are collected in the summary; they never
// stop the remaining sizes from being processed.
func (e *SequentialExecutor) Execute(sizes []domain.SizeConfig, opts Options) domain.RunSummary {
	manifest := e.loadManifest()

	var summary domain.RunSummary
	startTime := time.Now()

	for _, size := range sizes {
		var prev *domain.FixtureRecord
		if manifest != nil {
			if rec, ok := manifest.Find(size.Name); ok {
				prev = &rec
			}
		}

		outcome := e.runner.Run(size, opts, prev)
		if outcome.Ready {
			summary.AddFile(outcome.Size)
		}
		if outcome.Error != "" {
			summary.AddError(outcome.Error)
		}
		if manifest != nil {
			manifest.Upsert(outcome.Record)
		}
	}

	e.logger.Info("Preparation pass finished",
		zap.String("mode", opts.Mode()),
		zap.Int("files", summary.FilesProcessed),
		zap.Int64("bytes", summary.TotalBytes),
		zap.Int("errors", len(summary.Errors)),
		zap.Duration("elapsed", time.Since(startTime)))

	e.saveManifest(manifest, opts)
	return summary
}

func (e *SequentialExecutor) loadManifest() *domain.Manifest {
	if e.storage == nil {
		return nil
	}
	manifest, err := e.storage.Load()
	if err != nil {
		e.logger.Warn("Ignoring unreadable manifest", zap.Error(err))
		return &domain.Manifest{}
	}
	return manifest
}

func (e *SequentialExecutor) saveManifest(manifest *domain.Manifest, opts Options) {
	if manifest == nil {
		return
	}
	if opts.Verify {
		// verification never creates the data directory
		if _, err := os.Stat(e.config.DataDir); err != nil {
			return
		}
	}
	manifest.RunID = uuid.NewString()
	manifest.Timestamp = time.Now().Format(time.RFC3339)
	manifest.Mode = opts.Mode()
	manifest.DataDir = e.config.DataDir

	if err := e.storage.Save(manifest); err != nil {
		e.logger.Warn("Could not write manifest", zap.String("path", e.config.GetManifestPath()), zap.Error(err))
	}
}
