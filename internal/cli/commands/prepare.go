package commands

import (
	"fmt"

	"csvprep/internal/catalog"
	"csvprep/internal/config"
	"csvprep/internal/execution"
	"csvprep/internal/fixture"
	"csvprep/internal/storage"
	"csvprep/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// PrepareCommand generates or verifies the selected fixtures
type PrepareCommand struct {
	config   *config.Config
	verifier *fixture.Verifier
	storage  storage.Storage
}

// NewPrepareCommand creates a new PrepareCommand
func NewPrepareCommand(cfg *config.Config, verifier *fixture.Verifier, st storage.Storage) *PrepareCommand {
	return &PrepareCommand{
		config:   cfg,
		verifier: verifier,
		storage:  st,
	}
}

// Execute runs the command. Positional arguments are extra size names.
func (pc *PrepareCommand) Execute(cmd *cobra.Command, args []string) error {
	names := append(append([]string{}, pc.config.Flags.Sizes...), args...)
	sizes, err := catalog.Select(names)
	if err != nil {
		return err
	}

	opts := execution.Options{
		Verify:        pc.config.Flags.Verify,
		Force:         pc.config.Flags.Force,
		TrustExisting: pc.config.Flags.TrustExisting,
		Checksum:      pc.config.Flags.Checksum,
	}
	if opts.Checksum && !opts.Verify {
		zap.L().Warn("--checksum only applies together with --verify")
	}

	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	console.Header(pc.config.DataDir, sizes, opts.Label())

	generator := fixture.NewGenerator(fixture.Options{
		ProgressEvery:     pc.config.ProgressEvery,
		ProgressThreshold: pc.config.ProgressThreshold,
		UseCRLF:           pc.config.UseCRLF(),
	})
	runner := execution.NewRunner(pc.config, generator, pc.verifier, console, zap.L())

	var st storage.Storage
	if pc.config.Manifest {
		st = pc.storage
	}
	executor := execution.NewSequentialExecutor(pc.config, runner, st, zap.L())

	summary := executor.Execute(sizes, opts)
	console.Summary(summary, pc.config.BenchmarkHints)

	if summary.Failed() {
		return fmt.Errorf("%d error(s) during preparation", len(summary.Errors))
	}
	return nil
}
