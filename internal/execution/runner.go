package execution

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"csvprep/internal/catalog"
	"csvprep/internal/checksum"
	"csvprep/internal/config"
	"csvprep/internal/domain"
	"csvprep/internal/fixture"
)

// ErrChecksumMismatch marks a fixture whose content changed since the manifest was written.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Outcome is what preparing a single fixture produced.
type Outcome struct {
	Record domain.FixtureRecord
	Ready  bool   // the file counts as processed
	Size   int64  // bytes on disk when Ready
	Error  string // recorded error, empty on success
}

// Runner prepares a single fixture
type Runner struct {
	config    *config.Config
	generator *fixture.Generator
	verifier  *fixture.Verifier
	reporter  Reporter
	logger    *zap.Logger
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, generator *fixture.Generator, verifier *fixture.Verifier, reporter Reporter, logger *zap.Logger) *Runner {
	return &Runner{
		config:    cfg,
		generator: generator,
		verifier:  verifier,
		reporter:  reporter,
		logger:    logger,
	}
}

// Run generates or verifies the fixture for size. prev is the manifest
// record from an earlier run, if any.
func (r *Runner) Run(size domain.SizeConfig, opts Options, prev *domain.FixtureRecord) Outcome {
	file := catalog.FileName(size)
	path := catalog.Path(r.config.DataDir, size)

	out := Outcome{Record: domain.FixtureRecord{
		Name: size.Name,
		File: file,
		Rows: size.Rows,
		Cols: size.Cols,
	}}
	if prev != nil {
		out.Record.Checksum = prev.Checksum
		out.Record.Bytes = prev.Bytes
	}

	r.reporter.FixtureStart(size)
	defer r.reporter.FixtureEnd()

	info, statErr := os.Stat(path)
	exists := statErr == nil

	switch {
	case opts.Verify:
		if !exists {
			r.reporter.Missing(file)
			return r.fail(out, domain.StatusMissing, file, "File not found")
		}
		return r.verifyExisting(out, size, path, info.Size(), opts)
	case exists && !opts.Force:
		return r.keepExisting(out, size, path, info.Size(), opts)
	default:
		return r.generate(out, size, path)
	}
}

func (r *Runner) verifyExisting(out Outcome, size domain.SizeConfig, path string, fileSize int64, opts Options) Outcome {
	r.reporter.VerifyStart(out.Record.File)
	res := r.verifier.Verify(path, size.Rows, size.Cols)

	// The recorded checksum is the baseline from generation; verifying
	// never replaces it.
	sum := out.Record.Checksum
	if res.OK && r.config.Manifest {
		switch {
		case sum == "":
			sum = r.checksum(path)
		case opts.Checksum:
			if current := r.checksum(path); current != sum {
				msg := fmt.Sprintf("Checksum mismatch (manifest %s, file %s)", sum, current)
				res = domain.VerificationResult{Message: msg, Err: fmt.Errorf("%w: %s", ErrChecksumMismatch, out.Record.File)}
			}
		}
	}
	r.reporter.VerifyDone(res, fileSize)

	if !res.OK {
		return r.fail(out, domain.StatusFailed, out.Record.File, res.Message)
	}
	return r.ready(out, domain.StatusVerified, fileSize, sum)
}

func (r *Runner) keepExisting(out Outcome, size domain.SizeConfig, path string, fileSize int64, opts Options) Outcome {
	if !opts.TrustExisting {
		r.reporter.VerifyStart(out.Record.File)
		res := r.verifier.Verify(path, size.Rows, size.Cols)
		r.reporter.VerifyDone(res, fileSize)
		if !res.OK {
			return r.fail(out, domain.StatusFailed, out.Record.File, res.Message+" (run with --force to regenerate)")
		}
	}

	r.reporter.Skipped(out.Record.File, fileSize)
	r.logger.Debug("Existing fixture kept",
		zap.String("file", path),
		zap.Int64("bytes", fileSize),
		zap.Bool("verified", !opts.TrustExisting))

	sum := out.Record.Checksum
	if r.config.Manifest && sum == "" {
		sum = r.checksum(path)
	}
	return r.ready(out, domain.StatusSkipped, fileSize, sum)
}

func (r *Runner) generate(out Outcome, size domain.SizeConfig, path string) Outcome {
	r.reporter.GenerateStart(size)
	start := time.Now()

	written, err := r.generator.Generate(path, size.Rows, size.Cols, r.reporter.GenerateProgress)
	if err != nil {
		r.reporter.GenerateFailed(err)
		r.logger.Error("Fixture generation failed", zap.String("file", path), zap.Error(err))
		out.Record.Checksum = ""
		return r.fail(out, domain.StatusFailed, out.Record.File, err.Error())
	}

	fileSize := written
	if info, err := os.Stat(path); err == nil {
		fileSize = info.Size()
	}
	elapsed := time.Since(start)
	r.reporter.GenerateDone(fileSize, elapsed)
	r.logger.Debug("Fixture generated",
		zap.String("file", path),
		zap.Int("rows", size.Rows),
		zap.Int("cols", size.Cols),
		zap.Int64("bytes", fileSize),
		zap.Duration("elapsed", elapsed))

	r.reporter.VerifyStart("")
	res := r.verifier.Verify(path, size.Rows, size.Cols)
	r.reporter.VerifyDone(res, fileSize)

	var sum string
	if r.config.Manifest {
		sum = r.checksum(path)
	}
	out = r.ready(out, domain.StatusGenerated, fileSize, sum)
	if !res.OK {
		out.Record.Status = domain.StatusFailed
		out.Record.Message = res.Message
		out.Error = fmt.Sprintf("%s: %s", out.Record.File, res.Message)
	}
	return out
}

func (r *Runner) checksum(path string) string {
	sum, err := checksum.File(path)
	if err != nil {
		r.logger.Warn("Could not checksum fixture", zap.String("file", path), zap.Error(err))
		return ""
	}
	return sum
}

func (r *Runner) ready(out Outcome, status domain.FixtureStatus, size int64, sum string) Outcome {
	out.Ready = true
	out.Size = size
	out.Record.Status = status
	out.Record.Bytes = size
	out.Record.Checksum = sum
	return out
}

func (r *Runner) fail(out Outcome, status domain.FixtureStatus, file, msg string) Outcome {
	out.Record.Status = status
	out.Record.Message = msg
	out.Error = fmt.Sprintf("%s: %s", file, msg)
	return out
}
