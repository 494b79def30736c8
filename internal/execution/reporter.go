package execution

import (
	"time"

	"csvprep/internal/domain"
)

// Reporter receives per-fixture events. ui.Console implements it.
type Reporter interface {
	FixtureStart(cfg domain.SizeConfig)
	FixtureEnd()
	Skipped(file string, size int64)
	GenerateStart(cfg domain.SizeConfig)
	GenerateProgress(row, total int)
	GenerateDone(size int64, elapsed time.Duration)
	GenerateFailed(err error)
	VerifyStart(file string)
	VerifyDone(res domain.VerificationResult, size int64)
	Missing(file string)
}
