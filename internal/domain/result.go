package domain

// VerificationResult is the outcome of re-reading a fixture and checking its shape.
type VerificationResult struct {
	OK      bool   // Whether the file matched the expected dimensions
	Message string // "OK" or a human readable diagnostic
	Err     error  // Classified error when OK is false
}

// RunSummary accumulates what a single preparation pass did.
type RunSummary struct {
	FilesProcessed int
	TotalBytes     int64
	Errors         []string
}

// AddFile counts a fixture that is ready for benchmarking.
func (s *RunSummary) AddFile(size int64) {
	s.FilesProcessed++
	s.TotalBytes += size
}

// AddError records a per-file failure.
func (s *RunSummary) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// Failed reports whether any error was recorded during the pass.
func (s *RunSummary) Failed() bool {
	return len(s.Errors) > 0
}
