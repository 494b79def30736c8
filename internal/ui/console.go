package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"csvprep/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Console prints preparation progress for humans. Text goes to out, the
// row progress bar to progress.
type Console struct {
	out      io.Writer
	progress io.Writer

	current       domain.SizeConfig
	bar           *ProgressBar
	afterGenerate bool
}

// NewConsole creates a new Console
func NewConsole(out, progress io.Writer) *Console {
	return &Console{out: out, progress: progress}
}

// Header prints the run banner.
func (c *Console) Header(dataDir string, sizes []domain.SizeConfig, mode string) {
	names := make([]string, 0, len(sizes))
	for _, s := range sizes {
		names = append(names, s.Name)
	}

	cyan.Fprintln(c.out, "╔════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(c.out, "║                 CSV Test Data Preparation                  ║")
	cyan.Fprintln(c.out, "╚════════════════════════════════════════════════════════════╝")
	fmt.Fprintf(c.out, "Data directory: %s\n", dataDir)
	fmt.Fprintf(c.out, "Sizes to process: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(c.out, "Mode: %s\n\n", mode)
}

// FixtureStart announces the next configuration.
func (c *Console) FixtureStart(cfg domain.SizeConfig) {
	c.current = cfg
	c.bar = nil
	fmt.Fprintf(c.out, "📁 Processing %s dataset:\n", cfg.Name)
}

// FixtureEnd closes the per-fixture block.
func (c *Console) FixtureEnd() {
	fmt.Fprintln(c.out)
}

// Skipped reports an existing file that was left in place.
func (c *Console) Skipped(file string, size int64) {
	fmt.Fprintf(c.out, "  ⏭️  Skipping %s (already exists, %s)\n", file, FormatBytes(size))
}

// GenerateStart prints the creation line; it is completed by GenerateDone.
func (c *Console) GenerateStart(cfg domain.SizeConfig) {
	fmt.Fprintf(c.out, "  Creating %s dataset: %s rows × %d columns... ", cfg.Name, domain.GroupThousands(cfg.Rows), cfg.Cols)
}

// GenerateProgress feeds the row progress bar. It matches fixture.ProgressFunc.
func (c *Console) GenerateProgress(row, total int) {
	if c.bar == nil {
		fmt.Fprintln(c.out)
		c.bar = NewProgressBar(c.progress, total, c.current.Name)
	}
	c.bar.Update(row)
}

// GenerateDone completes the creation line.
func (c *Console) GenerateDone(size int64, elapsed time.Duration) {
	if c.bar != nil {
		c.bar.Finish()
		c.bar = nil
		fmt.Fprint(c.out, "  ")
	}
	green.Fprintf(c.out, "Done (%.1fs, %s)\n", elapsed.Seconds(), FormatBytes(size))
}

// GenerateFailed reports a generation error.
func (c *Console) GenerateFailed(err error) {
	if c.bar != nil {
		c.bar.Abort()
		c.bar = nil
	}
	red.Fprintf(c.out, "❌ Error: %v\n", err)
}

// VerifyStart opens a verification line. An empty file name means the
// file was just generated.
func (c *Console) VerifyStart(file string) {
	c.afterGenerate = file == ""
	if c.afterGenerate {
		fmt.Fprint(c.out, "  Verifying... ")
		return
	}
	fmt.Fprintf(c.out, "  Verifying %s... ", file)
}

// VerifyDone completes the verification line.
func (c *Console) VerifyDone(res domain.VerificationResult, size int64) {
	switch {
	case !res.OK:
		red.Fprintf(c.out, "❌ %s\n", res.Message)
	case c.afterGenerate:
		green.Fprintln(c.out, "✅ Valid")
	default:
		green.Fprintf(c.out, "✅ %s (%s)\n", res.Message, FormatBytes(size))
	}
}

// Missing reports a fixture that should exist but does not.
func (c *Console) Missing(file string) {
	red.Fprintf(c.out, "  ❌ File not found: %s\n", file)
}

// Summary prints the totals, the error list, and on success the hints for
// running the benchmark.
func (c *Console) Summary(summary domain.RunSummary, hints []string) {
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintln(c.out, "📊 Summary:")
	fmt.Fprintf(c.out, "  Files processed: %d\n", summary.FilesProcessed)
	fmt.Fprintf(c.out, "  Total data size: %s\n", FormatBytes(summary.TotalBytes))

	if summary.Failed() {
		red.Fprintf(c.out, "  ❌ Errors: %d\n", len(summary.Errors))
		for _, e := range summary.Errors {
			red.Fprintf(c.out, "    • %s\n", e)
		}
		return
	}
	green.Fprintln(c.out, "  ✅ All files ready for benchmarking!")

	if len(hints) == 0 {
		return
	}
	fmt.Fprintln(c.out)
	cyan.Fprintln(c.out, "🚀 Ready to run benchmarks:")
	for _, h := range hints {
		fmt.Fprintf(c.out, "  %s\n", h)
	}
}

// ListEntry is one row of the fixture listing.
type ListEntry struct {
	Config domain.SizeConfig
	File   string
	Exists bool
	Size   int64
	Record *domain.FixtureRecord
}

// PrintFixtureList prints the catalog with on-disk and manifest state.
func (c *Console) PrintFixtureList(dataDir string, entries []ListEntry) {
	green.Fprintf(c.out, "Fixtures in %s:\n", dataDir)

	for i, e := range entries {
		last := i == len(entries)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}

		cyan.Fprintf(c.out, "%s%s", branch, e.Config.String())
		fmt.Fprintln(c.out)

		fmt.Fprintf(c.out, "%s%s ", indent, e.File)
		if e.Exists {
			white.Fprintf(c.out, "(%s)\n", FormatBytes(e.Size))
		} else {
			yellow.Fprintln(c.out, "(not generated)")
		}

		if e.Record != nil {
			status := string(e.Record.Status)
			if e.Record.Status == domain.StatusFailed || e.Record.Status == domain.StatusMissing {
				status = red.Sprint(status)
			} else {
				status = green.Sprint(status)
			}
			fmt.Fprintf(c.out, "%slast run: %s at %s", indent, status, e.Record.UpdatedAt)
			if e.Record.Checksum != "" {
				fmt.Fprintf(c.out, ", xxhash %s", e.Record.Checksum)
			}
			fmt.Fprintln(c.out)
		}
	}
}

// PrintStrayFiles lists fixture-like files in the data directory that no
// size produces.
func (c *Console) PrintStrayFiles(files []string) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintln(c.out)
	yellow.Fprintf(c.out, "Unrecognised fixture files (%d):\n", len(files))
	for _, f := range files {
		fmt.Fprintf(c.out, "  • %s\n", f)
	}
}
