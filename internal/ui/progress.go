package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders generation progress in rows.
type ProgressBar struct {
	bar *progressbar.ProgressBar
	w   io.Writer
}

// NewProgressBar creates a new progress bar counting up to total rows
func NewProgressBar(w io.Writer, total int, name string) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.CyanString("Writing %s: ", name)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, w: w}
}

// Update moves the bar to the given row
func (p *ProgressBar) Update(row int) {
	_ = p.bar.Set(row)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar.IsFinished() {
		return
	}
	_ = p.bar.Finish()
}

// Abort stops rendering without filling the bar.
func (p *ProgressBar) Abort() {
	_ = p.bar.Exit()
	fmt.Fprint(p.w, "\n")
}
