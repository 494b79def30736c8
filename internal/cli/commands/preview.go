package commands

import (
	"errors"
	"fmt"
	"strings"

	"csvprep/internal/catalog"
	"csvprep/internal/config"
	"csvprep/internal/fixture"
	"csvprep/internal/ui"

	"github.com/spf13/cobra"
)

// PreviewCommand handles the preview command
type PreviewCommand struct {
	config *config.Config
	show   func(title string, header []string, rows [][]string) error
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(cfg *config.Config) *PreviewCommand {
	return &PreviewCommand{
		config: cfg,
		show:   ui.Preview,
	}
}

// Execute runs the command
func (pc *PreviewCommand) Execute(cmd *cobra.Command, args []string) error {
	size, ok := catalog.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown size %q (available: %s)", args[0], strings.Join(catalog.Names(), ", "))
	}

	file := catalog.FileName(size)
	header, rows, err := fixture.ReadHead(catalog.Path(pc.config.DataDir, size), pc.config.Flags.PreviewRows)
	if errors.Is(err, fixture.ErrNotFound) {
		return fmt.Errorf("%s has not been generated yet, run csvprep --sizes %s first", file, size.Name)
	}
	if err != nil {
		return err
	}

	return pc.show(file, header, rows)
}
