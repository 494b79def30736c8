package main

import (
	"fmt"
	"os"

	"csvprep/internal/cli"
	"csvprep/internal/cli/commands"
	"csvprep/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "csvprep [sizes...]",
		Short: "Prepare CSV fixtures for the benchmarks",
		Long: `Generate deterministic CSV test files of known shape (small, medium, large) and verify
that files already on disk still have the expected header width and row count.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
