package commands

import (
	"fmt"

	"csvprep/internal/catalog"
	"csvprep/internal/cli"
	"csvprep/internal/config"
	"csvprep/internal/discovery"
	"csvprep/internal/fixture"
	"csvprep/internal/logging"
	"csvprep/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands holds all CLI commands
type Commands struct {
	Prepare *PrepareCommand
	List    *ListCommand
	Preview *PreviewCommand
}

// NewCommands creates all commands with dependencies. cfg is filled in
// place once the flags are parsed, so dependencies may keep the pointer.
func NewCommands(cfg *config.Config) *Commands {
	verifier := fixture.NewVerifier()
	jsonStorage := storage.NewJSONStorage(cfg)

	var known []string
	for _, size := range catalog.All() {
		known = append(known, catalog.FileName(size))
	}
	scanner := discovery.NewScanner(known)

	return &Commands{
		Prepare: NewPrepareCommand(cfg, verifier, jsonStorage),
		List:    NewListCommand(cfg, scanner, jsonStorage),
		Preview: NewPreviewCommand(cfg),
	}
}

// Register registers all commands with cobra. The root command itself
// prepares the fixtures.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.Prepare.Execute
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig(flags, cfg)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	}

	rootCmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", "", fmt.Sprintf("Directory holding the fixtures (default %q)", config.DefaultDataDir))
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", fmt.Sprintf("YAML config file (default ./%s when present)", config.DefaultConfigFile))
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", "", fmt.Sprintf("Env file with CSVPREP_* settings (default ./%s when present)", config.DefaultEnvFile))
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.Flags().StringSliceVarP(&flags.Sizes, "sizes", "s", nil, "Sizes to prepare: small, medium, large or all (default all)")
	rootCmd.Flags().BoolVar(&flags.Verify, "verify", false, "Only verify existing files")
	rootCmd.Flags().BoolVar(&flags.Force, "force", false, "Regenerate files that already exist")
	rootCmd.Flags().BoolVar(&flags.TrustExisting, "trust-existing", false, "Keep existing files without verifying them")
	rootCmd.Flags().BoolVar(&flags.Checksum, "checksum", false, "With --verify, also compare checksums recorded in the manifest")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fixture sizes and their state",
		Long:  "Show every known size with its file, size on disk and the last recorded run",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Preview command
	previewCmd := &cobra.Command{
		Use:   "preview <size>",
		Short: "Browse the first rows of a fixture",
		Long:  "Open the header and the first rows of a generated fixture in an interactive table",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Preview.Execute,
	}
	previewCmd.Flags().IntVarP(&flags.PreviewRows, "rows", "n", config.DefaultPreviewRows, "Number of data rows to show")
	rootCmd.AddCommand(previewCmd)
}

func loadConfig(flags *cli.Flags, cfg *config.Config) error {
	loaded, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	*cfg = *loaded

	logger, err := logging.New(cfg.Flags.Verbose)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	zap.L().Debug("Configuration loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.String("line_ending", cfg.LineEnding),
		zap.Bool("manifest", cfg.Manifest))
	return nil
}
