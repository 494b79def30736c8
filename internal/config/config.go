package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Fixture location
	DataDir      string `yaml:"data_dir"`
	ManifestFile string `yaml:"manifest_file"`
	Manifest     bool   `yaml:"manifest"`

	// Generation settings
	ProgressEvery     int    `yaml:"progress_every"`
	ProgressThreshold int    `yaml:"progress_threshold"`
	LineEnding        string `yaml:"line_ending"`

	// Printed after a successful run
	BenchmarkHints []string `yaml:"benchmark_hints"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	DataDir       string
	ConfigFile    string
	EnvFile       string
	Sizes         []string
	Verify        bool
	Force         bool
	TrustExisting bool
	Checksum      bool
	Verbose       bool
	PreviewRows   int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		DataDir:           DefaultDataDir,
		ManifestFile:      DefaultManifestFile,
		Manifest:          true,
		ProgressEvery:     DefaultProgressEvery,
		ProgressThreshold: DefaultProgressThreshold,
		LineEnding:        DefaultLineEnding,
		Flags:             Flags{PreviewRows: DefaultPreviewRows},
	}
	cfg.BenchmarkHints = make([]string, len(DefaultBenchmarkHints))
	copy(cfg.BenchmarkHints, DefaultBenchmarkHints)
	return cfg
}

// Load builds the effective configuration: defaults, then the YAML config
// file, then .env and the environment, then command-line flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	configFile := flags.ConfigFile
	required := configFile != ""
	if !required {
		configFile = DefaultConfigFile
	}
	if err := cfg.LoadFile(configFile, required); err != nil {
		return nil, err
	}

	envFile := flags.EnvFile
	required = envFile != ""
	if !required {
		envFile = DefaultEnvFile
	}
	if err := cfg.ApplyEnv(envFile, required); err != nil {
		return nil, err
	}

	cfg.ApplyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges a YAML config file into c. A missing file is only an
// error when required is set.
func (c *Config) LoadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv loads envFile into the process environment and applies the
// CSVPREP_* overrides. A missing file is only an error when required is set.
func (c *Config) ApplyEnv(envFile string, required bool) error {
	if err := godotenv.Load(envFile); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLineEnding); v != "" {
		c.LineEnding = strings.ToLower(v)
	}
	if v := os.Getenv(EnvProgressEvery); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvProgressEvery, err)
		}
		c.ProgressEvery = n
	}
	if v := os.Getenv(EnvProgressThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvProgressThreshold, err)
		}
		c.ProgressThreshold = n
	}
	if v := os.Getenv(EnvManifest); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvManifest, err)
		}
		c.Manifest = b
	}
	return nil
}

// ApplyFlags copies the flags into c, overriding file and environment values.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if c.Flags.PreviewRows <= 0 {
		c.Flags.PreviewRows = DefaultPreviewRows
	}
}

// Validate rejects settings the generator cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("progress_every must be positive, got %d", c.ProgressEvery)
	}
	if c.ProgressThreshold < 0 {
		return fmt.Errorf("progress_threshold must not be negative, got %d", c.ProgressThreshold)
	}
	if c.LineEnding != LineEndingCRLF && c.LineEnding != LineEndingLF {
		return fmt.Errorf("line_ending must be %q or %q, got %q", LineEndingCRLF, LineEndingLF, c.LineEnding)
	}
	if c.Flags.Checksum && !c.Manifest {
		return fmt.Errorf("--checksum needs the manifest, which is disabled")
	}
	return nil
}

// UseCRLF reports whether fixtures are written with \r\n record terminators.
func (c *Config) UseCRLF() bool {
	return c.LineEnding == LineEndingCRLF
}

// GetManifestPath returns the manifest location inside the data directory.
func (c *Config) GetManifestPath() string {
	return filepath.Join(c.DataDir, c.ManifestFile)
}
