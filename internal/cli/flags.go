package cli

import "csvprep/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	sizes := make([]string, len(f.Sizes))
	copy(sizes, f.Sizes)

	return config.Flags{
		DataDir:       f.DataDir,
		ConfigFile:    f.ConfigFile,
		EnvFile:       f.EnvFile,
		Sizes:         sizes,
		Verify:        f.Verify,
		Force:         f.Force,
		TrustExisting: f.TrustExisting,
		Checksum:      f.Checksum,
		Verbose:       f.Verbose,
		PreviewRows:   f.PreviewRows,
	}
}
