package execution

import "csvprep/internal/domain"

// Executor runs a preparation pass over the selected sizes
type Executor interface {
	Execute(sizes []domain.SizeConfig, opts Options) domain.RunSummary
}

// Options select what a pass does with each fixture.
type Options struct {
	Verify        bool // only verify existing files
	Force         bool // regenerate files that already exist
	TrustExisting bool // count existing files without verifying them
	Checksum      bool // compare manifest checksums in verify mode
}

// Mode is the manifest name of the pass.
func (o Options) Mode() string {
	if o.Verify {
		return "verify"
	}
	if o.Force {
		return "generate-force"
	}
	return "generate"
}

// Label is the human readable mode printed in the run header.
func (o Options) Label() string {
	if o.Verify {
		if o.Checksum {
			return "Verification (with checksums)"
		}
		return "Verification"
	}
	if o.Force {
		return "Generation (force overwrite)"
	}
	return "Generation"
}
