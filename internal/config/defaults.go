package config

const (
	// DefaultDataDir is where the benchmark container expects its fixtures
	DefaultDataDir = "/app/data"
	// DefaultConfigFile is read from the working directory when present
	DefaultConfigFile = "csvprep.yaml"
	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"
	// DefaultManifestFile is the manifest name inside the data directory
	DefaultManifestFile = ".csvprep-manifest.json"
	// DefaultProgressEvery is the row cadence of generation progress
	DefaultProgressEvery = 50000
	// DefaultProgressThreshold: files with more rows than this report progress
	DefaultProgressThreshold = 50000
	// DefaultLineEnding matches what the harness was validated against
	DefaultLineEnding = LineEndingCRLF
	// DefaultPreviewRows is how many data rows the preview command loads
	DefaultPreviewRows = 20
)

// Supported line endings
const (
	LineEndingCRLF = "crlf"
	LineEndingLF   = "lf"
)

// DefaultBenchmarkHints are printed after a successful run
var DefaultBenchmarkHints = []string{
	"docker-compose exec benchmark php benchmark.php read",
	"docker-compose exec benchmark php benchmark.php write",
	"docker-compose exec benchmark php benchmark.php both",
}

// Environment variables recognised on top of the config file
const (
	EnvDataDir           = "CSVPREP_DATA_DIR"
	EnvProgressEvery     = "CSVPREP_PROGRESS_EVERY"
	EnvProgressThreshold = "CSVPREP_PROGRESS_THRESHOLD"
	EnvLineEnding        = "CSVPREP_LINE_ENDING"
	EnvManifest          = "CSVPREP_MANIFEST"
)
