package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvprep/internal/catalog"
	"csvprep/internal/cli"
	"csvprep/internal/config"
	"csvprep/internal/fixture"
)

type testCLI struct {
	root *cobra.Command
	cmds *Commands
	cfg  *config.Config
	out  *bytes.Buffer
	err  *bytes.Buffer
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	color.NoColor = true

	root := &cobra.Command{
		Use:           "csvprep",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cfg := config.New()
	var flags cli.Flags
	cmds := NewCommands(cfg)
	cmds.Register(root, &flags, cfg)

	tc := &testCLI{root: root, cmds: cmds, cfg: cfg, out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	root.SetOut(tc.out)
	root.SetErr(tc.err)
	return tc
}

func (tc *testCLI) run(args ...string) error {
	tc.root.SetArgs(args)
	return tc.root.Execute()
}

func TestPrepare_GenerateThenSkip(t *testing.T) {
	dir := t.TempDir()

	first := newTestCLI(t)
	require.NoError(t, first.run("--data-dir", dir, "--sizes", "small"))
	assert.FileExists(t, filepath.Join(dir, "test_small_1000x5.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "test_medium_100000x10.csv"))
	assert.Contains(t, first.out.String(), "Mode: Generation")
	assert.Contains(t, first.out.String(), "✅ Valid")
	assert.Contains(t, first.out.String(), "All files ready for benchmarking!")
	assert.Contains(t, first.out.String(), "docker-compose exec benchmark php benchmark.php read")

	second := newTestCLI(t)
	require.NoError(t, second.run("--data-dir", dir, "small"))
	assert.Contains(t, second.out.String(), "Skipping test_small_1000x5.csv")
	assert.NotContains(t, second.out.String(), "Creating small dataset")
}

func TestPrepare_VerifyMissingFile(t *testing.T) {
	dir := t.TempDir()

	tc := newTestCLI(t)
	err := tc.run("--data-dir", dir, "--sizes", "small", "--verify")
	require.Error(t, err)
	assert.Equal(t, "1 error(s) during preparation", err.Error())
	assert.Contains(t, tc.out.String(), "Errors: 1")
	assert.Contains(t, tc.out.String(), "• test_small_1000x5.csv: File not found")
	assert.NotContains(t, tc.out.String(), "Ready to run benchmarks")
}

func TestPrepare_VerifyAfterGenerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newTestCLI(t).run("--data-dir", dir, "--sizes", "small"))

	tc := newTestCLI(t)
	require.NoError(t, tc.run("--data-dir", dir, "--sizes", "small", "--verify", "--checksum"))
	assert.Contains(t, tc.out.String(), "Mode: Verification (with checksums)")
	assert.Contains(t, tc.out.String(), "Verifying test_small_1000x5.csv... ✅ OK")
}

func TestPrepare_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_small_1000x5.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c,d\n"), 0644))

	tc := newTestCLI(t)
	err := tc.run("--data-dir", dir, "--sizes", "small")
	require.Error(t, err)
	assert.Contains(t, tc.out.String(), "Header has 4 columns, expected 5 (run with --force to regenerate)")

	forced := newTestCLI(t)
	require.NoError(t, forced.run("--data-dir", dir, "--sizes", "small", "--force"))
	assert.True(t, fixture.NewVerifier().Verify(path, 1000, 5).OK)
}

func TestPrepare_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown size", []string{"--sizes", "huge"}, `unknown size "huge"`},
		{"missing config file", []string{"--config", "does-not-exist.yaml"}, "does-not-exist.yaml"},
		{"missing env file", []string{"--env-file", "does-not-exist.env"}, "load env file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			err := newTestCLI(t).run(append([]string{"--data-dir", dir}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			entries, readErr := os.ReadDir(dir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestPrepare_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "csvprep.yaml")
	content := "data_dir: " + dir + "\nline_ending: lf\nmanifest: false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	tc := newTestCLI(t)
	require.NoError(t, tc.run("--config", configPath, "--sizes", "small"))

	data, err := os.ReadFile(filepath.Join(dir, "test_small_1000x5.csv"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\r\n")
	assert.NoFileExists(t, filepath.Join(dir, config.DefaultManifestFile))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newTestCLI(t).run("--data-dir", dir, "--sizes", "small"))

	tc := newTestCLI(t)
	require.NoError(t, tc.run("list", "--data-dir", dir))

	out := tc.out.String()
	assert.Contains(t, out, "Fixtures in "+dir)
	assert.Contains(t, out, "test_small_1000x5.csv (")
	assert.Contains(t, out, "test_medium_100000x10.csv (not generated)")
	assert.Contains(t, out, "test_large_1000000x15.csv (not generated)")
	assert.Contains(t, out, "last run: generated")
	assert.NotContains(t, out, "Unrecognised fixture files")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_small_10x5.csv"), []byte("column_1\n"), 0644))
	again := newTestCLI(t)
	require.NoError(t, again.run("list", "--data-dir", dir))
	assert.Contains(t, again.out.String(), "• test_small_10x5.csv")
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newTestCLI(t).run("--data-dir", dir, "--sizes", "small"))

	t.Run("shows the head of the file", func(t *testing.T) {
		tc := newTestCLI(t)
		var gotTitle string
		var gotHeader []string
		var gotRows [][]string
		tc.cmds.Preview.show = func(title string, header []string, rows [][]string) error {
			gotTitle, gotHeader, gotRows = title, header, rows
			return nil
		}

		require.NoError(t, tc.run("preview", "small", "--rows", "3", "--data-dir", dir))
		assert.Equal(t, "test_small_1000x5.csv", gotTitle)
		assert.Equal(t, []string{"column_1", "column_2", "column_3", "column_4", "column_5"}, gotHeader)
		require.Len(t, gotRows, 3)
		assert.Equal(t, fixture.CellValue(3, 5), gotRows[2][4])
	})

	t.Run("not generated", func(t *testing.T) {
		tc := newTestCLI(t)
		tc.cmds.Preview.show = func(string, []string, [][]string) error {
			t.Fatal("preview must not open")
			return nil
		}

		err := tc.run("preview", "medium", "--data-dir", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has not been generated yet")
	})

	t.Run("unknown size", func(t *testing.T) {
		err := newTestCLI(t).run("preview", "huge", "--data-dir", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "available: "+catalog.Names()[0])
	})
}
