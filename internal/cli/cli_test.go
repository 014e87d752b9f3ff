package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/pablofueros/lis-optimization/internal/cli"
	"github.com/pablofueros/lis-optimization/lis"
	"github.com/pablofueros/lis-optimization/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataDir returns a temp directory holding sequence_8.json with the pi digits.
func dataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(sequence.Path(dir, 8), []byte("[3, 1, 4, 1, 5, 9, 2, 6]"), 0o644))

	return dir
}

// run invokes the entry point and captures both streams.
func run(name string, args ...string) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	code = cli.Run(name, args, &out, &errb)

	return code, out.String(), errb.String()
}

func TestRun_PrintsLengthForEveryAlgorithm(t *testing.T) {
	dir := dataDir(t)
	for _, a := range lis.Algorithms() {
		code, stdout, stderr := run(a.Name, "8", "--data-dir", dir)
		require.Equal(t, cli.ExitOK, code, a.Name)
		assert.Empty(t, stderr, a.Name)
		assert.Contains(t, stdout, "LIS length = 4\n", a.Name)
		assert.Equal(t, a.PrintsSubsequence, bytes.Contains([]byte(stdout), []byte("LIS = ")), a.Name)
	}
}

func TestRun_RecursivePrintsWitnessByDefault(t *testing.T) {
	code, stdout, _ := run(lis.NameRecursive, "8", "--data-dir", dataDir(t))
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "LIS length = 4\nLIS = [1 4 5 6]\n", stdout)
}

func TestRun_ShowFlag(t *testing.T) {
	dir := dataDir(t)

	code, stdout, _ := run(lis.NameDP, "8", "--data-dir", dir, "--show")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "LIS length = 4\nLIS = [3 4 5 9]\n", stdout)

	code, stdout, _ = run(lis.NameRecursive, "8", "--data-dir", dir, "--show=false")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "LIS length = 4\n", stdout)
}

func TestRun_DigitSeparators(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(sequence.Path(dir, 10000), []byte("[5, 1, 2]"), 0o644))

	code, stdout, _ := run(lis.NamePatience, "10_000", "--data-dir", dir)
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "LIS length = 2\n", stdout)
}

func TestRun_EmptySequence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(sequence.Path(dir, 1), []byte("[]"), 0o644))

	for _, a := range lis.Algorithms() {
		code, stdout, _ := run(a.Name, "1", "--data-dir", dir, "--show", "--verify")
		require.Equal(t, cli.ExitOK, code, a.Name)
		assert.Equal(t, "LIS length = 0\nLIS = []\n", stdout, a.Name)
	}
}

func TestRun_DataDirFromEnvironment(t *testing.T) {
	t.Setenv(cli.DataDirEnv, dataDir(t))

	code, stdout, _ := run(lis.NameBacktrack, "8")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "LIS length = 4\n", stdout)
}

func TestRun_MissingArgument(t *testing.T) {
	code, stdout, stderr := run(lis.NameDP)
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: lis-dp <N>")
}

func TestRun_TooManyArguments(t *testing.T) {
	code, stdout, stderr := run(lis.NameDP, "8", "9")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "got 2")
	assert.Contains(t, stderr, "Usage: lis-dp <N>")
}

func TestRun_UnknownFlagIsUsageError(t *testing.T) {
	code, _, stderr := run(lis.NameDP, "8", "--nope")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr, "Usage: lis-dp <N>")
}

func TestRun_InvalidSize(t *testing.T) {
	for _, arg := range []string{"abc", "0", "1.5"} {
		code, stdout, stderr := run(lis.NamePatience, arg, "--data-dir", t.TempDir())
		assert.Equal(t, cli.ExitFailure, code, arg)
		assert.Empty(t, stdout, arg)
		assert.Contains(t, stderr, "invalid size identifier", arg)
	}
}

func TestRun_DataNotFound(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := run(lis.NameDP, "50", "--data-dir", dir)
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	path := sequence.Path(dir, 50)
	assert.Contains(t, stderr, "Error: file '"+path+"' does not exist.")
	assert.Contains(t, stderr, "Run 'uv run python/generator.py 50' to generate the data.")
}

func TestRun_DataUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := sequence.Path(dir, 7)
	require.NoError(t, os.Mkdir(path, 0o755))

	code, stdout, stderr := run(lis.NameDP, "7", "--data-dir", dir)
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: file '"+path+"' cannot be read: ")
	assert.NotContains(t, stderr, "does not exist")
}

func TestRun_MalformedData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(sequence.Path(dir, 3), []byte(`{"not": "an array"}`), 0o644))

	code, stdout, stderr := run(lis.NameDP, "3", "--data-dir", dir)
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "malformed data")
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	code, stdout, stderr := run("bogus", "8")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown algorithm")
}

func TestRun_DebugLoggingGoesToStderr(t *testing.T) {
	code, stdout, stderr := run(lis.NamePatience, "8", "--data-dir", dataDir(t), "--verify", "--log-level", "debug")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "LIS length = 4\n", stdout)
	assert.Contains(t, stderr, "algorithm=patience")
	assert.Contains(t, stderr, "lis_len=4")
	assert.Contains(t, stderr, "result verified")
	assert.NotContains(t, stderr, "time=", "non-terminal output drops timestamps")
}

func TestRun_BadLogLevel(t *testing.T) {
	code, stdout, stderr := run(lis.NamePatience, "8", "--data-dir", dataDir(t), "--log-level", "loud")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage:")
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := run(lis.NameDP, "--help")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "lis-dp <N>")
	assert.Contains(t, stdout, "--data-dir")
}
