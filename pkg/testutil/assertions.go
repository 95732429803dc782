package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited with code 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"Expected success (exit 0), got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited with a non-zero code
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected failure (non-zero exit), got success.\nStdout: %s",
		result.Stdout)
}

// AssertExitCode verifies the command exited with a specific code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"Expected exit code %d, got %d.\nStdout: %s\nStderr: %s",
		expected, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertStdoutContains verifies stdout contains expected
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"Expected stdout to contain %q.\nActual stdout: %s", expected, result.Stdout)
}

// AssertStderrContains verifies stderr contains expected
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"Expected stderr to contain %q.\nActual stderr: %s", expected, result.Stderr)
}

// AssertFileExists verifies path exists and is a regular file
func AssertFileExists(tb testing.TB, path string) {
	tb.Helper()
	info, err := os.Stat(path)
	require.NoError(tb, err, "Expected %s to exist", path)
	assert.False(tb, info.IsDir(), "Expected %s to be a file", path)
}

// AssertFileContent verifies path exists with exactly expected as content
func AssertFileContent(tb testing.TB, path, expected string) {
	tb.Helper()
	content, err := os.ReadFile(path)
	require.NoError(tb, err, "Expected %s to be readable", path)
	assert.Equal(tb, expected, string(content), "File %s content mismatch", path)
}

// AssertNoFile verifies nothing exists at path
func AssertNoFile(tb testing.TB, path string) {
	tb.Helper()
	_, err := os.Stat(path)
	assert.True(tb, os.IsNotExist(err), "File %s exists but should not", path)
}
