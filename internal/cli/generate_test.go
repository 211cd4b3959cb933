// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/athena-testimages/internal/cli"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestGenerateCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	for _, args := range [][]string{
		{"-n", "3", "-o", dir},
		{"--num", "3", "--output", dir},
		{"generate", "-n", "3", "-o", dir},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			stdout, stderr, err := execute(t, args...)
			require.NoError(t, err)
			assert.Empty(t, stderr, "diagnostics are off by default")

			want := []string{"# Image Test file with 3 images"}
			for i := range 3 {
				want = append(want, filepath.Join(dir, fmt.Sprintf("test_image_%04d.jpg", i)))
			}
			want = append(want, "# Successfully generated 3 test images in "+dir)
			assert.Equal(t, want, lines(stdout))

			for _, p := range want[1:4] {
				assert.FileExists(t, p)
			}
		})
	}
}

func TestGenerateCommandZero(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "none")
	stdout, _, err := execute(t, "-n", "0", "-o", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"# Image Test file with 0 images",
		"# Successfully generated 0 test images in " + dir,
	}, lines(stdout))
	assert.DirExists(t, dir)
}

// stopAfter cancels the command context once limit image paths have been written.
type stopAfter struct {
	bytes.Buffer
	limit  int
	paths  int
	cancel context.CancelFunc
}

func (w *stopAfter) Write(p []byte) (int, error) {
	if !bytes.HasPrefix(p, []byte("#")) {
		w.paths++
		if w.paths == w.limit {
			w.cancel()
		}
	}
	return w.Buffer.Write(p)
}

func TestGenerateCommandUnbounded(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &stopAfter{limit: 4, cancel: cancel}
	var errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs([]string{"-n", "-1", "-o", dir})

	require.NoError(t, rootCmd.ExecuteContext(ctx), "an interrupted unbounded run exits cleanly")

	want := []string{"# Image Test file with unlimited images (infinite mode)"}
	for i := range 4 {
		want = append(want, filepath.Join(dir, fmt.Sprintf("test_image_%04d.jpg", i)))
	}
	assert.Equal(t, want, lines(out.String()))
	assert.NotContains(t, out.String(), "Successfully generated")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestGenerateCommandDefaults(t *testing.T) {
	cmd := cli.NewRootCmd()

	num := cmd.Flags().Lookup("num")
	require.NotNil(t, num)
	assert.Equal(t, "1000", num.DefValue)
	assert.Equal(t, "n", num.Shorthand)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "images", output.DefValue)
	assert.Equal(t, "o", output.Shorthand)
}

func TestGenerateCommandInvalidNum(t *testing.T) {
	_, _, err := execute(t, "-n", "lots", "-o", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestGenerateCommandUnwritableOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	stdout, _, err := execute(t, "-n", "1", "-o", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
	assert.Empty(t, stdout)
}

func TestGenerateCommandVerbose(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, err := execute(t, "-v", "-n", "1", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "generating images")
	assert.NotContains(t, stdout, "generating images", "diagnostics must not mix with the manifest")
}

func TestVerboseAndQuietConflict(t *testing.T) {
	_, _, err := execute(t, "-v", "-q", "-n", "0", "-o", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "images")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "athena-testimages version "))
}
