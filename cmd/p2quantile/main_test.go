package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/axiomhq/p2/internal/config"
	"github.com/axiomhq/p2/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runToString runs the tool with stdout redirected to a temporary file,
// which is never a terminal, so auto resolves to text.
func runToString(t *testing.T, cfg *config.Config, paths []string, stdin io.Reader) (string, error) {
	t.Helper()
	out, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer out.Close()

	runErr := run(context.Background(), cfg, paths, stdin, out)
	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	return string(data), runErr
}

func testConfig() *config.Config {
	return &config.Config{
		Quantiles: []float64{0.5},
		Format:    "auto",
		Log:       config.Logging{Level: "error"},
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n5\n9\n2\n4\n")
	b := writeFile(t, dir, "b.txt", "oops\n10\n")

	got, err := runToString(t, testConfig(), []string{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t,
		a+": 5 samples, 0 skipped (tracking)\n4\n4\n"+
			b+": 1 samples, 1 skipped (collecting)\n10\n10\n",
		got)
}

func TestRunStdinExact(t *testing.T) {
	cfg := testConfig()
	cfg.Exact = true
	cfg.Format = "yaml"

	got, err := runToString(t, cfg, nil, strings.NewReader("1\n5\n9\n2\n4\n"))
	require.NoError(t, err)
	var sums []tracker.Summary
	require.NoError(t, yaml.Unmarshal([]byte(got), &sums))
	require.Len(t, sums, 1)
	assert.Equal(t, "-", sums[0].Source)
	require.NotNil(t, sums[0].Rows[0].Exact)
	assert.Equal(t, 4.0, *sums[0].Rows[0].Exact)
}

func TestRunMissingFile(t *testing.T) {
	_, err := runToString(t, testConfig(), []string{filepath.Join(t.TempDir(), "nope")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestOutputFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "yaml", outputFormat("yaml", f))
	assert.Equal(t, "text", outputFormat("auto", f))
}

func TestRunRejectsRepeatedStdin(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n")
	_, err := runToString(t, testConfig(), []string{"-", a, "-"}, strings.NewReader("1\n2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}
