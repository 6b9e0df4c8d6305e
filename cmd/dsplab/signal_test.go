package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalExp(t *testing.T) {
	out, _, err := execute(t, "signal", "exp", "--rate", "10", "--duration", "0.5", "--tau", "0.1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "0\t1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.1\t0.3678794411714"), lines[1])
}

func TestSignalSineUsesConfigRate(t *testing.T) {
	cfg := writeTemp(t, "dsplab.yaml", "sample_rate: 100\n")
	out, _, err := execute(t, "--config", cfg, "signal", "sine", "--duration", "0.2")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 20)
}

func TestSignalPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chirp.svg")
	_, _, err := execute(t, "signal", "chirp", "--rate", "1000", "--duration", "0.5",
		"--freq", "10", "--f1", "100", "--out", filepath.Join(t.TempDir(), "chirp.txt"), "--plot", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSignalErrors(t *testing.T) {
	_, _, err := execute(t, "signal", "square")
	assert.ErrorContains(t, err, "unknown signal kind")

	_, _, err = execute(t, "signal", "sine", "--duration", "0")
	assert.Error(t, err)

	for _, rate := range []string{"0", "-5"} {
		_, _, err = execute(t, "signal", "sine", "--rate="+rate)
		assert.ErrorContains(t, err, "sample rate must be > 0", rate)
	}
}

func TestSignalRelativeOutputUsesOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, "dsplab.yaml", "output_dir: "+dir+"\n")
	out, _, err := execute(t, "--config", cfg, "signal", "sine", "--rate", "10", "--duration", "0.5",
		"--out", filepath.Join("sub", "sine.txt"))
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "sub", "sine.txt"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 5)
}
