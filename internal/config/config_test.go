package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dsplab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8192, cfg.SampleRate)
	assert.Equal(t, 4000, cfg.Echo.Delay)
	assert.InDelta(t, 0.5, cfg.Echo.Alpha, 0)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
sample_rate: 16000
echo:
  alpha: 0.3
figure:
  width: 1024
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16000, cfg.SampleRate)
	assert.InDelta(t, 0.3, cfg.Echo.Alpha, 0)
	assert.Equal(t, 4000, cfg.Echo.Delay, "unset fields keep defaults")
	assert.Equal(t, 1024, cfg.Figure.Width)
	assert.Equal(t, 400, cfg.Figure.Height)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "echo: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "sample_rate: -1\necho:\n  delay: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample_rate")
	assert.Contains(t, err.Error(), "echo.delay")
}
