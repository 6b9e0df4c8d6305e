// Package config holds the dsplab command-line defaults and their YAML
// representation.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/dsplab/sampleio"
)

// Config is the on-disk configuration. Zero fields in a file keep their
// defaults.
type Config struct {
	SampleRate int    `yaml:"sample_rate"`
	OutputDir  string `yaml:"output_dir"`
	LogLevel   string `yaml:"log_level"`
	Echo       Echo   `yaml:"echo"`
	Figure     Figure `yaml:"figure"`
	Seed       uint64 `yaml:"seed"`
}

// Echo holds the echo example parameters.
type Echo struct {
	Delay int     `yaml:"delay"`
	Alpha float64 `yaml:"alpha"`
}

// Figure holds the raster size of written plots.
type Figure struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the settings of the course echo example: an 8192 Hz clip,
// a 4000 sample echo at half amplitude.
func Default() Config {
	return Config{
		SampleRate: sampleio.DefaultSampleRate,
		OutputDir:  "out",
		LogLevel:   "info",
		Echo:       Echo{Delay: 4000, Alpha: 0.5},
		Figure:     Figure{Width: 800, Height: 400},
		Seed:       1,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges. Echo stability is left to the echo package so the
// CLI reports the same error as the library.
func (c Config) Validate() error {
	var errs []error
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be > 0: %d", c.SampleRate))
	}
	if c.Echo.Delay <= 0 {
		errs = append(errs, fmt.Errorf("echo.delay must be > 0: %d", c.Echo.Delay))
	}
	if math.IsNaN(c.Echo.Alpha) || math.IsInf(c.Echo.Alpha, 0) {
		errs = append(errs, fmt.Errorf("echo.alpha must be finite: %v", c.Echo.Alpha))
	}
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		errs = append(errs, fmt.Errorf("figure size must be > 0: %dx%d", c.Figure.Width, c.Figure.Height))
	}
	return errors.Join(errs...)
}
