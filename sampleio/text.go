package sampleio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoSamples is returned when a source holds no samples.
var ErrNoSamples = errors.New("sampleio: no samples")

// ReadText parses one sample per line. Blank lines and lines starting with
// '#' or '%' are skipped; a trailing comment on a sample line is ignored.
func ReadText(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexAny(text, "#%"); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("sampleio: line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sampleio: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}

// WriteText writes one sample per line with full float64 precision.
func WriteText(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range samples {
		buf = strconv.AppendFloat(buf[:0], v, 'g', 17, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("sampleio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sampleio: write: %w", err)
	}
	return nil
}

// LoadText reads a text sample file.
func LoadText(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// SaveText writes samples to a text file, replacing any existing file.
func SaveText(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteText(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
