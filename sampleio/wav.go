package sampleio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/dsplab/dsp/core"
)

const (
	// DefaultSampleRate is the rate assumed for text sample files.
	DefaultSampleRate = core.DefaultSampleRate
	// DefaultClipSeconds is the length of the course's recorded clip.
	DefaultClipSeconds = 9
	// DefaultBitDepth is used by WriteWAV when bitDepth is 0.
	DefaultBitDepth = 16

	wavPCM = 1
)

var (
	// ErrNotWAV is returned for files without a RIFF/WAVE header.
	ErrNotWAV = errors.New("sampleio: not a wav file")
	// ErrBitDepth is returned for unsupported PCM bit depths.
	ErrBitDepth = errors.New("sampleio: unsupported bit depth")
)

// Clip is a mono buffer with its sample rate.
type Clip struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return 0x7F, nil
	case 16:
		return 0x7FFF, nil
	case 24:
		return 0x7FFFFF, nil
	case 32:
		return 0x7FFFFFFF, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
}

// ReadWAV decodes a PCM WAV file. Multichannel files yield their first
// channel.
func ReadWAV(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Clip{}, fmt.Errorf("%s: %w", path, ErrNotWAV)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("%s: decode: %w", path, err)
	}
	scale, err := fullScale(buf.SourceBitDepth)
	if err != nil {
		return Clip{}, fmt.Errorf("%s: %w", path, err)
	}

	chans := max(buf.Format.NumChannels, 1)
	frames := len(buf.Data) / chans
	if frames == 0 {
		return Clip{}, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	out := make([]float64, frames)
	for i := range out {
		v := buf.Data[i*chans]
		if buf.SourceBitDepth == 8 {
			v -= 128
		}
		out[i] = float64(v) / scale
	}
	return Clip{Samples: out, SampleRate: buf.Format.SampleRate}, nil
}

// WriteWAV encodes c as mono PCM. Samples are clamped to [−1, 1]. A bitDepth
// of 0 selects DefaultBitDepth.
func WriteWAV(path string, c Clip, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}
	if bitDepth == 8 {
		return fmt.Errorf("%w: %d (write)", ErrBitDepth, bitDepth)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", c.SampleRate)
	}
	if len(c.Samples) == 0 {
		return ErrNoSamples
	}

	data := make([]int, len(c.Samples))
	for i, v := range c.Samples {
		data[i] = int(math.Round(core.Clamp(v, -1, 1) * scale))
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	e := wav.NewEncoder(out, c.SampleRate, bitDepth, 1, wavPCM)
	if err := e.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("%s: encode: %w", path, err)
	}
	if err := e.Close(); err != nil {
		out.Close()
		return fmt.Errorf("%s: encode: %w", path, err)
	}
	return out.Close()
}

// Load reads a clip from path. Files with a .wav extension are decoded as
// WAV; anything else is parsed as text at DefaultSampleRate.
func Load(path string) (Clip, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return ReadWAV(path)
	}
	samples, err := LoadText(path)
	if err != nil {
		return Clip{}, err
	}
	return Clip{Samples: samples, SampleRate: DefaultSampleRate}, nil
}

// Save writes a clip to path, choosing the format from the extension like Load.
func Save(path string, c Clip) error {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return WriteWAV(path, c, 0)
	}
	return SaveText(path, c.Samples)
}
