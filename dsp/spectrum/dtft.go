package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/dsplab/dsp/seq"
)

var (
	// ErrEmptyInput is returned when a transform receives no samples.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSize is returned for FFT sizes that are not a power of two or
	// are shorter than the input.
	ErrInvalidSize = errors.New("spectrum: invalid fft size")
)

// Grid returns k equally spaced frequencies covering [0, π] rad/sample.
func Grid(k int) []float64 {
	switch {
	case k <= 0:
		return nil
	case k == 1:
		return []float64{0}
	}
	out := make([]float64, k)
	step := math.Pi / float64(k-1)
	for i := range out {
		out[i] = step * float64(i)
	}
	out[k-1] = math.Pi
	return out
}

// DTFT evaluates the discrete-time Fourier transform of x at each ω in
// omegas (rad/sample).
func DTFT(x seq.Sequence, omegas []float64) ([]complex128, error) {
	if x.Len() == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]complex128, len(omegas))
	for k, w := range omegas {
		var re, im float64
		for i, v := range x.X {
			if v == 0 {
				continue
			}
			s, c := math.Sincos(w * float64(x.Start+i))
			re += v * c
			im -= v * s
		}
		out[k] = complex(re, im)
	}
	return out, nil
}

// FFT returns the size-point DFT of x, zero-padding as needed. A size of 0
// selects the next power of two ≥ len(x).
func FFT(x []float64, size int) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if size == 0 {
		size = 1 << bits.Len(uint(len(x)-1))
	}
	if size < len(x) || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d for %d samples", ErrInvalidSize, size, len(x))
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}
	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft forward: %w", err)
	}
	return out, nil
}

// BinFrequencies returns the centre frequency in Hz of each of the first
// size/2+1 bins of a size-point FFT.
func BinFrequencies(size int, sampleRate float64) []float64 {
	if size <= 0 {
		return nil
	}
	out := make([]float64, size/2+1)
	for i := range out {
		out[i] = float64(i) * sampleRate / float64(size)
	}
	return out
}
