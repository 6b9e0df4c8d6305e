package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/dsplab/dsp/core"
)

// ErrLengthMismatch is returned when the compared buffers differ in length.
var ErrLengthMismatch = errors.New("stats: length mismatch")

// Comparison describes how far a buffer deviates from its reference.
type Comparison struct {
	Length      int
	MaxAbsError float64
	RMSError    float64
	// SNRdB is 10·log10(Σref² / Σ(ref−got)²). It is +Inf for an exact match.
	SNRdB float64
}

// Exact reports whether the buffers matched sample for sample.
func (c Comparison) Exact() bool {
	return c.MaxAbsError == 0
}

// Compare measures got against ref. Both buffers must have equal length.
func Compare(ref, got []float64) (Comparison, error) {
	if len(ref) != len(got) {
		return Comparison{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ref), len(got))
	}
	if len(ref) == 0 {
		return Comparison{SNRdB: math.Inf(1)}, nil
	}

	n := float64(len(ref))
	errEnergy := math.Pow(floats.Distance(ref, got, 2), 2)
	sigEnergy := floats.Dot(ref, ref)

	snr := math.Inf(1)
	if errEnergy > 0 {
		snr = core.PowerRatioToDB(sigEnergy / errEnergy)
	}

	return Comparison{
		Length:      len(ref),
		MaxAbsError: floats.Distance(ref, got, math.Inf(1)),
		RMSError:    math.Sqrt(errEnergy / n),
		SNRdB:       snr,
	}, nil
}
