package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/dsplab/dsp/core"
)

// Summary holds time-domain statistics of a buffer.
type Summary struct {
	Length        int
	Mean          float64
	Variance      float64 // population variance
	RMS           float64
	RMSdB         float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|Max|, |Min|)
	PeakdB        float64
	CrestFactor   float64 // Peak / RMS, 0 for silence
	Energy        float64 // Σx²
	Power         float64 // Energy / Length
	ZeroCrossings int
}

// Calculate computes a Summary. An empty buffer yields zero values and -Inf
// for the dB fields.
func Calculate(x []float64) Summary {
	if len(x) == 0 {
		return Summary{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}

	mean, variance := stat.PopMeanVariance(x, nil)
	energy := floats.Dot(x, x)
	power := energy / float64(len(x))
	rms := math.Sqrt(power)

	maxPos, minPos := floats.MaxIdx(x), floats.MinIdx(x)
	maxVal, minVal := x[maxPos], x[minPos]
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Summary{
		Length:        len(x),
		Mean:          mean,
		Variance:      variance,
		RMS:           rms,
		RMSdB:         core.LinearToDB(rms),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		PeakdB:        core.LinearToDB(peak),
		CrestFactor:   crest,
		Energy:        energy,
		Power:         power,
		ZeroCrossings: ZeroCrossings(x),
	}
}

// ZeroCrossings counts sign changes between consecutive samples. Zeros do
// not start or end a crossing.
func ZeroCrossings(x []float64) int {
	n := 0
	for i := 1; i < len(x); i++ {
		if x[i-1]*x[i] < 0 {
			n++
		}
	}
	return n
}
