package conv

import "github.com/cwbudde/dsplab/dsp/core"

// Correlate computes the full cross-correlation of a and b, length
// len(a)+len(b)-1. Index k corresponds to lag k-(len(b)-1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return Convolve(a, core.Reversed(b))
}

// AutoCorrelate computes the auto-correlation of a, length 2*len(a)-1.
// Index len(a)-1 holds lag zero.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// FindPeak returns the index and value of the maximum of corr, or -1 for an
// empty slice. Ties resolve to the lowest index.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}
	for i, v := range corr {
		if i == 0 || v > value {
			index, value = i, v
		}
	}
	return index, value
}

// LagFromIndex converts a correlation index to a lag for a second operand of
// length lenB.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag is the inverse of LagFromIndex.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}
