package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// directThreshold is the kernel length up to which Convolve stays in the
// time domain.
const directThreshold = 64

// Direct performs time-domain linear convolution of a and b.
// The result has length len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(a)+len(b)-1)
	DirectTo(out, a, b)
	return out, nil
}

// DirectTo convolves a and b into dst, which must have length len(a)+len(b)-1.
// Zero taps of b are skipped, so sparse kernels cost only their non-zero taps.
func DirectTo(dst, a, b []float64) {
	_ = dst[len(a)+len(b)-2] // bounds check hint
	for i := range dst {
		dst[i] = 0
	}
	for j, h := range b {
		if h == 0 {
			continue
		}
		out := dst[j : j+len(a)]
		for i, x := range a {
			out[i] += h * x
		}
	}
}

// Convolve computes the full linear convolution of a and b, choosing direct
// or overlap-add processing from the shorter operand's length.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	oa, err := NewOverlapAdd(b, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(a)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
