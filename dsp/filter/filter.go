package filter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsplab/dsp/core"
	"github.com/cwbudde/dsplab/dsp/delay"
)

// Errors returned when constructing a filter.
var (
	ErrEmptyNumerator         = errors.New("filter: empty numerator coefficients")
	ErrEmptyDenominator       = errors.New("filter: empty denominator coefficients")
	ErrZeroLeadingCoefficient = errors.New("filter: a[0] must be non-zero")
	ErrNonFiniteCoefficient   = errors.New("filter: coefficients must be finite")
)

type tap struct {
	lag  int
	coef float64
}

// Filter is a causal LTI system defined by numerator b and denominator a.
// It is not safe for concurrent use.
type Filter struct {
	b, a []float64 // normalized by a[0]

	ff []tap // b taps, lag >= 0
	fb []tap // a taps, lag >= 1

	xs *delay.Line
	ys *delay.Line
}

// New builds a filter. The coefficients are copied and normalized so that
// a[0] == 1.
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 {
		return nil, ErrEmptyNumerator
	}
	if len(a) == 0 {
		return nil, ErrEmptyDenominator
	}
	if a[0] == 0 {
		return nil, ErrZeroLeadingCoefficient
	}
	for _, c := range append(append([]float64(nil), b...), a...) {
		if !core.IsFinite(c) {
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteCoefficient, c)
		}
	}

	f := &Filter{
		b: make([]float64, len(b)),
		a: make([]float64, len(a)),
	}
	a0 := a[0]
	for k, c := range b {
		f.b[k] = c / a0
		if c != 0 {
			f.ff = append(f.ff, tap{lag: k, coef: c / a0})
		}
	}
	for k, c := range a {
		f.a[k] = c / a0
		if k > 0 && c != 0 {
			f.fb = append(f.fb, tap{lag: k, coef: c / a0})
		}
	}

	// A Line of size L reaches L-1 samples back.
	xs, err := delay.New(len(b))
	if err != nil {
		return nil, err
	}
	ys, err := delay.New(len(a))
	if err != nil {
		return nil, err
	}
	f.xs, f.ys = xs, ys
	return f, nil
}

// ProcessSample computes the next output for input x.
func (f *Filter) ProcessSample(x float64) float64 {
	f.xs.Write(x)
	var y float64
	for _, t := range f.ff {
		y += t.coef * f.xs.Read(t.lag)
	}
	// ys holds y[n-1] at Read(0) until the new output is written.
	for _, t := range f.fb {
		y -= t.coef * f.ys.Read(t.lag-1)
	}
	y = core.FlushDenormals(y)
	f.ys.Write(y)
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset restores zero initial conditions.
func (f *Filter) Reset() {
	f.xs.Reset()
	f.ys.Reset()
}

// Order returns max(M, N).
func (f *Filter) Order() int {
	return max(len(f.b), len(f.a)) - 1
}

// Numerator returns a copy of the normalized b coefficients.
func (f *Filter) Numerator() []float64 {
	return append([]float64(nil), f.b...)
}

// Denominator returns a copy of the normalized a coefficients.
func (f *Filter) Denominator() []float64 {
	return append([]float64(nil), f.a...)
}

// Response evaluates H(e^{jω}) at omega radians per sample.
func (f *Filter) Response(omega float64) complex128 {
	return polyval(f.b, omega) / polyval(f.a, omega)
}

// Apply filters x with zero initial conditions and returns a new slice of
// the same length.
func Apply(b, a, x []float64) ([]float64, error) {
	f, err := New(b, a)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	f.ProcessBlockTo(out, x)
	return out, nil
}

// ImpulseResponse returns the first n samples of h[n].
func ImpulseResponse(b, a []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("impulse response length must be > 0: %d", n)
	}
	x := make([]float64, n)
	x[0] = 1
	return Apply(b, a, x)
}

// StepResponse returns the first n samples of the response to u[n].
func StepResponse(b, a []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("step response length must be > 0: %d", n)
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	return Apply(b, a, x)
}

// Response evaluates H(e^{jω}) = B(e^{jω})/A(e^{jω}) for each omega.
func Response(b, a []float64, omegas []float64) ([]complex128, error) {
	if len(b) == 0 {
		return nil, ErrEmptyNumerator
	}
	if len(a) == 0 {
		return nil, ErrEmptyDenominator
	}
	out := make([]complex128, len(omegas))
	for i, w := range omegas {
		out[i] = polyval(b, w) / polyval(a, w)
	}
	return out, nil
}

// Stable reports whether Σ_{k≥1}|a[k]| < |a[0]|. This is sufficient for BIBO
// stability and exact for a denominator with a single feedback tap.
func Stable(a []float64) bool {
	if len(a) == 0 || a[0] == 0 {
		return false
	}
	var sum float64
	for _, c := range a[1:] {
		sum += math.Abs(c)
	}
	return sum < math.Abs(a[0])
}

// polyval computes Σ c[k] e^{-jωk}.
func polyval(c []float64, omega float64) complex128 {
	var h complex128
	for k, v := range c {
		if v == 0 {
			continue
		}
		h += complex(v, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	return h
}
