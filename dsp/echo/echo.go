package echo

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/dsplab/dsp/core"
	"github.com/cwbudde/dsplab/dsp/filter"
)

// Errors returned for invalid echo parameters.
var (
	ErrEmptyInput   = errors.New("echo: empty input")
	ErrInvalidDelay = errors.New("echo: invalid delay")
	ErrUnstable     = errors.New("echo: attenuation must satisfy |alpha| < 1")
)

// Params describes the echo path.
type Params struct {
	Delay int     // D, in samples
	Alpha float64 // α, attenuation of the delayed copy
}

// Validate checks D > 0 and |α| < 1.
func (p Params) Validate() error {
	if p.Delay <= 0 {
		return fmt.Errorf("%w: delay must be > 0: %d", ErrInvalidDelay, p.Delay)
	}
	if !core.IsFinite(p.Alpha) || math.Abs(p.Alpha) >= 1 {
		return fmt.Errorf("%w: %v", ErrUnstable, p.Alpha)
	}
	return nil
}

// validateFor additionally requires the delay to fall inside a signal of length n.
func (p Params) validateFor(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Delay >= n {
		return fmt.Errorf("%w: delay %d must be < signal length %d", ErrInvalidDelay, p.Delay, n)
	}
	return nil
}

// Kernel returns the FIR coefficients [1, 0, …, 0, α] of length D+1.
func Kernel(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h := make([]float64, p.Delay+1)
	h[0] = 1
	h[p.Delay] = p.Alpha
	return h, nil
}

// Add returns x[n] = y[n] + α·y[n−D] for every n in y. The output has the
// length of y; the echo tail past the end of y is not emitted.
func Add(y []float64, p Params) ([]float64, error) {
	if err := p.validateFor(len(y)); err != nil {
		return nil, err
	}
	x := make([]float64, len(y))
	copy(x, y[:p.Delay])
	for n := p.Delay; n < len(y); n++ {
		x[n] = y[n] + p.Alpha*y[n-p.Delay]
	}
	return x, nil
}

// Remove inverts Add by evaluating y[n] = x[n] − α·y[n−D] causally.
func Remove(x []float64, p Params) ([]float64, error) {
	if err := p.validateFor(len(x)); err != nil {
		return nil, err
	}
	y := make([]float64, len(x))
	copy(y, x[:p.Delay])
	for n := p.Delay; n < len(x); n++ {
		y[n] = x[n] - p.Alpha*y[n-p.Delay]
	}
	return y, nil
}

// AddFilter computes Add through filter.Apply with b = Kernel and a = [1].
func AddFilter(y []float64, p Params) ([]float64, error) {
	if err := p.validateFor(len(y)); err != nil {
		return nil, err
	}
	h, err := Kernel(p)
	if err != nil {
		return nil, err
	}
	return filter.Apply(h, []float64{1}, y)
}

// RemoveFilter computes Remove through filter.Apply with b = [1] and a = Kernel.
func RemoveFilter(x []float64, p Params) ([]float64, error) {
	if err := p.validateFor(len(x)); err != nil {
		return nil, err
	}
	a, err := Kernel(p)
	if err != nil {
		return nil, err
	}
	return filter.Apply([]float64{1}, a, x)
}
