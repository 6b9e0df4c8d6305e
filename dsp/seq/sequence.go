package seq

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Errors returned by sequence constructors and operations.
var (
	ErrEmptyRange     = errors.New("seq: empty index range")
	ErrEmptySequence  = errors.New("seq: empty sequence")
	ErrInvalidPeriods = errors.New("seq: number of periods must be > 0")
)

// Range is the inclusive index interval [Start, End].
type Range struct {
	Start, End int
}

// Validate reports ErrEmptyRange when End < Start.
func (r Range) Validate() error {
	if r.End < r.Start {
		return fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, r.Start, r.End)
	}
	return nil
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether n lies in r.
func (r Range) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Indices returns Start, Start+1, …, End.
func (r Range) Indices() []int {
	out := make([]int, r.Len())
	for i := range out {
		out[i] = r.Start + i
	}
	return out
}

// Sequence is a real sequence x[n], n = Start … Start+len(X)−1.
type Sequence struct {
	Start int
	X     []float64
}

// Len returns the number of samples.
func (s Sequence) Len() int { return len(s.X) }

// End returns the last index of the support, Start−1 for an empty sequence.
func (s Sequence) End() int { return s.Start + len(s.X) - 1 }

// Range returns the support of s.
func (s Sequence) Range() Range { return Range{Start: s.Start, End: s.End()} }

// Indices returns the index vector aligned with X.
func (s Sequence) Indices() []int { return s.Range().Indices() }

// At returns x[n], zero outside the support.
func (s Sequence) At(n int) float64 {
	i := n - s.Start
	if i < 0 || i >= len(s.X) {
		return 0
	}
	return s.X[i]
}

// Clone returns a deep copy.
func (s Sequence) Clone() Sequence {
	return Sequence{Start: s.Start, X: append([]float64(nil), s.X...)}
}

// Over returns s evaluated on r, zero-extended or truncated as needed.
func (s Sequence) Over(r Range) Sequence {
	out := Sequence{Start: r.Start, X: make([]float64, r.Len())}
	for i := range out.X {
		out.X[i] = s.At(r.Start + i)
	}
	return out
}

// ComplexSequence is a complex-valued sequence on a contiguous support.
type ComplexSequence struct {
	Start int
	X     []complex128
}

// Len returns the number of samples.
func (c ComplexSequence) Len() int { return len(c.X) }

// Range returns the support of c.
func (c ComplexSequence) Range() Range {
	return Range{Start: c.Start, End: c.Start + len(c.X) - 1}
}

// Real returns Re{x[n]}.
func (c ComplexSequence) Real() Sequence {
	return c.mapReal(func(v complex128) float64 { return real(v) })
}

// Imag returns Im{x[n]}.
func (c ComplexSequence) Imag() Sequence {
	return c.mapReal(func(v complex128) float64 { return imag(v) })
}

// Abs returns |x[n]|.
func (c ComplexSequence) Abs() Sequence {
	return c.mapReal(cmplx.Abs)
}

// Angle returns arg x[n] in (−π, π].
func (c ComplexSequence) Angle() Sequence {
	return c.mapReal(func(v complex128) float64 {
		if v == 0 {
			return 0
		}
		return math.Atan2(imag(v), real(v))
	})
}

func (c ComplexSequence) mapReal(f func(complex128) float64) Sequence {
	out := Sequence{Start: c.Start, X: make([]float64, len(c.X))}
	for i, v := range c.X {
		out.X[i] = f(v)
	}
	return out
}
