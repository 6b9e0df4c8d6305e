package seq

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/dsplab/dsp/conv"
	"github.com/cwbudde/dsplab/dsp/core"
)

// union returns the smallest range covering both supports. Empty operands
// do not contribute.
func union(a, b Sequence) Range {
	switch {
	case a.Len() == 0:
		return b.Range()
	case b.Len() == 0:
		return a.Range()
	}
	return Range{Start: min(a.Start, b.Start), End: max(a.End(), b.End())}
}

// Add returns x1[n] + x2[n] over the union of the supports.
func Add(a, b Sequence) Sequence {
	r := union(a, b)
	out := a.Over(r)
	off := b.Start - r.Start
	for i, v := range b.X {
		out.X[off+i] += v
	}
	return out
}

// Multiply returns x1[n]·x2[n] over the union of the supports.
func Multiply(a, b Sequence) Sequence {
	r := union(a, b)
	out := Sequence{Start: r.Start, X: make([]float64, r.Len())}
	if r.Len() > 0 {
		vecmath.MulBlock(out.X, a.Over(r).X, b.Over(r).X)
	}
	return out
}

// Scale returns k·x[n].
func Scale(s Sequence, k float64) Sequence {
	out := s.Clone()
	floats.Scale(k, out.X)
	return out
}

// Shift returns y[n] = x[n−k].
func Shift(s Sequence, k int) Sequence {
	out := s.Clone()
	out.Start += k
	return out
}

// Fold returns y[n] = x[−n].
func Fold(s Sequence) Sequence {
	return Sequence{Start: -s.End(), X: core.Reversed(s.X)}
}

// EvenOdd decomposes a real sequence into xe[n] = (x[n]+x[−n])/2 and
// xo[n] = (x[n]−x[−n])/2 over the smallest support symmetric about n = 0.
func EvenOdd(s Sequence) (even, odd Sequence) {
	if s.Len() == 0 {
		return Sequence{}, Sequence{}
	}
	m := max(abs(s.Start), abs(s.End()))
	r := Range{Start: -m, End: m}
	even = Sequence{Start: -m, X: make([]float64, r.Len())}
	odd = Sequence{Start: -m, X: make([]float64, r.Len())}
	for i := range even.X {
		n := -m + i
		x, xf := s.At(n), s.At(-n)
		even.X[i] = (x + xf) / 2
		odd.X[i] = (x - xf) / 2
	}
	return even, odd
}

// Energy returns Σ|x[n]|².
func Energy(s Sequence) float64 {
	if s.Len() == 0 {
		return 0
	}
	return floats.Dot(s.X, s.X)
}

// Power returns the average power over the support, (1/N)Σ|x[n]|², which
// equals the power of a periodic sequence when s holds exactly one period.
func Power(s Sequence) float64 {
	if s.Len() == 0 {
		return 0
	}
	return Energy(s) / float64(s.Len())
}

// Conv returns the linear convolution y = x * h with its support starting
// at x.Start + h.Start.
func Conv(x, h Sequence) (Sequence, error) {
	if x.Len() == 0 || h.Len() == 0 {
		return Sequence{}, ErrEmptySequence
	}
	y, err := conv.Convolve(x.X, h.X)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{Start: x.Start + h.Start, X: y}, nil
}

// Correlate returns the cross-correlation r_xy[l] = Σ x[n]·y[n−l], indexed
// by lag l.
func Correlate(x, y Sequence) (Sequence, error) {
	return Conv(x, Fold(y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
