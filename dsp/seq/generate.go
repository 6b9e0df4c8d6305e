package seq

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Eval evaluates f at every index of r.
func Eval(r Range, f func(n int) float64) (Sequence, error) {
	if err := r.Validate(); err != nil {
		return Sequence{}, err
	}
	out := Sequence{Start: r.Start, X: make([]float64, r.Len())}
	for i := range out.X {
		out.X[i] = f(r.Start + i)
	}
	return out, nil
}

// EvalComplex evaluates f at every index of r.
func EvalComplex(r Range, f func(n int) complex128) (ComplexSequence, error) {
	if err := r.Validate(); err != nil {
		return ComplexSequence{}, err
	}
	out := ComplexSequence{Start: r.Start, X: make([]complex128, r.Len())}
	for i := range out.X {
		out.X[i] = f(r.Start + i)
	}
	return out, nil
}

// Impulse returns δ[n−n0] over r. If n0 lies outside r the result is all zeros.
func Impulse(n0 int, r Range) (Sequence, error) {
	return Eval(r, func(n int) float64 {
		if n == n0 {
			return 1
		}
		return 0
	})
}

// Step returns u[n−n0] over r.
func Step(n0 int, r Range) (Sequence, error) {
	return Eval(r, func(n int) float64 {
		if n >= n0 {
			return 1
		}
		return 0
	})
}

// Ramp returns (n−n0)·u[n−n0] over r.
func Ramp(n0 int, r Range) (Sequence, error) {
	return Eval(r, func(n int) float64 {
		if n >= n0 {
			return float64(n - n0)
		}
		return 0
	})
}

// RealExp returns aⁿ over r.
func RealExp(a float64, r Range) (Sequence, error) {
	return Eval(r, func(n int) float64 {
		return math.Pow(a, float64(n))
	})
}

// ComplexExp returns e^{(σ+jω)n} over r.
func ComplexExp(sigma, omega float64, r Range) (ComplexSequence, error) {
	s := complex(sigma, omega)
	return EvalComplex(r, func(n int) complex128 {
		return cmplx.Exp(s * complex(float64(n), 0))
	})
}

// Sinusoid returns A·cos(ωn + φ) over r.
func Sinusoid(amplitude, omega, phase float64, r Range) (Sequence, error) {
	return Eval(r, func(n int) float64 {
		return amplitude * math.Cos(omega*float64(n)+phase)
	})
}

// NewSource returns a deterministic PCG source for the random generators.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)
}

// Uniform returns samples drawn uniformly from [lo, hi) over r.
func Uniform(r Range, lo, hi float64, src rand.Source) (Sequence, error) {
	if !(hi > lo) {
		return Sequence{}, fmt.Errorf("uniform bounds must satisfy lo < hi: [%v, %v)", lo, hi)
	}
	d := distuv.Uniform{Min: lo, Max: hi, Src: src}
	return Eval(r, func(int) float64 { return d.Rand() })
}

// Gaussian returns samples drawn from N(mu, sigma²) over r.
func Gaussian(r Range, mu, sigma float64, src rand.Source) (Sequence, error) {
	if sigma < 0 || math.IsNaN(sigma) {
		return Sequence{}, fmt.Errorf("gaussian sigma must be >= 0: %v", sigma)
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	return Eval(r, func(int) float64 { return d.Rand() })
}

// Periodic repeats one period of x the given number of times, keeping x.Start.
func Periodic(x Sequence, periods int) (Sequence, error) {
	if periods <= 0 {
		return Sequence{}, fmt.Errorf("%w: %d", ErrInvalidPeriods, periods)
	}
	if x.Len() == 0 {
		return Sequence{}, ErrEmptySequence
	}
	out := Sequence{Start: x.Start, X: make([]float64, 0, periods*x.Len())}
	for range periods {
		out.X = append(out.X, x.X...)
	}
	return out, nil
}
