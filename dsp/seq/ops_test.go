package seq

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/dsplab/internal/testutil"
)

func TestAddUnionSupport(t *testing.T) {
	a := Sequence{Start: -1, X: []float64{1, 1}}
	b := Sequence{Start: 1, X: []float64{2, 2}}
	got := Add(a, b)
	if got.Start != -1 {
		t.Fatalf("Start = %d, want -1", got.Start)
	}
	testutil.RequireSliceNearlyEqual(t, got.X, []float64{1, 1, 2, 2}, 0)

	if got := Add(Sequence{}, b); got.Start != 1 || got.Len() != 2 {
		t.Fatalf("Add with empty = %+v", got)
	}
}

func TestMultiplyUnionSupport(t *testing.T) {
	a := Sequence{Start: 0, X: []float64{1, 2, 3}}
	b := Sequence{Start: 1, X: []float64{4, 5, 6}}
	got := Multiply(a, b)
	if got.Start != 0 {
		t.Fatalf("Start = %d, want 0", got.Start)
	}
	testutil.RequireSliceNearlyEqual(t, got.X, []float64{0, 8, 15, 0}, 0)
}

func TestScaleShiftFold(t *testing.T) {
	x := Sequence{Start: -1, X: []float64{1, 2, 3}}

	s := Scale(x, -2)
	testutil.RequireSliceNearlyEqual(t, s.X, []float64{-2, -4, -6}, 0)
	if x.X[0] != 1 {
		t.Fatal("Scale modified its input")
	}

	sh := Shift(x, 3)
	if sh.Start != 2 || sh.At(3) != 2 {
		t.Fatalf("Shift = %+v", sh)
	}

	f := Fold(x)
	if f.Start != -1 {
		t.Fatalf("Fold start = %d, want -1", f.Start)
	}
	for _, n := range x.Indices() {
		if f.At(-n) != x.At(n) {
			t.Fatalf("fold mismatch at n=%d", n)
		}
	}
}

func TestEvenOdd(t *testing.T) {
	u, _ := Step(0, Range{Start: 0, End: 10})
	u10, _ := Step(10, Range{Start: 0, End: 10})
	x := Add(u, Scale(u10, -1)) // rectangular pulse u[n]-u[n-10]

	even, odd := EvenOdd(x)
	if even.Start != -10 || even.Len() != 21 {
		t.Fatalf("support = [%d, %d]", even.Start, even.End())
	}
	for _, n := range even.Indices() {
		if even.At(n) != even.At(-n) {
			t.Fatalf("even part not symmetric at %d", n)
		}
		if odd.At(n) != -odd.At(-n) {
			t.Fatalf("odd part not antisymmetric at %d", n)
		}
	}
	testutil.RequireSliceNearlyEqual(t, Add(even, odd).Over(x.Range()).X, x.X, 1e-15)
	if even.At(0) != 1 || odd.At(0) != 0 {
		t.Fatalf("xe[0] = %v, xo[0] = %v", even.At(0), odd.At(0))
	}
}

func TestEnergyAndPower(t *testing.T) {
	x := Sequence{Start: 0, X: []float64{1, -2, 2}}
	if e := Energy(x); e != 9 {
		t.Fatalf("Energy = %v, want 9", e)
	}
	if p := Power(x); p != 3 {
		t.Fatalf("Power = %v, want 3", p)
	}
	if Energy(Sequence{}) != 0 || Power(Sequence{}) != 0 {
		t.Fatal("empty sequence must have zero energy and power")
	}

	// One period of a sinusoid has power A²/2.
	s, _ := Sinusoid(2, 2*math.Pi/8, 0.3, Range{Start: 0, End: 7})
	if p := Power(s); math.Abs(p-2) > 1e-12 {
		t.Fatalf("sinusoid power = %v, want 2", p)
	}
}

func TestConvTracksSupport(t *testing.T) {
	// Textbook example: x on [-3, 3], h on [-1, 4].
	x := Sequence{Start: -3, X: []float64{3, 11, 7, 0, -1, 4, 2}}
	h := Sequence{Start: -1, X: []float64{2, 3, 0, -5, 2, 1}}
	y, err := Conv(x, h)
	if err != nil {
		t.Fatalf("Conv() error = %v", err)
	}
	if y.Start != -4 || y.End() != 7 {
		t.Fatalf("support = [%d, %d], want [-4, 7]", y.Start, y.End())
	}
	testutil.RequireSliceNearlyEqual(t, y.X, []float64{6, 31, 47, 6, -51, -5, 41, 18, -22, -3, 8, 2}, 1e-12)

	if _, err := Conv(Sequence{}, h); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("err = %v, want ErrEmptySequence", err)
	}
}

func TestCorrelateFindsShift(t *testing.T) {
	x := Sequence{Start: -3, X: []float64{3, 11, 7, 0, -1, 4, 2}}
	y := Shift(x, 2)

	r, err := Correlate(y, x)
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	best, lag := math.Inf(-1), 0
	for i, v := range r.X {
		if v > best {
			best, lag = v, r.Start+i
		}
	}
	if lag != 2 {
		t.Fatalf("peak lag = %d, want 2", lag)
	}
	if best != Energy(x) {
		t.Fatalf("peak = %v, want energy %v", best, Energy(x))
	}
}
