package conv

import (
	"testing"

	"github.com/cwbudde/dsplab/internal/testutil"
)

func TestCorrelateFindsShift(t *testing.T) {
	template := testutil.Noise(7, 1, 64)
	const shift = 40
	x := make([]float64, 256)
	copy(x[shift:], template)

	corr, err := Correlate(x, template)
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	idx, _ := FindPeak(corr)
	if lag := LagFromIndex(idx, len(template)); lag != shift {
		t.Fatalf("lag = %d, want %d", lag, shift)
	}
	if IndexFromLag(shift, len(template)) != idx {
		t.Fatal("IndexFromLag is not the inverse of LagFromIndex")
	}
}

func TestAutoCorrelateSymmetricWithZeroLagPeak(t *testing.T) {
	x := testutil.Noise(9, 1, 50)
	acf, err := AutoCorrelate(x)
	if err != nil {
		t.Fatalf("AutoCorrelate() error = %v", err)
	}
	if len(acf) != 2*len(x)-1 {
		t.Fatalf("len = %d, want %d", len(acf), 2*len(x)-1)
	}
	idx, _ := FindPeak(acf)
	if idx != len(x)-1 {
		t.Fatalf("peak at %d, want %d", idx, len(x)-1)
	}
	for k := range len(x) - 1 {
		if d := acf[k] - acf[len(acf)-1-k]; d > 1e-12 || d < -1e-12 {
			t.Fatalf("acf not symmetric at %d", k)
		}
	}
}

func TestFindPeakEmpty(t *testing.T) {
	if idx, v := FindPeak(nil); idx != -1 || v != 0 {
		t.Fatalf("FindPeak(nil) = %d, %v", idx, v)
	}
	if idx, _ := FindPeak([]float64{-3, -1, -2}); idx != 1 {
		t.Fatalf("idx = %d, want 1", idx)
	}
}
