package echo

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/dsplab/internal/testutil"
)

func TestTextbookExample(t *testing.T) {
	y := []float64{1, 0, 0, 0, 0}
	p := Params{Delay: 2, Alpha: 0.5}

	x, err := Add(y, p)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, x, []float64{1, 0, 0.5, 0, 0}, 0)

	back, err := Remove(x, p)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, back, y, 0)
}

func TestKernel(t *testing.T) {
	h, err := Kernel(Params{Delay: 4, Alpha: -0.3})
	if err != nil {
		t.Fatalf("Kernel() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, h, []float64{1, 0, 0, 0, -0.3}, 0)

	h, err = Kernel(Params{Delay: 1, Alpha: 0.9})
	if err != nil {
		t.Fatalf("Kernel() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, h, []float64{1, 0.9}, 0)
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []int{1, 3, 50, 999} {
		for _, alpha := range []float64{-0.95, -0.5, 0, 0.3, 0.9} {
			t.Run(fmt.Sprintf("D=%d/alpha=%v", d, alpha), func(t *testing.T) {
				y := testutil.Noise(uint64(d)+7, 1, 2000)
				p := Params{Delay: d, Alpha: alpha}

				x, err := Add(y, p)
				if err != nil {
					t.Fatalf("Add() error = %v", err)
				}
				got, err := Remove(x, p)
				if err != nil {
					t.Fatalf("Remove() error = %v", err)
				}
				testutil.RequireSliceNearlyEqual(t, got, y, 1e-9)
			})
		}
	}
}

func TestZeroAlphaIsIdentity(t *testing.T) {
	y := testutil.Noise(1, 1, 64)
	x, err := Add(y, Params{Delay: 5, Alpha: 0})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, x, y, 0)
}

func TestPrefixBeforeDelayIsUntouched(t *testing.T) {
	y := testutil.Noise(2, 1, 100)
	p := Params{Delay: 37, Alpha: 0.7}
	x, err := Add(y, p)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	for n := range p.Delay {
		if x[n] != y[n] {
			t.Fatalf("x[%d] = %v, want exactly %v", n, x[n], y[n])
		}
	}
	if x[p.Delay] == y[p.Delay] {
		t.Fatal("echo missing at n = D")
	}
}

func TestFilterFormsMatchDirect(t *testing.T) {
	y := testutil.Noise(3, 1, 500)
	p := Params{Delay: 40, Alpha: 0.6}

	direct, _ := Add(y, p)
	viaFilter, err := AddFilter(y, p)
	if err != nil {
		t.Fatalf("AddFilter() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, viaFilter, direct, 1e-12)

	back, _ := Remove(direct, p)
	backFilter, err := RemoveFilter(direct, p)
	if err != nil {
		t.Fatalf("RemoveFilter() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, backFilter, back, 1e-12)
}

func TestParameterValidation(t *testing.T) {
	y := make([]float64, 10)
	tests := []struct {
		name string
		in   []float64
		p    Params
		want error
	}{
		{name: "empty", in: nil, p: Params{Delay: 1, Alpha: 0.5}, want: ErrEmptyInput},
		{name: "zero delay", in: y, p: Params{Delay: 0, Alpha: 0.5}, want: ErrInvalidDelay},
		{name: "negative delay", in: y, p: Params{Delay: -2, Alpha: 0.5}, want: ErrInvalidDelay},
		{name: "delay equals length", in: y, p: Params{Delay: 10, Alpha: 0.5}, want: ErrInvalidDelay},
		{name: "alpha one", in: y, p: Params{Delay: 2, Alpha: 1}, want: ErrUnstable},
		{name: "alpha below minus one", in: y, p: Params{Delay: 2, Alpha: -1.5}, want: ErrUnstable},
		{name: "alpha nan", in: y, p: Params{Delay: 2, Alpha: math.NaN()}, want: ErrUnstable},
	}

	ops := map[string]func([]float64, Params) ([]float64, error){
		"Add":          Add,
		"Remove":       Remove,
		"AddFilter":    AddFilter,
		"RemoveFilter": RemoveFilter,
	}
	for _, tt := range tests {
		for name, op := range ops {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				if _, err := op(tt.in, tt.p); !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
			})
		}
	}
}

func TestInverseDivergesOutsideStabilityRegion(t *testing.T) {
	// The recursion itself grows without bound for |α| > 1, which is why
	// such parameters are rejected.
	x := make([]float64, 200)
	x[0] = 1
	y := make([]float64, len(x))
	const alpha, d = 1.1, 2
	for n := range x {
		y[n] = x[n]
		if n >= d {
			y[n] -= alpha * y[n-d]
		}
	}
	if math.Abs(y[len(y)-2]) < 1e3 {
		t.Fatalf("expected divergence, got %v", y[len(y)-2])
	}
	if _, err := Remove(x, Params{Delay: d, Alpha: alpha}); !errors.Is(err, ErrUnstable) {
		t.Fatalf("err = %v, want ErrUnstable", err)
	}
}
