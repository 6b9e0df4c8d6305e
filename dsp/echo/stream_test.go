package echo

import (
	"errors"
	"testing"

	"github.com/cwbudde/dsplab/internal/testutil"
)

func TestStreamingMatchesBatch(t *testing.T) {
	y := testutil.Noise(21, 1, 700)
	p := Params{Delay: 64, Alpha: -0.45}

	want, err := Add(y, p)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	adder, err := NewAdder(p)
	if err != nil {
		t.Fatalf("NewAdder() error = %v", err)
	}
	got := make([]float64, len(y))
	// Uneven blocks exercise state carried across calls.
	adder.ProcessBlockTo(got[:100], y[:100])
	adder.ProcessBlockTo(got[100:333], y[100:333])
	copy(got[333:], y[333:])
	adder.ProcessBlock(got[333:])
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	remover, err := NewRemover(p)
	if err != nil {
		t.Fatalf("NewRemover() error = %v", err)
	}
	back := make([]float64, len(got))
	for i, v := range got {
		back[i] = remover.ProcessSample(v)
	}
	testutil.RequireSliceNearlyEqual(t, back, y, 1e-9)
}

func TestStreamingDelayOne(t *testing.T) {
	p := Params{Delay: 1, Alpha: 0.5}
	adder, _ := NewAdder(p)
	remover, _ := NewRemover(p)

	in := []float64{1, 2, 3, 4}
	mid := make([]float64, len(in))
	adder.ProcessBlockTo(mid, in)
	testutil.RequireSliceNearlyEqual(t, mid, []float64{1, 2.5, 4, 5.5}, 1e-12)

	remover.ProcessBlock(mid)
	testutil.RequireSliceNearlyEqual(t, mid, in, 1e-12)
}

func TestStreamingReset(t *testing.T) {
	p := Params{Delay: 2, Alpha: 0.5}
	adder, _ := NewAdder(p)
	remover, _ := NewRemover(p)
	for _, v := range []float64{1, 1, 1} {
		adder.ProcessSample(v)
		remover.ProcessSample(v)
	}
	adder.Reset()
	remover.Reset()
	if got := adder.ProcessSample(1); got != 1 {
		t.Fatalf("adder after reset = %v, want 1", got)
	}
	if got := remover.ProcessSample(1); got != 1 {
		t.Fatalf("remover after reset = %v, want 1", got)
	}
	if adder.Params() != p || remover.Params() != p {
		t.Fatal("Params() does not echo constructor input")
	}
}

func TestStreamingConstructorsValidate(t *testing.T) {
	if _, err := NewAdder(Params{Delay: 0, Alpha: 0.5}); !errors.Is(err, ErrInvalidDelay) {
		t.Fatalf("NewAdder err = %v", err)
	}
	if _, err := NewRemover(Params{Delay: 3, Alpha: 1}); !errors.Is(err, ErrUnstable) {
		t.Fatalf("NewRemover err = %v", err)
	}
}
