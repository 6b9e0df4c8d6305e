package spectrum

import (
	"testing"

	"github.com/cwbudde/dsplab/dsp/seq"
	"github.com/cwbudde/dsplab/internal/testutil"
)

func BenchmarkMagnitude(b *testing.B) {
	bins := make([]complex128, 4096)
	for i := range bins {
		bins[i] = complex(float64(i)/10, float64(len(bins)-i)/10)
	}
	b.SetBytes(int64(len(bins) * 16))
	for b.Loop() {
		_ = Magnitude(bins)
	}
}

func BenchmarkFFT(b *testing.B) {
	x := testutil.Noise(1, 1, 8192)
	b.SetBytes(int64(len(x) * 8))
	for b.Loop() {
		if _, err := FFT(x, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDTFT(b *testing.B) {
	x := seq.Sequence{X: testutil.Noise(2, 1, 512)}
	omegas := Grid(256)
	for b.Loop() {
		if _, err := DTFT(x, omegas); err != nil {
			b.Fatal(err)
		}
	}
}
