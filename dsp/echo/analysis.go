package echo

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsplab/dsp/conv"
	"github.com/cwbudde/dsplab/dsp/filter"
)

// Response returns |H(e^{jω})| of the echo system, 1 + α·e^{−jωD}, and of its
// inverse at each omega (radians per sample).
func Response(p Params, omegas []float64) (forward, inverse []float64, err error) {
	h, err := Kernel(p)
	if err != nil {
		return nil, nil, err
	}
	fw, err := filter.Response(h, []float64{1}, omegas)
	if err != nil {
		return nil, nil, err
	}
	forward = make([]float64, len(omegas))
	inverse = make([]float64, len(omegas))
	for i, v := range fw {
		forward[i] = cmplx.Abs(v)
		inverse[i] = 1 / forward[i]
	}
	return forward, inverse, nil
}

// MinEchoSeconds is the shortest delay searched by default. Below it the
// autocorrelation of voiced audio is dominated by the signal itself, and the
// ear hears colouration rather than a separate echo.
const MinEchoSeconds = 0.05

// LagWindow returns the default EstimateDelay window for n samples at
// sampleRate: from MinEchoSeconds up to n-1.
func LagWindow(n, sampleRate int) (minLag, maxLag int) {
	minLag = max(int(math.Ceil(MinEchoSeconds*float64(sampleRate))), 1)
	return minLag, n - 1
}

// EstimateDelay returns the lag in [minLag, maxLag] at which the magnitude of
// the autocorrelation of x peaks, an estimate of D for an echoed signal. The
// normalized correlation r(D)/r(0) is returned alongside; for white input it
// approaches α/(1+α²), so its sign follows α.
func EstimateDelay(x []float64, minLag, maxLag int) (lag int, strength float64, err error) {
	if len(x) == 0 {
		return 0, 0, ErrEmptyInput
	}
	if minLag <= 0 || maxLag < minLag || maxLag >= len(x) {
		return 0, 0, fmt.Errorf("%w: lag window [%d, %d] for length %d", ErrInvalidDelay, minLag, maxLag, len(x))
	}

	acf, err := conv.AutoCorrelate(x)
	if err != nil {
		return 0, 0, err
	}
	zero := conv.IndexFromLag(0, len(x))
	if acf[zero] == 0 {
		return 0, 0, fmt.Errorf("%w: signal has zero energy", ErrEmptyInput)
	}

	window := make([]float64, maxLag-minLag+1)
	for i := range window {
		window[i] = math.Abs(acf[zero+minLag+i])
	}
	idx, _ := conv.FindPeak(window)
	lag = minLag + idx
	return lag, acf[zero+lag] / acf[zero], nil
}
