package signal

import (
	"math"
)

// DemoClipSeconds is the length of the synthetic demo clip.
const DemoClipSeconds = 9

const (
	demoSyllable = 0.45 // seconds between syllable onsets
	demoDecay    = 0.08 // envelope time constant in seconds
	demoPitch    = 180.0
	demoPeak     = 0.8
)

// DemoClip synthesises a DemoClipSeconds long voice-like test signal at the
// generator's sample rate: a train of harmonic syllables with a decaying
// envelope and a slowly wandering pitch over a low noise floor. It stands in
// for the recorded clip of the echo examples and peaks at 0.8.
func (g *Generator) DemoClip() ([]float64, error) {
	samples := g.cfg.Samples(DemoClipSeconds)
	floor, err := g.WhiteNoise(0.01, samples)
	if err != nil {
		return nil, err
	}

	fs := g.cfg.SampleRate
	out := make([]float64, samples)
	phase := 0.0
	for i := range out {
		t := float64(i) / fs
		onset := math.Mod(t, demoSyllable)
		env := math.Exp(-onset / demoDecay)

		pitch := demoPitch * (1 + 0.15*math.Sin(2*math.Pi*0.3*t))
		phase += 2 * math.Pi * pitch / fs

		var v float64
		for h := 1; h <= 4; h++ {
			if float64(h)*pitch >= fs/2 {
				break
			}
			v += math.Sin(float64(h)*phase) / float64(h)
		}
		out[i] = env*v + floor[i]
	}
	return Normalize(RemoveDC(out), demoPeak)
}
