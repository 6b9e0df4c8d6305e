package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/dsplab/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Seed returns the current noise seed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// SetSeed changes the noise seed for subsequent calls.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
}

func (g *Generator) source() rand.Source {
	return rand.NewPCG(g.seed, g.seed^0x853c49e6748fea9b)
}

func checkSamples(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	return nil
}

// Time returns the sample instants t[i] = i/fs covering seconds.
func (g *Generator) Time(seconds float64) ([]float64, error) {
	n := g.cfg.Samples(seconds)
	if err := checkSamples("time", n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / g.cfg.SampleRate
	}
	return out, nil
}

// Sine generates amplitude·sin(2πf·t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.sinusoid("sine", freqHz, amplitude, 0, samples)
}

// Cosine generates amplitude·cos(2πf·t + phase).
func (g *Generator) Cosine(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	return g.sinusoid("cosine", freqHz, amplitude, phase+math.Pi/2, samples)
}

func (g *Generator) sinusoid(kind string, freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	if err := checkSamples(kind, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out, nil
}

// Exp generates the decaying exponential amplitude·e^(−t/tau).
func (g *Generator) Exp(amplitude, tau float64, samples int) ([]float64, error) {
	if err := checkSamples("exp", samples); err != nil {
		return nil, err
	}
	if !(tau > 0) || math.IsInf(tau, 0) {
		return nil, fmt.Errorf("exp time constant must be > 0: %f", tau)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * math.Exp(-float64(i)/g.cfg.SampleRate/tau)
	}
	return out, nil
}

// Chirp generates a linear frequency sweep from f0 to f1 Hz across samples.
func (g *Generator) Chirp(f0, f1, amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples("chirp", samples); err != nil {
		return nil, err
	}
	nyquist := g.cfg.SampleRate / 2
	if f0 < 0 || f1 < 0 || f0 > nyquist || f1 > nyquist {
		return nil, fmt.Errorf("chirp frequencies must be within [0, %g]: %g..%g", nyquist, f0, f1)
	}
	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate
	rate := (f1 - f0) / duration
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = amplitude * math.Sin(2*math.Pi*(f0*t+0.5*rate*t*t))
	}
	return out, nil
}

// Multisine sums equal-amplitude sines at freqs, scaled so the components
// add up to at most amplitude.
func (g *Generator) Multisine(freqs []float64, amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples("multisine", samples); err != nil {
		return nil, err
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("multisine needs at least one frequency")
	}
	out := make([]float64, samples)
	each := amplitude / float64(len(freqs))
	for _, f := range freqs {
		step := 2 * math.Pi * f / g.cfg.SampleRate
		for i := range out {
			out[i] += each * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic uniform white noise in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	if amplitude == 0 {
		return out, nil
	}
	d := distuv.Uniform{Min: -amplitude, Max: amplitude, Src: g.source()}
	for i := range out {
		out[i] = d.Rand()
	}
	return out, nil
}

// GaussianNoise generates deterministic zero-mean Gaussian noise with the
// given standard deviation.
func (g *Generator) GaussianNoise(sigma float64, samples int) ([]float64, error) {
	if err := checkSamples("noise", samples); err != nil {
		return nil, err
	}
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("noise sigma must be >= 0: %f", sigma)
	}
	out := make([]float64, samples)
	if sigma == 0 {
		return out, nil
	}
	d := distuv.Normal{Mu: 0, Sigma: sigma, Src: g.source()}
	for i := range out {
		out[i] = d.Rand()
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	peak := vecmath.MaxAbs(data)
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}
	vecmath.ScaleBlock(out, data, targetPeak/peak)
	return out, nil
}

// Clip hard-limits data to [-limit, limit] and returns a new slice.
func Clip(data []float64, limit float64) ([]float64, error) {
	if limit < 0 || math.IsNaN(limit) {
		return nil, fmt.Errorf("clip limit must be >= 0: %f", limit)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = core.Clamp(v, -limit, limit)
	}
	return out, nil
}

// RemoveDC subtracts the mean and returns a new slice.
func RemoveDC(data []float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}
	mean := vecmath.Sum(data) / float64(len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}
