package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/dsplab/dsp/core"
	"github.com/cwbudde/dsplab/dsp/signal"
	"github.com/cwbudde/dsplab/figure"
)

var signalKinds = []string{"sine", "cosine", "exp", "chirp", "multisine", "noise", "gaussian", "demo"}

type signalOptions struct {
	freq     float64
	f1       float64
	freqs    []float64
	amp      float64
	phase    float64
	tau      float64
	duration float64
	rate     int
	out      string
	plot     string
}

func newSignalCmd(a *app) *cobra.Command {
	var o signalOptions
	cmd := &cobra.Command{
		Use:       "signal <kind>",
		Short:     "Render a sampled continuous-time signal",
		Long:      "Kinds: " + strings.Join(signalKinds, ", ") + ".\nOutput rows are \"t<TAB>x(t)\" with t in seconds.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: signalKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				o.rate = a.cfg.SampleRate
			}
			return a.runSignal(cmd, args[0], o)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.freq, "freq", 5, "frequency in Hz (chirp start)")
	f.Float64Var(&o.f1, "f1", 50, "chirp end frequency in Hz")
	f.Float64SliceVar(&o.freqs, "freqs", []float64{3, 7, 11}, "multisine component frequencies in Hz")
	f.Float64Var(&o.amp, "amp", 1, "amplitude (noise: standard deviation for gaussian)")
	f.Float64Var(&o.phase, "phase", 0, "cosine phase in rad")
	f.Float64Var(&o.tau, "tau", 0.2, "exponential time constant in s")
	f.Float64Var(&o.duration, "duration", 1, "duration in s (ignored by demo)")
	f.IntVar(&o.rate, "rate", 0, "sample rate in Hz (default from config)")
	f.StringVar(&o.out, "out", "", "write samples to file instead of stdout")
	f.StringVar(&o.plot, "plot", "", "write a line plot (png, svg, pdf)")
	return cmd
}

func (a *app) runSignal(cmd *cobra.Command, kind string, o signalOptions) error {
	if o.rate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", o.rate)
	}
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(o.rate))},
		signal.WithSeed(a.cfg.Seed),
	)
	if err := g.Config().Validate(); err != nil {
		return err
	}
	n := g.Config().Samples(o.duration)

	var (
		x   []float64
		err error
	)
	switch kind {
	case "sine":
		x, err = g.Sine(o.freq, o.amp, n)
	case "cosine":
		x, err = g.Cosine(o.freq, o.amp, o.phase, n)
	case "exp":
		x, err = g.Exp(o.amp, o.tau, n)
	case "chirp":
		x, err = g.Chirp(o.freq, o.f1, o.amp, n)
	case "multisine":
		x, err = g.Multisine(o.freqs, o.amp, n)
	case "noise":
		x, err = g.WhiteNoise(o.amp, n)
	case "gaussian":
		x, err = g.GaussianNoise(o.amp, n)
	case "demo":
		x, err = g.DemoClip()
	default:
		return fmt.Errorf("unknown signal kind %q (want one of %s)", kind, strings.Join(signalKinds, ", "))
	}
	if err != nil {
		return err
	}

	t := make([]float64, len(x))
	for i := range t {
		t[i] = g.Config().Seconds(i)
	}
	a.log.Debug("generated signal", "kind", kind, "samples", len(x), "rate", o.rate)

	err = withOutput(cmd, a.resolve(o.out), func(w io.Writer) error {
		return writeColumns(w, t, false, x)
	})
	if err != nil {
		return err
	}
	if o.plot == "" {
		return nil
	}
	p, err := figure.Line(kind, t, x)
	if err != nil {
		return err
	}
	return a.savePlot(p, o.plot)
}
