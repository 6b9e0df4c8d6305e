package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/cwbudde/dsplab/dsp/seq"
	"github.com/cwbudde/dsplab/figure"
)

var seqKinds = []string{"impulse", "step", "ramp", "exp", "cexp", "sin", "uniform", "gaussian"}

type seqOptions struct {
	start, end int
	n0         int
	a          float64
	sigma      float64
	omega      float64
	phase      float64
	amp        float64
	lo, hi     float64
	mu, sd     float64
	seed       uint64
	out        string
	plot       string
}

func newSeqCmd(a *app) *cobra.Command {
	var o seqOptions
	cmd := &cobra.Command{
		Use:       "seq <kind>",
		Short:     "Generate an elementary sequence over an index range",
		Long:      "Kinds: " + strings.Join(seqKinds, ", ") + ".\nOutput rows are \"n<TAB>x[n]\" (complex kinds add the imaginary part).",
		Args:      cobra.ExactArgs(1),
		ValidArgs: seqKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = a.cfg.Seed
			}
			return a.runSeq(cmd, args[0], o)
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.start, "start", -10, "first index")
	f.IntVar(&o.end, "end", 10, "last index")
	f.IntVar(&o.n0, "n0", 0, "impulse/step/ramp position")
	f.Float64Var(&o.a, "a", 0.9, "base of the real exponential aⁿ")
	f.Float64Var(&o.sigma, "sigma", -0.1, "decay σ of the complex exponential")
	f.Float64Var(&o.omega, "omega", math.Pi/6, "frequency ω in rad/sample")
	f.Float64Var(&o.phase, "phase", 0, "sinusoid phase in rad")
	f.Float64Var(&o.amp, "amp", 1, "sinusoid amplitude")
	f.Float64Var(&o.lo, "lo", 0, "uniform lower bound")
	f.Float64Var(&o.hi, "hi", 1, "uniform upper bound")
	f.Float64Var(&o.mu, "mu", 0, "gaussian mean")
	f.Float64Var(&o.sd, "sd", 1, "gaussian standard deviation")
	f.Uint64Var(&o.seed, "seed", 1, "random seed (default from config)")
	f.StringVar(&o.out, "out", "", "write samples to file instead of stdout")
	f.StringVar(&o.plot, "plot", "", "write a stem plot (png, svg, pdf)")
	return cmd
}

func (a *app) runSeq(cmd *cobra.Command, kind string, o seqOptions) error {
	r := seq.Range{Start: o.start, End: o.end}

	if kind == "cexp" {
		c, err := seq.ComplexExp(o.sigma, o.omega, r)
		if err != nil {
			return err
		}
		re, im := c.Real(), c.Imag()
		err = withOutput(cmd, a.resolve(o.out), func(w io.Writer) error {
			return writeColumns(w, indices(re), true, re.X, im.X)
		})
		if err != nil {
			return err
		}
		if o.plot == "" {
			return nil
		}
		var plots []*plot.Plot
		for _, part := range []struct {
			title string
			s     seq.Sequence
		}{
			{"real part", re}, {"imaginary part", im},
			{"magnitude", c.Abs()}, {"phase", c.Angle()},
		} {
			p, err := figure.Stem(part.title, part.s)
			if err != nil {
				return err
			}
			plots = append(plots, p)
		}
		return a.saveGrid(o.plot, 2, 2, plots...)
	}

	s, title, err := buildSeq(kind, r, o)
	if err != nil {
		return err
	}
	a.log.Debug("generated sequence", "kind", kind, "start", s.Start, "len", s.Len())

	err = withOutput(cmd, a.resolve(o.out), func(w io.Writer) error {
		return writeColumns(w, indices(s), true, s.X)
	})
	if err != nil {
		return err
	}
	if o.plot == "" {
		return nil
	}
	p, err := figure.Stem(title, s)
	if err != nil {
		return err
	}
	return a.savePlot(p, o.plot)
}

func buildSeq(kind string, r seq.Range, o seqOptions) (seq.Sequence, string, error) {
	var (
		s     seq.Sequence
		title string
		err   error
	)
	switch kind {
	case "impulse":
		s, err = seq.Impulse(o.n0, r)
		title = fmt.Sprintf("δ[n-%d]", o.n0)
	case "step":
		s, err = seq.Step(o.n0, r)
		title = fmt.Sprintf("u[n-%d]", o.n0)
	case "ramp":
		s, err = seq.Ramp(o.n0, r)
		title = fmt.Sprintf("r[n-%d]", o.n0)
	case "exp":
		s, err = seq.RealExp(o.a, r)
		title = fmt.Sprintf("(%g)^n", o.a)
	case "sin":
		s, err = seq.Sinusoid(o.amp, o.omega, o.phase, r)
		title = fmt.Sprintf("%g cos(%.3gn%+.3g)", o.amp, o.omega, o.phase)
	case "uniform":
		s, err = seq.Uniform(r, o.lo, o.hi, seq.NewSource(o.seed))
		title = fmt.Sprintf("uniform [%g, %g)", o.lo, o.hi)
	case "gaussian":
		s, err = seq.Gaussian(r, o.mu, o.sd, seq.NewSource(o.seed))
		title = fmt.Sprintf("gaussian N(%g, %g²)", o.mu, o.sd)
	default:
		return seq.Sequence{}, "", fmt.Errorf("unknown sequence kind %q (want one of %s)", kind, strings.Join(seqKinds, ", "))
	}
	return s, title, err
}

func indices(s seq.Sequence) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = float64(s.Start + i)
	}
	return out
}
