package main

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/cwbudde/dsplab/dsp/core"
	"github.com/cwbudde/dsplab/dsp/echo"
	"github.com/cwbudde/dsplab/dsp/signal"
	"github.com/cwbudde/dsplab/dsp/spectrum"
	"github.com/cwbudde/dsplab/figure"
	"github.com/cwbudde/dsplab/sampleio"
	"github.com/cwbudde/dsplab/stats"
)

const (
	methodDirect = "direct"
	methodFilter = "filter"
	methodStream = "stream"
)

type echoOptions struct {
	input     string
	delay     int
	alpha     float64
	method    string
	blockSize int
	out       string
	plot      string
	wavDir    string
}

func newEchoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo",
		Short: "Add or remove an echo x[n] = y[n] + α·y[n−D]",
	}
	cmd.AddCommand(
		newEchoRunCmd(a, "add", "Add a delayed, attenuated copy to the input", a.runEchoAdd),
		newEchoRunCmd(a, "remove", "Remove an echo with the inverse recursion y[n] = x[n] − α·y[n−D]", a.runEchoRemove),
		newEchoRunCmd(a, "roundtrip", "Add an echo, remove it again, and report the reconstruction error", a.runEchoRoundTrip),
		newEchoResponseCmd(a),
		newEchoEstimateCmd(a),
	)
	return cmd
}

func addEchoParamFlags(cmd *cobra.Command, o *echoOptions) {
	d := echo.Params{Delay: 4000, Alpha: 0.5}
	cmd.Flags().IntVar(&o.delay, "delay", d.Delay, "echo delay D in samples (default from config)")
	cmd.Flags().Float64Var(&o.alpha, "alpha", d.Alpha, "echo attenuation α, |α| < 1 (default from config)")
}

func (a *app) echoParams(cmd *cobra.Command, o echoOptions) echo.Params {
	p := echo.Params{Delay: a.cfg.Echo.Delay, Alpha: a.cfg.Echo.Alpha}
	if cmd.Flags().Changed("delay") {
		p.Delay = o.delay
	}
	if cmd.Flags().Changed("alpha") {
		p.Alpha = o.alpha
	}
	return p
}

func newEchoRunCmd(a *app, use, short string, run func(*cobra.Command, echoOptions) error) *cobra.Command {
	var o echoOptions
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}
	addEchoParamFlags(cmd, &o)
	f := cmd.Flags()
	f.StringVar(&o.input, "input", "", "input clip (.wav or text, one sample per line); default is the synthetic demo clip")
	f.StringVar(&o.method, "method", methodDirect, "implementation: direct, filter (difference-equation routine), or stream (block by block)")
	f.IntVar(&o.blockSize, "block-size", core.DefaultProcessorConfig().BlockSize, "block size of the stream method")
	f.StringVar(&o.out, "out", "", "write the result (.wav or text); text goes to stdout when empty")
	f.StringVar(&o.plot, "plot", "", "write the waveforms as a figure (png, svg, pdf)")
	f.StringVar(&o.wavDir, "wav", "", "directory for WAV exports of every stage, for listening")
	return cmd
}

// loadClip reads the input clip or synthesises the demo clip.
func (a *app) loadClip(path string) (sampleio.Clip, error) {
	if path == "" {
		g := signal.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(float64(a.cfg.SampleRate))},
			signal.WithSeed(a.cfg.Seed),
		)
		x, err := g.DemoClip()
		if err != nil {
			return sampleio.Clip{}, err
		}
		a.log.Info("using synthetic demo clip", "seconds", signal.DemoClipSeconds, "rate", a.cfg.SampleRate)
		return sampleio.Clip{Samples: x, SampleRate: a.cfg.SampleRate}, nil
	}

	c, err := sampleio.Load(path)
	if err != nil {
		return sampleio.Clip{}, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		c.SampleRate = a.cfg.SampleRate
	}
	a.log.Info("loaded clip", "path", path, "samples", len(c.Samples), "rate", c.SampleRate)
	return c, nil
}

func applyEcho(o echoOptions, x []float64, p echo.Params, forward bool) ([]float64, error) {
	switch o.method {
	case methodDirect:
		if forward {
			return echo.Add(x, p)
		}
		return echo.Remove(x, p)
	case methodFilter:
		if forward {
			return echo.AddFilter(x, p)
		}
		return echo.RemoveFilter(x, p)
	case methodStream:
		if p.Delay >= len(x) {
			return nil, fmt.Errorf("%w: delay %d must be < signal length %d", echo.ErrInvalidDelay, p.Delay, len(x))
		}
		if o.blockSize <= 0 {
			return nil, fmt.Errorf("block size must be > 0: %d", o.blockSize)
		}
		cfg := core.ApplyProcessorOptions(core.WithBlockSize(o.blockSize))
		var proc blockProcessor
		if forward {
			ad, err := echo.NewAdder(p)
			if err != nil {
				return nil, err
			}
			proc = ad
		} else {
			rm, err := echo.NewRemover(p)
			if err != nil {
				return nil, err
			}
			proc = rm
		}
		return streamBlocks(proc, x, cfg.BlockSize), nil
	}
	return nil, fmt.Errorf("unknown method %q (want direct, filter, or stream)", o.method)
}

type blockProcessor interface {
	ProcessBlockTo(dst, src []float64)
}

// streamBlocks feeds x through proc in chunks of blockSize samples, the way a
// real-time callback would.
func streamBlocks(proc blockProcessor, x []float64, blockSize int) []float64 {
	out := make([]float64, len(x))
	for start := 0; start < len(x); start += blockSize {
		end := min(start+blockSize, len(x))
		proc.ProcessBlockTo(out[start:end], x[start:end])
	}
	return out
}

type stage struct {
	name string
	x    []float64
}

// reportWriter is where summaries go: stdout, unless stdout carries samples.
func reportWriter(cmd *cobra.Command, o echoOptions) io.Writer {
	if o.out == "" {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// finishEcho writes the last stage as the result and reports on every stage.
func (a *app) finishEcho(cmd *cobra.Command, o echoOptions, rate int, stages ...stage) error {
	result := stages[len(stages)-1]
	if o.out != "" {
		out := a.resolve(o.out)
		if err := ensureDir(filepath.Dir(out)); err != nil {
			return err
		}
		if err := sampleio.Save(out, sampleio.Clip{Samples: result.x, SampleRate: rate}); err != nil {
			return err
		}
		a.log.Info("wrote clip", "path", out)
	} else if err := sampleio.WriteText(cmd.OutOrStdout(), result.x); err != nil {
		return err
	}

	w := reportWriter(cmd, o)

	for _, s := range stages {
		printSummary(w, s.name, s.x, rate)
	}

	if o.wavDir != "" {
		dir := a.resolve(o.wavDir)
		if err := ensureDir(dir); err != nil {
			return err
		}
		for _, s := range stages {
			path := filepath.Join(dir, s.name+".wav")
			if err := sampleio.WriteWAV(path, sampleio.Clip{Samples: s.x, SampleRate: rate}, 0); err != nil {
				return err
			}
			a.log.Info("wrote wav", "path", path)
		}
	}

	if o.plot != "" {
		plots := make([]*plot.Plot, 0, len(stages))
		for _, s := range stages {
			t := make([]float64, len(s.x))
			for i := range t {
				t[i] = float64(i) / float64(rate)
			}
			p, err := figure.Line(s.name, t, s.x)
			if err != nil {
				return err
			}
			plots = append(plots, p)
		}
		if err := a.saveGrid(o.plot, len(plots), 1, plots...); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runEchoAdd(cmd *cobra.Command, o echoOptions) error {
	p := a.echoParams(cmd, o)
	clip, err := a.loadClip(o.input)
	if err != nil {
		return err
	}
	x, err := applyEcho(o, clip.Samples, p, true)
	if err != nil {
		return err
	}
	a.log.Info("added echo", "delay", p.Delay, "alpha", p.Alpha, "method", o.method)
	return a.finishEcho(cmd, o, clip.SampleRate, stage{"original", clip.Samples}, stage{"echoed", x})
}

func (a *app) runEchoRemove(cmd *cobra.Command, o echoOptions) error {
	p := a.echoParams(cmd, o)
	clip, err := a.loadClip(o.input)
	if err != nil {
		return err
	}
	y, err := applyEcho(o, clip.Samples, p, false)
	if err != nil {
		return err
	}
	a.log.Info("removed echo", "delay", p.Delay, "alpha", p.Alpha, "method", o.method)
	return a.finishEcho(cmd, o, clip.SampleRate, stage{"echoed", clip.Samples}, stage{"recovered", y})
}

func (a *app) runEchoRoundTrip(cmd *cobra.Command, o echoOptions) error {
	p := a.echoParams(cmd, o)
	clip, err := a.loadClip(o.input)
	if err != nil {
		return err
	}
	x, err := applyEcho(o, clip.Samples, p, true)
	if err != nil {
		return err
	}
	y, err := applyEcho(o, x, p, false)
	if err != nil {
		return err
	}

	cmp, err := stats.Compare(clip.Samples, y)
	if err != nil {
		return err
	}
	a.log.Info("round trip", "delay", p.Delay, "alpha", p.Alpha, "method", o.method, "max_err", cmp.MaxAbsError)

	if err := a.finishEcho(cmd, o, clip.SampleRate,
		stage{"original", clip.Samples}, stage{"echoed", x}, stage{"recovered", y}); err != nil {
		return err
	}

	printComparison(reportWriter(cmd, o), cmp)
	return nil
}

func newEchoEstimateCmd(a *app) *cobra.Command {
	var (
		input          string
		minLag, maxLag int
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the echo delay from the autocorrelation peak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := a.loadClip(input)
			if err != nil {
				return err
			}
			defMin, defMax := echo.LagWindow(len(clip.Samples), clip.SampleRate)
			if minLag == 0 {
				minLag = defMin
			}
			if maxLag == 0 {
				maxLag = defMax
			}
			lag, strength, err := echo.EstimateDelay(clip.Samples, minLag, maxLag)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			headline.Fprintf(w, "%-10s", "estimate")
			fmt.Fprintf(w, " delay %d samples (%.3f s), r(D)/r(0) = %.3f\n",
				lag, float64(lag)/float64(clip.SampleRate), strength)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "echoed clip (.wav or text)")
	cmd.Flags().IntVar(&minLag, "min-lag", 0, "smallest lag to consider (default: 50 ms at the clip rate)")
	cmd.Flags().IntVar(&maxLag, "max-lag", 0, "largest lag to consider (default: length-1)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newEchoResponseCmd(a *app) *cobra.Command {
	var (
		o      echoOptions
		points int
	)
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the magnitude response of the echo system and its inverse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.echoParams(cmd, o)
			omegas := spectrum.Grid(points)
			fw, inv, err := echo.Response(p, omegas)
			if err != nil {
				return err
			}
			err = withOutput(cmd, a.resolve(o.out), func(w io.Writer) error {
				return writeColumns(w, omegas, false, fw, inv)
			})
			if err != nil {
				return err
			}
			if o.plot == "" {
				return nil
			}
			fwDB, invDB := make([]float64, len(fw)), make([]float64, len(inv))
			for i := range fw {
				fwDB[i], invDB[i] = core.LinearToDB(fw[i]), core.LinearToDB(inv[i])
			}
			pf, err := figure.Line("|H(ω)| echo (dB)", omegas, fwDB)
			if err != nil {
				return err
			}
			pinv, err := figure.Line("|1/H(ω)| inverse (dB)", omegas, invDB)
			if err != nil {
				return err
			}
			pf.X.Max, pinv.X.Max = math.Pi, math.Pi
			return a.saveGrid(o.plot, 2, 1, pf, pinv)
		},
	}
	addEchoParamFlags(cmd, &o)
	cmd.Flags().IntVar(&points, "points", 512, "frequency points on [0, π]")
	cmd.Flags().StringVar(&o.out, "out", "", "write \"ω<TAB>|H|<TAB>|1/H|\" rows to file instead of stdout")
	cmd.Flags().StringVar(&o.plot, "plot", "", "write the responses as a figure")
	return cmd
}
