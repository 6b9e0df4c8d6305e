package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/cwbudde/dsplab/figure"
	"github.com/cwbudde/dsplab/stats"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	good     = color.New(color.FgGreen)
	warn     = color.New(color.FgYellow)
)

// withOutput calls fn with the file at path, or with the command's stdout
// when path is empty or "-".
func withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(cmd.OutOrStdout())
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// resolve places a relative output path under the configured output
// directory. Empty paths and "-" stay as they are.
func (a *app) resolve(path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) || a.cfg.OutputDir == "" {
		return path
	}
	return filepath.Join(a.cfg.OutputDir, path)
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// writeColumns writes one tab-separated row per index.
func writeColumns(w io.Writer, index []float64, intIndex bool, cols ...[]float64) error {
	var buf []byte
	for i, n := range index {
		buf = buf[:0]
		if intIndex {
			buf = strconv.AppendInt(buf, int64(n), 10)
		} else {
			buf = strconv.AppendFloat(buf, n, 'g', -1, 64)
		}
		for _, c := range cols {
			buf = append(buf, '\t')
			buf = strconv.AppendFloat(buf, c[i], 'g', 17, 64)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) savePlot(p *plot.Plot, path string) error {
	path = a.resolve(path)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	w, h := figure.Pixels(a.cfg.Figure.Width), figure.Pixels(a.cfg.Figure.Height)
	if err := figure.Save(p, path, w, h); err != nil {
		return err
	}
	a.log.Info("wrote plot", "path", path)
	return nil
}

func (a *app) saveGrid(path string, rows, cols int, plots ...*plot.Plot) error {
	path = a.resolve(path)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	w := figure.Pixels(a.cfg.Figure.Width)
	h := figure.Pixels(a.cfg.Figure.Height * rows)
	if err := figure.Grid(path, rows, cols, w, h, plots...); err != nil {
		return err
	}
	a.log.Info("wrote plot", "path", path)
	return nil
}

// printSummary writes a one-line buffer summary.
func printSummary(w io.Writer, name string, x []float64, sampleRate int) {
	s := stats.Calculate(x)
	headline.Fprintf(w, "%-10s", name)
	fmt.Fprintf(w, " %d samples (%.2f s)  rms %.4f  peak %.4f (%.1f dBFS)\n",
		s.Length, float64(s.Length)/float64(sampleRate), s.RMS, s.Peak, s.PeakdB)
}

// printComparison reports how well a recovered buffer matches its reference.
func printComparison(w io.Writer, c stats.Comparison) {
	headline.Fprintf(w, "%-10s", "recovery")
	fmt.Fprintf(w, " max |err| %.3g  rms err %.3g  ", c.MaxAbsError, c.RMSError)
	if c.Exact() {
		good.Fprintln(w, "exact")
		return
	}
	style := good
	if c.SNRdB < 60 {
		style = warn
	}
	style.Fprintf(w, "SNR %.1f dB\n", c.SNRdB)
}
