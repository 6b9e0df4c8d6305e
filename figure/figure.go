package figure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/cwbudde/dsplab/dsp/seq"
)

// screenDPI is the resolution gonum/plot rasterises at by default.
const screenDPI = 96

var (
	// ErrEmptyData is returned when there is nothing to plot.
	ErrEmptyData = errors.New("figure: empty data")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("figure: length mismatch")
	// ErrLayout is returned for an invalid grid layout.
	ErrLayout = errors.New("figure: invalid layout")
)

// Pixels converts a pixel count to a plot length for raster output.
func Pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / screenDPI
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// Stem returns a stem plot of s against its sample index n.
func Stem(title string, s seq.Sequence) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyData
	}
	xys := make(plotter.XYs, s.Len())
	for i, v := range s.X {
		xys[i].X = float64(s.Start + i)
		xys[i].Y = v
	}
	stems, err := NewStems(xys)
	if err != nil {
		return nil, fmt.Errorf("figure: %w", err)
	}

	p := newPlot(title, "n", "x[n]")
	p.Add(stems)
	// Leave half a sample of room so end stems do not sit on the frame.
	p.X.Min = float64(s.Start) - 0.5
	p.X.Max = float64(s.End()) + 0.5
	return p, nil
}

// Line returns a line plot of x against t.
func Line(title string, t, x []float64) (*plot.Plot, error) {
	if len(x) == 0 {
		return nil, ErrEmptyData
	}
	if len(t) != len(x) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(t), len(x))
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = t[i]
		xys[i].Y = x[i]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("figure: %w", err)
	}

	p := newPlot(title, "t", "x(t)")
	p.Add(l)
	return p, nil
}

func format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff":
		return ext, nil
	}
	return "", fmt.Errorf("figure: unsupported format %q", filepath.Ext(path))
}

// Save writes p to path at the given size.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if _, err := format(path); err != nil {
		return err
	}
	return p.Save(width, height, path)
}

// Grid draws plots in a rows×cols layout with aligned axes and writes the
// figure to path. plots is row-major; nil entries leave a tile empty.
func Grid(path string, rows, cols int, width, height vg.Length, plots ...*plot.Plot) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrLayout, rows, cols)
	}
	if len(plots) > rows*cols {
		return fmt.Errorf("%w: %d plots do not fit %dx%d", ErrLayout, len(plots), rows, cols)
	}
	ext, err := format(path)
	if err != nil {
		return err
	}

	table := make([][]*plot.Plot, rows)
	for j := range table {
		table[j] = make([]*plot.Plot, cols)
		for i := range table[j] {
			if k := j*cols + i; k < len(plots) {
				table[j][i] = plots[k]
			}
		}
	}

	img, err := draw.NewFormattedCanvas(width, height, ext)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Points(2), PadBottom: vg.Points(2),
		PadLeft: vg.Points(2), PadRight: vg.Points(2),
	}
	canvases := plot.Align(table, tiles, dc)
	for j := range table {
		for i, p := range table[j] {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("figure: write %s: %w", path, err)
	}
	return f.Close()
}
