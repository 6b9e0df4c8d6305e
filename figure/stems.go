package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Stems implements plot.Plotter for discrete sequences.
type Stems struct {
	plotter.XYs

	// LineStyle draws the stem from the baseline to each sample.
	draw.LineStyle
	// GlyphStyle marks each sample.
	GlyphStyle draw.GlyphStyle
	// Baseline is the y value the stems start from.
	Baseline float64
}

// NewStems copies xys into a stem plotter with default styles.
func NewStems(xys plotter.XYer) (*Stems, error) {
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return nil, err
	}
	glyph := plotter.DefaultGlyphStyle
	glyph.Shape = draw.CircleGlyph{}
	glyph.Radius = vg.Points(2.5)
	glyph.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line := plotter.DefaultLineStyle
	line.Color = glyph.Color
	return &Stems{XYs: data, LineStyle: line, GlyphStyle: glyph}, nil
}

// Plot implements plot.Plotter.
func (s *Stems) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	base := trY(s.Baseline)
	for _, pt := range s.XYs {
		x, y := trX(pt.X), trY(pt.Y)
		c.StrokeLine2(s.LineStyle, x, base, x, y)
		c.DrawGlyph(s.GlyphStyle, vg.Point{X: x, Y: y})
	}
}

// DataRange implements plot.DataRanger. The y range always covers the
// baseline.
func (s *Stems) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = plotter.XYRange(s.XYs)
	return xmin, xmax, min(ymin, s.Baseline), max(ymax, s.Baseline)
}

// GlyphBoxes implements plot.GlyphBoxer.
func (s *Stems) GlyphBoxes(p *plot.Plot) []plot.GlyphBox {
	r := s.GlyphStyle.Radius
	boxes := make([]plot.GlyphBox, len(s.XYs))
	for i, pt := range s.XYs {
		boxes[i].X = p.X.Norm(pt.X)
		boxes[i].Y = p.Y.Norm(pt.Y)
		boxes[i].Rectangle = vg.Rectangle{
			Min: vg.Point{X: -r, Y: -r},
			Max: vg.Point{X: r, Y: r},
		}
	}
	return boxes
}
