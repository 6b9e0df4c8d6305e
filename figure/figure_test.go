package figure

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/dsplab/dsp/seq"
)

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestStemsDataRangeIncludesBaseline(t *testing.T) {
	s, err := NewStems(plotter.XYs{{X: -2, Y: 1}, {X: 3, Y: 4}})
	if err != nil {
		t.Fatalf("NewStems() error = %v", err)
	}
	xmin, xmax, ymin, ymax := s.DataRange()
	if xmin != -2 || xmax != 3 || ymin != 0 || ymax != 4 {
		t.Fatalf("DataRange() = %v %v %v %v", xmin, xmax, ymin, ymax)
	}

	s.Baseline = 5
	if _, _, ymin, ymax = s.DataRange(); ymin != 1 || ymax != 5 {
		t.Fatalf("baseline range = %v..%v", ymin, ymax)
	}
}

func TestStemPlotAxes(t *testing.T) {
	x, err := seq.Impulse(0, seq.Range{Start: -5, End: 5})
	if err != nil {
		t.Fatal(err)
	}
	p, err := Stem("δ[n]", x)
	if err != nil {
		t.Fatalf("Stem() error = %v", err)
	}
	if p.X.Min != -5.5 || p.X.Max != 5.5 {
		t.Fatalf("x axis = [%v, %v]", p.X.Min, p.X.Max)
	}
	if p.Title.Text != "δ[n]" {
		t.Fatalf("title = %q", p.Title.Text)
	}

	if _, err := Stem("empty", seq.Sequence{}); !errors.Is(err, ErrEmptyData) {
		t.Fatalf("err = %v, want ErrEmptyData", err)
	}
}

func TestSaveFormats(t *testing.T) {
	x, _ := seq.Step(0, seq.Range{Start: -3, End: 6})
	p, err := Stem("u[n]", x)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, name := range []string{"u.png", "u.svg", "u.pdf"} {
		path := filepath.Join(dir, name)
		if err := Save(p, path, Pixels(400), Pixels(200)); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
		requireNonEmptyFile(t, path)
	}

	if err := Save(p, filepath.Join(dir, "u.bmp"), Pixels(400), Pixels(200)); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLine(t *testing.T) {
	tt := make([]float64, 100)
	x := make([]float64, 100)
	for i := range tt {
		tt[i] = float64(i) / 100
		x[i] = math.Sin(2 * math.Pi * tt[i])
	}
	p, err := Line("sin", tt, x)
	if err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "sin.png")
	if err := Save(p, path, Pixels(320), Pixels(240)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	requireNonEmptyFile(t, path)

	if _, err := Line("bad", tt[:3], x); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Line("empty", nil, nil); !errors.Is(err, ErrEmptyData) {
		t.Fatalf("err = %v, want ErrEmptyData", err)
	}
}

func TestGrid(t *testing.T) {
	r := seq.Range{Start: 0, End: 8}
	a, _ := seq.RealExp(0.8, r)
	b, _ := seq.Sinusoid(1, math.Pi/4, 0, r)
	pa, err := Stem("0.8ⁿ", a)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := Stem("cos(πn/4)", b)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "grid.png")
	if err := Grid(path, 2, 2, Pixels(600), Pixels(400), pa, pb, nil, pa); err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	requireNonEmptyFile(t, path)

	if err := Grid(path, 0, 1, Pixels(100), Pixels(100), pa); !errors.Is(err, ErrLayout) {
		t.Fatalf("err = %v, want ErrLayout", err)
	}
	if err := Grid(path, 1, 1, Pixels(100), Pixels(100), pa, pb); !errors.Is(err, ErrLayout) {
		t.Fatalf("err = %v, want ErrLayout", err)
	}
	if err := Grid(filepath.Join(t.TempDir(), "grid.bmp"), 1, 1, Pixels(100), Pixels(100), pa); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
