package render

import (
	"strings"
	"testing"

	"github.com/san-kum/gravpot/internal/potential"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	if c.At(0, 0) != 0x2800 {
		t.Errorf("expected empty braille cell, got %x", c.At(0, 0))
	}

	c.Set(0, 0)
	if c.At(0, 0) == 0x2800 {
		t.Error("expected cell to change after Set")
	}

	// Out-of-range coordinates must be ignored, not panic.
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(1000, 1000)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(3, 3)
	c.Clear()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if c.At(col, row) != 0x2800 {
				t.Fatalf("cell (%d,%d) not cleared", col, row)
			}
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Line(0, 0, 19, 19)

	if c.At(0, 0) == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.At(9, 4) == 0x2800 {
		t.Error("line end not drawn")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(6, 3)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
}

func TestPlotCurve(t *testing.T) {
	g, err := potential.NewGrid(1, 10, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := potential.Params{GM: 1.0}
	values := potential.Sample(g, p.EffectivePhoton)

	plot := NewPlot(g, 0, 0.07, 60, 15)
	plot.Curve(g.Radii, values)
	plot.Marker(2.0)
	plot.Marker(3.0)
	plot.Marker(50.0) // outside window, no-op
	plot.Level(1.0 / 36.0)
	plot.Point(3.0, 1.0/27.0)

	out := plot.Render()
	if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
		t.Error("expected frame in rendered plot")
	}
	if !strings.Contains(out, "0.0700") {
		t.Error("expected y-max label in rendered plot")
	}
}

func TestAutoRange(t *testing.T) {
	series := []potential.Series{
		{Name: "a", Values: []float64{-1, 0, 2}},
		{Name: "b", Values: []float64{5}},
	}
	lo, hi := AutoRange(series)
	if lo >= -1 || hi <= 5 {
		t.Errorf("expected padded range around [-1, 5], got [%f, %f]", lo, hi)
	}

	lo, hi = AutoRange(nil)
	if lo >= hi {
		t.Errorf("expected usable fallback range, got [%f, %f]", lo, hi)
	}
}
