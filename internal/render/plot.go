package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/gravpot/internal/potential"
)

// Plot projects world coordinates (radius, potential) onto a Canvas. The
// x-axis spans the grid's radial window, the y-axis the given value range.
type Plot struct {
	canvas     *Canvas
	rMin, rMax float64
	yMin, yMax float64
}

// NewPlot builds a plot surface of w x h terminal cells over the grid's
// radial window and the value range [yMin, yMax].
func NewPlot(g *potential.Grid, yMin, yMax float64, w, h int) *Plot {
	if yMax <= yMin {
		yMax = yMin + 1
	}
	return &Plot{
		canvas: NewCanvas(w, h),
		rMin:   g.RMin,
		rMax:   g.RMax,
		yMin:   yMin,
		yMax:   yMax,
	}
}

func (p *Plot) project(r, v float64) (int, int) {
	spanX := float64(p.canvas.Width*2 - 1)
	spanY := float64(p.canvas.Height*4 - 1)
	x := int(math.Round(spanX * (r - p.rMin) / (p.rMax - p.rMin)))
	y := int(math.Round(spanY * (v - p.yMin) / (p.yMax - p.yMin)))
	return x, p.canvas.Height*4 - 1 - y
}

// Curve draws one sampled series, connecting consecutive in-range points.
// Points outside the y-window break the line rather than clamp, so steep
// divergences near small r do not smear across the canvas.
func (p *Plot) Curve(radii, values []float64) {
	prevOK := false
	var px, py int
	for i := range radii {
		if i >= len(values) {
			break
		}
		v := values[i]
		if v < p.yMin || v > p.yMax || math.IsNaN(v) || math.IsInf(v, 0) {
			prevOK = false
			continue
		}
		x, y := p.project(radii[i], v)
		if prevOK {
			p.canvas.Line(px, py, x, y)
		} else {
			p.canvas.Set(x, y)
		}
		px, py = x, y
		prevOK = true
	}
}

// Marker draws a dashed vertical line at radius r when it falls inside the
// radial window.
func (p *Plot) Marker(r float64) {
	if !potential.InWindow(r, p.rMin, p.rMax) {
		return
	}
	x, _ := p.project(r, p.yMin)
	p.canvas.VLine(x)
}

// Level draws a dashed horizontal line at potential value v when it falls
// inside the y-window. Photon energy levels 1/b² render this way.
func (p *Plot) Level(v float64) {
	if v < p.yMin || v > p.yMax {
		return
	}
	_, y := p.project(p.rMin, v)
	p.canvas.HLine(y)
}

// Point marks a single (r, v) location with a dot cluster, used for extrema.
func (p *Plot) Point(r, v float64) {
	if !potential.InWindow(r, p.rMin, p.rMax) || v < p.yMin || v > p.yMax {
		return
	}
	x, y := p.project(r, v)
	p.canvas.Dot(x, y)
}

// Render returns the framed plot with axis extents in the margins.
func (p *Plot) Render() string {
	var b strings.Builder

	top := fmt.Sprintf("%10.4f ┌%s┐\n", p.yMax, strings.Repeat("─", p.canvas.Width))
	b.WriteString(top)

	lines := strings.Split(strings.TrimRight(p.canvas.String(), "\n"), "\n")
	for _, line := range lines {
		b.WriteString("           │" + line + "│\n")
	}

	b.WriteString(fmt.Sprintf("%10.4f └%s┘\n", p.yMin, strings.Repeat("─", p.canvas.Width)))
	b.WriteString(fmt.Sprintf("            %-12.4g%s%12.4g\n",
		p.rMin, strings.Repeat(" ", maxInt(0, p.canvas.Width-24)), p.rMax))
	return b.String()
}

// AutoRange finds a padded y-window covering every finite sample.
func AutoRange(series []potential.Series) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return -1, 1
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
