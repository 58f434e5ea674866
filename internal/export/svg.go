package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/gravpot/internal/potential"
)

var svgPalette = []string{"#00ccff", "#ffcc00", "#00ff88", "#ff66cc", "#ff8844", "#8888ff"}

// SVG renders the curves as paths on a dark background, with dashed
// vertical lines for the horizon and photon sphere when they fall inside
// the radial window. Samples outside [yMin, yMax] break the path.
func SVG(g *potential.Grid, series []potential.Series, lm potential.Landmarks, yMin, yMax float64, width, height int) string {
	if yMax <= yMin {
		yMin, yMax = AutoYRange(series)
	}
	rangeR := g.RMax - g.RMin
	rangeY := yMax - yMin

	toX := func(r float64) float64 { return (r - g.RMin) / rangeR * float64(width) }
	toY := func(v float64) float64 { return float64(height) - (v-yMin)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, r := range []float64{lm.Horizon, lm.PhotonSphere} {
		if !potential.InWindow(r, g.RMin, g.RMax) {
			continue
		}
		x := toX(r)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#666666" stroke-width="1" stroke-dasharray="4 3"/>
`, x, x, height))
	}

	for si, s := range series {
		color := svgPalette[si%len(svgPalette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, color))

		pen := false
		for i, r := range g.Radii {
			if i >= len(s.Values) {
				break
			}
			v := s.Values[i]
			if v < yMin || v > yMax || math.IsNaN(v) || math.IsInf(v, 0) {
				pen = false
				continue
			}
			if pen {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(r), toY(v)))
			} else {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", toX(r), toY(v)))
				pen = true
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// AutoYRange pads the finite extent of the series by 5%.
func AutoYRange(series []potential.Series) (float64, float64) {
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
