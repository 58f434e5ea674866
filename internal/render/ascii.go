package render

import "github.com/guptarohit/asciigraph"

// Ascii renders one series as an asciigraph line chart.
func Ascii(values []float64, caption string, width, height int) string {
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// AsciiMany overlays several series (relativistic plus Newtonian, usually)
// on one chart.
func AsciiMany(series [][]float64, caption string, width, height int) string {
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Goldenrod, asciigraph.Green, asciigraph.Red),
	)
}
