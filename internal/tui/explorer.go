// Package tui provides the interactive effective-potential explorer.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gravpot/internal/config"
	"github.com/san-kum/gravpot/internal/orbit"
	"github.com/san-kum/gravpot/internal/parse"
	"github.com/san-kum/gravpot/internal/potential"
	"github.com/san-kum/gravpot/internal/render"
)

const (
	plotWidth  = 78
	plotHeight = 18
	// Fewer points than a file export; a terminal cell raster cannot
	// resolve more anyway.
	tuiPoints = 600
)

// Model holds the explorer state. Every View call recomputes the curves
// from scratch; nothing is cached between events.
type Model struct {
	params   potential.Params
	mode     string
	values   []float64
	selected int

	rMin, rMax float64
	newtonian  bool
	autoY      bool
	yMin, yMax float64

	warnings []string
}

// NewModel seeds the explorer from a config.
func NewModel(cfg *config.Config) (Model, error) {
	p, err := potential.NewParams(cfg.GM)
	if err != nil {
		return Model{}, err
	}

	values, warnings, err := parse.Require(cfg.Values)
	if err != nil {
		return Model{}, err
	}

	return Model{
		params:    p,
		mode:      cfg.Mode,
		values:    values,
		rMin:      cfg.RMin,
		rMax:      cfg.RMax,
		newtonian: cfg.Newtonian,
		autoY:     cfg.AutoY,
		yMin:      cfg.YMin,
		yMax:      cfg.YMax,
		warnings:  warnings,
	}, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key events. Parameter edits rebuild nothing in place;
// View derives everything fresh.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if len(m.values) > 0 {
			m.selected = (m.selected + 1) % len(m.values)
		}
	case "up", "k":
		m.values[m.selected] *= 1.05
	case "down", "j":
		m.values[m.selected] *= 0.95
	case "left", "h":
		m.pan(-0.1)
	case "right", "l":
		m.pan(0.1)
	case "+", "=":
		m.zoom(0.8)
	case "-", "_":
		m.zoom(1.25)
	case "n":
		m.newtonian = !m.newtonian
	case "a":
		m.autoY = !m.autoY
	case "m":
		m.switchMode()
	case "r":
		m.resetWindow()
	}
	return m, nil
}

func (m *Model) pan(frac float64) {
	shift := (m.rMax - m.rMin) * frac
	if m.rMin+shift <= 0 {
		shift = -m.rMin / 2
	}
	m.rMin += shift
	m.rMax += shift
}

func (m *Model) zoom(factor float64) {
	span := (m.rMax - m.rMin) * factor
	center := (m.rMax + m.rMin) / 2
	lo := center - span/2
	if lo <= 0 {
		lo = m.rMin / 2
	}
	m.rMin = lo
	m.rMax = lo + span
}

func (m *Model) switchMode() {
	if m.mode == config.ModePhoton {
		m.mode = config.ModeMassive
	} else {
		m.mode = config.ModePhoton
	}
	cfg := config.DefaultConfig(m.mode)
	m.values, _ = parse.Numbers(cfg.Values)
	m.selected = 0
	m.rMin, m.rMax = cfg.RMin, cfg.RMax
	m.yMin, m.yMax = cfg.YMin, cfg.YMax
}

func (m *Model) resetWindow() {
	cfg := config.DefaultConfig(m.mode)
	m.rMin, m.rMax = cfg.RMin, cfg.RMax
	m.yMin, m.yMax = cfg.YMin, cfg.YMax
}

func (m Model) View() string {
	g, err := potential.NewGrid(m.rMin, m.rMax, tuiPoints)
	if err != nil {
		return render.WarnStyle.Render(fmt.Sprintf("bad radial window: %v", err)) + "\n"
	}

	series := m.sampleSeries(g)

	yMin, yMax := m.yMin, m.yMax
	if m.autoY {
		yMin, yMax = render.AutoRange(series)
	}

	plot := render.NewPlot(g, yMin, yMax, plotWidth, plotHeight)
	for _, s := range series {
		plot.Curve(g.Radii, s.Values)
	}

	lm := m.params.Landmarks()
	plot.Marker(lm.Horizon)

	var annotations []string
	if m.mode == config.ModePhoton {
		plot.Marker(lm.PhotonSphere)
		plot.Point(lm.PhotonSphere, lm.PhotonPotentialMax)
		for _, b := range m.values {
			c := orbit.Classify(b, m.params)
			plot.Level(c.Energy)
			annotations = append(annotations, fmt.Sprintf("b=%.4g  1/b²=%.5f  %s",
				c.B, c.Energy, render.RegimeLabel(c.Regime)))
		}
	} else {
		for _, l := range m.values {
			for _, e := range orbit.FindExtrema(m.params, l, m.rMin, m.rMax) {
				plot.Point(e.R, e.V)
				annotations = append(annotations, fmt.Sprintf("l=%.4g  %s at r=%.3f  V=%.5f",
					l, e.Kind, e.R, e.V))
			}
		}
		if len(annotations) == 0 {
			annotations = append(annotations, fmt.Sprintf("no extrema in window (l_crit=%.3f)",
				orbit.CriticalAngularMomentum(m.params)))
		}
	}

	var b strings.Builder
	b.WriteString(render.TitleStyle.Render(m.title()) + "\n")
	b.WriteString(plot.Render())
	b.WriteString(m.statusLine())
	for _, a := range annotations {
		b.WriteString("  " + a + "\n")
	}
	for _, w := range m.warnings {
		b.WriteString(render.WarnStyle.Render("  ! "+w) + "\n")
	}
	b.WriteString(render.HelpStyle.Render(
		"tab select · ↑/↓ adjust · ←/→ pan · +/- zoom · n newton · a auto-y · m mode · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) title() string {
	if m.mode == config.ModePhoton {
		return "schwarzschild photon effective potential"
	}
	return "schwarzschild effective potential"
}

func (m Model) statusLine() string {
	var parts []string
	for i, v := range m.values {
		label := fmt.Sprintf("%.4g", v)
		if i == m.selected {
			label = render.SelectedStyle.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	name := "l"
	if m.mode == config.ModePhoton {
		name = "b"
	}
	overlay := "off"
	if m.newtonian {
		overlay = "on"
	}
	return fmt.Sprintf("  %s = %s   GM=%.3g   r∈[%.3g, %.3g]   newton: %s\n",
		name, strings.Join(parts, ", "), m.params.GM, m.rMin, m.rMax, overlay)
}

func (m Model) sampleSeries(g *potential.Grid) []potential.Series {
	var series []potential.Series
	if m.mode == config.ModePhoton {
		series = append(series, potential.NewSeries("schwarzschild", g, m.params.EffectivePhoton))
		if m.newtonian {
			series = append(series, potential.NewSeries("newton", g, potential.NewtonianPhoton))
		}
		return series
	}
	for _, l := range m.values {
		l := l
		series = append(series, potential.NewSeries(
			fmt.Sprintf("l=%.4g schwarzschild", l), g,
			func(r float64) float64 { return m.params.EffectiveMassive(r, l) }))
		if m.newtonian {
			series = append(series, potential.NewSeries(
				fmt.Sprintf("l=%.4g newton", l), g,
				func(r float64) float64 { return m.params.NewtonianMassive(r, l) }))
		}
	}
	return series
}
