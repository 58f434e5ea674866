package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravpot/internal/orbit"
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	capturedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	escapesStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
)

// RegimeLabel renders a photon regime in its color.
func RegimeLabel(r orbit.Regime) string {
	switch r {
	case orbit.Captured:
		return capturedStyle.Render(r.String())
	case orbit.Escapes:
		return escapesStyle.Render(r.String())
	case orbit.Critical:
		return criticalStyle.Render(r.String())
	default:
		return r.String()
	}
}
