package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Title).Bold(true).MarginBottom(1)
}

func orbitStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Orbit)
}

func graphStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Energy).Padding(1, 0)
}

func preyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Prey)
}

func predatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Predator)
}

func equilibriumStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Equilibrium)
}

func statusStyle(running, unstable bool) lipgloss.Style {
	c := CurrentTheme.Stable
	switch {
	case unstable:
		c = CurrentTheme.Unstable
	case !running:
		c = CurrentTheme.Paused
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

// DriftBar renders drift/tolerance as a bar that fills up as the run
// approaches the instability threshold.
func DriftBar(drift, tolerance float64, width int) string {
	ratio := 1.0
	if tolerance > 0 {
		ratio = drift / tolerance
	}
	filled := int(ratio * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return lipgloss.NewStyle().Foreground(CurrentTheme.DriftColor(ratio)).Render(bar)
}
