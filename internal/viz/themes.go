package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live view by what is drawn: the phase orbit, the two
// populations, the coexistence point and the H chart. Stable, Paused and
// Unstable tint the status line and the drift bar.
type Theme struct {
	Name        string
	Orbit       lipgloss.Color
	Prey        lipgloss.Color
	Predator    lipgloss.Color
	Equilibrium lipgloss.Color
	Energy      lipgloss.Color
	Title       lipgloss.Color
	Stable      lipgloss.Color
	Paused      lipgloss.Color
	Unstable    lipgloss.Color
}

var (
	ThemeMeadow = Theme{
		Name:        "meadow",
		Orbit:       lipgloss.Color("#9ccc65"),
		Prey:        lipgloss.Color("#7cb342"), // grass green
		Predator:    lipgloss.Color("#e57373"), // fox red
		Equilibrium: lipgloss.Color("#ffd54f"),
		Energy:      lipgloss.Color("#4fc3f7"),
		Title:       lipgloss.Color("#c5e1a5"),
		Stable:      lipgloss.Color("#66bb6a"),
		Paused:      lipgloss.Color("#ffb74d"),
		Unstable:    lipgloss.Color("#ef5350"),
	}

	ThemeTundra = Theme{
		Name:        "tundra",
		Orbit:       lipgloss.Color("#b0bec5"),
		Prey:        lipgloss.Color("#eceff1"), // hare white
		Predator:    lipgloss.Color("#78909c"), // wolf grey
		Equilibrium: lipgloss.Color("#80deea"),
		Energy:      lipgloss.Color("#90caf9"),
		Title:       lipgloss.Color("#e1f5fe"),
		Stable:      lipgloss.Color("#80cbc4"),
		Paused:      lipgloss.Color("#fff59d"),
		Unstable:    lipgloss.Color("#ff8a80"),
	}

	ThemeReef = Theme{
		Name:        "reef",
		Orbit:       lipgloss.Color("#4dd0e1"),
		Prey:        lipgloss.Color("#ffab40"), // clownfish
		Predator:    lipgloss.Color("#9575cd"), // grouper
		Equilibrium: lipgloss.Color("#f06292"),
		Energy:      lipgloss.Color("#26c6da"),
		Title:       lipgloss.Color("#b2ebf2"),
		Stable:      lipgloss.Color("#69f0ae"),
		Paused:      lipgloss.Color("#ffd740"),
		Unstable:    lipgloss.Color("#ff5252"),
	}

	CurrentTheme = ThemeMeadow

	Themes = []Theme{
		ThemeMeadow,
		ThemeTundra,
		ThemeReef,
	}
)

// GetTheme returns the named theme, or meadow for an unknown name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMeadow
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one, wrapping around.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// DriftColor maps drift/tolerance onto the stability colors.
func (t Theme) DriftColor(ratio float64) lipgloss.Color {
	switch {
	case ratio > 0.8:
		return t.Unstable
	case ratio > 0.4:
		return t.Paused
	}
	return t.Stable
}
