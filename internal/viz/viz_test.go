package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lvsim/internal/lotka"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected top-left dot, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected bottom-right dot, got %U", c.Grid[0][1])
	}

	c.Clear()
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("canvas not cleared")
	}
}

func TestViewport(t *testing.T) {
	var v Viewport
	v.Fit(10, 20)
	v.Fit(5, 30)
	if v.MinX > 5 || v.MaxX < 10 || v.MinY > 20 || v.MaxY < 30 {
		t.Errorf("viewport %+v does not contain the points", v)
	}
	if v.MinX < 0 || v.MinY < 0 {
		t.Errorf("viewport %+v extends below zero", v)
	}

	c := NewCanvas(10, 5)
	x, y := v.Project(c, v.MinX, v.MinY)
	if x != 0 || y != 19 {
		t.Errorf("bottom-left projected to (%d, %d)", x, y)
	}
}

func TestPolyline(t *testing.T) {
	c := NewCanvas(10, 5)
	v := Viewport{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	c.Polyline(v, []float64{0, 1}, []float64{0, 1})
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 }) {
		t.Error("nothing drawn")
	}
}

func tickN(m Model, n int) Model {
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	return m
}

func TestModelStepsPerTick(t *testing.T) {
	m, err := NewModel(lotka.Params{Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 9, Y0: 20}, "")
	if err != nil {
		t.Fatal(err)
	}

	m = tickN(m, 3)
	if got := m.Simulation().Steps(); got != 4 {
		t.Errorf("expected 4 states after 3 ticks, got %d", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = tickN(next.(Model), 3)
	if got := m.Simulation().Steps(); got != 4 {
		t.Errorf("paused model advanced to %d states", got)
	}

	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show PAUSED")
	}
}

func TestModelStopsWhenUnstable(t *testing.T) {
	m, err := NewModel(lotka.Params{Dt: 0.01, A: 1, B: 1, C: 1, D: 1, X0: 50, Y0: 99}, "")
	if err != nil {
		t.Fatal(err)
	}

	m = tickN(m, 5)
	if got := m.Simulation().Steps(); got != 2 {
		t.Errorf("expected 2 states, got %d", got)
	}
	if !strings.Contains(m.View(), "UNSTABLE at step 2") {
		t.Errorf("view should report instability:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	if m.Simulation().Steps() != 1 || m.Simulation().Unstable() {
		t.Error("restart should start a fresh simulation")
	}
}

func TestModelSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.svg")
	m, err := NewModel(lotka.Params{Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 9, Y0: 20}, path)
	if err != nil {
		t.Fatal(err)
	}
	m = tickN(m, 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(Model)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot not written: %v (%s)", err, m.message)
	}
}

func TestDriftBar(t *testing.T) {
	bar := DriftBar(0.5, 1, 10)
	if strings.Count(bar, "█") != 5 {
		t.Errorf("expected 5 filled cells in %q", bar)
	}
}

func TestThemeKeyCycles(t *testing.T) {
	t.Cleanup(func() { SetTheme(ThemeMeadow.Name) })
	SetTheme(ThemeMeadow.Name)

	m, err := NewModel(lotka.Params{Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 9, Y0: 20}, "")
	if err != nil {
		t.Fatal(err)
	}

	var seen []string
	for range Themes {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
		m = next.(Model)
		seen = append(seen, CurrentTheme.Name)
	}
	want := []string{"tundra", "reef", "meadow"}
	if strings.Join(seen, ",") != strings.Join(want, ",") {
		t.Errorf("theme order = %v, want %v", seen, want)
	}
}

func TestThemeColors(t *testing.T) {
	if GetTheme("unknown").Name != ThemeMeadow.Name {
		t.Error("unknown theme should fall back to meadow")
	}

	for _, th := range Themes {
		if th.Prey == th.Predator {
			t.Errorf("%s: prey and predator share a color", th.Name)
		}
		tests := []struct {
			ratio float64
			want  string
		}{
			{0.1, string(th.Stable)},
			{0.5, string(th.Paused)},
			{0.9, string(th.Unstable)},
		}
		for _, tt := range tests {
			if got := string(th.DriftColor(tt.ratio)); got != tt.want {
				t.Errorf("%s: DriftColor(%g) = %s, want %s", th.Name, tt.ratio, got, tt.want)
			}
		}
	}
}

func TestSnapshotUsesOrbitColor(t *testing.T) {
	t.Cleanup(func() { SetTheme(ThemeMeadow.Name) })
	SetTheme(ThemeReef.Name)

	path := filepath.Join(t.TempDir(), "orbit.svg")
	m, err := NewModel(lotka.Params{Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 9, Y0: 20}, path)
	if err != nil {
		t.Fatal(err)
	}
	m = tickN(m, 2)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), string(ThemeReef.Orbit)) {
		t.Errorf("svg does not use the reef orbit color %s", ThemeReef.Orbit)
	}
}
