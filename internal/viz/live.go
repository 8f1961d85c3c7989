package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/export"
	"github.com/san-kum/lvsim/internal/lotka"
)

const (
	width         = 60
	height        = 20
	chartCapacity = 300
	maxPerTick    = 1000
	// orbitWindow bounds how many recent states are redrawn per frame.
	orbitWindow = 4000
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model owns one simulation and renders it every tick.
type Model struct {
	params   lotka.Params
	sim      *lotka.Simulation
	canvas   *Canvas
	view     Viewport
	energy   []float64
	running  bool
	perTick  int
	showHelp bool
	snapshot string
	message  string
}

// NewModel validates p and starts paused=false with one step per tick.
func NewModel(p lotka.Params, snapshotPath string) (Model, error) {
	sim, err := lotka.New(p)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		params:   p,
		sim:      sim,
		canvas:   NewCanvas(width, height),
		running:  true,
		perTick:  1,
		snapshot: snapshotPath,
		energy:   make([]float64, 0, chartCapacity),
	}
	m.fitInitial()
	return m, nil
}

func (m *Model) fitInitial() {
	m.view = Viewport{}
	ex, ey := analysis.Equilibrium(m.params)
	m.view.Fit(ex, ey)
	s := m.sim.Last()
	m.view.Fit(s.X, s.Y)
	m.recordEnergy(s.H)
}

func (m Model) Simulation() *lotka.Simulation { return m.sim }

func (m Model) Init() tea.Cmd { return tick() }

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.restart()
		case "+", "=":
			m.perTick = min(maxPerTick, m.perTick*2)
		case "-", "_":
			m.perTick = max(1, m.perTick/2)
		case "s":
			m.saveSnapshot()
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			NextTheme()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// step advances by perTick steps unless the run is already unstable.
func (m *Model) step() {
	for i := 0; i < m.perTick; i++ {
		if !m.sim.Advance() {
			m.running = false
			break
		}
	}
	s := m.sim.Last()
	m.view.Fit(s.X, s.Y)
	m.recordEnergy(s.H)
}

func (m *Model) recordEnergy(h float64) {
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return
	}
	m.energy = append(m.energy, h)
	if len(m.energy) > chartCapacity {
		m.energy = m.energy[1:]
	}
}

func (m *Model) restart() {
	sim, err := lotka.New(m.params)
	if err != nil {
		m.message = err.Error()
		return
	}
	m.sim = sim
	m.energy = m.energy[:0]
	m.running = true
	m.message = ""
	m.fitInitial()
}

func (m *Model) saveSnapshot() {
	if m.snapshot == "" {
		m.message = "no snapshot path"
		return
	}
	s := analysis.FromSimulation(m.sim)
	opts := export.DefaultSVGOptions()
	ex, ey := analysis.Equilibrium(m.params)
	opts.Marker = &analysis.Point{X: ex, Y: ey}
	opts.Stroke = string(CurrentTheme.Orbit)
	if err := export.WriteSVG(m.snapshot, analysis.NewPhasePortrait(s.X, s.Y, 1).Points, opts); err != nil {
		m.message = err.Error()
		return
	}
	m.message = "saved " + m.snapshot
}

func (m *Model) draw() {
	m.canvas.Clear()
	hist := m.sim.History()
	if len(hist) > orbitWindow {
		hist = hist[len(hist)-orbitWindow:]
	}
	xs := make([]float64, len(hist))
	ys := make([]float64, len(hist))
	for i, s := range hist {
		xs[i], ys[i] = s.X, s.Y
	}
	m.canvas.Polyline(m.view, xs, ys)
}

func (m Model) status() string {
	if m.sim.Unstable() {
		u, _ := m.sim.Status().(lotka.Unstable)
		return fmt.Sprintf("UNSTABLE at step %d (drift %.3g)", u.Step, u.Drift)
	}
	if !m.running {
		return "PAUSED"
	}
	return fmt.Sprintf("RUNNING x%d", m.perTick)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(orbitStyle().Render(m.canvas.String()))

	last := m.sim.Last()
	steps := m.sim.Steps()
	tol := lotka.Tolerance(m.params.Dt)

	var s strings.Builder
	s.WriteString(headerStyle().Render("LOTKA-VOLTERRA") + "\n")
	s.WriteString(statusStyle(m.running, m.sim.Unstable()).Render(m.status()) + "\n\n")
	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("H"))
		s.WriteString(graphStyle().Render(chart) + "\n")
	}
	row := func(label, value string, style lipgloss.Style) {
		s.WriteString(labelStyle.Render(label) + style.Render(value) + "\n")
	}
	ex, ey := analysis.Equilibrium(m.params)
	row("Time", fmt.Sprintf("%.2f", m.sim.Time(steps-1)), valueStyle)
	row("Steps", fmt.Sprintf("%d", steps), valueStyle)
	row("Prey", fmt.Sprintf("%.4f", last.X), preyStyle())
	row("Predator", fmt.Sprintf("%.4f", last.Y), predatorStyle())
	row("Coexist", fmt.Sprintf("(%.4g, %.4g)", ex, ey), equilibriumStyle())
	row("H", fmt.Sprintf("%.6g", last.H), valueStyle)
	row("Max drift", fmt.Sprintf("%.3g / %.3g", m.sim.MaxRelativeDrift(), tol), valueStyle)
	s.WriteString(labelStyle.Render("") + DriftBar(m.sim.MaxRelativeDrift(), tol, 20) + "\n")
	if m.message != "" {
		s.WriteString("\n" + valueStyle.Render(m.message) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Restart Q:Quit\n+/-:Speed T:Theme S:SVG ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart                  ║
║  +/-      - Double/halve speed       ║
║  S        - Save orbit as SVG        ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
