package lotka

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/integrators"
	"github.com/san-kum/lvsim/internal/physics"
)

// DurationTolerance bounds how far T/dt may be from a whole step count.
const DurationTolerance = 1e-8

// State is one stored point of the trajectory: prey density X, predator
// density Y and the conserved quantity H (+Inf once either is extinct).
type State struct {
	X float64
	Y float64
	H float64
}

// Simulation integrates one predator-prey run with a fixed step.
type Simulation struct {
	params     Params
	dyn        *physics.LotkaVolterra
	integrator dynamo.Integrator
	monitor    *Monitor
	states     []State
}

// New validates p and stores the initial condition at index 0.
func New(p Params) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dyn := physics.NewLotkaVolterra(p.A, p.B, p.C, p.D)
	s := &Simulation{
		params:     p,
		dyn:        dyn,
		integrator: integrators.NewEuler(),
		monitor:    NewMonitor(p.Dt),
		states:     make([]State, 0, 1024),
	}
	s.states = append(s.states, State{
		X: p.X0,
		Y: p.Y0,
		H: physics.Hamiltonian(dyn.Coefficients, p.X0, p.Y0),
	})
	return s, nil
}

func (s *Simulation) Params() Params { return s.params }
func (s *Simulation) Dt() float64    { return s.params.Dt }

// Steps is the number of stored states, always at least 1.
func (s *Simulation) Steps() int { return len(s.states) }

func (s *Simulation) StateAt(i int) (State, error) {
	if i < 0 || i >= len(s.states) {
		return State{}, &dynamo.IndexError{Index: i, Len: len(s.states)}
	}
	return s.states[i], nil
}

func (s *Simulation) Last() State { return s.states[len(s.states)-1] }

// History returns a copy of every stored state in index order.
func (s *Simulation) History() []State {
	out := make([]State, len(s.states))
	copy(out, s.states)
	return out
}

// Time is the simulated time of history index i.
func (s *Simulation) Time(i int) float64 { return float64(i) * s.params.Dt }

func (s *Simulation) LastEnergy() float64 { return s.Last().H }

func (s *Simulation) Unstable() bool        { return s.monitor.Unstable() }
func (s *Simulation) Status() Status        { return s.monitor.Status() }
func (s *Simulation) TriggerDrift() float64 { return s.monitor.TriggerDrift() }

// MaxRelativeDrift is the largest drift of H between consecutive states seen
// so far, including the one that made the run unstable.
func (s *Simulation) MaxRelativeDrift() float64 { return s.monitor.MaxDrift() }

// next computes the candidate successor of the last stored state.
func (s *Simulation) next() State {
	c := s.dyn.Coefficients
	last := s.Last()

	xr, yr := physics.ToRelative(c, last.X, last.Y)
	rel := s.integrator.Step(s.dyn, dynamo.State{xr, yr}, s.Time(len(s.states)-1), s.params.Dt)
	rel.Floor(0)

	x, y := physics.ToAbsolute(c, rel[0], rel[1])
	return State{X: x, Y: y, H: physics.Hamiltonian(c, x, y)}
}

// Advance appends one state. It returns false, leaving the history
// unchanged, when the step is rejected or the run is already unstable.
func (s *Simulation) Advance() bool {
	if s.monitor.Unstable() {
		return false
	}

	candidate := s.next()
	if !s.monitor.Check(len(s.states), s.Last().H, candidate.H) {
		return false
	}

	s.states = append(s.states, candidate)
	return true
}

// AdvanceSteps calls Advance n times or until the first failure. It reports
// whether all n steps were appended.
func (s *Simulation) AdvanceSteps(n int) bool {
	for i := 0; i < n; i++ {
		if !s.Advance() {
			return false
		}
	}
	return true
}

// AdvanceTime advances by T, counted from the current state. T must be a
// non-negative whole multiple of dt.
func (s *Simulation) AdvanceTime(T float64) (bool, error) {
	n, err := StepsFor(T, s.params.Dt)
	if err != nil {
		return false, err
	}
	return s.AdvanceSteps(n), nil
}

// StepsFor converts a duration into a step count. Durations whose count
// does not fit in an int are rejected.
func StepsFor(T, dt float64) (int, error) {
	if T < 0 || math.IsNaN(T) || math.IsInf(T, 0) {
		return 0, &dynamo.DurationError{T: T, Dt: dt}
	}

	n := T / dt
	r := math.Round(n)
	if math.Abs(n-r) > DurationTolerance || r >= float64(math.MaxInt) {
		return 0, &dynamo.DurationError{T: T, Dt: dt}
	}
	return int(r), nil
}
