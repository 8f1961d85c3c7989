package lotka

import "math"

// DriftFactor scales the step size into the per-step relative drift budget.
const DriftFactor = 50.0

// Tolerance is the largest relative change of H accepted between two
// consecutive states.
func Tolerance(dt float64) float64 {
	return DriftFactor * dt
}

// Status is either Stable or Unstable.
type Status interface {
	isStatus()
}

// Stable is the initial status of every run.
type Stable struct{}

// Unstable is terminal. Drift is the value that triggered it and Step the
// history index the rejected state would have taken.
type Unstable struct {
	Drift float64
	Step  int
}

func (Stable) isStatus()   {}
func (Unstable) isStatus() {}

// RelativeDrift is |next − prev| / |prev|. Two infinite energies (an extinct
// population staying extinct) have zero drift; a finite value turning
// infinite, or any NaN, has infinite drift. A zero prev falls back to the
// absolute difference.
func RelativeDrift(prev, next float64) float64 {
	prevInf, nextInf := math.IsInf(prev, 0), math.IsInf(next, 0)
	switch {
	case math.IsNaN(prev) || math.IsNaN(next):
		return math.Inf(1)
	case prevInf && nextInf:
		return 0
	case prevInf || nextInf:
		return math.Inf(1)
	case prev == 0:
		return math.Abs(next)
	}
	return math.Abs(next-prev) / math.Abs(prev)
}

// Monitor watches the drift of H between consecutive states.
type Monitor struct {
	tolerance float64
	status    Status
	maxDrift  float64
}

func NewMonitor(dt float64) *Monitor {
	return &Monitor{
		tolerance: Tolerance(dt),
		status:    Stable{},
	}
}

// Check evaluates a candidate state that would be stored at index step and
// reports whether it may be appended. The first step is always accepted.
// Once unstable every call returns false.
func (m *Monitor) Check(step int, prev, next float64) bool {
	if _, ok := m.status.(Unstable); ok {
		return false
	}

	drift := RelativeDrift(prev, next)
	m.maxDrift = math.Max(m.maxDrift, drift)

	if step > 1 && drift > m.tolerance {
		m.status = Unstable{Drift: drift, Step: step}
		return false
	}
	return true
}

func (m *Monitor) Status() Status { return m.status }

func (m *Monitor) Unstable() bool {
	_, ok := m.status.(Unstable)
	return ok
}

// TriggerDrift returns the drift that made the run unstable, or 0 while
// stable.
func (m *Monitor) TriggerDrift() float64 {
	if u, ok := m.status.(Unstable); ok {
		return u.Drift
	}
	return 0
}

func (m *Monitor) MaxDrift() float64  { return m.maxDrift }
func (m *Monitor) Tolerance() float64 { return m.tolerance }
