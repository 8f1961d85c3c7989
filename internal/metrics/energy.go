package metrics

import (
	"math"

	"github.com/san-kum/lvsim/internal/lotka"
)

// EnergyDrift is the largest relative deviation of H from its first
// observed value.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s lotka.State, t float64) {
	if e.samples == 0 {
		e.initialEnergy = s.H
	}
	e.samples++

	e.maxDrift = math.Max(e.maxDrift, lotka.RelativeDrift(e.initialEnergy, s.H))
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
