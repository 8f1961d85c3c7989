// Package metrics summarises a stored trajectory into named scalar values.
package metrics

import "github.com/san-kum/lvsim/internal/lotka"

type Metric interface {
	Name() string
	Observe(s lotka.State, t float64)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the metrics reported for every run.
func Defaults() []Metric {
	return []Metric{
		NewEnergyDrift(),
		NewExtinction(),
		NewPeak("peak_prey", func(s lotka.State) float64 { return s.X }),
		NewPeak("peak_predator", func(s lotka.State) float64 { return s.Y }),
		NewTrough("trough_prey", func(s lotka.State) float64 { return s.X }),
		NewTrough("trough_predator", func(s lotka.State) float64 { return s.Y }),
	}
}

// ObserveAll feeds every stored state of sim to each metric and collects the
// values by name.
func ObserveAll(sim *lotka.Simulation, ms []Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i, s := range sim.History() {
		t := sim.Time(i)
		for _, m := range ms {
			m.Observe(s, t)
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
