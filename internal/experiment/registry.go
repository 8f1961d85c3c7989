package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/metrics"
)

// Registry maps metric names to constructors so runs can select metrics by
// name from the command line or a scenario file.
type Registry struct {
	metrics map[string]func() metrics.Metric
}

func NewRegistry() *Registry {
	r := &Registry{metrics: make(map[string]func() metrics.Metric)}

	r.metrics["energy_drift"] = func() metrics.Metric { return metrics.NewEnergyDrift() }
	r.metrics["extinction_time"] = func() metrics.Metric { return metrics.NewExtinction() }
	r.metrics["peak_prey"] = func() metrics.Metric {
		return metrics.NewPeak("peak_prey", func(s lotka.State) float64 { return s.X })
	}
	r.metrics["peak_predator"] = func() metrics.Metric {
		return metrics.NewPeak("peak_predator", func(s lotka.State) float64 { return s.Y })
	}
	r.metrics["trough_prey"] = func() metrics.Metric {
		return metrics.NewTrough("trough_prey", func(s lotka.State) float64 { return s.X })
	}
	r.metrics["trough_predator"] = func() metrics.Metric {
		return metrics.NewTrough("trough_predator", func(s lotka.State) float64 { return s.Y })
	}

	return r
}

func (r *Registry) Register(name string, fn func() metrics.Metric) {
	r.metrics[name] = fn
}

func (r *Registry) GetMetric(name string) (metrics.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

// GetMetrics builds the named metrics; an empty list selects every metric.
func (r *Registry) GetMetrics(names []string) ([]metrics.Metric, error) {
	if len(names) == 0 {
		names = r.ListMetrics()
	}
	out := make([]metrics.Metric, 0, len(names))
	for _, name := range names {
		m, err := r.GetMetric(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
