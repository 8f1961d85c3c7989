package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Exporter keeps per-run gauges in a private registry and writes them in the
// node_exporter textfile format.
type Exporter struct {
	reg      *prometheus.Registry
	steps    *prometheus.GaugeVec
	unstable *prometheus.GaugeVec
	drift    *prometheus.GaugeVec
	values   *prometheus.GaugeVec
}

func NewExporter() *Exporter {
	e := &Exporter{
		reg: prometheus.NewRegistry(),
		steps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvsim",
			Name:      "steps",
			Help:      "Number of stored states in the run.",
		}, []string{"run"}),
		unstable: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvsim",
			Name:      "unstable",
			Help:      "1 when the stability monitor stopped the run.",
		}, []string{"run"}),
		drift: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvsim",
			Name:      "max_relative_drift",
			Help:      "Largest relative change of H between consecutive states.",
		}, []string{"run"}),
		values: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvsim",
			Name:      "metric",
			Help:      "Trajectory metrics by name.",
		}, []string{"run", "name"}),
	}
	e.reg.MustRegister(e.steps, e.unstable, e.drift, e.values)
	return e
}

// Record sets the gauges for one run.
func (e *Exporter) Record(run string, steps int, unstable bool, maxDrift float64, values map[string]float64) {
	e.steps.WithLabelValues(run).Set(float64(steps))
	if unstable {
		e.unstable.WithLabelValues(run).Set(1)
	} else {
		e.unstable.WithLabelValues(run).Set(0)
	}
	e.drift.WithLabelValues(run).Set(maxDrift)
	for name, v := range values {
		e.values.WithLabelValues(run, name).Set(v)
	}
}

func (e *Exporter) Registry() *prometheus.Registry { return e.reg }

func (e *Exporter) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, e.reg)
}
