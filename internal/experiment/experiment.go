// Package experiment runs a configured simulation to completion with metrics
// and cancellation.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/lvsim/internal/logging"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/metrics"
	"github.com/sirupsen/logrus"
)

// MaxSteps caps the number of steps a single run may request.
const MaxSteps = 10_000_000

// chunkSteps is how many steps run between context checks.
const chunkSteps = 10_000

var ErrTooManySteps = errors.New("experiment: duration needs too many steps")

type Config struct {
	Name     string
	Params   lotka.Params
	Duration float64
	Metrics  []metrics.Metric
}

type Result struct {
	Name     string
	Sim      *lotka.Simulation
	Duration float64
	Metrics  map[string]float64
	// Completed is false when the stability monitor stopped the run early.
	Completed bool
	Elapsed   time.Duration
}

type Experiment struct {
	cfg Config
	log logrus.FieldLogger
}

func New(cfg Config, log logrus.FieldLogger) *Experiment {
	if log == nil {
		log = logging.Discard()
	}
	return &Experiment{cfg: cfg, log: log}
}

func (e *Experiment) Config() Config { return e.cfg }

// Run builds the simulation and advances it by the configured duration.
// Cancellation is honoured between chunks of steps; a cancelled run returns
// ctx.Err() and no result.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	sim, err := lotka.New(e.cfg.Params)
	if err != nil {
		return nil, err
	}

	steps, err := lotka.StepsFor(e.cfg.Duration, e.cfg.Params.Dt)
	if err != nil {
		return nil, err
	}
	if steps > MaxSteps {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySteps, steps, MaxSteps)
	}

	log := e.log.WithFields(logrus.Fields{
		"run":   e.cfg.Name,
		"dt":    e.cfg.Params.Dt,
		"steps": steps,
	})
	log.Debug("run started")

	start := time.Now()
	completed := true
	for remaining := steps; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := min(remaining, chunkSteps)
		if !sim.AdvanceSteps(n) {
			completed = false
			break
		}
		remaining -= n
	}

	if !completed {
		log.WithFields(logrus.Fields{
			"step":  sim.Steps(),
			"drift": sim.TriggerDrift(),
		}).Warn("run became unstable")
	}

	ms := e.cfg.Metrics
	if ms == nil {
		ms = metrics.Defaults()
	}
	res := &Result{
		Name:      e.cfg.Name,
		Sim:       sim,
		Duration:  e.cfg.Duration,
		Metrics:   metrics.ObserveAll(sim, ms),
		Completed: completed,
		Elapsed:   time.Since(start),
	}

	log.WithFields(logrus.Fields{
		"stored":  sim.Steps(),
		"elapsed": res.Elapsed,
	}).Info("run finished")

	return res, nil
}

// Run is shorthand for New(cfg, log).Run(ctx).
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Result, error) {
	return New(cfg, log).Run(ctx)
}
