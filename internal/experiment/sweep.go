package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/lvsim/internal/lotka"
)

// SetParam returns p with the field named as in validation errors ("dt",
// "A" ... "D", "x0", "y0") replaced by v.
func SetParam(p lotka.Params, field string, v float64) (lotka.Params, error) {
	switch field {
	case "dt":
		p.Dt = v
	case "A":
		p.A = v
	case "B":
		p.B = v
	case "C":
		p.C = v
	case "D":
		p.D = v
	case "x0":
		p.X0 = v
	case "y0":
		p.Y0 = v
	default:
		return p, fmt.Errorf("unknown parameter: %s", field)
	}
	return p, nil
}

// Ensemble runs independent configurations concurrently, at most workers at
// a time. Each simulation is confined to its own goroutine.
type Ensemble struct {
	runs    []Config
	workers int
	reg     *Registry
}

func NewEnsemble(runs []Config, workers int) *Ensemble {
	if workers < 1 {
		workers = 1
	}
	return &Ensemble{runs: runs, workers: workers, reg: NewRegistry()}
}

// Run returns results in the order of the configured runs. The first error
// cancels the remaining runs and is returned.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Result, len(e.runs))
	sem := make(chan struct{}, e.workers)

	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	var wg sync.WaitGroup
	for i := range e.runs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				fail(ctx.Err())
				return
			}
			defer func() { <-sem }()

			cfg := e.runs[idx]
			if cfg.Metrics == nil {
				// metrics carry state and must not be shared across goroutines
				cfg.Metrics, _ = e.reg.GetMetrics(nil)
			}
			res, err := New(cfg, nil).Run(ctx)
			if err != nil {
				fail(fmt.Errorf("run %q: %w", cfg.Name, err))
				return
			}
			results[idx] = res
		}(i)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Sweep runs base once per value of field.
func Sweep(ctx context.Context, base Config, field string, values []float64, workers int) ([]*Result, error) {
	runs := make([]Config, len(values))
	for i, v := range values {
		p, err := SetParam(base.Params, field, v)
		if err != nil {
			return nil, err
		}
		runs[i] = Config{
			Name:     fmt.Sprintf("%s_%s=%g", base.Name, field, v),
			Params:   p,
			Duration: base.Duration,
		}
	}
	return NewEnsemble(runs, workers).Run(ctx)
}
