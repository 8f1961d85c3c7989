package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/lvsim/internal/lotka"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConvergenceResult compares runs at several step sizes against the run with
// the smallest step.
type ConvergenceResult struct {
	Reference lotka.State
	RefDt     float64
	Dts       []float64
	Errors    []float64
	// Order is the slope of log(error) against log(dt).
	Order float64
}

// Convergence evolves base for duration T with every dt in dts. At least
// three step sizes are needed so that two errors remain for the fit.
func Convergence(base lotka.Params, T float64, dts []float64) (*ConvergenceResult, error) {
	if len(dts) < 3 {
		return nil, fmt.Errorf("analysis: convergence needs at least 3 step sizes, got %d", len(dts))
	}
	sorted := append([]float64(nil), dts...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	finals := make([]lotka.State, len(sorted))
	for i, dt := range sorted {
		p := base
		p.Dt = dt
		sim, err := lotka.New(p)
		if err != nil {
			return nil, err
		}
		ok, err := sim.AdvanceTime(T)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("analysis: run with dt=%g became unstable at step %d", dt, sim.Steps())
		}
		finals[i] = sim.Last()
	}

	n := len(sorted) - 1
	ref := finals[n]
	res := &ConvergenceResult{
		Reference: ref,
		RefDt:     sorted[n],
		Dts:       sorted[:n],
		Errors:    make([]float64, n),
	}

	logDt := make([]float64, n)
	logErr := make([]float64, n)
	for i := 0; i < n; i++ {
		res.Errors[i] = floats.Distance(
			[]float64{finals[i].X, finals[i].Y},
			[]float64{ref.X, ref.Y}, 2)
		logDt[i] = math.Log(sorted[i])
		logErr[i] = math.Log(res.Errors[i])
	}

	_, res.Order = stat.LinearRegression(logDt, logErr, nil, false)
	return res, nil
}
