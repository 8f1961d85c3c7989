package analysis

import (
	"math"

	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/physics"
	"gonum.org/v1/gonum/stat"
)

// Series is a trajectory laid out column-wise.
type Series struct {
	T, X, Y, H []float64
}

func FromSimulation(sim *lotka.Simulation) Series {
	hist := sim.History()
	s := Series{
		T: make([]float64, len(hist)),
		X: make([]float64, len(hist)),
		Y: make([]float64, len(hist)),
		H: make([]float64, len(hist)),
	}
	for i, st := range hist {
		s.T[i] = sim.Time(i)
		s.X[i] = st.X
		s.Y[i] = st.Y
		s.H[i] = st.H
	}
	return s
}

func (s Series) Len() int { return len(s.T) }

// Equilibrium is the coexistence fixed point (D/C, A/B).
func Equilibrium(p lotka.Params) (x, y float64) {
	return physics.Equilibrium(p.Coefficients())
}

// SmallOrbitPeriod is the period of the linearised oscillation around the
// equilibrium, 2π/√(A·D).
func SmallOrbitPeriod(p lotka.Params) float64 {
	return 2 * math.Pi / math.Sqrt(p.A*p.D)
}

type Summary struct {
	MeanX, MeanY float64
	StdX, StdY   float64
	MinX, MaxX   float64
	MinY, MaxY   float64
}

func Summarize(s Series) Summary {
	if s.Len() == 0 {
		return Summary{}
	}
	var sum Summary
	sum.MeanX, sum.StdX = stat.MeanStdDev(s.X, nil)
	sum.MeanY, sum.StdY = stat.MeanStdDev(s.Y, nil)
	sum.MinX, sum.MaxX = bounds(s.X)
	sum.MinY, sum.MaxY = bounds(s.Y)
	return sum
}

func bounds(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}
