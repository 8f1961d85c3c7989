package physics

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
)

// Coefficients are the interaction rates of the predator-prey system
//
//	dx/dt = A·x − B·x·y
//	dy/dt = C·x·y − D·y
type Coefficients struct {
	A float64 // prey growth
	B float64 // predation
	C float64 // predator growth per prey eaten
	D float64 // predator death
}

// ToRelative maps absolute densities to the rescaled coordinates in which the
// non-trivial fixed point sits at (1, 1).
func ToRelative(c Coefficients, x, y float64) (xr, yr float64) {
	return x * c.C / c.D, y * c.B / c.A
}

// ToAbsolute is the inverse of ToRelative.
func ToAbsolute(c Coefficients, xr, yr float64) (x, y float64) {
	return xr * c.D / c.C, yr * c.A / c.B
}

// Hamiltonian evaluates the conserved quantity at absolute densities (x, y).
// It is +Inf when either population is extinct.
func Hamiltonian(c Coefficients, x, y float64) float64 {
	if x <= 0 || y <= 0 {
		return math.Inf(1)
	}
	return -c.D*math.Log(x) + c.C*x + c.B*y - c.A*math.Log(y)
}

// Equilibrium returns the non-trivial fixed point in absolute densities.
func Equilibrium(c Coefficients) (x, y float64) {
	return c.D / c.C, c.A / c.B
}

// LotkaVolterra is the predator-prey system expressed in rescaled
// coordinates (x_rel, y_rel).
type LotkaVolterra struct {
	Coefficients
}

func NewLotkaVolterra(a, b, c, d float64) *LotkaVolterra {
	return &LotkaVolterra{Coefficients{A: a, B: b, C: c, D: d}}
}

func (l *LotkaVolterra) StateDim() int { return 2 }

// Derive returns the rescaled vector field
//
//	x_rel' = A·(1 − y_rel)·x_rel
//	y_rel' = D·(x_rel − 1)·y_rel
func (l *LotkaVolterra) Derive(s dynamo.State, _ float64) dynamo.State {
	xr, yr := s[0], s[1]
	return dynamo.State{
		l.A * (1 - yr) * xr,
		l.D * (xr - 1) * yr,
	}
}

// Energy evaluates H for a rescaled state.
func (l *LotkaVolterra) Energy(s dynamo.State) float64 {
	x, y := ToAbsolute(l.Coefficients, s[0], s[1])
	return Hamiltonian(l.Coefficients, x, y)
}

var (
	_ dynamo.System      = (*LotkaVolterra)(nil)
	_ dynamo.Hamiltonian = (*LotkaVolterra)(nil)
)
