package dynamo

type State []float64

// Floor raises every component below lo to lo, in place.
func (s State) Floor(lo float64) State {
	for i, v := range s {
		if v < lo {
			s[i] = lo
		}
	}
	return s
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}
