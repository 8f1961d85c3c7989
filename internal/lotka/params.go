package lotka

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/physics"
)

// Admissible step sizes, both bounds inclusive.
const (
	MinDt = 0.0001
	MaxDt = 0.01
)

// Params are the immutable inputs of a simulation run.
type Params struct {
	Dt float64 `json:"dt"`
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	C  float64 `json:"c"`
	D  float64 `json:"d"`
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
}

// Validate reports the first parameter that cannot be simulated.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"dt", p.Dt}, {"A", p.A}, {"B", p.B}, {"C", p.C}, {"D", p.D}, {"x0", p.X0}, {"y0", p.Y0},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &dynamo.ParameterError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	if p.Dt < MinDt || p.Dt > MaxDt {
		return &dynamo.ParameterError{Field: "dt", Value: p.Dt, Reason: "must be in [0.0001, 0.01]"}
	}
	for _, f := range fields[1:5] {
		if f.value <= 0 {
			return &dynamo.ParameterError{Field: f.name, Value: f.value, Reason: "must be > 0"}
		}
	}
	if p.X0 < 0 {
		return &dynamo.ParameterError{Field: "x0", Value: p.X0, Reason: "must be >= 0"}
	}
	if p.Y0 < 0 {
		return &dynamo.ParameterError{Field: "y0", Value: p.Y0, Reason: "must be >= 0"}
	}
	return nil
}

func (p Params) Coefficients() physics.Coefficients {
	return physics.Coefficients{A: p.A, B: p.B, C: p.C, D: p.D}
}
