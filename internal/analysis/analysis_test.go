package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
)

var classic = lotka.Params{Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 9, Y0: 20}

func classicRun(t *testing.T) *lotka.Simulation {
	t.Helper()
	sim, err := lotka.New(classic)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := sim.AdvanceTime(100)
	if err != nil || !ok {
		t.Fatalf("advance: ok=%v err=%v", ok, err)
	}
	return sim
}

func TestDominantPeriod_Sine(t *testing.T) {
	dt := 0.01
	data := make([]float64, 2000)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*float64(i)*dt/2)
	}

	p, err := DominantPeriod(data, dt)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p-2) > 1e-9 {
		t.Errorf("expected period 2, got %v", p)
	}
}

func TestDominantPeriod_Flat(t *testing.T) {
	_, err := DominantPeriod([]float64{1, 1, 1, 1, 1, 1, 1, 1}, 0.01)
	if !errors.Is(err, ErrNoOscillation) {
		t.Errorf("expected ErrNoOscillation, got %v", err)
	}

	_, err = DominantPeriod([]float64{1, 2}, 0.01)
	if !errors.Is(err, ErrNoOscillation) {
		t.Errorf("expected ErrNoOscillation for short input, got %v", err)
	}
}

func TestClassicOrbit(t *testing.T) {
	s := FromSimulation(classicRun(t))
	want := SmallOrbitPeriod(classic)

	p, err := DominantPeriod(s.X, classic.Dt)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p-want) > 0.2 {
		t.Errorf("spectral period %v, want about %v", p, want)
	}

	ex, ey := Equilibrium(classic)
	if ex != 10 || ey != 20 {
		t.Fatalf("equilibrium = (%v, %v), want (10, 20)", ex, ey)
	}

	cp, err := CrossingPeriod(s.T, s.X, ex)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cp-want) > 0.05 {
		t.Errorf("crossing period %v, want about %v", cp, want)
	}

	sum := Summarize(s)
	if math.Abs(sum.MeanX-ex) > 0.1 || math.Abs(sum.MeanY-ey) > 0.2 {
		t.Errorf("time averages (%v, %v) far from equilibrium", sum.MeanX, sum.MeanY)
	}
	if sum.MinX >= ex || sum.MaxX <= ex {
		t.Errorf("prey range [%v, %v] should straddle %v", sum.MinX, sum.MaxX, ex)
	}
}

func TestCrossings(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 4}
	vs := []float64{0, 2, 0, 2, 0}

	c := Crossings(ts, vs, 1)
	if len(c) != 2 || c[0] != 0.5 || c[1] != 2.5 {
		t.Errorf("unexpected crossings %v", c)
	}

	if _, err := CrossingPeriod(ts[:2], vs[:2], 1); !errors.Is(err, ErrNoOscillation) {
		t.Errorf("expected ErrNoOscillation, got %v", err)
	}
}

func TestConvergenceOrder(t *testing.T) {
	tests := []struct {
		name string
		p    lotka.Params
	}{
		{"classic", classic},
		{"balanced", lotka.Params{A: 1, B: 1, C: 1, D: 1, X0: 10, Y0: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convergence(tt.p, 1, []float64{0.0001, 0.001, 0.002, 0.005, 0.01})
			if err != nil {
				t.Fatal(err)
			}
			if res.RefDt != 0.0001 {
				t.Errorf("reference dt = %v", res.RefDt)
			}
			if len(res.Errors) != 4 {
				t.Fatalf("expected 4 errors, got %d", len(res.Errors))
			}
			for i := 1; i < len(res.Errors); i++ {
				if res.Errors[i] >= res.Errors[i-1] {
					t.Errorf("error should shrink with dt: %v", res.Errors)
				}
			}
			if math.Abs(res.Order-1) > 0.1 {
				t.Errorf("order = %v, want about 1", res.Order)
			}
		})
	}
}

func TestConvergenceErrors(t *testing.T) {
	if _, err := Convergence(classic, 1, []float64{0.01, 0.001}); err == nil {
		t.Error("expected error for two step sizes")
	}

	_, err := Convergence(classic, 0.0015, []float64{0.01, 0.001, 0.0001})
	if !errors.Is(err, dynamo.ErrInvalidDuration) {
		t.Errorf("expected invalid duration, got %v", err)
	}
}

func TestPhasePortraitToASCII(t *testing.T) {
	p := NewPhasePortrait([]float64{1, 2, 3, 2}, []float64{2, 3, 2, 1}, 1)
	p.Marker = &Point{X: 2, Y: 2}

	out := PhasePortraitToASCII(p, 20, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "•") || !strings.Contains(out, "+") {
		t.Errorf("portrait missing points or marker:\n%s", out)
	}

	if PhasePortraitToASCII(nil, 20, 10) != "" {
		t.Error("expected empty output for nil portrait")
	}
}

func TestNewPhasePortraitStride(t *testing.T) {
	xs := make([]float64, 10)
	p := NewPhasePortrait(xs, xs, 3)
	if len(p.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(p.Points))
	}
}
