package lotka

import (
	"math"
	"testing"
)

func TestTolerance(t *testing.T) {
	if got := Tolerance(0.001); math.Abs(got-0.05) > 1e-15 {
		t.Errorf("Tolerance(0.001) = %v, want 0.05", got)
	}
}

func TestRelativeDrift(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name       string
		prev, next float64
		want       float64
	}{
		{"unchanged", 10, 10, 0},
		{"ten percent", 10, 11, 0.1},
		{"negative energy", -5, -4, 0.2},
		{"both extinct", inf, inf, 0},
		{"goes extinct", 10, inf, inf},
		{"revives", inf, 10, inf},
		{"NaN", 10, math.NaN(), inf},
		{"zero prev", 0, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDrift(tt.prev, tt.next)
			if math.IsInf(tt.want, 1) {
				if !math.IsInf(got, 1) {
					t.Errorf("RelativeDrift(%v, %v) = %v, want +Inf", tt.prev, tt.next, got)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RelativeDrift(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

func TestMonitor_FirstStepAlwaysAccepted(t *testing.T) {
	m := NewMonitor(0.01)

	if !m.Check(1, 10, math.Inf(1)) {
		t.Fatal("first step rejected")
	}
	if m.Unstable() {
		t.Error("monitor unstable after first step")
	}
	if !math.IsInf(m.MaxDrift(), 1) {
		t.Errorf("first-step drift not recorded, max = %v", m.MaxDrift())
	}
}

func TestMonitor_StickyUnstable(t *testing.T) {
	m := NewMonitor(0.01)

	if !m.Check(2, 10, 10.1) {
		t.Fatal("drift within tolerance rejected")
	}
	if m.Check(3, 10, 20) {
		t.Fatal("drift of 1.0 accepted with tolerance 0.5")
	}

	u, ok := m.Status().(Unstable)
	if !ok {
		t.Fatalf("status = %T, want Unstable", m.Status())
	}
	if u.Step != 3 || math.Abs(u.Drift-1.0) > 1e-12 {
		t.Errorf("Unstable = %+v, want {Drift:1 Step:3}", u)
	}

	if m.Check(4, 10, 10) {
		t.Error("unstable monitor accepted a step")
	}
	if m.TriggerDrift() != u.Drift {
		t.Errorf("TriggerDrift() = %v, want %v", m.TriggerDrift(), u.Drift)
	}
}

func TestMonitor_StableReportsZeroTrigger(t *testing.T) {
	m := NewMonitor(0.001)
	if _, ok := m.Status().(Stable); !ok {
		t.Fatalf("initial status = %T, want Stable", m.Status())
	}
	if m.TriggerDrift() != 0 {
		t.Errorf("TriggerDrift() = %v, want 0", m.TriggerDrift())
	}
	if math.Abs(m.Tolerance()-0.05) > 1e-15 {
		t.Errorf("Tolerance() = %v, want 0.05", m.Tolerance())
	}
}
