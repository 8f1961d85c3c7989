package metrics

import (
	"math"

	"github.com/san-kum/lvsim/internal/lotka"
)

// Extinction records the first time either population reaches zero. Its
// value is -1 while both survive.
type Extinction struct {
	name string
	at   float64
	seen bool
}

func NewExtinction() *Extinction {
	return &Extinction{name: "extinction_time", at: -1}
}

func (e *Extinction) Name() string { return e.name }

func (e *Extinction) Observe(s lotka.State, t float64) {
	if e.seen {
		return
	}
	if s.X == 0 || s.Y == 0 {
		e.at = t
		e.seen = true
	}
}

func (e *Extinction) Value() float64 { return e.at }

func (e *Extinction) Reset() {
	e.at = -1
	e.seen = false
}

// Peak tracks the maximum of one coordinate.
type Peak struct {
	name   string
	pick   func(lotka.State) float64
	value  float64
	sample bool
}

func NewPeak(name string, pick func(lotka.State) float64) *Peak {
	return &Peak{name: name, pick: pick}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(s lotka.State, t float64) {
	v := p.pick(s)
	if !p.sample || v > p.value {
		p.value = v
		p.sample = true
	}
}

func (p *Peak) Value() float64 { return p.value }

func (p *Peak) Reset() {
	p.value = 0
	p.sample = false
}

// Trough tracks the minimum of one coordinate.
type Trough struct {
	name  string
	pick  func(lotka.State) float64
	value float64
}

func NewTrough(name string, pick func(lotka.State) float64) *Trough {
	return &Trough{name: name, pick: pick, value: math.Inf(1)}
}

func (tr *Trough) Name() string { return tr.name }

func (tr *Trough) Observe(s lotka.State, t float64) {
	tr.value = math.Min(tr.value, tr.pick(s))
}

func (tr *Trough) Value() float64 {
	if math.IsInf(tr.value, 1) {
		return 0
	}
	return tr.value
}

func (tr *Trough) Reset() { tr.value = math.Inf(1) }
