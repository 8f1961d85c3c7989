package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrNoOscillation = errors.New("analysis: no oscillation in signal")

// PowerSpectrum returns |X_k| for k in [0, n/2) of the mean-removed signal.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	centered := make([]float64, len(data))
	copy(centered, data)
	floats.AddConst(-stat.Mean(data, nil), centered)

	spec := fft.FFTReal(centered)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantPeriod is the period of the strongest non-zero frequency bin of
// samples taken every dt. Resolution is limited to n·dt/k for integer k.
func DominantPeriod(samples []float64, dt float64) (float64, error) {
	if len(samples) < 4 || dt <= 0 {
		return 0, ErrNoOscillation
	}
	ps := PowerSpectrum(samples)
	if len(ps) < 2 {
		return 0, ErrNoOscillation
	}

	k := floats.MaxIdx(ps[1:]) + 1
	if ps[k] == 0 {
		return 0, ErrNoOscillation
	}
	return float64(len(samples)) * dt / float64(k), nil
}

// Crossings returns the interpolated times at which v rises through level.
func Crossings(t, v []float64, level float64) []float64 {
	var out []float64
	for i := 1; i < len(v) && i < len(t); i++ {
		if v[i-1] < level && v[i] >= level {
			frac := (level - v[i-1]) / (v[i] - v[i-1])
			out = append(out, t[i-1]+frac*(t[i]-t[i-1]))
		}
	}
	return out
}

// CrossingPeriod averages the interval between successive upward crossings.
func CrossingPeriod(t, v []float64, level float64) (float64, error) {
	c := Crossings(t, v, level)
	if len(c) < 2 {
		return 0, ErrNoOscillation
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1), nil
}
