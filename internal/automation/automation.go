// Package automation runs scripted sequences of simulations from YAML files.
package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/lvsim/internal/config"
	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/logging"
	"github.com/san-kum/lvsim/internal/storage"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted simulation sequence
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Preset, when set, supplies every value the
// step leaves at zero.
type ScenarioStep struct {
	Name       string   `yaml:"name"`
	Preset     string   `yaml:"preset"`
	Dt         float64  `yaml:"dt"`
	A          float64  `yaml:"a"`
	B          float64  `yaml:"b"`
	C          float64  `yaml:"c"`
	D          float64  `yaml:"d"`
	X0         *float64 `yaml:"x0"`
	Y0         *float64 `yaml:"y0"`
	Duration   float64  `yaml:"duration"`
	Metrics    []string `yaml:"metrics"`
	TimeColumn string   `yaml:"time_column"`
	Save       bool     `yaml:"save"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Resolve merges the step over its preset, or over the defaults.
func (s ScenarioStep) Resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}

	overrides := []struct {
		dst *float64
		v   float64
	}{
		{&cfg.Dt, s.Dt}, {&cfg.A, s.A}, {&cfg.B, s.B}, {&cfg.C, s.C}, {&cfg.D, s.D},
		{&cfg.Duration, s.Duration},
	}
	for _, o := range overrides {
		if o.v != 0 {
			*o.dst = o.v
		}
	}
	// initial densities may legitimately be zero
	if s.X0 != nil {
		cfg.X0 = *s.X0
	}
	if s.Y0 != nil {
		cfg.Y0 = *s.Y0
	}
	if s.TimeColumn != "" {
		cfg.TimeColumn = s.TimeColumn
	}
	return cfg, nil
}

// Runner executes scenarios. Store is optional; without it steps marked
// save are only run.
type Runner struct {
	Registry *experiment.Registry
	Store    *storage.Store
	Log      logrus.FieldLogger
}

func NewRunner(store *storage.Store, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{Registry: experiment.NewRegistry(), Store: store, Log: log}
}

// StepResult pairs a run with the id it was saved under, if any.
type StepResult struct {
	*experiment.Result
	RunID string
}

// RunScenario executes all steps in order and stops at the first error.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", scenario.Name, i+1)
		}
		r.Log.WithFields(logrus.Fields{
			"scenario": scenario.Name,
			"step":     fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)),
		}).Info("running " + name)

		cfg, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		ms, err := r.Registry.GetMetrics(step.Metrics)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := experiment.Run(ctx, experiment.Config{
			Name:     name,
			Params:   cfg.Params(),
			Duration: cfg.Duration,
			Metrics:  ms,
		}, r.Log)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Result: res}
		if step.Save && r.Store != nil {
			meta := storage.NewMetadata(name, res.Sim, cfg.Duration, res.Metrics)
			meta.TimeColumn = cfg.TimeColumn
			sr.RunID, err = r.Store.Save(meta, storage.Rows(res.Sim))
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, sr)
	}

	return results, nil
}

// ParameterSweep varies one parameter of a base configuration linearly.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Workers   int
}

// SweepResult summarises one point of a sweep.
type SweepResult struct {
	ParamValue float64
	Completed  bool
	Steps      int
	MaxDrift   float64
	Metrics    map[string]float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	n := sweep.NumSteps
	if n < 2 {
		n = 2
	}
	values := make([]float64, n)
	step := (sweep.ParamMax - sweep.ParamMin) / float64(n-1)
	for i := range values {
		values[i] = sweep.ParamMin + float64(i)*step
	}

	base := experiment.Config{
		Name:     "sweep",
		Params:   sweep.Base.Params(),
		Duration: sweep.Base.Duration,
	}
	runs, err := experiment.Sweep(ctx, base, sweep.ParamName, values, sweep.Workers)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(runs))
	for i, res := range runs {
		results[i] = SweepResult{
			ParamValue: values[i],
			Completed:  res.Completed,
			Steps:      res.Sim.Steps(),
			MaxDrift:   res.Sim.MaxRelativeDrift(),
			Metrics:    res.Metrics,
		}
	}
	return results, nil
}

// MonteCarloConfig perturbs the initial densities of Base uniformly by up to
// ±Perturbation (clamped at zero).
type MonteCarloConfig struct {
	Base         *config.Config
	Perturbation float64
	NumTrials    int
	Workers      int
	Seed         int64
}

// MonteCarloResult holds one trial
type MonteCarloResult struct {
	TrialID  int
	X0, Y0   float64
	Stable   bool
	MaxDrift float64
}

// RunMonteCarlo executes multiple trials with random perturbations
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig) ([]MonteCarloResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	runs := make([]experiment.Config, cfg.NumTrials)
	for i := range runs {
		p := cfg.Base.Params()
		p.X0 = max(0, p.X0+(rng.Float64()-0.5)*2*cfg.Perturbation)
		p.Y0 = max(0, p.Y0+(rng.Float64()-0.5)*2*cfg.Perturbation)
		runs[i] = experiment.Config{
			Name:     fmt.Sprintf("trial_%d", i),
			Params:   p,
			Duration: cfg.Base.Duration,
		}
	}

	out, err := experiment.NewEnsemble(runs, cfg.Workers).Run(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]MonteCarloResult, len(out))
	for i, res := range out {
		p := res.Sim.Params()
		results[i] = MonteCarloResult{
			TrialID:  i,
			X0:       p.X0,
			Y0:       p.Y0,
			Stable:   res.Completed,
			MaxDrift: res.Sim.MaxRelativeDrift(),
		}
	}
	return results, nil
}

// MonteCarloStats computes summary statistics from Monte Carlo results
func MonteCarloStats(results []MonteCarloResult) (stableCount int, unstableCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			unstableCount++
		}
	}
	return
}
