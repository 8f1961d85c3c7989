package config

import "sort"

// Presets are named starting points. The first three share one ecosystem and
// start on nested orbits around its equilibrium (10, 20).
var Presets = map[string]*Config{
	"classic": {
		Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 9, Y0: 20, Duration: 100,
	},
	"mid": {
		Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 7, Y0: 15, Duration: 100,
	},
	"inner": {
		Dt: 0.01, A: 2, B: 0.1, C: 0.1, D: 1, X0: 4, Y0: 8, Duration: 100,
	},
	"balanced": {
		Dt: 0.001, A: 1, B: 1, C: 1, D: 1, X0: 10, Y0: 5, Duration: 10,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.TimeColumn == "" {
		cfg.TimeColumn = "t"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
