package config

import (
	"os"

	"github.com/san-kum/lvsim/internal/lotka"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 100.0
	DefaultA        = 2.0
	DefaultB        = 0.1
	DefaultC        = 0.1
	DefaultD        = 1.0
	DefaultX0       = 9.0
	DefaultY0       = 20.0
)

type Config struct {
	Dt         float64 `yaml:"dt"`
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	C          float64 `yaml:"c"`
	D          float64 `yaml:"d"`
	X0         float64 `yaml:"x0"`
	Y0         float64 `yaml:"y0"`
	Duration   float64 `yaml:"duration"`
	TimeColumn string  `yaml:"time_column"`
	LogLevel   string  `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		A:          DefaultA,
		B:          DefaultB,
		C:          DefaultC,
		D:          DefaultD,
		X0:         DefaultX0,
		Y0:         DefaultY0,
		Duration:   DefaultDuration,
		TimeColumn: "t",
		LogLevel:   "info",
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads a YAML file over a copy of base.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() lotka.Params {
	return lotka.Params{
		Dt: c.Dt,
		A:  c.A,
		B:  c.B,
		C:  c.C,
		D:  c.D,
		X0: c.X0,
		Y0: c.Y0,
	}
}
