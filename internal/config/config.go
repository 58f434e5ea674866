package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Modes select which pipeline runs: massive test particles (angular
// momentum values) or photons (impact parameters).
const (
	ModeMassive = "massive"
	ModePhoton  = "photon"
)

const (
	DefaultGM     = 1.0
	DefaultPoints = 3000

	// Default radial windows, matching the shipped UI ranges.
	DefaultMassiveRMin = 2.5
	DefaultMassiveRMax = 500.0
	DefaultPhotonRMin  = 1.5
	DefaultPhotonRMax  = 15.0

	DefaultMassiveValues = "4"
	DefaultPhotonValues  = "5.196, 6, 4"
)

// Config captures one full render cycle's inputs. It is rebuilt per
// invocation and never mutated by the computation layer.
type Config struct {
	Mode      string  `yaml:"mode"`
	GM        float64 `yaml:"gm"`
	Values    string  `yaml:"values"`
	Newtonian bool    `yaml:"newtonian"`
	RMin      float64 `yaml:"r_min"`
	RMax      float64 `yaml:"r_max"`
	Points    int     `yaml:"points"`
	AutoY     bool    `yaml:"auto_y"`
	YMin      float64 `yaml:"y_min"`
	YMax      float64 `yaml:"y_max"`
}

// DefaultConfig returns the stock configuration for a mode. Unknown modes
// fall back to the massive-particle defaults.
func DefaultConfig(mode string) *Config {
	if mode == ModePhoton {
		return &Config{
			Mode:   ModePhoton,
			GM:     DefaultGM,
			Values: DefaultPhotonValues,
			RMin:   DefaultPhotonRMin,
			RMax:   DefaultPhotonRMax,
			Points: DefaultPoints,
			YMin:   0.0,
			YMax:   0.07,
		}
	}
	return &Config{
		Mode:   ModeMassive,
		GM:     DefaultGM,
		Values: DefaultMassiveValues,
		RMin:   DefaultMassiveRMin,
		RMax:   DefaultMassiveRMax,
		Points: DefaultPoints,
		YMin:   -0.05,
		YMax:   0.02,
	}
}

// Load reads a yaml config, layering it over the defaults for its mode.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Peek at the mode first so the right defaults back the file.
	var probe struct {
		Mode string `yaml:"mode"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := DefaultConfig(probe.Mode)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
