package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/potential"
)

const (
	DefaultElement       = "He"
	DefaultMesh          = "normal"
	DefaultExchange      = "nonstatistical"
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 200
	DefaultMixing        = 0.5
	DefaultWorkers       = 1
)

// Config is one run as read from YAML. An empty Configuration selects the
// element's ground state.
type Config struct {
	Element            string  `yaml:"element"`
	Configuration      string  `yaml:"configuration,omitempty"`
	Mesh               string  `yaml:"mesh"`
	Exchange           string  `yaml:"exchange"`
	Tolerance          float64 `yaml:"tolerance"`
	MaxIterations      int     `yaml:"max_iterations"`
	Mixing             float64 `yaml:"mixing"`
	LatterTail         bool    `yaml:"latter_tail"`
	Workers            int     `yaml:"workers"`
	RequireConvergence bool    `yaml:"require_convergence"`
}

func DefaultConfig() *Config {
	return &Config{
		Element:       DefaultElement,
		Mesh:          DefaultMesh,
		Exchange:      DefaultExchange,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Mixing:        DefaultMixing,
		LatterTail:    true,
		Workers:       DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Target resolves the element and configuration to solve.
func (c *Config) Target() (element.Element, element.Configuration, error) {
	el, err := element.Lookup(c.Element)
	if err != nil {
		return element.Element{}, nil, err
	}
	var conf element.Configuration
	if c.Configuration == "" {
		conf, err = element.GroundState(el.Z)
	} else {
		conf, err = element.Parse(c.Configuration)
	}
	if err != nil {
		return element.Element{}, nil, fmt.Errorf("config: %s: %w", el.Symbol, err)
	}
	return el, conf, nil
}

// Settings converts the file values to solver settings.
func (c *Config) Settings() (atom.Config, error) {
	class, err := mesh.ParseClass(c.Mesh)
	if err != nil {
		return atom.Config{}, err
	}
	mode, err := potential.ParseExchangeMode(c.Exchange)
	if err != nil {
		return atom.Config{}, err
	}
	return atom.Config{
		Mesh:               class,
		Exchange:           mode,
		Tolerance:          c.Tolerance,
		MaxIterations:      c.MaxIterations,
		Mixing:             c.Mixing,
		LatterTail:         c.LatterTail,
		Workers:            c.Workers,
		RequireConvergence: c.RequireConvergence,
	}, nil
}
