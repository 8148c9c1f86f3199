/*
 * config.go, part of goTPS.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config holds the YAML run configuration for goTPS sampling
// runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTemperature = 300.0
	DefaultGamma       = 5.0
	DefaultDt          = 0.002
	DefaultSteps       = 1000
	DefaultMaxLength   = 2000
	DefaultStride      = 10
	DefaultSeed        = 20260828
)

type Config struct {
	System   string         `yaml:"system"` //"butane" or "doublewell"
	Dynamics DynamicsConfig `yaml:"dynamics"`
	Sampling SamplingConfig `yaml:"sampling"`
	CVs      []CVConfig     `yaml:"cvs"`
	States   []StateConfig  `yaml:"states"`
	Files    FilesConfig    `yaml:"files"`
}

type DynamicsConfig struct {
	Integrator  string  `yaml:"integrator"` //"langevin" or "verlet"
	Temperature float64 `yaml:"temperature"`
	Gamma       float64 `yaml:"gamma"` //friction, 1/AKMA time
	Dt          float64 `yaml:"dt"`    //AKMA time units
}

type SamplingConfig struct {
	Steps     int    `yaml:"steps"`
	MaxLength int    `yaml:"max_length"` //frames
	Stride    int    `yaml:"stride"`     //integration steps per stored frame
	Seed      uint64 `yaml:"seed"`
}

// CVConfig defines a collective variable. Atoms may be given as indices
// or, when the system's topology has named atoms, as names.
type CVConfig struct {
	Name      string   `yaml:"name"`
	Kind      string   `yaml:"kind"` //"torsion", "distance", "component" or "comdistance"
	Atoms     []int    `yaml:"atoms,omitempty"`
	AtomNames []string `yaml:"atom_names,omitempty"`
	AtomsB    []int    `yaml:"atoms_b,omitempty"` //second group, for "comdistance"
	Axis      int      `yaml:"axis,omitempty"`    //for "component": 0, 1 or 2
}

// StateConfig defines a stable state as a range of one CV. For periodic
// CVs the numbers are in degrees and the range may cross the boundary.
type StateConfig struct {
	Name string  `yaml:"name"`
	CV   string  `yaml:"cv"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

type FilesConfig struct {
	InitialPath string `yaml:"initial_path"`
	Archive     string `yaml:"archive"`
	DensityPlot string `yaml:"density_plot,omitempty"`
	LengthPlot  string `yaml:"length_plot,omitempty"`
}

// DefaultConfig returns the configuration of the stock butane run: the
// C1-C2-C3-C4 torsion as CV, trans and gauche+ as the stable states.
func DefaultConfig() *Config {
	return &Config{
		System: "butane",
		Dynamics: DynamicsConfig{
			Integrator:  "langevin",
			Temperature: DefaultTemperature,
			Gamma:       DefaultGamma,
			Dt:          DefaultDt,
		},
		Sampling: SamplingConfig{
			Steps:     DefaultSteps,
			MaxLength: DefaultMaxLength,
			Stride:    DefaultStride,
			Seed:      DefaultSeed,
		},
		CVs: []CVConfig{
			{Name: "phi", Kind: "torsion", AtomNames: []string{"C1", "C2", "C3", "C4"}},
		},
		States: []StateConfig{
			{Name: "trans", CV: "phi", Min: 150, Max: -150}, //crosses the boundary
			{Name: "gauche+", CV: "phi", Min: 30, Max: 90},
		},
		Files: FilesConfig{
			InitialPath: "initial.ptf.zst",
			Archive:     "paths.ptf.zst",
		},
	}
}

// Load reads a YAML configuration, on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for the errors the builders can not
// express well: unknown kinds, states referring to undefined CVs,
// nonsensical numbers.
func (c *Config) Validate() error {
	if c.System != "butane" && c.System != "doublewell" {
		return fmt.Errorf("config: unknown system %q", c.System)
	}
	if c.Dynamics.Integrator != "langevin" && c.Dynamics.Integrator != "verlet" {
		return fmt.Errorf("config: unknown integrator %q", c.Dynamics.Integrator)
	}
	if c.Dynamics.Dt <= 0 || c.Dynamics.Temperature <= 0 {
		return fmt.Errorf("config: dt and temperature must be positive")
	}
	if c.Sampling.Steps <= 0 || c.Sampling.MaxLength < 3 || c.Sampling.Stride <= 0 {
		return fmt.Errorf("config: steps and stride must be positive, max_length at least 3")
	}
	if len(c.CVs) == 0 {
		return fmt.Errorf("config: at least one CV is required")
	}
	names := make(map[string]bool)
	for _, v := range c.CVs {
		switch v.Kind {
		case "torsion", "distance", "component", "comdistance":
		default:
			return fmt.Errorf("config: unknown CV kind %q for %q", v.Kind, v.Name)
		}
		if len(v.Atoms) == 0 && len(v.AtomNames) == 0 {
			return fmt.Errorf("config: CV %q defines no atoms", v.Name)
		}
		names[v.Name] = true
	}
	if len(c.States) < 2 {
		return fmt.Errorf("config: at least two states are required")
	}
	for _, s := range c.States {
		if !names[s.CV] {
			return fmt.Errorf("config: state %q refers to undefined CV %q", s.Name, s.CV)
		}
	}
	return nil
}
