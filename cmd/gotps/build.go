/*
 * build.go, part of goTPS.
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

package main

import (
	"fmt"
	"math/rand/v2"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/config"
	"github.com/rmera/gotps/cv"
	"github.com/rmera/gotps/engine"
	"github.com/rmera/gotps/ff"
	"github.com/rmera/gotps/network"
	"github.com/rmera/gotps/volume"
	v3 "github.com/rmera/gotps/v3"
)

//run holds everything a sampling run needs, built from the YAML config.
type run struct {
	cfg    *config.Config
	top    *chem.Topology
	sys    *ff.System
	coords *v3.Matrix //reference conformation of the model
	eng    *engine.Engine
	cvs    []cv.CV
	states []volume.Volume
	net    *network.Network
}

func buildRun(cfg *config.Config) (*run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &run{cfg: cfg}
	switch cfg.System {
	case "butane":
		r.top, r.sys, r.coords = ff.Butane()
	case "doublewell":
		r.top, r.sys, r.coords = ff.DoubleWellParticle(1.5, 1.0)
	}
	var err error
	r.eng, err = buildEngine(cfg, r.top, r.sys, cfg.Dynamics.Temperature)
	if err != nil {
		return nil, err
	}
	r.cvs, err = buildCVs(cfg, r.top)
	if err != nil {
		return nil, err
	}
	r.states, err = buildStates(cfg, r.cvs)
	if err != nil {
		return nil, err
	}
	r.net, err = network.NewTPS(r.states[0], r.states[1])
	if err != nil {
		return nil, err
	}
	return r, nil
}

func buildEngine(cfg *config.Config, top *chem.Topology, sys *ff.System, temp float64) (*engine.Engine, error) {
	src := rand.NewPCG(cfg.Sampling.Seed, cfg.Sampling.Seed)
	var integ engine.Integrator
	switch cfg.Dynamics.Integrator {
	case "langevin":
		integ = engine.NewLangevin(cfg.Dynamics.Gamma, temp, src)
	case "verlet":
		integ = engine.NewVelocityVerlet()
	}
	return engine.New(top, sys, integ, temp, cfg.Dynamics.Dt, src)
}

func buildCVs(cfg *config.Config, top *chem.Topology) ([]cv.CV, error) {
	out := make([]cv.CV, 0, len(cfg.CVs))
	for _, c := range cfg.CVs {
		v, err := buildCV(c, top)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func buildCV(c config.CVConfig, top *chem.Topology) (cv.CV, error) {
	idx := c.Atoms
	if len(idx) == 0 {
		var err error
		idx, err = cv.IndicesByName(top, c.AtomNames...)
		if err != nil {
			return nil, err
		}
	}
	for _, i := range idx {
		if i < 0 || i >= top.Len() {
			return nil, fmt.Errorf("CV %q: atom index %d out of range for a %d-atom system", c.Name, i, top.Len())
		}
	}
	switch c.Kind {
	case "torsion":
		if len(idx) != 4 {
			return nil, fmt.Errorf("CV %q: a torsion needs 4 atoms, got %d", c.Name, len(idx))
		}
		return cv.NewTorsion(c.Name, idx[0], idx[1], idx[2], idx[3]), nil
	case "distance":
		if len(idx) != 2 {
			return nil, fmt.Errorf("CV %q: a distance needs 2 atoms, got %d", c.Name, len(idx))
		}
		return cv.NewDistance(c.Name, idx[0], idx[1]), nil
	case "component":
		if len(idx) != 1 {
			return nil, fmt.Errorf("CV %q: a component needs 1 atom, got %d", c.Name, len(idx))
		}
		if c.Axis < 0 || c.Axis > 2 {
			return nil, fmt.Errorf("CV %q: axis must be 0, 1 or 2", c.Name)
		}
		return cv.NewComponent(c.Name, idx[0], c.Axis), nil
	case "comdistance":
		if len(idx) == 0 || len(c.AtomsB) == 0 {
			return nil, fmt.Errorf("CV %q: a COM distance needs two non-empty atom groups", c.Name)
		}
		return cv.NewCOMDistance(c.Name, top, idx, c.AtomsB)
	}
	return nil, fmt.Errorf("CV %q: unknown kind %q", c.Name, c.Kind)
}

func buildStates(cfg *config.Config, cvs []cv.CV) ([]volume.Volume, error) {
	byName := make(map[string]cv.CV, len(cvs))
	for _, v := range cvs {
		byName[v.Name()] = v
	}
	out := make([]volume.Volume, 0, len(cfg.States))
	for _, s := range cfg.States {
		v, ok := byName[s.CV]
		if !ok {
			return nil, fmt.Errorf("state %q refers to undefined CV %q", s.Name, s.CV)
		}
		out = append(out, volume.NewCVRange(s.Name, v, s.Min, s.Max))
	}
	return out, nil
}

//stateOf names the state a frame belongs to, or "(none)".
func stateOf(net *network.Network, f *chem.Frame) string {
	if s := net.InState(f); s != nil {
		return s.Name()
	}
	return "(none)"
}
