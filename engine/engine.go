/*
 * engine.go, part of goTPS.
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

/*
Package engine propagates molecular configurations in time under a force
field and a (possibly thermostatted) integrator. It is the dynamics side
of a path sampling calculation: the shooting moves in the shoot package
drive an Engine to grow trial path segments.
*/
package engine

import (
	"context"
	"math"
	"math/rand/v2"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/ff"
	v3 "github.com/rmera/gotps/v3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Engine wraps a topology, a force field and an integrator into a
// propagator for frames.
type Engine struct {
	top    *chem.Topology
	field  ff.ForceField
	integ  Integrator
	temp   float64
	dt     float64
	masses []float64
	normal distuv.Normal
}

// New returns an Engine. temp is the reference temperature in K, used for
// the Maxwell-Boltzmann velocity draws; dt the timestep in AKMA units.
func New(top *chem.Topology, field ff.ForceField, integ Integrator, temp, dt float64, src rand.Source) (*Engine, error) {
	if top == nil || field == nil || integ == nil {
		return nil, chem.NewCError(chem.ErrNilData, "engine.New")
	}
	masses, err := top.Masses()
	if err != nil {
		return nil, chem.ErrDecorate(err, "engine.New")
	}
	return &Engine{
		top:    top,
		field:  field,
		integ:  integ,
		temp:   temp,
		dt:     dt,
		masses: masses,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}, nil
}

// Topology returns the topology the engine propagates.
func (E *Engine) Topology() *chem.Topology { return E.top }

// Temperature returns the reference temperature of the engine.
func (E *Engine) Temperature() float64 { return E.temp }

// Step advances the frame by one timestep, in place. The frame must carry
// velocities.
func (E *Engine) Step(s *chem.Frame) {
	E.integ.Step(E.field, E.masses, s, E.dt)
}

// MaxwellBoltzmann replaces the velocities of s with a fresh draw from
// the Maxwell-Boltzmann distribution at the engine temperature. The total
// momentum is not removed: the model systems are tethered, not free.
func (E *Engine) MaxwellBoltzmann(s *chem.Frame) {
	n := s.Len()
	if s.Vel == nil || s.Vel.NVecs() != n {
		s.Vel = v3.Zeros(n)
	}
	kT := chem.KB * E.temp
	for i := 0; i < n; i++ {
		sigma := math.Sqrt(kT / E.masses[i])
		for j := 0; j < 3; j++ {
			s.Vel.Set(i, j, sigma*E.normal.Rand())
		}
	}
}

// KineticEnergy returns the kinetic energy of the frame in kcal/mol.
func (E *Engine) KineticEnergy(s *chem.Frame) float64 {
	var ke float64
	for i := 0; i < s.Len(); i++ {
		v := s.Vel.VecView(i).Norm(0)
		ke += 0.5 * E.masses[i] * v * v
	}
	return ke
}

// InstantTemperature returns the instantaneous temperature of the frame
// in K, from the equipartition theorem over 3N degrees of freedom.
func (E *Engine) InstantTemperature(s *chem.Frame) float64 {
	ndf := float64(3 * s.Len())
	return 2 * E.KineticEnergy(s) / (ndf * chem.KB)
}

// PotentialEnergy returns the potential energy of the frame in kcal/mol.
func (E *Engine) PotentialEnergy(s *chem.Frame) float64 {
	return E.field.Energy(s.Coords)
}

// Propagate advances s for nsteps timesteps, recording a coordinate-only
// copy of the frame every stride steps (including the starting frame).
// The context stops the integration early; the path grown so far is
// returned along with ctx.Err().
func (E *Engine) Propagate(ctx context.Context, s *chem.Frame, nsteps, stride int) (*chem.Path, error) {
	if stride < 1 {
		stride = 1
	}
	path := chem.NewPath(nsteps/stride + 1)
	path.Append(snapshot(s))
	for i := 1; i <= nsteps; i++ {
		select {
		case <-ctx.Done():
			return path, ctx.Err()
		default:
		}
		E.Step(s)
		if i%stride == 0 {
			path.Append(snapshot(s))
		}
	}
	return path, nil
}

// PropagateUntil advances s until the recorded frame satisfies stop, or
// until maxFrames frames have been recorded. It returns the grown
// segment, whether stop was reached, and an error (only from context
// cancellation). The starting frame is NOT included in the segment, so
// the caller can splice it directly after the shooting point.
func (E *Engine) PropagateUntil(ctx context.Context, s *chem.Frame, stop func(*chem.Frame) bool, maxFrames, stride int) (*chem.Path, bool, error) {
	if stride < 1 {
		stride = 1
	}
	path := chem.NewPath(0)
	for path.Len() < maxFrames {
		select {
		case <-ctx.Done():
			return path, false, ctx.Err()
		default:
		}
		for k := 0; k < stride; k++ {
			E.Step(s)
		}
		f := snapshot(s)
		path.Append(f)
		if stop(f) {
			return path, true, nil
		}
	}
	return path, false, nil
}

//snapshot copies positions and box, not velocities: paths store
//configurations only, as one-way shooting redraws all velocities.
func snapshot(s *chem.Frame) *chem.Frame {
	ret := &chem.Frame{Coords: s.Coords.Clone()}
	if s.Box != nil {
		ret.Box = make([]float64, len(s.Box))
		copy(ret.Box, s.Box)
	}
	return ret
}
