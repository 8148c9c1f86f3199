/*
 * integrators.go, part of goTPS.
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

package engine

import (
	"math"
	"math/rand/v2"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/ff"
	v3 "github.com/rmera/gotps/v3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Integrator advances a frame (coordinates plus velocities) by one
// timestep under the given force field.
type Integrator interface {
	Step(field ff.ForceField, masses []float64, s *chem.Frame, dt float64)
}

// VelocityVerlet is the plain microcanonical velocity-Verlet stepper.
type VelocityVerlet struct {
	forces *v3.Matrix //scratch
}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (V *VelocityVerlet) Step(field ff.ForceField, masses []float64, s *chem.Frame, dt float64) {
	n := s.Len()
	if V.forces == nil || V.forces.NVecs() != n {
		V.forces = v3.Zeros(n)
	}
	V.forces.Zero()
	field.Forces(s.Coords, V.forces)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			v := s.Vel.At(i, j) + 0.5*dt*V.forces.At(i, j)/masses[i]
			s.Vel.Set(i, j, v)
			s.Coords.Set(i, j, s.Coords.At(i, j)+dt*v)
		}
	}
	V.forces.Zero()
	field.Forces(s.Coords, V.forces)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			s.Vel.Set(i, j, s.Vel.At(i, j)+0.5*dt*V.forces.At(i, j)/masses[i])
		}
	}
}

// Langevin is a thermostatted BAOAB Langevin stepper. Gamma is the
// friction in inverse AKMA time units, Temp the bath temperature in K.
type Langevin struct {
	Gamma  float64
	Temp   float64
	normal distuv.Normal
	forces *v3.Matrix //scratch
}

// NewLangevin returns a Langevin stepper with its own random stream.
func NewLangevin(gamma, temp float64, src rand.Source) *Langevin {
	return &Langevin{
		Gamma:  gamma,
		Temp:   temp,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

func (L *Langevin) Step(field ff.ForceField, masses []float64, s *chem.Frame, dt float64) {
	n := s.Len()
	if L.forces == nil || L.forces.NVecs() != n {
		L.forces = v3.Zeros(n)
	}
	kT := chem.KB * L.Temp
	c1 := math.Exp(-L.Gamma * dt)
	c2 := math.Sqrt(1 - c1*c1)
	//B
	L.forces.Zero()
	field.Forces(s.Coords, L.forces)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			s.Vel.Set(i, j, s.Vel.At(i, j)+0.5*dt*L.forces.At(i, j)/masses[i])
		}
	}
	//A
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			s.Coords.Set(i, j, s.Coords.At(i, j)+0.5*dt*s.Vel.At(i, j))
		}
	}
	//O
	for i := 0; i < n; i++ {
		sigma := math.Sqrt(kT / masses[i])
		for j := 0; j < 3; j++ {
			s.Vel.Set(i, j, c1*s.Vel.At(i, j)+c2*sigma*L.normal.Rand())
		}
	}
	//A
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			s.Coords.Set(i, j, s.Coords.At(i, j)+0.5*dt*s.Vel.At(i, j))
		}
	}
	//B
	L.forces.Zero()
	field.Forces(s.Coords, L.forces)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			s.Vel.Set(i, j, s.Vel.At(i, j)+0.5*dt*L.forces.At(i, j)/masses[i])
		}
	}
}
