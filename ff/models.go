/*
 * models.go, part of goTPS.
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

package ff

import (
	"math"

	chem "github.com/rmera/gotps"
	v3 "github.com/rmera/gotps/v3"
)

//The model systems are built in code so the sampler and its tests run
//without external topology or parameter files.

// Butane returns a united-atom butane: topology, force field and a
// starting conformation with the C1-C2-C3-C4 torsion in trans (180
// degrees). The first bead is tethered so the molecule does not drift.
// Parameters are Ryckaert-Bellemans-like, simplified to a 2-term cosine
// series.
func Butane() (*chem.Topology, *System, *v3.Matrix) {
	ats := []*chem.Atom{
		{Name: "C1", Molname: "BUT", Molid: 1, Mass: 15.035, Symbol: "C"},
		{Name: "C2", Molname: "BUT", Molid: 1, Mass: 14.027, Symbol: "C"},
		{Name: "C3", Molname: "BUT", Molid: 1, Mass: 14.027, Symbol: "C"},
		{Name: "C4", Molname: "BUT", Molid: 1, Mass: 15.035, Symbol: "C"},
	}
	top, _ := chem.NewTopology(ats) //the atom slice is hardcoded, no error possible
	const (
		r0     = 1.53    //A
		kbond  = 222.5   //kcal/mol/A^2
		theta0 = 114.0   //degrees
		kangle = 62.1    //kcal/mol/rad^2
	)
	sys := NewSystem(
		&Bond{I: 0, J: 1, K: kbond, R0: r0},
		&Bond{I: 1, J: 2, K: kbond, R0: r0},
		&Bond{I: 2, J: 3, K: kbond, R0: r0},
		&AngleTerm{I: 0, J: 1, K: 2, Ktheta: kangle, Theta0: theta0 * chem.Deg2Rad},
		&AngleTerm{I: 1, J: 2, K: 3, Ktheta: kangle, Theta0: theta0 * chem.Deg2Rad},
		//trans global minimum, gauche local minima, ~3.3 kcal/mol cis barrier
		&Torsion{I: 0, J: 1, K: 2, L: 3, Kphi: 1.4, N: 3, Delta: 0},
		&Torsion{I: 0, J: 1, K: 2, L: 3, Kphi: 0.25, N: 1, Delta: math.Pi},
		&Tether{Atom: 0, Point: [3]float64{0, 0, 0}, K: 5.0},
	)
	coords := transButane(r0, theta0*chem.Deg2Rad)
	return top, sys, coords
}

// transButane builds cartesian coordinates for a C4 chain with the given
// bond length and angle, in the trans (phi=180) conformation.
func transButane(r0, theta float64) *v3.Matrix {
	//place the chain zig-zagging in the xy plane
	dx := r0 * math.Sin(theta/2)
	dy := r0 * math.Cos(theta/2)
	data := []float64{
		0, 0, 0,
		dx, dy, 0,
		2 * dx, 0, 0,
		3 * dx, dy, 0,
	}
	m, _ := v3.NewMatrix(data) //length is hardcoded, no error possible
	return m
}

// DoubleWellParticle returns a single tagged particle in a bistable
// potential along x, harmonically confined in y and z. The minima are at
// x=+-sqrt(b).
func DoubleWellParticle(a, b float64) (*chem.Topology, *System, *v3.Matrix) {
	ats := []*chem.Atom{{Name: "P", Molname: "DW", Molid: 1, Mass: 14.0, Symbol: "N"}}
	top, _ := chem.NewTopology(ats)
	sys := NewSystem(
		&DoubleWell{Atom: 0, Axis: 0, A: a, B: b},
		&yzConfine{k: 2.0},
	)
	coords, _ := v3.NewMatrix([]float64{-math.Sqrt(b), 0, 0})
	return top, sys, coords
}

//harmonic confinement on y and z of atom 0
type yzConfine struct {
	k float64
}

func (Y *yzConfine) Energy(c *v3.Matrix) float64 {
	y := c.At(0, 1)
	z := c.At(0, 2)
	return Y.k * (y*y + z*z)
}

func (Y *yzConfine) Forces(c, dst *v3.Matrix) {
	dst.Set(0, 1, dst.At(0, 1)-2*Y.k*c.At(0, 1))
	dst.Set(0, 2, dst.At(0, 2)-2*Y.k*c.At(0, 2))
}
