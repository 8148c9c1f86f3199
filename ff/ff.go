/*
 * ff.go, part of goTPS.
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

// Package ff implements classical force-field terms (bonds, angles,
// torsions, Lennard-Jones plus Coulomb nonbonded and external potentials)
// and a couple of built-in model systems. Energies are in kcal/mol,
// distances in Angstroms.
package ff

import v3 "github.com/rmera/gotps/v3"

// ForceField evaluates the potential energy of a set of coordinates and
// the corresponding forces.
type ForceField interface {

	//Energy returns the potential energy for the given coordinates.
	Energy(c *v3.Matrix) float64

	//Forces accumulates the forces for the given coordinates into dst,
	//which must have the same number of vectors as c. dst is NOT zeroed
	//first, so terms can be composed.
	Forces(c, dst *v3.Matrix)
}

// System is a force field assembled from independent terms.
type System struct {
	Terms []ForceField
}

// NewSystem returns a System with the given terms.
func NewSystem(terms ...ForceField) *System {
	return &System{Terms: terms}
}

// AddTerm appends a term to the system.
func (S *System) AddTerm(t ForceField) {
	S.Terms = append(S.Terms, t)
}

// Energy returns the sum of the energies of all terms.
func (S *System) Energy(c *v3.Matrix) float64 {
	var e float64
	for _, t := range S.Terms {
		e += t.Energy(c)
	}
	return e
}

// Forces accumulates the forces of all terms into dst.
func (S *System) Forces(c, dst *v3.Matrix) {
	for _, t := range S.Terms {
		t.Forces(c, dst)
	}
}

const fdh = 1e-5 //step for finite-difference gradients

// numForces accumulates into dst the negative gradient of the energy of t
// with respect to the coordinates of the atoms in indices, by central
// differences. Used by the angular terms, where the analytic gradient
// buys nothing at the system sizes this package targets.
func numForces(t ForceField, c, dst *v3.Matrix, indices []int) {
	for _, i := range indices {
		for j := 0; j < 3; j++ {
			orig := c.At(i, j)
			c.Set(i, j, orig+fdh)
			eplus := t.Energy(c)
			c.Set(i, j, orig-fdh)
			eminus := t.Energy(c)
			c.Set(i, j, orig)
			dst.Set(i, j, dst.At(i, j)-(eplus-eminus)/(2*fdh))
		}
	}
}
