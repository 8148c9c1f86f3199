/*
 * terms.go, part of goTPS.
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

//Coulomb constant in kcal*A/(mol*e^2)
const coulombK = 332.0636

// Bond is a harmonic bond between atoms I and J:
// E = K(r-R0)^2.
type Bond struct {
	I, J int
	K    float64 //kcal/mol/A^2
	R0   float64 //A
}

func (B *Bond) Energy(c *v3.Matrix) float64 {
	r := chem.Distance(c.VecView(B.I), c.VecView(B.J))
	d := r - B.R0
	return B.K * d * d
}

func (B *Bond) Forces(c, dst *v3.Matrix) {
	vi := c.VecView(B.I)
	vj := c.VecView(B.J)
	rij := v3.Zeros(1)
	rij.Sub(vj, vi)
	r := rij.Norm(0)
	//f = -dE/dr = -2K(r-R0), along the bond
	f := -2 * B.K * (r - B.R0) / r
	for j := 0; j < 3; j++ {
		fj := f * rij.At(0, j)
		dst.Set(B.J, j, dst.At(B.J, j)+fj)
		dst.Set(B.I, j, dst.At(B.I, j)-fj)
	}
}

// AngleTerm is a harmonic angle I-J-K:
// E = Ktheta(theta-Theta0)^2, Theta0 in radians.
type AngleTerm struct {
	I, J, K int
	Ktheta  float64 //kcal/mol/rad^2
	Theta0  float64 //radians
}

func (A *AngleTerm) Energy(c *v3.Matrix) float64 {
	vji := v3.Zeros(1)
	vjk := v3.Zeros(1)
	vji.Sub(c.VecView(A.I), c.VecView(A.J))
	vjk.Sub(c.VecView(A.K), c.VecView(A.J))
	theta := chem.Angle(vji, vjk)
	d := theta - A.Theta0
	return A.Ktheta * d * d
}

func (A *AngleTerm) Forces(c, dst *v3.Matrix) {
	numForces(A, c, dst, []int{A.I, A.J, A.K})
}

// Torsion is a periodic dihedral I-J-K-L:
// E = Kphi(1+cos(N*phi-Delta)), Delta in radians.
type Torsion struct {
	I, J, K, L int
	Kphi       float64 //kcal/mol
	N          int
	Delta      float64 //radians
}

func (T *Torsion) Energy(c *v3.Matrix) float64 {
	phi := chem.Dihedral(c.VecView(T.I), c.VecView(T.J), c.VecView(T.K), c.VecView(T.L))
	return T.Kphi * (1 + math.Cos(float64(T.N)*phi-T.Delta))
}

func (T *Torsion) Forces(c, dst *v3.Matrix) {
	numForces(T, c, dst, []int{T.I, T.J, T.K, T.L})
}

// NBPair is one nonbonded pair: Lennard-Jones plus Coulomb.
type NBPair struct {
	I, J  int
	Eps   float64 //kcal/mol
	Sigma float64 //A
	QiQj  float64 //product of the charges, e^2
}

// NonBonded evaluates Lennard-Jones and Coulomb interactions over an
// explicit pair list, with a distance cutoff (no cutoff if Cutoff <= 0).
// The pairwise loop follows the usual MD convention of excluding bonded
// (1-2, 1-3) pairs; building the list is the caller's responsibility.
type NonBonded struct {
	Pairs  []NBPair
	Cutoff float64 //A
}

func (NB *NonBonded) pairEnergy(p NBPair, r float64) float64 {
	if NB.Cutoff > 0 && r > NB.Cutoff {
		return 0
	}
	sr6 := math.Pow(p.Sigma/r, 6)
	lj := 4 * p.Eps * (sr6*sr6 - sr6)
	coul := coulombK * p.QiQj / r
	return lj + coul
}

func (NB *NonBonded) Energy(c *v3.Matrix) float64 {
	var e float64
	for _, p := range NB.Pairs {
		r := chem.Distance(c.VecView(p.I), c.VecView(p.J))
		e += NB.pairEnergy(p, r)
	}
	return e
}

func (NB *NonBonded) Forces(c, dst *v3.Matrix) {
	rij := v3.Zeros(1)
	for _, p := range NB.Pairs {
		rij.Sub(c.VecView(p.J), c.VecView(p.I))
		r := rij.Norm(0)
		if NB.Cutoff > 0 && r > NB.Cutoff {
			continue
		}
		sr6 := math.Pow(p.Sigma/r, 6)
		//-dE/dr for LJ and Coulomb
		flj := 4 * p.Eps * (12*sr6*sr6 - 6*sr6) / r
		fcoul := coulombK * p.QiQj / (r * r)
		f := (flj + fcoul) / r
		for j := 0; j < 3; j++ {
			fj := f * rij.At(0, j)
			dst.Set(p.J, j, dst.At(p.J, j)+fj)
			dst.Set(p.I, j, dst.At(p.I, j)-fj)
		}
	}
}

// DoubleWell is an external bistable potential on one cartesian component
// of one atom: E = A(x^2-B)^2. The minima sit at x = +-sqrt(B), with a
// barrier of A*B^2 between them. It is the canonical test system for path
// sampling.
type DoubleWell struct {
	Atom int
	Axis int     //0, 1 or 2
	A    float64 //kcal/mol/A^4
	B    float64 //A^2
}

func (D *DoubleWell) Energy(c *v3.Matrix) float64 {
	x := c.At(D.Atom, D.Axis)
	d := x*x - D.B
	return D.A * d * d
}

func (D *DoubleWell) Forces(c, dst *v3.Matrix) {
	x := c.At(D.Atom, D.Axis)
	//f = -dE/dx = -4Ax(x^2-B)
	dst.Set(D.Atom, D.Axis, dst.At(D.Atom, D.Axis)-4*D.A*x*(x*x-D.B))
}

// Tether is a harmonic restraint pinning one atom to a point. It keeps
// the otherwise free degrees of freedom of the model systems bounded.
type Tether struct {
	Atom  int
	Point [3]float64
	K     float64 //kcal/mol/A^2
}

func (T *Tether) Energy(c *v3.Matrix) float64 {
	var e float64
	for j := 0; j < 3; j++ {
		d := c.At(T.Atom, j) - T.Point[j]
		e += T.K * d * d
	}
	return e
}

func (T *Tether) Forces(c, dst *v3.Matrix) {
	for j := 0; j < 3; j++ {
		d := c.At(T.Atom, j) - T.Point[j]
		dst.Set(T.Atom, j, dst.At(T.Atom, j)-2*T.K*d)
	}
}
