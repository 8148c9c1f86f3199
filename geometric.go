/*
 * geometric.go, part of goTPS.
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

package tps

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gotps/v3"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Angle takes 2 vectors and calculates the angle in radians between them.
// It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(0) * v2.Norm(0)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

// Dihedral calculates the dihedral between the points a, b, c, d, where
// the first plane is defined by abc and the second by bcd. The result is
// in radians, in (-pi, pi].
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for number, point := range all {
		if point == nil {
			panic(fmt.Sprintf("Vector %d is nil", number))
		}
		pr, pc := point.Dims()
		if pr != 1 || pc != 3 {
			panic(fmt.Sprintf("Vector %d has invalid shape", number))
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(0), bma)
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Cross(bma, cmb)
	v2.Cross(cmb, dmc)
	cross := v3.Zeros(1)
	cross.Cross(cmb, dmc)
	first := bmascaled.Dot(cross)
	second := v1.Dot(v2)
	dihedral := math.Atan2(first, second)
	return dihedral
}

// Distance returns the Euclidean distance between the first vectors of a
// and b.
func Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(a, b)
	return d.Norm(0)
}

// CenterOfMass returns the center of mass of the coordinates in geometry
// weighted by mass, and an error. If mass is nil, it calculates the
// geometric center.
func CenterOfMass(geometry *v3.Matrix, mass []float64) (*v3.Matrix, error) {
	if geometry == nil {
		return nil, CError{ErrNilData, []string{"CenterOfMass"}}
	}
	gr, _ := geometry.Dims()
	if mass == nil { //just obtain the geometric center
		mass = make([]float64, gr)
		for i := range mass {
			mass[i] = 1.0
		}
	}
	if len(mass) != gr {
		return nil, CError{ErrInconsistentData, []string{"CenterOfMass"}}
	}
	ret := v3.Zeros(1)
	var total float64
	for i := 0; i < gr; i++ {
		total += mass[i]
		for j := 0; j < 3; j++ {
			ret.Set(0, j, ret.At(0, j)+geometry.At(i, j)*mass[i])
		}
	}
	ret.Dense.Scale(1.0/total, ret.Dense)
	return ret, nil
}
