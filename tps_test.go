/*
 * tps_test.go, part of goTPS.
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
	"math"
	"testing"

	v3 "github.com/rmera/gotps/v3"
)

func TestDihedral(Te *testing.T) {
	//cis (0 degrees)
	a, _ := v3.NewMatrix([]float64{1, 1, 0})
	b, _ := v3.NewMatrix([]float64{1, 0, 0})
	c, _ := v3.NewMatrix([]float64{0, 0, 0})
	d, _ := v3.NewMatrix([]float64{0, 1, 0})
	dih := Dihedral(a, b, c, d)
	if math.Abs(dih) > 1e-10 {
		Te.Errorf("cis dihedral should be 0, got %f", dih*Rad2Deg)
	}
	//trans (180 degrees)
	d2, _ := v3.NewMatrix([]float64{0, -1, 0})
	dih = Dihedral(a, b, c, d2)
	if math.Abs(math.Abs(dih)-math.Pi) > 1e-10 {
		Te.Errorf("trans dihedral should be 180, got %f", dih*Rad2Deg)
	}
	//+90
	d3, _ := v3.NewMatrix([]float64{0, 0, 1})
	dih = Dihedral(a, b, c, d3)
	if math.Abs(math.Abs(dih)-math.Pi/2) > 1e-10 {
		Te.Errorf("dihedral should be +-90, got %f", dih*Rad2Deg)
	}
}

func TestAngle(Te *testing.T) {
	x, _ := v3.NewMatrix([]float64{1, 0, 0})
	y, _ := v3.NewMatrix([]float64{0, 1, 0})
	ang := Angle(x, y)
	if math.Abs(ang-math.Pi/2) > 1e-10 {
		Te.Errorf("Angle between x and y should be 90, got %f", ang*Rad2Deg)
	}
	x2, _ := v3.NewMatrix([]float64{2, 0, 0})
	if Angle(x, x2) != 0 {
		Te.Error("Angle between parallel vectors should be 0")
	}
}

func TestPathOps(Te *testing.T) {
	p := NewPath(3)
	for i := 0; i < 3; i++ {
		coords, _ := v3.NewMatrix([]float64{float64(i), 0, 0})
		p.Append(NewFrame(coords))
	}
	if p.Len() != 3 {
		Te.Error("Wrong path length")
	}
	if p.First().Coords.At(0, 0) != 0 || p.Last().Coords.At(0, 0) != 2 {
		Te.Error("Wrong path endpoints")
	}
	r := p.Reverse()
	if r.First().Coords.At(0, 0) != 2 {
		Te.Error("Reverse did not swap the endpoints")
	}
	s := p.Slice(0, 2).Splice(r)
	if s.Len() != 5 {
		Te.Error("Wrong spliced length", s.Len())
	}
	//A deep copy must not share frames
	c := p.Copy()
	c.Frame(0).Coords.Set(0, 0, 42)
	if p.Frame(0).Coords.At(0, 0) == 42 {
		Te.Error("Copy should not share coordinates with the original")
	}
}

func TestTopology(Te *testing.T) {
	ats := []*Atom{
		{Name: "C1", Mass: 15.035, Symbol: "C"},
		{Name: "C2", Mass: 14.027, Symbol: "C"},
	}
	top, err := NewTopology(ats)
	if err != nil {
		Te.Error(err)
	}
	m, err := top.Masses()
	if err != nil {
		Te.Error(err)
	}
	if len(m) != 2 || m[0] != 15.035 {
		Te.Error("Wrong masses", m)
	}
	if top.IndexOf("C2") != 1 || top.IndexOf("XX") != -1 {
		Te.Error("IndexOf gave the wrong index")
	}
	top.AddAtom(&Atom{Name: "C3"}) //no mass
	if _, err := top.Masses(); err == nil {
		Te.Error("A massless atom should make Masses fail")
	}
}
