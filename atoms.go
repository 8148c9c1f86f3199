/*
 * atoms.go, part of goTPS.
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

import "fmt"

/**Note: Some functions here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong there, the program is
 * most likely wrong as a whole and should crash. Panics are related to
 * calling a method on a nil object or accessing out-of-bounds fields.**/

// Atom contains the static data for one atom. Coordinates are kept apart,
// in the frames of a Path.
type Atom struct {
	Name    string
	Id      int
	Molname string
	Molid   int
	Mass    float64
	Charge  float64
	Symbol  string
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	*Newat = *A
	return Newat
}

// Topology contains the information about a system which is not expected
// to change in time, i.e. everything except for coordinates and
// velocities.
type Topology struct {
	Atoms []*Atom
}

// NewTopology makes a topology from the given atoms. It returns an error
// if the slice is nil.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, CError{ErrNilData, []string{"NewTopology"}}
	}
	top := new(Topology)
	top.Atoms = ats
	return top, nil
}

// Atom returns the Atom corresponding to the index i of the Atom slice in
// the Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Masses returns a slice with the masses of all atoms, or an error if
// any of them is absent or not valid.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		if at.Mass <= 0 {
			return nil, CError{fmt.Sprintf("goTPS: Atom %d (%s) has no valid mass", i, at.Name), []string{"Topology.Masses"}}
		}
		mass[i] = at.Mass
	}
	return mass, nil
}

// CopyAtoms returns a copy of the topology.
func (T *Topology) CopyAtoms() *Topology {
	Top := new(Topology)
	Top.Atoms = make([]*Atom, T.Len())
	for key, val := range T.Atoms {
		Top.Atoms[key] = val.Copy()
	}
	return Top
}

// AddAtom appends an atom at the end of the topology.
func (T *Topology) AddAtom(at *Atom) {
	T.Atoms = append(T.Atoms, at)
}

// IndexOf returns the index of the first atom with the given name, or -1
// if no atom has that name.
func (T *Topology) IndexOf(name string) int {
	for i, at := range T.Atoms {
		if at.Name == name {
			return i
		}
	}
	return -1
}
