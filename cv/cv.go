/*
 * cv.go, part of goTPS.
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
Package cv implements collective variables: pure functions from a frame to
a scalar, defined by atom-index tuples. Stable states (package volume) are
regions in the space of one or more collective variables.
*/
package cv

import (
	"fmt"

	chem "github.com/rmera/gotps"
	v3 "github.com/rmera/gotps/v3"
)

// CV is a collective variable.
type CV interface {

	//Name returns the name the variable is referred to by in states and
	//reports.
	Name() string

	//Evaluate maps a frame to the scalar value of the variable.
	Evaluate(f *chem.Frame) float64

	//Period returns the periodic range of the variable and true, or
	//zeros and false for a non-periodic variable.
	Period() (min, max float64, periodic bool)
}

// Torsion is a dihedral angle over four atom indices, in degrees, in
// (-180, 180].
type Torsion struct {
	name       string
	A, B, C, D int
}

// NewTorsion returns a Torsion collective variable over the given atom
// indices.
func NewTorsion(name string, a, b, c, d int) *Torsion {
	return &Torsion{name: name, A: a, B: b, C: c, D: d}
}

// TorsionFromNames builds a Torsion by looking up four atom names in the
// topology. It returns an error if any name is absent.
func TorsionFromNames(name string, mol chem.Atomer, atnames ...string) (*Torsion, error) {
	if len(atnames) != 4 {
		return nil, fmt.Errorf("cv: a torsion takes exactly 4 atom names, got %d", len(atnames))
	}
	idx, err := IndicesByName(mol, atnames...)
	if err != nil {
		return nil, chem.ErrDecorate(err, "TorsionFromNames")
	}
	return NewTorsion(name, idx[0], idx[1], idx[2], idx[3]), nil
}

func (T *Torsion) Name() string { return T.name }

func (T *Torsion) Evaluate(f *chem.Frame) float64 {
	c := f.Coords
	phi := chem.Dihedral(c.VecView(T.A), c.VecView(T.B), c.VecView(T.C), c.VecView(T.D))
	return phi * chem.Rad2Deg
}

func (T *Torsion) Period() (float64, float64, bool) {
	return -180, 180, true
}

// Distance is the Euclidean distance between two atoms, in Angstroms.
type Distance struct {
	name string
	A, B int
}

func NewDistance(name string, a, b int) *Distance {
	return &Distance{name: name, A: a, B: b}
}

func (D *Distance) Name() string { return D.name }

func (D *Distance) Evaluate(f *chem.Frame) float64 {
	return chem.Distance(f.Coords.VecView(D.A), f.Coords.VecView(D.B))
}

func (D *Distance) Period() (float64, float64, bool) {
	return 0, 0, false
}

// COMDistance is the distance between the mass-weighted centers of two
// atom groups, in Angstroms.
type COMDistance struct {
	name           string
	groupA, groupB []int
	massA, massB   []float64
}

// NewCOMDistance returns a COMDistance between the atom groups a and b,
// with the masses taken from mol.
func NewCOMDistance(name string, mol chem.Masser, a, b []int) (*COMDistance, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("cv: a COM distance takes two non-empty atom groups")
	}
	masses, err := mol.Masses()
	if err != nil {
		return nil, chem.ErrDecorate(err, "NewCOMDistance")
	}
	pick := func(idx []int) ([]float64, error) {
		ret := make([]float64, len(idx))
		for i, v := range idx {
			if v < 0 || v >= len(masses) {
				return nil, fmt.Errorf("cv: atom index %d out of range", v)
			}
			ret[i] = masses[v]
		}
		return ret, nil
	}
	ma, err := pick(a)
	if err != nil {
		return nil, err
	}
	mb, err := pick(b)
	if err != nil {
		return nil, err
	}
	return &COMDistance{name: name, groupA: a, groupB: b, massA: ma, massB: mb}, nil
}

func (C *COMDistance) Name() string { return C.name }

func (C *COMDistance) Evaluate(f *chem.Frame) float64 {
	ga := v3.Zeros(len(C.groupA))
	ga.SomeVecs(f.Coords, C.groupA)
	gb := v3.Zeros(len(C.groupB))
	gb.SomeVecs(f.Coords, C.groupB)
	ca, _ := chem.CenterOfMass(ga, C.massA)
	cb, _ := chem.CenterOfMass(gb, C.massB)
	return chem.Distance(ca, cb)
}

func (C *COMDistance) Period() (float64, float64, bool) {
	return 0, 0, false
}

// Component is one cartesian component of one atom. It is mostly useful
// for model systems, such as a particle in a double-well potential.
type Component struct {
	name string
	Atom int
	Axis int //0, 1 or 2
}

func NewComponent(name string, atom, axis int) *Component {
	return &Component{name: name, Atom: atom, Axis: axis}
}

func (C *Component) Name() string { return C.name }

func (C *Component) Evaluate(f *chem.Frame) float64 {
	return f.Coords.At(C.Atom, C.Axis)
}

func (C *Component) Period() (float64, float64, bool) {
	return 0, 0, false
}

// IndicesByName returns the indices of the first atoms matching each of
// the given names, in order. It returns an error naming the first name
// with no match.
func IndicesByName(mol chem.Atomer, names ...string) ([]int, error) {
	if mol == nil {
		return nil, chem.NewCError(chem.ErrNilData, "IndicesByName")
	}
	ret := make([]int, 0, len(names))
	for _, n := range names {
		found := -1
		for i := 0; i < mol.Len(); i++ {
			if mol.Atom(i).Name == n {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, chem.NewCError(fmt.Sprintf("cv: No atom named %q in the topology", n), "IndicesByName")
		}
		ret = append(ret, found)
	}
	return ret, nil
}
