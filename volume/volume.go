/*
 * volume.go, part of goTPS.
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
Package volume defines stable-state regions over collective variables. A
Volume is a predicate over frames; ranges over periodic variables wrap at
the period boundary, so a range [150, 210] over a torsion in (-180, 180]
correctly contains both 170 and -170.
*/
package volume

import (
	"fmt"
	"math"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/cv"
)

// Volume is a named region of configuration space.
type Volume interface {
	Name() string

	//Contains reports whether the frame lies inside the volume.
	Contains(f *chem.Frame) bool
}

// CVRange is an interval constraint on one collective variable. For a
// periodic variable the bounds are wrapped into the period, so Min > Max
// is meaningful and denotes an interval crossing the boundary.
type CVRange struct {
	name     string
	v        cv.CV
	min, max float64
}

// NewCVRange returns a range volume over the variable v. For periodic
// variables the bounds may be given outside the period; they are wrapped.
func NewCVRange(name string, v cv.CV, min, max float64) *CVRange {
	if pmin, pmax, ok := v.Period(); ok {
		min = wrap(min, pmin, pmax)
		max = wrap(max, pmin, pmax)
	}
	return &CVRange{name: name, v: v, min: min, max: max}
}

func (R *CVRange) Name() string { return R.name }

// Bounds returns the (possibly wrapped) bounds of the range.
func (R *CVRange) Bounds() (float64, float64) { return R.min, R.max }

func (R *CVRange) Contains(f *chem.Frame) bool {
	val := R.v.Evaluate(f)
	if pmin, pmax, ok := R.v.Period(); ok {
		val = wrap(val, pmin, pmax)
		if R.min > R.max { //the interval crosses the period boundary
			return val >= R.min || val <= R.max
		}
	}
	return val >= R.min && val <= R.max
}

func (R *CVRange) String() string {
	return fmt.Sprintf("%s: %s in [%g, %g]", R.name, R.v.Name(), R.min, R.max)
}

//wrap brings x into [pmin, pmax)
func wrap(x, pmin, pmax float64) float64 {
	period := pmax - pmin
	return x - period*math.Floor((x-pmin)/period)
}

// Intersection is a volume containing a frame only when every member
// volume contains it.
type Intersection struct {
	name    string
	members []Volume
}

func NewIntersection(name string, members ...Volume) *Intersection {
	return &Intersection{name: name, members: members}
}

func (I *Intersection) Name() string { return I.name }

func (I *Intersection) Contains(f *chem.Frame) bool {
	for _, m := range I.members {
		if !m.Contains(f) {
			return false
		}
	}
	return true
}

// Union is a volume containing a frame when any member volume contains it.
type Union struct {
	name    string
	members []Volume
}

func NewUnion(name string, members ...Volume) *Union {
	return &Union{name: name, members: members}
}

func (U *Union) Name() string { return U.name }

func (U *Union) Contains(f *chem.Frame) bool {
	for _, m := range U.members {
		if m.Contains(f) {
			return true
		}
	}
	return false
}
