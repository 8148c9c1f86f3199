/*
 * interfaces.go, part of goTPS.
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

import v3 "github.com/rmera/gotps/v3"

// Traj is an interface for a frame-by-frame readable trajectory source.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, or discards it if output is
	//nil. It can also fill the (optional) box with the box vectors, if
	//present in the frame.
	Next(output *v3.Matrix, box ...[]float64) error

	//Len returns the number of atoms per frame.
	Len() int
}

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a column vector with the masses of all atoms
	Masses() ([]float64, error)
}

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows adding and retrieving info from
// the error, without changing its type or wrapping it around something
// else. The decoration slice should contain a list of the functions in the
// calling stack, plus, for each function, any relevant information, in the
// format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it should just return the current decoration, not add the empty string to it.
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless
// end-of-trajectory errors so they can be filtered in a typeswitch that
// looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
