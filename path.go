/*
 * path.go, part of goTPS.
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

	v3 "github.com/rmera/gotps/v3"
)

// Frame is one point of a trajectory: the coordinates of all atoms, plus,
// optionally, their velocities and the box vectors (9 numbers, row-major).
type Frame struct {
	Coords *v3.Matrix
	Vel    *v3.Matrix
	Box    []float64
}

// NewFrame returns a Frame with the given coordinates and no velocities.
func NewFrame(coords *v3.Matrix) *Frame {
	return &Frame{Coords: coords}
}

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	if F.Coords == nil {
		return 0
	}
	return F.Coords.NVecs()
}

// Copy returns a deep copy of the frame.
func (F *Frame) Copy() *Frame {
	ret := new(Frame)
	if F.Coords != nil {
		ret.Coords = F.Coords.Clone()
	}
	if F.Vel != nil {
		ret.Vel = F.Vel.Clone()
	}
	if F.Box != nil {
		ret.Box = make([]float64, len(F.Box))
		copy(ret.Box, F.Box)
	}
	return ret
}

// Path is an ordered sequence of frames. The direction matters: the first
// and last frames are the endpoints used to classify the path against a
// path ensemble.
type Path struct {
	frames []*Frame
}

// NewPath returns an empty path with capacity for n frames.
func NewPath(n int) *Path {
	return &Path{frames: make([]*Frame, 0, n)}
}

// Append adds frames at the end of the path.
func (P *Path) Append(frames ...*Frame) {
	P.frames = append(P.frames, frames...)
}

// Len returns the number of frames in the path.
func (P *Path) Len() int {
	return len(P.frames)
}

// Frame returns the ith frame of the path. Panics if out of range.
func (P *Path) Frame(i int) *Frame {
	if i < 0 || i >= len(P.frames) {
		panic(fmt.Sprintf("Path: Requested frame %d out of bounds (len %d)", i, len(P.frames)))
	}
	return P.frames[i]
}

// First returns the first frame of the path, or nil if the path is empty.
func (P *Path) First() *Frame {
	if len(P.frames) == 0 {
		return nil
	}
	return P.frames[0]
}

// Last returns the last frame of the path, or nil if the path is empty.
func (P *Path) Last() *Frame {
	if len(P.frames) == 0 {
		return nil
	}
	return P.frames[len(P.frames)-1]
}

// Slice returns a new path with the frames [i,j) of the receiver. The
// frames are shared, not copied.
func (P *Path) Slice(i, j int) *Path {
	if i < 0 || j > len(P.frames) || i > j {
		panic(fmt.Sprintf("Path: Invalid slice bounds %d:%d (len %d)", i, j, len(P.frames)))
	}
	ret := NewPath(j - i)
	ret.frames = append(ret.frames, P.frames[i:j]...)
	return ret
}

// Reverse returns a new path with the frames of the receiver in reverse
// order. The frames are shared, not copied.
func (P *Path) Reverse() *Path {
	ret := NewPath(len(P.frames))
	for i := len(P.frames) - 1; i >= 0; i-- {
		ret.frames = append(ret.frames, P.frames[i])
	}
	return ret
}

// Splice returns a new path with the frames of the receiver followed by
// the frames of Q. The frames are shared, not copied.
func (P *Path) Splice(Q *Path) *Path {
	ret := NewPath(len(P.frames) + Q.Len())
	ret.frames = append(ret.frames, P.frames...)
	ret.frames = append(ret.frames, Q.frames...)
	return ret
}

// Copy returns a deep copy of the path.
func (P *Path) Copy() *Path {
	ret := NewPath(len(P.frames))
	for _, f := range P.frames {
		ret.frames = append(ret.frames, f.Copy())
	}
	return ret
}

// NAtoms returns the number of atoms per frame, or 0 for an empty path.
func (P *Path) NAtoms() int {
	if len(P.frames) == 0 {
		return 0
	}
	return P.frames[0].Len()
}

// PathFromTraj reads every frame of t into a new path. A LastFrameError
// from t marks the normal end of the trajectory. Velocities are not read,
// as trajectory files store only positions and box vectors.
func PathFromTraj(t Traj) (*Path, error) {
	if t == nil || !t.Readable() {
		return nil, CError{"goTPS: Trajectory not readable", []string{"PathFromTraj"}}
	}
	ret := NewPath(0)
	for {
		coords := v3.Zeros(t.Len())
		box := make([]float64, 9)
		err := t.Next(coords, box)
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			return nil, ErrDecorate(err, "PathFromTraj")
		}
		ret.Append(&Frame{Coords: coords, Box: box})
	}
	if ret.Len() == 0 {
		return nil, CError{"goTPS: Empty trajectory", []string{"PathFromTraj"}}
	}
	return ret, nil
}
