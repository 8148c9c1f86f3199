/*
 * v3.go, part of goTPS.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Matrix is a set of vectors in 3D space. Within the package it is
// understood that a "vector" is a row vector, i.e. the cartesian
// coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense embedded in A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps a gonum Dense into a Matrix. It panics if the Dense
// does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrShape)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, 3*vecs)
	return &Matrix{mat.NewDense(vecs, 3, f)}
}

// NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// VecView returns a view of the ith vector of the matrix. Changes in the
// view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of F spanning the rows i to i+r. Changes in the view
// are reflected in F and vice-versa.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

// SomeVecs puts in the receiver the vectors of A with the indexes in clist.
// The receiver must have len(clist) vectors. Unlike VecView, the receiver
// holds copies.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	fr, _ := F.Dims()
	ar, _ := A.Dims()
	if fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrShape)
		}
		F.SetRow(key, A.RawRowView(val))
	}
}

// SomeVecsSafe is as SomeVecs but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) error {
	var err error
	f := func() { F.SomeVecs(A, clist) }
	err = maybe(panicker(f))
	if err != nil {
		err = Error{err.Error(), []string{"SomeVecsSafe"}, true}
	}
	return err
}

// SetVecs sets the vectors of the receiver with indexes in clist to the
// vectors of A, in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= fr {
			panic(ErrShape)
		}
		F.SetRow(val, A.RawRowView(key))
	}
}

// SetMatrix puts the matrix A in the receiver starting from the ith vector
// of the receiver.
func (F *Matrix) SetMatrix(i int, A *Matrix) {
	ar, _ := A.Dims()
	if ar+i > F.NVecs() {
		panic(ErrShape)
	}
	for k := 0; k < ar; k++ {
		F.SetRow(k+i, A.RawRowView(k))
	}
}

// AddVec adds the row vector vec to each vector of A and puts the result in
// the receiver. vec must have one vector.
func (F *Matrix) AddVec(A, vec *Matrix) {
	vr, _ := vec.Dims()
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if vr != 1 || fr != ar {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < ar; i++ {
		a := A.RawRowView(i)
		F.SetRow(i, []float64{a[0] + v[0], a[1] + v[1], a[2] + v[2]})
	}
}

// SubVec subtracts the row vector vec from each vector of A and puts the
// result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	vr, _ := vec.Dims()
	if vr != 1 {
		panic(ErrShape)
	}
	neg := Zeros(1)
	neg.Scale(-1, vec)
	F.AddVec(A, neg)
}

// Cross puts the cross product of the first vectors of a and b in the
// receiver's first vector.
func (F *Matrix) Cross(a, b *Matrix) {
	ar, _ := a.Dims()
	br, _ := b.Dims()
	fr, _ := F.Dims()
	if ar != 1 || br != 1 || fr != 1 {
		panic(ErrShape)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

// Dot returns the dot product between the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	fr, _ := F.Dims()
	br, _ := B.Dims()
	if fr != 1 || br != 1 {
		panic(ErrShape)
	}
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

// Norm returns the Euclidean norm of the first vector of F.
func (F *Matrix) Norm(i int) float64 {
	//the i parameter is kept for compatibility with the old gonum API,
	//only the 2-norm is supported.
	v := F.RawRowView(0)
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit puts in the receiver the unit vector in the direction of the first
// vector of A.
func (F *Matrix) Unit(A *Matrix) {
	norm := A.Norm(0)
	if norm <= appzero {
		panic("v3: attempted to normalize a zero vector")
	}
	F.Scale(1.0/norm, A)
}

// Copy copies A into the receiver. Both must have the same dimensions.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

// Clone returns a newly allocated copy of F.
func (F *Matrix) Clone() *Matrix {
	r, _ := F.Dims()
	ret := Zeros(r)
	ret.Copy(F)
	return ret
}

// Stack puts A on top of B in the receiver, which must have as many
// vectors as A and B together.
func (F *Matrix) Stack(A, B *Matrix) {
	ar, _ := A.Dims()
	br, _ := B.Dims()
	fr, _ := F.Dims()
	if ar+br != fr {
		panic(ErrShape)
	}
	F.SetMatrix(0, A)
	F.SetMatrix(ar, B)
}

// Raw returns the underlying row-major float64 slice of the matrix.
// Changes in the slice are reflected in the matrix.
func (F *Matrix) Raw() []float64 {
	return F.RawMatrix().Data
}
