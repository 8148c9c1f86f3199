package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Wrong number of vectors: %d", A.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("A slice of length 4 should not produce a Matrix")
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in a view should be reflected in the viewed matrix")
	}
	fmt.Println(A)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Error(err)
	}
	if B.At(0, 0) != 4 || B.At(2, 2) != 18 {
		Te.Error("SomeVecs returned the wrong vectors", B)
	}
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 {
		Te.Error("SetVecs did not write back into A")
	}
	err = B.SomeVecsSafe(A, []int{100})
	if err == nil {
		Te.Error("An out of range index should produce an error")
	}
}

func TestVecOps(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 {
		Te.Error("x cross y should be z", z)
	}
	if x.Dot(y) != 0 {
		Te.Error("x dot y should be 0")
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if math.Abs(v.Norm(0)-5) > 1e-12 {
		Te.Error("Wrong norm", v.Norm(0))
	}
	u := Zeros(1)
	u.Unit(v)
	if math.Abs(u.Norm(0)-1) > 1e-12 {
		Te.Error("Unit vector should have norm 1")
	}
}

func TestAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	row, _ := NewMatrix([]float64{10, 20, 30})
	A.AddVec(A, row)
	if A.At(0, 0) != 11 || A.At(1, 2) != 32 {
		Te.Error("AddVec gave the wrong result", A)
	}
	A.SubVec(A, row)
	if A.At(0, 0) != 1 || A.At(1, 2) != 2 {
		Te.Error("SubVec gave the wrong result", A)
	}
}

func TestStackClone(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3})
	B, _ := NewMatrix([]float64{4, 5, 6, 7, 8, 9})
	S := Zeros(3)
	S.Stack(A, B)
	if S.At(0, 0) != 1 || S.At(2, 2) != 9 {
		Te.Error("Wrong stacking", S)
	}
	C := S.Clone()
	C.Set(0, 0, -1)
	if S.At(0, 0) != 1 {
		Te.Error("Clone should not share memory with the original")
	}
}
