package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	chem "github.com/rmera/gotps"
	v3 "github.com/rmera/gotps/v3"
)

//fakeCV returns a fixed value, periodic in (-180, 180] if periodic is set
type fakeCV struct {
	val      float64
	periodic bool
}

func (F *fakeCV) Name() string { return "fake" }

func (F *fakeCV) Evaluate(f *chem.Frame) float64 { return F.val }

func (F *fakeCV) Period() (float64, float64, bool) {
	if F.periodic {
		return -180, 180, true
	}
	return 0, 0, false
}

func frame() *chem.Frame {
	c, _ := v3.NewMatrix([]float64{0, 0, 0})
	return chem.NewFrame(c)
}

func TestPlainRange(t *testing.T) {
	v := &fakeCV{val: 5}
	r := NewCVRange("r", v, 0, 10)
	assert.True(t, r.Contains(frame()))
	v.val = 15
	assert.False(t, r.Contains(frame()))
	v.val = 10 //bounds are inclusive
	assert.True(t, r.Contains(frame()))
}

func TestPeriodicWrap(t *testing.T) {
	//a range given as [100, 200] over a (-180, 180] variable must wrap:
	//200 becomes -160, and the interval crosses the boundary
	v := &fakeCV{val: 170, periodic: true}
	r := NewCVRange("trans", v, 100, 200)
	assert.True(t, r.Contains(frame()), "170 is inside [100, 200]")
	v.val = -170
	assert.True(t, r.Contains(frame()), "-170 is 190, inside [100, 200]")
	v.val = 190 //equivalent to -170
	assert.True(t, r.Contains(frame()), "190 wraps to -170, inside")
	v.val = 0
	assert.False(t, r.Contains(frame()))
	v.val = 99
	assert.False(t, r.Contains(frame()))
	v.val = 360 + 150 //equivalent to 150
	assert.True(t, r.Contains(frame()))
}

func TestWrapEquivalence(t *testing.T) {
	//containment must agree between a value and the same value shifted
	//by full periods
	v := &fakeCV{periodic: true}
	r := NewCVRange("s", v, -90, 30)
	for _, base := range []float64{-120, -90, -50, 0, 30, 31, 100} {
		v.val = base
		want := r.Contains(frame())
		for _, shift := range []float64{-720, -360, 360, 720} {
			v.val = base + shift
			assert.Equal(t, want, r.Contains(frame()), "value %g vs %g", base, base+shift)
		}
	}
}

func TestIntersection(t *testing.T) {
	a := &fakeCV{val: 5}
	b := &fakeCV{val: 5}
	ra := NewCVRange("ra", a, 0, 10)
	rb := NewCVRange("rb", b, 0, 10)
	i := NewIntersection("both", ra, rb)
	assert.True(t, i.Contains(frame()))
	b.val = 50
	assert.False(t, i.Contains(frame()), "intersection is true only when all members are")
	u := NewUnion("any", ra, rb)
	assert.True(t, u.Contains(frame()))
	a.val = 50
	assert.False(t, u.Contains(frame()))
}
