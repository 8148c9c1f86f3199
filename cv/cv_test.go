package cv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/ff"
	v3 "github.com/rmera/gotps/v3"
)

func TestTorsionEvaluate(t *testing.T) {
	top, _, coords := ff.Butane()
	phi, err := TorsionFromNames("phi", top, "C1", "C2", "C3", "C4")
	require.NoError(t, err)
	f := chem.NewFrame(coords)
	val := phi.Evaluate(f)
	assert.InDelta(t, 180, math.Abs(val), 1e-6, "starting butane should be trans")
	min, max, periodic := phi.Period()
	assert.True(t, periodic)
	assert.Equal(t, -180.0, min)
	assert.Equal(t, 180.0, max)
}

func TestTorsionFromNamesErrors(t *testing.T) {
	top, _, _ := ff.Butane()
	_, err := TorsionFromNames("phi", top, "C1", "C2", "C3")
	assert.Error(t, err, "a torsion needs 4 atom names")
	_, err = TorsionFromNames("phi", top, "C1", "C2", "C3", "NOPE")
	assert.Error(t, err, "an unknown atom name should fail the lookup")
}

func TestDistance(t *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	d := NewDistance("d", 0, 1)
	f := chem.NewFrame(coords)
	assert.InDelta(t, 5.0, d.Evaluate(f), 1e-12)
	_, _, periodic := d.Period()
	assert.False(t, periodic)
}

func TestComponent(t *testing.T) {
	coords, _ := v3.NewMatrix([]float64{1, 2, 3})
	x := NewComponent("x", 0, 0)
	z := NewComponent("z", 0, 2)
	f := chem.NewFrame(coords)
	assert.Equal(t, 1.0, x.Evaluate(f))
	assert.Equal(t, 3.0, z.Evaluate(f))
}

func TestCOMDistance(t *testing.T) {
	top, err := chem.NewTopology([]*chem.Atom{
		{Name: "A1", Mass: 1},
		{Name: "A2", Mass: 3},
		{Name: "B1", Mass: 2},
	})
	require.NoError(t, err)
	//group A com sits at x=3, group B at (3,4,0)
	coords, _ := v3.NewMatrix([]float64{
		0, 0, 0,
		4, 0, 0,
		3, 4, 0,
	})
	d, err := NewCOMDistance("r", top, []int{0, 1}, []int{2})
	require.NoError(t, err)
	f := chem.NewFrame(coords)
	assert.InDelta(t, 4.0, d.Evaluate(f), 1e-12)
	_, _, periodic := d.Period()
	assert.False(t, periodic)

	_, err = NewCOMDistance("r", top, nil, []int{2})
	assert.Error(t, err, "empty groups should be rejected")
	_, err = NewCOMDistance("r", top, []int{0}, []int{5})
	assert.Error(t, err, "out of range indices should be rejected")
}

func TestIndicesByName(t *testing.T) {
	top, _, _ := ff.Butane()
	idx, err := IndicesByName(top, "C4", "C1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, idx)
}
