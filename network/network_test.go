package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/cv"
	"github.com/rmera/gotps/volume"
	v3 "github.com/rmera/gotps/v3"
)

//a 1-atom system where the x coordinate is the only variable
func xStates() (volume.Volume, volume.Volume) {
	x := cv.NewComponent("x", 0, 0)
	a := volume.NewCVRange("A", x, -2, -1)
	b := volume.NewCVRange("B", x, 1, 2)
	return a, b
}

func xFrame(x float64) *chem.Frame {
	c, _ := v3.NewMatrix([]float64{x, 0, 0})
	return chem.NewFrame(c)
}

func xPath(xs ...float64) *chem.Path {
	p := chem.NewPath(len(xs))
	for _, x := range xs {
		p.Append(xFrame(x))
	}
	return p
}

func TestTPSEnsemble(t *testing.T) {
	a, b := xStates()
	ens, err := NewTPSEnsemble("AB", a, b)
	require.NoError(t, err)

	assert.True(t, ens.Contains(xPath(-1.5, 0, 0.5, 1.5)), "A to B is a transition")
	assert.True(t, ens.Contains(xPath(1.5, 0.2, -1.2)), "B to A is a transition too")
	assert.False(t, ens.Contains(xPath(-1.5, 0, -1.3)), "A to A is not a transition")
	assert.False(t, ens.Contains(xPath(0, 0.5, 1.5)), "must start in a state")
	assert.False(t, ens.Contains(xPath(-1.5, 0, 0.5)), "must end in a state")
	assert.False(t, ens.Contains(xPath(-1.5, 1.2, 0, 1.5)), "interior frames must stay outside all states")
	assert.False(t, ens.Contains(xPath(-1.5)), "a single frame is not a path")

	_, err = NewTPSEnsemble("bad", a)
	assert.Error(t, err, "an ensemble needs at least two states")
}

func TestAssignInitial(t *testing.T) {
	a, b := xStates()
	net, err := NewTPS(a, b)
	require.NoError(t, err)

	good := xPath(-1.5, 0, 1.5)
	asg := net.AssignInitial(good)
	assert.True(t, asg.OK())
	assert.Empty(t, asg.Missing)
	assert.Empty(t, asg.Extra)
	assert.Contains(t, asg.Report(), "No missing ensembles")
	assert.Contains(t, asg.Report(), "No extra trajectories")
	assert.Same(t, good, asg.Paths[net.Ensembles()[0].Name()])
}

func TestAssignInitialMismatch(t *testing.T) {
	a, b := xStates()
	net, _ := NewTPS(a, b)

	bad := xPath(0, 0.5, 0.7) //touches no state
	asg := net.AssignInitial(bad)
	assert.False(t, asg.OK())
	assert.Len(t, asg.Missing, 1, "the ensemble got no path")
	assert.Equal(t, []int{0}, asg.Extra, "the path fits nowhere")

	//an extra good path on top of the assigned one
	asg = net.AssignInitial(xPath(-1.5, 0, 1.5), xPath(1.5, 0, -1.5))
	assert.Len(t, asg.Missing, 0)
	assert.Equal(t, []int{1}, asg.Extra, "only one path per ensemble")
}

func TestInState(t *testing.T) {
	a, b := xStates()
	net, _ := NewTPS(a, b)
	assert.Equal(t, a, net.InState(xFrame(-1.5)))
	assert.Equal(t, b, net.InState(xFrame(1.5)))
	assert.Nil(t, net.InState(xFrame(0)))
}
