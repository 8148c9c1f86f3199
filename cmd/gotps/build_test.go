package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/config"
	v3 "github.com/rmera/gotps/v3"
)

func TestBuildRunDefault(t *testing.T) {
	r, err := buildRun(config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 4, r.top.Len())
	require.Len(t, r.cvs, 1)
	assert.Equal(t, "phi", r.cvs[0].Name())
	require.Len(t, r.states, 2)

	//the reference trans conformation must sit in the trans state
	f := chem.NewFrame(r.coords)
	require.NotNil(t, r.net.InState(f))
	assert.Equal(t, "trans", r.net.InState(f).Name())
}

func TestBuildCVErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CVs[0].AtomNames = []string{"C1", "C2", "C3"} //a torsion needs 4
	_, err := buildRun(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.CVs[0].AtomNames = nil
	cfg.CVs[0].Atoms = []int{0, 1, 2, 9} //out of range
	_, err = buildRun(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.CVs[0].AtomNames = []string{"C1", "C2", "C3", "CX"} //unknown name
	_, err = buildRun(cfg)
	assert.Error(t, err)
}

func TestBuildCVCOMDistance(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CVs = append(cfg.CVs, config.CVConfig{
		Name:   "ends",
		Kind:   "comdistance",
		Atoms:  []int{0, 1},
		AtomsB: []int{2, 3},
	})
	r, err := buildRun(cfg)
	require.NoError(t, err)
	require.Len(t, r.cvs, 2)
	f := chem.NewFrame(r.coords)
	assert.Greater(t, r.cvs[1].Evaluate(f), 0.0)

	cfg.CVs[1].AtomsB = nil
	_, err = buildRun(cfg)
	assert.Error(t, err, "a COM distance needs a second group")
}

func TestTrimToTransition(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.System = "doublewell"
	cfg.CVs = []config.CVConfig{{Name: "x", Kind: "component", Atoms: []int{0}, Axis: 0}}
	cfg.States = []config.StateConfig{
		{Name: "A", CV: "x", Min: -1.4, Max: -0.6},
		{Name: "B", CV: "x", Min: 0.6, Max: 1.4},
	}
	r, err := buildRun(cfg)
	require.NoError(t, err)

	frame := func(x float64) *chem.Frame {
		c, _ := v3.NewMatrix([]float64{x, 0, 0})
		return chem.NewFrame(c)
	}
	//wanders inside A before finally crossing to B
	p := chem.NewPath(6)
	p.Append(frame(-1), frame(-0.9), frame(-0.2), frame(-1.1), frame(0.1), frame(1))
	s0 := r.net.InState(p.First())
	require.NotNil(t, s0)

	trimmed := trimToTransition(p, r.net, s0)
	require.NotNil(t, trimmed)
	assert.Equal(t, 3, trimmed.Len()) //-1.1, 0.1, 1
	assert.True(t, r.net.Ensembles()[0].Contains(trimmed))
}
