package shoot

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/cv"
	"github.com/rmera/gotps/engine"
	"github.com/rmera/gotps/ff"
	"github.com/rmera/gotps/network"
	"github.com/rmera/gotps/volume"
	v3 "github.com/rmera/gotps/v3"
)

//double-well particle setup: states at the two minima (x = +-1)
func dwSetup(t *testing.T, seed uint64) (*engine.Engine, *network.Network) {
	top, sys, _ := ff.DoubleWellParticle(1.5, 1.0)
	src := rand.NewPCG(seed, seed)
	eng, err := engine.New(top, sys, engine.NewLangevin(2.0, 300, src), 300, 0.02, src)
	require.NoError(t, err)
	//narrow states around the minima, so the interior of the test paths
	//built by dwInitialPath stays outside them
	x := cv.NewComponent("x", 0, 0)
	a := volume.NewCVRange("A", x, -1.1, -0.9)
	b := volume.NewCVRange("B", x, 0.9, 1.1)
	net, err := network.NewTPS(a, b)
	require.NoError(t, err)
	return eng, net
}

//a hand-built A->B transition path along x
func dwInitialPath(n int) *chem.Path {
	p := chem.NewPath(n)
	for i := 0; i < n; i++ {
		x := -1.0 + 2.0*float64(i)/float64(n-1)
		c, _ := v3.NewMatrix([]float64{x, 0, 0})
		p.Append(chem.NewFrame(c))
	}
	return p
}

func TestUniformSelector(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p := dwInitialPath(10)
	sel := UniformSelector{}
	for i := 0; i < 200; i++ {
		idx := sel.Pick(rng, p)
		require.Greater(t, idx, 0, "endpoints are not shooting points")
		require.Less(t, idx, p.Len()-1)
	}
}

func TestOneWayBudgetReject(t *testing.T) {
	eng, net := dwSetup(t, 7)
	mv := NewOneWayShooter(eng, net, 2, 1) //max length shorter than any kept piece
	rng := rand.New(rand.NewPCG(3, 4))
	res, err := mv.Move(context.Background(), rng, net.Ensembles()[0], dwInitialPath(20))
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.NotEmpty(t, res.Reason)
}

func TestOneWayNoInteriorReject(t *testing.T) {
	//a direct A->B hop is a legal ensemble member with no interior
	//frames; the mover must reject it instead of asking the selector
	//for a shooting point it cannot have
	eng, net := dwSetup(t, 9)
	ens := net.Ensembles()[0]
	hop := dwInitialPath(2)
	require.True(t, ens.Contains(hop))
	mv := NewOneWayShooter(eng, net, 500, 1)
	rng := rand.New(rand.NewPCG(10, 11))
	res, err := mv.Move(context.Background(), rng, ens, hop)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.NotEmpty(t, res.Reason)
	assert.Nil(t, res.Trial)
}

func TestOneWayMove(t *testing.T) {
	eng, net := dwSetup(t, 11)
	mv := NewOneWayShooter(eng, net, 500, 2)
	rng := rand.New(rand.NewPCG(5, 6))
	ens := net.Ensembles()[0]
	old := dwInitialPath(20)
	accepted := 0
	for i := 0; i < 30; i++ {
		res, err := mv.Move(context.Background(), rng, ens, old)
		require.NoError(t, err)
		if res.Accepted {
			accepted++
			require.NotNil(t, res.Trial)
			assert.True(t, ens.Contains(res.Trial), "accepted paths must belong to the ensemble")
			assert.LessOrEqual(t, res.Trial.Len(), 500)
			old = res.Trial
		}
	}
	//not guaranteed in principle, but with these parameters a 0/30
	//acceptance means the move is broken
	assert.Greater(t, accepted, 0, "no move accepted in 30 attempts")
}

type fakeMover struct {
	name   string
	accept bool
	calls  int
}

func (F *fakeMover) Name() string { return F.name }

func (F *fakeMover) Move(ctx context.Context, rng *rand.Rand, ens network.Ensemble, old *chem.Path) (*Result, error) {
	F.calls++
	return &Result{Trial: old, Accepted: F.accept}, nil
}

type memWriter struct {
	paths []*chem.Path
	metas []map[string]string
}

func (M *memWriter) WritePath(p *chem.Path, meta map[string]string) error {
	M.paths = append(M.paths, p)
	M.metas = append(M.metas, meta)
	return nil
}

func TestSchemePick(t *testing.T) {
	always := &fakeMover{name: "a", accept: true}
	never := &fakeMover{name: "b"}
	s := NewScheme()
	s.Add(always, 3)
	s.Add(never, 1)
	rng := rand.New(rand.NewPCG(8, 9))
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		counts[s.Pick(rng).Name()]++
	}
	ratio := float64(counts["a"]) / float64(counts["b"])
	assert.InDelta(t, 3.0, ratio, 0.5, "weights should be respected")
}

func TestSamplerRun(t *testing.T) {
	_, net := dwSetup(t, 21)
	mv := &fakeMover{name: "flip", accept: true}
	scheme := NewScheme()
	scheme.Add(mv, 1)
	w := new(memWriter)
	s, err := NewSampler(scheme, net, w, 99)
	require.NoError(t, err)

	asg, err := s.Init(dwInitialPath(20))
	require.NoError(t, err)
	assert.True(t, asg.OK())

	const nsteps = 25
	stats, err := s.Run(context.Background(), nsteps)
	require.NoError(t, err)
	assert.Equal(t, nsteps, stats.Attempted)
	assert.LessOrEqual(t, stats.Accepted, nsteps, "cannot accept more than one sample per step")
	assert.Len(t, w.paths, stats.Accepted, "every accepted path is persisted")
	assert.Equal(t, "25", w.metas[len(w.metas)-1]["step"])
	assert.InDelta(t, 1.0, stats.AcceptanceRatio(), 1e-12)
}

func TestSamplerRejections(t *testing.T) {
	_, net := dwSetup(t, 22)
	mv := &fakeMover{name: "stuck", accept: false}
	scheme := NewScheme()
	scheme.Add(mv, 1)
	s, err := NewSampler(scheme, net, nil, 100)
	require.NoError(t, err)
	initial := dwInitialPath(20)
	_, err = s.Init(initial)
	require.NoError(t, err)

	stats, err := s.Run(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Accepted)
	assert.Equal(t, 10, stats.Attempted)
	name := net.Ensembles()[0].Name()
	assert.Same(t, initial, s.SampleSet().Get(name).Path, "rejections keep the old sample")
}

func TestSamplerInitMissing(t *testing.T) {
	_, net := dwSetup(t, 23)
	scheme := NewScheme()
	scheme.Add(&fakeMover{name: "x", accept: true}, 1)
	s, err := NewSampler(scheme, net, nil, 101)
	require.NoError(t, err)
	//a path that is no transition: the ensemble stays unseeded
	bad := chem.NewPath(2)
	c1, _ := v3.NewMatrix([]float64{0, 0, 0})
	c2, _ := v3.NewMatrix([]float64{0.1, 0, 0})
	bad.Append(chem.NewFrame(c1), chem.NewFrame(c2))
	asg, err := s.Init(bad)
	assert.Error(t, err)
	assert.False(t, asg.OK())
	assert.Len(t, asg.Missing, 1)
	assert.Len(t, asg.Extra, 1)
}

func TestOneWayAcceptanceCorrection(t *testing.T) {
	//the correction factor must equal the interior-count ratio
	old := dwInitialPath(12)
	trial := dwInitialPath(22)
	acc := float64(interior(old)) / float64(interior(trial))
	assert.InDelta(t, 0.5, acc, 1e-12)
	assert.False(t, math.IsNaN(acc))
}
