package engine

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/ff"
)

func newButaneEngine(Te *testing.T, integ func(src rand.Source) Integrator) (*Engine, *chem.Frame) {
	top, sys, coords := ff.Butane()
	src := rand.NewPCG(42, 42)
	eng, err := New(top, sys, integ(src), 300, 0.01, src)
	if err != nil {
		Te.Fatal(err)
	}
	s := chem.NewFrame(coords)
	eng.MaxwellBoltzmann(s)
	return eng, s
}

func TestVerletEnergyConservation(Te *testing.T) {
	eng, s := newButaneEngine(Te, func(src rand.Source) Integrator { return NewVelocityVerlet() })
	e0 := eng.PotentialEnergy(s) + eng.KineticEnergy(s)
	for i := 0; i < 1000; i++ {
		eng.Step(s)
	}
	e1 := eng.PotentialEnergy(s) + eng.KineticEnergy(s)
	//velocity Verlet at this timestep should conserve within a few percent
	if math.Abs(e1-e0) > 0.05*(math.Abs(e0)+1) {
		Te.Errorf("Total energy drifted too much: %f -> %f", e0, e1)
	}
}

func TestMaxwellBoltzmann(Te *testing.T) {
	eng, s := newButaneEngine(Te, func(src rand.Source) Integrator { return NewVelocityVerlet() })
	//average instantaneous temperature over many draws should approach
	//the reference temperature
	var mean float64
	const draws = 400
	for i := 0; i < draws; i++ {
		eng.MaxwellBoltzmann(s)
		mean += eng.InstantTemperature(s)
	}
	mean /= draws
	if math.Abs(mean-300) > 30 {
		Te.Errorf("Mean drawn temperature too far from 300 K: %f", mean)
	}
}

func TestPropagate(Te *testing.T) {
	eng, s := newButaneEngine(Te, func(src rand.Source) Integrator { return NewLangevin(1.0, 300, src) })
	path, err := eng.Propagate(context.Background(), s, 100, 10)
	if err != nil {
		Te.Error(err)
	}
	if path.Len() != 11 {
		Te.Errorf("Expected 11 recorded frames, got %d", path.Len())
	}
	if path.Frame(0).Vel != nil {
		Te.Error("Recorded frames should not carry velocities")
	}
}

func TestPropagateUntil(Te *testing.T) {
	eng, s := newButaneEngine(Te, func(src rand.Source) Integrator { return NewLangevin(1.0, 300, src) })
	count := 0
	stop := func(f *chem.Frame) bool {
		count++
		return count >= 5
	}
	seg, reached, err := eng.PropagateUntil(context.Background(), s, stop, 50, 2)
	if err != nil {
		Te.Error(err)
	}
	if !reached {
		Te.Error("The stop condition should have been reached")
	}
	if seg.Len() != 5 {
		Te.Errorf("Expected 5 frames, got %d", seg.Len())
	}
	//maxFrames caps the segment
	count = 0
	neverstop := func(f *chem.Frame) bool { return false }
	seg, reached, err = eng.PropagateUntil(context.Background(), s, neverstop, 7, 1)
	if err != nil {
		Te.Error(err)
	}
	if reached || seg.Len() != 7 {
		Te.Errorf("Expected a capped 7-frame segment, got %d (reached %v)", seg.Len(), reached)
	}
}

func TestPropagateCancel(Te *testing.T) {
	eng, s := newButaneEngine(Te, func(src rand.Source) Integrator { return NewLangevin(1.0, 300, src) })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.Propagate(ctx, s, 1000, 1)
	if err == nil {
		Te.Error("A cancelled context should abort the propagation")
	}
}
