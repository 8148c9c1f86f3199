/*
 * sampler.go, part of goTPS.
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

/*
Package shoot implements the Monte Carlo side of transition path
sampling: shooting moves, move schemes and the sequential sampler that
chains them into a run, persisting accepted paths as it goes.
*/
package shoot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/network"
)

// PathWriter persists sampled paths. It is implemented by ptf.Writer;
// the interface keeps this package free of a storage dependency.
type PathWriter interface {
	WritePath(p *chem.Path, meta map[string]string) error
}

// Scheme is a weighted set of movers.
type Scheme struct {
	movers  []Mover
	weights []float64
	total   float64
}

// NewScheme returns an empty move scheme.
func NewScheme() *Scheme {
	return &Scheme{}
}

// Add registers a mover with the given weight.
func (S *Scheme) Add(m Mover, weight float64) {
	S.movers = append(S.movers, m)
	S.weights = append(S.weights, weight)
	S.total += weight
}

// Pick draws a mover according to the weights. It panics on an empty
// scheme.
func (S *Scheme) Pick(rng *rand.Rand) Mover {
	if len(S.movers) == 0 {
		panic("shoot: Pick on an empty move scheme")
	}
	x := rng.Float64() * S.total
	for i, w := range S.weights {
		x -= w
		if x < 0 {
			return S.movers[i]
		}
	}
	return S.movers[len(S.movers)-1]
}

// Sample is the current path of one ensemble, with the move metadata of
// the step that produced it.
type Sample struct {
	Path  *chem.Path
	Step  int
	Mover string
}

// SampleSet holds the current sample for each ensemble, by name.
type SampleSet struct {
	samples map[string]*Sample
}

func NewSampleSet() *SampleSet {
	return &SampleSet{samples: make(map[string]*Sample)}
}

// Get returns the current sample for the ensemble, or nil.
func (S *SampleSet) Get(ensemble string) *Sample {
	return S.samples[ensemble]
}

// Update replaces the current sample for the ensemble.
func (S *SampleSet) Update(ensemble string, p *chem.Path, step int, mover string) {
	S.samples[ensemble] = &Sample{Path: p, Step: step, Mover: mover}
}

// Stats accumulates the outcome of a sampling run.
type Stats struct {
	Attempted int
	Accepted  int

	//AcceptTrace holds 1 or 0 per MC step.
	AcceptTrace []float64

	//Lengths holds the length of the current sample after each step.
	Lengths []float64
}

// AcceptanceRatio returns the fraction of accepted moves, or 0 for an
// empty run.
func (S *Stats) AcceptanceRatio() float64 {
	if S.Attempted == 0 {
		return 0
	}
	return float64(S.Accepted) / float64(S.Attempted)
}

// Sampler runs a move scheme over the ensembles of a network,
// maintaining the sample set and streaming accepted paths to a writer.
type Sampler struct {
	scheme *Scheme
	net    *network.Network
	set    *SampleSet
	writer PathWriter //may be nil
	rng    *rand.Rand

	//OnStep, if set, is called after every MC step with the step number
	//(1-based) and the move result.
	OnStep func(step int, r *Result)
}

// NewSampler returns a sampler for the given scheme and network. writer
// may be nil, in which case accepted paths are only kept in the sample
// set.
func NewSampler(scheme *Scheme, net *network.Network, writer PathWriter, seed uint64) (*Sampler, error) {
	if scheme == nil || net == nil {
		return nil, chem.NewCError(chem.ErrNilData, "NewSampler")
	}
	return &Sampler{
		scheme: scheme,
		net:    net,
		set:    NewSampleSet(),
		writer: writer,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// SampleSet returns the sampler's current sample set.
func (S *Sampler) SampleSet() *SampleSet { return S.set }

// Init assigns the given paths as initial conditions for the network's
// ensembles and seeds the sample set. The returned Assignment carries the
// missing/extra diagnostics; an error is returned only when some ensemble
// ends up without an initial path, since sampling cannot start then.
func (S *Sampler) Init(paths ...*chem.Path) (*network.Assignment, error) {
	asg := S.net.AssignInitial(paths...)
	for name, p := range asg.Paths {
		S.set.Update(name, p, 0, "initial")
	}
	if len(asg.Missing) > 0 {
		return asg, chem.NewCError(
			fmt.Sprintf("goTPS: %d ensemble(s) lack an initial path", len(asg.Missing)), "Sampler.Init")
	}
	return asg, nil
}

// Run performs nsteps Monte Carlo steps. Each step picks a mover from
// the scheme and applies it to the current sample of each ensemble in
// turn. Accepted paths replace the current sample and are written to the
// writer. The number of accepted samples can never exceed nsteps.
func (S *Sampler) Run(ctx context.Context, nsteps int) (*Stats, error) {
	stats := &Stats{
		AcceptTrace: make([]float64, 0, nsteps),
		Lengths:     make([]float64, 0, nsteps),
	}
	for step := 1; step <= nsteps; step++ {
		for _, ens := range S.net.Ensembles() {
			cur := S.set.Get(ens.Name())
			if cur == nil {
				return stats, chem.NewCError(
					fmt.Sprintf("goTPS: Ensemble %q has no current sample; call Init first", ens.Name()), "Sampler.Run")
			}
			mover := S.scheme.Pick(S.rng)
			res, err := mover.Move(ctx, S.rng, ens, cur.Path)
			if err != nil {
				return stats, chem.ErrDecorate(err, "Sampler.Run")
			}
			stats.Attempted++
			if res.Accepted {
				stats.Accepted++
				stats.AcceptTrace = append(stats.AcceptTrace, 1)
				S.set.Update(ens.Name(), res.Trial, step, mover.Name())
				if S.writer != nil {
					meta := map[string]string{
						"step":     strconv.Itoa(step),
						"ensemble": ens.Name(),
						"mover":    mover.Name(),
					}
					if err := S.writer.WritePath(res.Trial, meta); err != nil {
						return stats, chem.ErrDecorate(err, "Sampler.Run")
					}
				}
			} else {
				stats.AcceptTrace = append(stats.AcceptTrace, 0)
			}
			stats.Lengths = append(stats.Lengths, float64(S.set.Get(ens.Name()).Path.Len()))
			if S.OnStep != nil {
				S.OnStep(step, res)
			}
		}
	}
	return stats, nil
}
