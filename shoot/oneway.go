/*
 * oneway.go, part of goTPS.
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

package shoot

import (
	"context"
	"math/rand/v2"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/engine"
	"github.com/rmera/gotps/network"
)

// Result is the outcome of one Monte Carlo move.
type Result struct {
	Trial      *chem.Path //the proposed path, nil if the proposal aborted early
	Accepted   bool
	Forward    bool //shooting direction
	ShootIndex int
	Reason     string //why the move was rejected, empty if accepted
}

// Mover proposes a new path from the current one.
type Mover interface {
	Name() string

	//Move proposes a path from old for the given ensemble. It returns an
	//error only on context cancellation; a rejected proposal is a normal
	//Result, not an error.
	Move(ctx context.Context, rng *rand.Rand, ens network.Ensemble, old *chem.Path) (*Result, error)
}

// OneWayShooter is the one-way (stochastic) shooting move: pick a frame
// on the current path, redraw all velocities from the thermostat
// distribution, integrate in one random time direction until a stable
// state is reached, and splice the new segment with the retained piece of
// the old path. With stochastic dynamics the momenta decorrelate on their
// own, so only one direction needs re-integration.
type OneWayShooter struct {
	Eng       *engine.Engine
	Net       *network.Network
	Sel       Selector
	MaxLength int //cap on the trial path length, in frames
	Stride    int //integration steps per recorded frame
}

// NewOneWayShooter returns a one-way shooting mover with a uniform
// shooting point selector.
func NewOneWayShooter(eng *engine.Engine, net *network.Network, maxLength, stride int) *OneWayShooter {
	return &OneWayShooter{
		Eng:       eng,
		Net:       net,
		Sel:       UniformSelector{},
		MaxLength: maxLength,
		Stride:    stride,
	}
}

func (O *OneWayShooter) Name() string { return "oneway-shooting" }

func (O *OneWayShooter) Move(ctx context.Context, rng *rand.Rand, ens network.Ensemble, old *chem.Path) (*Result, error) {
	res := new(Result)
	//a 2-frame path is a legal ensemble member but offers no shooting point
	if interior(old) == 0 {
		res.Reason = "current path has no interior frames to shoot from"
		return res, nil
	}
	res.ShootIndex = O.Sel.Pick(rng, old)
	res.Forward = rng.IntN(2) == 0

	var kept int
	if res.Forward {
		kept = res.ShootIndex + 1
	} else {
		kept = old.Len() - res.ShootIndex
	}
	budget := O.MaxLength - kept
	if budget <= 0 {
		res.Reason = "no frame budget left from the shooting point"
		return res, nil
	}

	//fresh velocities at the shooting point
	s := &chem.Frame{Coords: old.Frame(res.ShootIndex).Coords.Clone()}
	O.Eng.MaxwellBoltzmann(s)

	stop := func(f *chem.Frame) bool { return O.Net.InState(f) != nil }
	seg, reached, err := O.Eng.PropagateUntil(ctx, s, stop, budget, O.Stride)
	if err != nil {
		return res, err
	}
	if !reached {
		res.Reason = "trial segment hit the length cap before reaching a state"
		return res, nil
	}

	if res.Forward {
		res.Trial = old.Slice(0, res.ShootIndex+1).Splice(seg)
	} else {
		//integrating forward from a Maxwell-Boltzmann draw and reading
		//the segment backwards is equivalent to a backward shot
		res.Trial = seg.Reverse().Splice(old.Slice(res.ShootIndex, old.Len()))
	}

	if !ens.Contains(res.Trial) {
		res.Reason = "trial path not in the ensemble"
		return res, nil
	}
	//acceptance correction for the uniform selector: the proposal
	//density depends on the number of candidate shooting points
	acc := float64(interior(old)) / float64(interior(res.Trial))
	if acc < 1 && rng.Float64() >= acc {
		res.Reason = "rejected by the length correction"
		return res, nil
	}
	res.Accepted = true
	return res, nil
}
