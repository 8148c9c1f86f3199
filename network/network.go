/*
 * network.go, part of goTPS.
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
Package network defines transition networks: the stable states between
which transition paths are sought, and the path ensembles those paths
belong to. A flexible-length TPS ensemble contains the paths that start
in one stable state, end in another, and touch no state in between.
*/
package network

import (
	"fmt"
	"strings"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/volume"
)

// Ensemble is a set of acceptable paths.
type Ensemble interface {
	Name() string

	//Contains reports whether the path belongs to the ensemble.
	Contains(p *chem.Path) bool
}

// TPSEnsemble is the flexible-length transition path ensemble between a
// set of stable states: a member path has its first frame in one state,
// its last frame in a different state, and every interior frame outside
// all states.
type TPSEnsemble struct {
	name   string
	states []volume.Volume
}

// NewTPSEnsemble returns the transition ensemble over the given states.
// At least two states are required.
func NewTPSEnsemble(name string, states ...volume.Volume) (*TPSEnsemble, error) {
	if len(states) < 2 {
		return nil, fmt.Errorf("network: a transition ensemble needs at least 2 states, got %d", len(states))
	}
	return &TPSEnsemble{name: name, states: states}, nil
}

func (E *TPSEnsemble) Name() string { return E.name }

// States returns the stable states of the ensemble.
func (E *TPSEnsemble) States() []volume.Volume { return E.states }

//stateOf returns the index of the state containing f, or -1
func (E *TPSEnsemble) stateOf(f *chem.Frame) int {
	for i, s := range E.states {
		if s.Contains(f) {
			return i
		}
	}
	return -1
}

func (E *TPSEnsemble) Contains(p *chem.Path) bool {
	if p == nil || p.Len() < 2 {
		return false
	}
	first := E.stateOf(p.First())
	last := E.stateOf(p.Last())
	if first < 0 || last < 0 || first == last {
		return false
	}
	for i := 1; i < p.Len()-1; i++ {
		if E.stateOf(p.Frame(i)) >= 0 {
			return false
		}
	}
	return true
}

// Network is a transition network: stable states plus the ensembles to be
// sampled between them.
type Network struct {
	states    []volume.Volume
	ensembles []Ensemble
}

// NewTPS returns the network for two-state transition path sampling: one
// TPS ensemble connecting stateA and stateB.
func NewTPS(stateA, stateB volume.Volume) (*Network, error) {
	ens, err := NewTPSEnsemble(
		fmt.Sprintf("%s<->%s", stateA.Name(), stateB.Name()),
		stateA, stateB)
	if err != nil {
		return nil, err
	}
	return &Network{
		states:    []volume.Volume{stateA, stateB},
		ensembles: []Ensemble{ens},
	}, nil
}

// States returns the stable states of the network.
func (N *Network) States() []volume.Volume { return N.states }

// Ensembles returns the sampled ensembles of the network.
func (N *Network) Ensembles() []Ensemble { return N.ensembles }

// InState returns the first state of the network containing f, or nil.
func (N *Network) InState(f *chem.Frame) volume.Volume {
	for _, s := range N.states {
		if s.Contains(f) {
			return s
		}
	}
	return nil
}

// Assignment is the result of matching initial paths to the ensembles of
// a network.
type Assignment struct {
	//Paths maps each ensemble name to its initial path.
	Paths map[string]*chem.Path

	//Missing lists the ensembles with no initial path.
	Missing []string

	//Extra lists the indices (in the input order) of the paths that
	//were not assigned to any ensemble.
	Extra []int
}

// OK returns true if no ensemble is missing an initial path and no path
// was left unassigned.
func (A *Assignment) OK() bool {
	return len(A.Missing) == 0 && len(A.Extra) == 0
}

// Report returns a human-readable summary of the assignment, in the
// spirit of a sanity check before a long sampling run.
func (A *Assignment) Report() string {
	var b strings.Builder
	if len(A.Missing) == 0 {
		b.WriteString("No missing ensembles.\n")
	} else {
		fmt.Fprintf(&b, "Missing ensembles (%d): %s\n", len(A.Missing), strings.Join(A.Missing, ", "))
	}
	if len(A.Extra) == 0 {
		b.WriteString("No extra trajectories.\n")
	} else {
		fmt.Fprintf(&b, "Extra trajectories (%d): %v\n", len(A.Extra), A.Extra)
	}
	return b.String()
}

// AssignInitial matches the given paths to the ensembles of the network:
// each ensemble takes the first path it contains that is not yet taken.
// Any mismatch is reported in the Assignment, not as an error: a
// misconfigured state definition is for the user to fix, there is nothing
// to retry.
func (N *Network) AssignInitial(paths ...*chem.Path) *Assignment {
	ret := &Assignment{Paths: make(map[string]*chem.Path)}
	taken := make([]bool, len(paths))
	for _, e := range N.ensembles {
		found := false
		for i, p := range paths {
			if taken[i] {
				continue
			}
			if e.Contains(p) {
				ret.Paths[e.Name()] = p
				taken[i] = true
				found = true
				break
			}
		}
		if !found {
			ret.Missing = append(ret.Missing, e.Name())
		}
	}
	for i, t := range taken {
		if !t {
			ret.Extra = append(ret.Extra, i)
		}
	}
	return ret
}
