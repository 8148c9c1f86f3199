/*
 * selector.go, part of goTPS.
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
	"math/rand/v2"

	chem "github.com/rmera/gotps"
)

// Selector picks the shooting point on a path.
type Selector interface {

	//Pick returns the index of the frame to shoot from. The path is
	//guaranteed to have at least 3 frames.
	Pick(rng *rand.Rand, p *chem.Path) int
}

// UniformSelector picks uniformly among the interior frames of the path
// (the endpoints sit inside the stable states and are useless as shooting
// points). The corresponding acceptance correction is the ratio of
// interior frame counts, implemented in the shooting move.
type UniformSelector struct{}

func (U UniformSelector) Pick(rng *rand.Rand, p *chem.Path) int {
	return 1 + rng.IntN(p.Len()-2)
}

//interior returns the number of candidate shooting points of a path
func interior(p *chem.Path) int {
	n := p.Len() - 2
	if n < 0 {
		return 0
	}
	return n
}
