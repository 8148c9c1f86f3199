/*
 * pathstat.go, part of goTPS.
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
Package pathstat computes summary statistics over transition path
sampling runs: acceptance traces, path length distributions, collective
variable histograms and density plots over the sampled paths.
*/
package pathstat

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/cv"
)

// Summary condenses a sampling run.
type Summary struct {
	Attempted  int
	Accepted   int
	Acceptance float64
	MeanLength float64
	StdLength  float64
}

// Summarize computes a Summary from the per-step acceptance trace (1/0
// values) and the per-step current path lengths.
func Summarize(acceptTrace, lengths []float64) *Summary {
	s := &Summary{Attempted: len(acceptTrace)}
	s.Accepted = int(floats.Sum(acceptTrace))
	if s.Attempted > 0 {
		s.Acceptance = float64(s.Accepted) / float64(s.Attempted)
	}
	if len(lengths) > 0 {
		s.MeanLength = stat.Mean(lengths, nil)
		s.StdLength = stat.StdDev(lengths, nil)
	}
	return s
}

// CVSeries evaluates a collective variable along a path.
func CVSeries(p *chem.Path, v cv.CV) []float64 {
	out := make([]float64, p.Len())
	for i := 0; i < p.Len(); i++ {
		out[i] = v.Evaluate(p.Frame(i))
	}
	return out
}

// Histogram bins vals into nbins equal bins spanning their range, and
// returns the bin centers and counts. It returns nils for fewer than 2
// values.
func Histogram(vals []float64, nbins int) (centers, counts []float64) {
	if len(vals) < 2 || nbins < 1 {
		return nil, nil
	}
	min := floats.Min(vals)
	max := floats.Max(vals)
	if min == max {
		max = min + 1 //a single degenerate bin still works
	}
	dividers := make([]float64, nbins+1)
	floats.Span(dividers, min, max)
	//stat.Histogram drops values equal to the last divider
	dividers[nbins] = dividers[nbins] + 1e-10
	//stat.Histogram wants its input sorted
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	counts = stat.Histogram(nil, dividers, sorted, nil)
	centers = make([]float64, nbins)
	for i := range centers {
		centers[i] = (dividers[i] + dividers[i+1]) / 2
	}
	return centers, counts
}

// RunningMean returns the running mean of vals over the given window,
// a smoother view of an acceptance trace. A window below 2 returns a
// copy of vals.
func RunningMean(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	if window < 2 {
		copy(out, vals)
		return out
	}
	var sum float64
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
			out[i] = sum / float64(window)
		} else {
			out[i] = sum / float64(i+1)
		}
	}
	return out
}
