/*
 * plot.go, part of goTPS.
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

package pathstat

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/cv"
)

// DensityPlot draws a scatter of two collective variables over every
// frame of the given paths, and saves it to name (the extension selects
// the format, e.g. .png). It is the path-density picture of a sampling
// run: well-sampled transition channels show up as dense regions between
// the states.
func DensityPlot(name, title string, paths []*chem.Path, cvx, cvy cv.CV) error {
	if len(paths) == 0 {
		return chem.NewCError(chem.ErrNilData, "DensityPlot")
	}
	pts := make(plotter.XYs, 0, len(paths)*paths[0].Len())
	for _, p := range paths {
		for i := 0; i < p.Len(); i++ {
			f := p.Frame(i)
			pts = append(pts, plotter.XY{X: cvx.Evaluate(f), Y: cvy.Evaluate(f)})
		}
	}
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = cvx.Name()
	pl.Y.Label.Text = cvy.Name()
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return chem.ErrDecorate(err, "DensityPlot")
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Color = color.RGBA{R: 60, G: 90, B: 180, A: 120}
	pl.Add(sc, plotter.NewGrid())
	if err := pl.Save(5*vg.Inch, 5*vg.Inch, name); err != nil {
		return chem.ErrDecorate(err, "DensityPlot")
	}
	return nil
}

// LengthPlot draws the path length after each MC step, a quick
// equilibration diagnostic for flexible-length sampling.
func LengthPlot(name string, lengths []float64) error {
	if len(lengths) == 0 {
		return chem.NewCError(chem.ErrNilData, "LengthPlot")
	}
	pts := make(plotter.XYs, len(lengths))
	for i, l := range lengths {
		pts[i] = plotter.XY{X: float64(i + 1), Y: l}
	}
	pl := plot.New()
	pl.Title.Text = "Path length per MC step"
	pl.X.Label.Text = "step"
	pl.Y.Label.Text = "frames"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return chem.ErrDecorate(err, "LengthPlot")
	}
	pl.Add(line, plotter.NewGrid())
	if err := pl.Save(6*vg.Inch, 3*vg.Inch, name); err != nil {
		return chem.ErrDecorate(err, "LengthPlot")
	}
	return nil
}
