/*
 * spectrum.go, part of gospectra
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package chemplot

import (
	"fmt"
	"image/color"

	spectra "github.com/rmera/gospectra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Dataset is one set of excitations to be plotted, with its broadened spectrum.
//Either of Spectrum and Lines can be nil, but not both.
type Dataset struct {
	Label    string
	Spectrum *spectra.Spectrum
	Lines    spectra.Lines
}

//Options for a spectrum plot.
type Options struct {
	Title      string
	XLabel     string
	YLabel     string
	XMin, XMax float64 //if XMax <= XMin, the range is taken from the data
	NoSticks   bool    //don't draw the stick spectrum
	NoBaseline bool    //don't draw the dotted zero line and the excitation markers on it
}

//DefaultOptions returns the options used when nil is given to SpectraPlot.
func DefaultOptions() *Options {
	return &Options{
		XLabel: "Energy (eV)",
		YLabel: "Absorption (arb. units)",
	}
}

func basicSpectraPlot(opts *Options) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	return p
}

//SpectraPlot plots each dataset with its own color: the broadened spectrum as a line, the
//oscillator strengths as sticks, and a dot on the zero line for each excitation.
func SpectraPlot(sets []Dataset, opts *Options) (*plot.Plot, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("chemplot.SpectraPlot: no data to plot")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	p := basicSpectraPlot(opts)
	xmin, xmax := opts.XMin, opts.XMax
	if xmax <= xmin {
		xmin, xmax = dataRange(sets)
	}
	if !opts.NoBaseline {
		base, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: 0}, {X: xmax, Y: 0}})
		if err != nil {
			return nil, err
		}
		base.LineStyle.Width = vg.Points(1)
		base.LineStyle.Color = color.Black
		base.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		p.Add(base)
	}
	for i, set := range sets {
		if set.Spectrum == nil && set.Lines == nil {
			return nil, fmt.Errorf("chemplot.SpectraPlot: dataset %d (%s) has no data", i, set.Label)
		}
		c := plotutil.Color(i)
		if set.Spectrum != nil && set.Spectrum.Len() > 0 {
			l, err := plotter.NewLine(spectrumXYs(set.Spectrum))
			if err != nil {
				return nil, fmt.Errorf("chemplot.SpectraPlot: dataset %d (%s): %w", i, set.Label, err)
			}
			l.LineStyle.Color = c
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
			p.Legend.Add(fmt.Sprintf("Absorption spectrum %s", set.Label), l)
		}
		if !opts.NoSticks {
			for _, v := range set.Lines {
				s, err := plotter.NewLine(plotter.XYs{{X: v.Energy, Y: 0}, {X: v.Energy, Y: v.Strength}})
				if err != nil {
					return nil, fmt.Errorf("chemplot.SpectraPlot: dataset %d (%s): %w", i, set.Label, err)
				}
				s.LineStyle.Color = c
				s.LineStyle.Width = vg.Points(1)
				p.Add(s)
			}
		}
		if !opts.NoBaseline && len(set.Lines) > 0 {
			dots := make(plotter.XYs, len(set.Lines))
			for j, v := range set.Lines {
				dots[j].X = v.Energy
			}
			sc, err := plotter.NewScatter(dots)
			if err != nil {
				return nil, fmt.Errorf("chemplot.SpectraPlot: dataset %d (%s): %w", i, set.Label, err)
			}
			sc.GlyphStyle.Color = c
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(2.5)
			p.Add(sc)
			if set.Spectrum == nil {
				p.Legend.Add(fmt.Sprintf("Oscillator strengths %s", set.Label), sc)
			}
		}
	}
	//The range has to be set after adding the plotters, as p.Add updates it.
	if opts.XMax > opts.XMin {
		p.X.Min = opts.XMin
		p.X.Max = opts.XMax
	}
	return p, nil
}

//SaveSpectraPlot saves the plot to filename, with the format given by its extension
//(png, svg, pdf, eps, among others). width and height are in cm.
func SaveSpectraPlot(p *plot.Plot, filename string, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("chemplot.SaveSpectraPlot: invalid plot size %vx%v cm", width, height)
	}
	if err := p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename); err != nil {
		return fmt.Errorf("chemplot.SaveSpectraPlot: %w", err)
	}
	return nil
}

func spectrumXYs(S *spectra.Spectrum) plotter.XYs {
	x := S.Grid()
	y := S.View()
	ret := make(plotter.XYs, len(x))
	for i := range x {
		ret[i].X = x[i]
		ret[i].Y = y[i]
	}
	return ret
}

//dataRange returns the smallest and largest energies in the datasets.
func dataRange(sets []Dataset) (float64, float64) {
	var xs []float64
	for _, s := range sets {
		if s.Spectrum != nil && s.Spectrum.Len() > 0 {
			g := s.Spectrum.Grid()
			xs = append(xs, g[0], g[len(g)-1])
		}
		xs = append(xs, s.Lines.Energies()...)
	}
	if len(xs) == 0 {
		return 0, 1
	}
	return floats.Min(xs), floats.Max(xs)
}
