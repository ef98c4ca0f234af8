/*
 * gaussian.go, part of gospectra.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
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

package spectra

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

//DefaultFWHM is the broadening, in eV, used when no Options are given.
const DefaultFWHM = 0.2

//FWHM = 2*sqrt(2 ln2) sigma ~ 2.3548 sigma
var fwhm2sigma = 2 * math.Sqrt(2*math.Ln2)

var sqrt2pi = math.Sqrt(2 * math.Pi)

//Options for the synthesis of a spectrum.
type Options struct {
	FWHM float64 //broadening width applied to every line
}

//DefaultOptions returns the options used when nil Options are given.
func DefaultOptions() *Options {
	return &Options{FWHM: DefaultFWHM}
}

//fwhm returns the broadening width to use. A nil receiver means the default.
//A non-nil Options with a zero FWHM is not replaced, it is an error.
func (O *Options) fwhm() float64 {
	if O == nil {
		return DefaultFWHM
	}
	return O.FWHM
}

func checkFWHM(fwhm float64, caller string) error {
	//the negated comparison also catches NaN
	if !(fwhm > 0) {
		return NewError(ErrInvalidParameter, caller, "FWHM must be > 0, got %v", fwhm)
	}
	return nil
}

//gaussian is the normalized gaussian density with the given center
//and standard deviation, evaluated at x.
func gaussian(x, center, sigma float64) float64 {
	z := (x - center) / sigma
	return math.Exp(-0.5*z*z) / (sigma * sqrt2pi)
}

//GaussianLine returns the value at x of a normalized gaussian centered
//at center with the given full width at half maximum. Returns an error
//if fwhm is not positive.
func GaussianLine(x, center, fwhm float64) (float64, error) {
	if err := checkFWHM(fwhm, "GaussianLine"); err != nil {
		return 0, err
	}
	return gaussian(x, center, fwhm/fwhm2sigma), nil
}

//accumulate fills out[i] with the broadened intensity at grid[i].
//Each line is weighted by its oscillator strength times its energy.
func accumulate(out, grid, energies, strengths []float64, sigma float64) {
	for i, x := range grid {
		level := 0.0
		for j, e := range energies {
			level += strengths[j] * e * gaussian(x, e, sigma)
		}
		out[i] = level
	}
}

func checkLines(energies, strengths []float64, fwhm float64, caller string) error {
	if len(energies) != len(strengths) {
		return NewError(ErrInvalidInput, caller, "%d energies but %d oscillator strengths", len(energies), len(strengths))
	}
	return checkFWHM(fwhm, caller)
}

//Synthesize returns the absorption spectrum sampled at the points in grid, obtained
//by broadening each excitation with a gaussian of the given FWHM. The contribution
//of the ith excitation is strengths[i]*energies[i]*GaussianLine(x, energies[i], fwhm).
//energies and strengths must have the same length, and fwhm must be positive. None of
//the given slices is modified. The returned slice has the length of grid, and is
//all zeros if no excitations are given.
func Synthesize(grid, energies, strengths []float64, fwhm float64) ([]float64, error) {
	if err := checkLines(energies, strengths, fwhm, "Synthesize"); err != nil {
		return nil, err
	}
	out := make([]float64, len(grid))
	accumulate(out, grid, energies, strengths, fwhm/fwhm2sigma)
	return out, nil
}

//SynthesizeConc is like Synthesize, but splits the grid among workers goroutines.
//If workers is 0 or negative, runtime.NumCPU() goroutines are used. The result is
//identical to that of Synthesize.
func SynthesizeConc(grid, energies, strengths []float64, fwhm float64, workers int) ([]float64, error) {
	if err := checkLines(energies, strengths, fwhm, "SynthesizeConc"); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(grid) {
		workers = len(grid)
	}
	out := make([]float64, len(grid))
	if workers <= 1 {
		accumulate(out, grid, energies, strengths, fwhm/fwhm2sigma)
		return out, nil
	}
	sigma := fwhm / fwhm2sigma
	chunk := (len(grid) + workers - 1) / workers
	var wg sync.WaitGroup
	for ini := 0; ini < len(grid); ini += chunk {
		end := ini + chunk
		if end > len(grid) {
			end = len(grid)
		}
		wg.Add(1)
		go func(o, g []float64) {
			defer wg.Done()
			accumulate(o, g, energies, strengths, sigma)
		}(out[ini:end], grid[ini:end])
	}
	wg.Wait()
	return out, nil
}

//SynthesizeLines synthesizes the spectrum of lines on grid, and returns it as a
//*Spectrum. If opts is nil, DefaultOptions are used.
func SynthesizeLines(grid []float64, lines Lines, opts *Options) (*Spectrum, error) {
	fwhm := opts.fwhm()
	y, err := Synthesize(grid, lines.Energies(), lines.Strengths(), fwhm)
	if err != nil {
		return nil, errDecorate(err, "SynthesizeLines")
	}
	return newSpectrum(grid, y, fwhm), nil
}

//Linspace returns n evenly spaced points from start to end, both included.
//For n==1 it returns []float64{start}, for n==0, an empty slice.
func Linspace(start, end float64, n int) ([]float64, error) {
	switch {
	case n < 0:
		return nil, NewError(ErrInvalidParameter, "Linspace", "negative number of points: %d", n)
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, end), nil
}
