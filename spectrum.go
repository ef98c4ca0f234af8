/*
 * spectrum.go, part of gospectra.
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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

//Spectrum is a broadened spectrum sampled on a grid of energies.
type Spectrum struct {
	fwhm      float64
	grid      []float64
	intensity []float64
}

//newSpectrum copies grid and intensity, which must have the same length.
func newSpectrum(grid, intensity []float64, fwhm float64) *Spectrum {
	S := new(Spectrum)
	S.fwhm = fwhm
	//I prefer to copy the slices to avoid somebody changing them from outside
	S.grid = make([]float64, len(grid))
	copy(S.grid, grid)
	S.intensity = make([]float64, len(intensity))
	copy(S.intensity, intensity)
	return S
}

//NewSpectrum returns a new Spectrum with copies of grid and intensity, which
//must have the same length. fwhm is the broadening used to obtain
//intensity, and must be positive.
func NewSpectrum(grid, intensity []float64, fwhm float64) (*Spectrum, error) {
	if len(grid) != len(intensity) {
		return nil, NewError(ErrInvalidInput, "NewSpectrum", "%d grid points but %d intensities", len(grid), len(intensity))
	}
	if err := checkFWHM(fwhm, "NewSpectrum"); err != nil {
		return nil, err
	}
	return newSpectrum(grid, intensity, fwhm), nil
}

func (S *Spectrum) Len() int {
	return len(S.grid)
}

//FWHM returns the broadening width used for the spectrum
func (S *Spectrum) FWHM() float64 {
	return S.fwhm
}

//Grid returns a view (not a copy) of the energies at which the spectrum is sampled.
func (S *Spectrum) Grid() []float64 {
	return S.grid
}

//View returns a view (not a copy) of the intensities.
func (S *Spectrum) View() []float64 {
	return S.intensity
}

//Copy returns a copy of the intensities. If dest is given and
//large enough, the copy is put there.
func (S *Spectrum) Copy(dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= len(S.intensity) {
		d = dest[0][:len(S.intensity)]
	} else {
		d = make([]float64, len(S.intensity))
	}
	copy(d, S.intensity)
	return d
}

//Scale returns a new Spectrum with the intensities multiplied by f.
func (S *Spectrum) Scale(f float64) *Spectrum {
	ret := newSpectrum(S.grid, S.intensity, S.fwhm)
	floats.Scale(f, ret.intensity)
	return ret
}

//Add returns the sum of the receiver and other, which must be sampled on the same grid.
func (S *Spectrum) Add(other *Spectrum) (*Spectrum, error) {
	if other == nil {
		return nil, NewError(ErrInvalidInput, "Spectrum.Add", "nil spectrum")
	}
	if !floats.Equal(S.grid, other.grid) {
		return nil, NewError(ErrInvalidInput, "Spectrum.Add", "spectra are not sampled on the same grid")
	}
	ret := newSpectrum(S.grid, S.intensity, S.fwhm)
	floats.Add(ret.intensity, other.intensity)
	return ret, nil
}

//Max returns the energy and intensity of the highest point in the spectrum.
func (S *Spectrum) Max() (energy, intensity float64, err error) {
	if len(S.intensity) == 0 {
		return 0, 0, NewError(ErrInvalidInput, "Spectrum.Max", "empty spectrum")
	}
	i := floats.MaxIdx(S.intensity)
	return S.grid[i], S.intensity[i], nil
}

//Area returns the integral of the spectrum over its grid, using the
//trapezoidal rule. The grid must be in increasing order.
//A spectrum with less than 2 points has zero area.
func (S *Spectrum) Area() (float64, error) {
	if len(S.grid) < 2 {
		return 0, nil
	}
	if !sort.Float64sAreSorted(S.grid) {
		return 0, NewError(ErrInvalidInput, "Spectrum.Area", "grid is not sorted")
	}
	return integrate.Trapezoidal(S.grid, S.intensity), nil
}

//String prints the spectrum as two columns, energy and intensity.
func (S *Spectrum) String() string {
	r := make([]string, 0, len(S.grid)+1)
	r = append(r, fmt.Sprintf("# FWHM: %.3f eV, points: %d", S.fwhm, len(S.grid)))
	for i, v := range S.grid {
		r = append(r, fmt.Sprintf("%10.5f %14.8e", v, S.intensity[i]))
	}
	return strings.Join(r, "\n")
}

type jsonSpectrum struct {
	FWHM      float64   `json:"fwhm"`
	Grid      []float64 `json:"grid"`
	Intensity []float64 `json:"intensity"`
}

func (S *Spectrum) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSpectrum{
		FWHM:      S.fwhm,
		Grid:      S.grid,
		Intensity: S.intensity,
	})
}

func (S *Spectrum) UnmarshalJSON(b []byte) error {
	var a jsonSpectrum
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Grid) != len(a.Intensity) {
		return NewError(ErrInvalidInput, "Spectrum.UnmarshalJSON", "%d grid points but %d intensities", len(a.Grid), len(a.Intensity))
	}
	if err := checkFWHM(a.FWHM, "Spectrum.UnmarshalJSON"); err != nil {
		return err
	}
	S.fwhm = a.FWHM
	S.grid = a.Grid
	S.intensity = a.Intensity
	return nil
}
