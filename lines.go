/*
 * lines.go, part of gospectra.
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
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//Line is one electronic excitation: its energy (eV) and its oscillator strength.
type Line struct {
	Energy   float64
	Strength float64
}

func (L Line) String() string {
	return fmt.Sprintf("%8.4f eV f=%.6f", L.Energy, L.Strength)
}

//Lines is an ordered set of excitations, normally by increasing energy.
//Lines implements sort.Interface, sorting by energy.
type Lines []Line

//NewLines pairs energies and strengths by position. It returns an error
//if they don't have the same length.
func NewLines(energies, strengths []float64) (Lines, error) {
	if len(energies) != len(strengths) {
		return nil, NewError(ErrInvalidInput, "NewLines", "%d energies but %d oscillator strengths", len(energies), len(strengths))
	}
	L := make(Lines, len(energies))
	for i, v := range energies {
		L[i] = Line{Energy: v, Strength: strengths[i]}
	}
	return L, nil
}

func (L Lines) Len() int           { return len(L) }
func (L Lines) Less(i, j int) bool { return L[i].Energy < L[j].Energy }
func (L Lines) Swap(i, j int)      { L[i], L[j] = L[j], L[i] }

//Energies returns a new slice with the energies of the lines.
func (L Lines) Energies() []float64 {
	ret := make([]float64, len(L))
	for i, v := range L {
		ret[i] = v.Energy
	}
	return ret
}

//Strengths returns a new slice with the oscillator strengths of the lines.
func (L Lines) Strengths() []float64 {
	ret := make([]float64, len(L))
	for i, v := range L {
		ret[i] = v.Strength
	}
	return ret
}

//Sticks returns the stick spectrum of the lines as two slices, the
//x (energy) and y (oscillator strength) of each stick. If scale is
//given, the strengths are multiplied by its first element.
func (L Lines) Sticks(scale ...float64) (x, y []float64) {
	s := 1.0
	if len(scale) > 0 {
		s = scale[0]
	}
	x = L.Energies()
	y = L.Strengths()
	if s != 1 {
		floats.Scale(s, y)
	}
	return x, y
}
