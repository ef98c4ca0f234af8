/*
 * spectrum_test.go, part of gospectra.
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
	"errors"
	"math"
	"sort"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func acetoneSpectrum(Te *testing.T, n int) *Spectrum {
	Te.Helper()
	grid, err := Linspace(0, 15, n)
	if err != nil {
		Te.Fatal(err)
	}
	L, err := NewLines(acetoneE, acetoneF)
	if err != nil {
		Te.Fatal(err)
	}
	S, err := SynthesizeLines(grid, L, DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestNewSpectrum(Te *testing.T) {
	grid := []float64{1, 2, 3}
	y := []float64{0.1, 0.2, 0.3}
	S, err := NewSpectrum(grid, y, 0.3)
	if err != nil {
		Te.Fatal(err)
	}
	grid[0] = 100
	y[0] = 100
	if S.Grid()[0] != 1 || S.View()[0] != 0.1 {
		Te.Errorf("NewSpectrum did not copy its input")
	}
	if _, err := NewSpectrum(grid, y[:2], 0.3); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := NewSpectrum(grid, y, 0); !errors.Is(err, ErrInvalidParameter) {
		Te.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSpectrumScale(Te *testing.T) {
	S := acetoneSpectrum(Te, 1200)
	s := S.Scale(0.05)
	for i, v := range S.View() {
		if s.View()[i] != 0.05*v {
			Te.Fatalf("point %d: %v is not 0.05*%v", i, s.View()[i], v)
		}
	}
	if s.Len() != S.Len() || s.FWHM() != S.FWHM() {
		Te.Errorf("scaled spectrum has a different shape")
	}
}

//The area of a spectrum is the sum of strength*energy of its lines, as each line is normalized.
func TestSpectrumArea(Te *testing.T) {
	S := acetoneSpectrum(Te, 6000)
	area, err := S.Area()
	if err != nil {
		Te.Fatal(err)
	}
	want := floats.Dot(acetoneE, acetoneF)
	if !scalar.EqualWithinRel(area, want, 1e-6) {
		Te.Errorf("area: got %v, want %v", area, want)
	}
	unsorted, _ := NewSpectrum([]float64{3, 1, 2}, []float64{1, 1, 1}, 0.2)
	if _, err := unsorted.Area(); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("unsorted grid: expected ErrInvalidInput, got %v", err)
	}
	single, _ := NewSpectrum([]float64{3}, []float64{1}, 0.2)
	if a, err := single.Area(); a != 0 || err != nil {
		Te.Errorf("single point: got %v, %v", a, err)
	}
}

func TestSpectrumMax(Te *testing.T) {
	S := acetoneSpectrum(Te, 1501)
	e, y, err := S.Max()
	if err != nil {
		Te.Fatal(err)
	}
	//The strongest line, once weighted by energy, is the one at 8.7904 eV
	if math.Abs(e-8.79) > 0.05 {
		Te.Errorf("maximum at %v eV, expected near 8.79", e)
	}
	if y <= 0 {
		Te.Errorf("maximum intensity %v", y)
	}
	empty, _ := NewSpectrum(nil, nil, 0.2)
	if _, _, err := empty.Max(); err == nil {
		Te.Errorf("expected an error for an empty spectrum")
	}
}

func TestSpectrumAdd(Te *testing.T) {
	grid, _ := Linspace(0, 15, 500)
	L, _ := NewLines(acetoneE, acetoneF)
	a, _ := SynthesizeLines(grid, L[:6], nil)
	b, _ := SynthesizeLines(grid, L[6:], nil)
	all, _ := SynthesizeLines(grid, L, nil)
	sum, err := a.Add(b)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range all.View() {
		if !scalar.EqualWithinAbsOrRel(v, sum.View()[i], 1e-14, 1e-10) {
			Te.Fatalf("point %d: %v != %v", i, v, sum.View()[i])
		}
	}
	other, _ := Linspace(0, 10, 500)
	c, _ := SynthesizeLines(other, L, nil)
	if _, err := a.Add(c); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("different grids: expected ErrInvalidInput, got %v", err)
	}
	if _, err := a.Add(nil); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("nil spectrum: expected ErrInvalidInput, got %v", err)
	}
}

func TestSpectrumJSON(Te *testing.T) {
	S := acetoneSpectrum(Te, 50)
	j, err := json.Marshal(S)
	if err != nil {
		Te.Fatal(err)
	}
	S2 := new(Spectrum)
	if err := json.Unmarshal(j, S2); err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(S.Grid(), S2.Grid()) || !floats.Equal(S.View(), S2.View()) || S.FWHM() != S2.FWHM() {
		Te.Errorf("spectrum changed after a JSON round trip")
	}
	if err := json.Unmarshal([]byte(`{"fwhm":0.2,"grid":[1,2],"intensity":[1]}`), S2); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
	for _, bad := range []string{`{"fwhm":0,"grid":[1],"intensity":[1]}`, `{"fwhm":-0.2,"grid":[1],"intensity":[1]}`, `{"grid":[],"intensity":[]}`} {
		if err := json.Unmarshal([]byte(bad), new(Spectrum)); !errors.Is(err, ErrInvalidParameter) {
			Te.Errorf("%s: expected ErrInvalidParameter, got %v", bad, err)
		}
	}
	if lines := strings.Split(S.String(), "\n"); len(lines) != 51 {
		Te.Errorf("String: %d lines, want 51", len(lines))
	}
}

func TestLines(Te *testing.T) {
	if _, err := NewLines([]float64{1}, nil); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
	L, _ := NewLines([]float64{7, 5, 6}, []float64{0.3, 0.1, 0.2})
	sort.Sort(L)
	if !floats.Equal(L.Energies(), []float64{5, 6, 7}) || !floats.Equal(L.Strengths(), []float64{0.1, 0.2, 0.3}) {
		Te.Errorf("bad sorting: %v", L)
	}
	x, y := L.Sticks(2)
	if !floats.Equal(x, []float64{5, 6, 7}) || !floats.Equal(y, []float64{0.2, 0.4, 0.6}) {
		Te.Errorf("bad sticks: %v %v", x, y)
	}
	if L[0].Strength != 0.1 {
		Te.Errorf("Sticks modified the lines")
	}
}
