/*
 * shift_test.go, part of gospectra.
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
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestShifts(Te *testing.T) {
	vac, _ := NewLines([]float64{4.0, 6.0, 7.5}, []float64{0, 0.1, 0.2})
	qmmm, _ := NewLines([]float64{4.25, 5.75, 7.5}, []float64{0, 0.1, 0.3})
	s, err := Shifts(vac, qmmm)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{0.25, -0.25, 0}
	for i, v := range s {
		if v.Index != i || v.Delta != want[i] || v.Reference != vac[i].Energy || v.Target != qmmm[i].Energy {
			Te.Errorf("shift %d: got %+v", i, v)
		}
	}
	mean, std := ShiftSummary(s)
	if mean != 0 {
		Te.Errorf("mean shift: got %v, want 0", mean)
	}
	if !scalar.EqualWithinAbs(std, 0.25, 1e-12) {
		Te.Errorf("std of the shifts: got %v, want 0.25", std)
	}
	if _, err := Shifts(vac, qmmm[:2]); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if m, d := ShiftSummary(s[:1]); m != 0.25 || d != 0 {
		Te.Errorf("one shift: got %v %v", m, d)
	}
	if m, d := ShiftSummary(nil); m != 0 || d != 0 {
		Te.Errorf("no shifts: got %v %v", m, d)
	}
}

func TestWriteShiftTable(Te *testing.T) {
	vac, _ := NewLines(acetoneE, acetoneF)
	qmmm := make(Lines, len(vac))
	for i, v := range vac {
		qmmm[i] = Line{Energy: v.Energy + 0.125, Strength: v.Strength}
	}
	s, err := Shifts(vac, qmmm)
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteShiftTable(&b, s); err != nil {
		Te.Fatal(err)
	}
	fmt.Println(b.String())
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != len(s)+2 {
		Te.Fatalf("got %d lines, want %d", len(lines), len(s)+2)
	}
	if f := strings.Fields(lines[0]); len(f) != 4 || f[0] != "vacuum" || f[1] != "qmmm" {
		Te.Errorf("bad header: %q", lines[0])
	}
	row := strings.Fields(lines[2])
	if len(row) != 4 || row[0] != "0" || row[1] != "4.4322" || row[2] != "4.5572" || row[3] != "0.1250" {
		Te.Errorf("bad first row: %q", lines[2])
	}
	//right-aligned columns end at the same place.
	if len(lines[2]) != len(lines[len(lines)-1]) || len(lines[0]) != len(lines[2]) {
		Te.Errorf("columns are not aligned:\n%s", b.String())
	}
	if err := WriteShiftTable(&b, s, "a", "b"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
