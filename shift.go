/*
 * shift.go, part of gospectra.
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
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

//DefaultShiftHeaders are the column names used by WriteShiftTable if none are given.
var DefaultShiftHeaders = []string{"vacuum", "qmmm", "shift (q-v)"}

//Shift is the change in the energy of one excitation between
//a reference environment and a target environment.
type Shift struct {
	Index     int
	Reference float64
	Target    float64
	Delta     float64 //Target-Reference
}

//Shifts pairs the excitations in reference and target by position, and returns the
//energy shift of each. Both sets must have the same number of excitations.
func Shifts(reference, target Lines) ([]Shift, error) {
	if len(reference) != len(target) {
		return nil, NewError(ErrInvalidInput, "Shifts", "%d reference excitations but %d target excitations", len(reference), len(target))
	}
	ret := make([]Shift, len(reference))
	for i, v := range reference {
		t := target[i].Energy
		ret[i] = Shift{Index: i, Reference: v.Energy, Target: t, Delta: t - v.Energy}
	}
	return ret, nil
}

//ShiftSummary returns the mean and the standard deviation of the shifts.
//The deviation is zero for less than two shifts.
func ShiftSummary(shifts []Shift) (mean, std float64) {
	switch len(shifts) {
	case 0:
		return 0, 0
	case 1:
		return shifts[0].Delta, 0
	}
	d := make([]float64, len(shifts))
	for i, v := range shifts {
		d[i] = v.Delta
	}
	return stat.MeanStdDev(d, nil)
}

//WriteShiftTable writes the shifts to w as an aligned table, with a first column for the
//excitation index. The 3 headers, for the reference, target and shift columns, can be given.
//Otherwise, DefaultShiftHeaders are used.
func WriteShiftTable(w io.Writer, shifts []Shift, headers ...string) error {
	if len(headers) == 0 {
		headers = DefaultShiftHeaders
	}
	if len(headers) != 3 {
		return NewError(ErrInvalidInput, "WriteShiftTable", "3 headers needed, %d given", len(headers))
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t%s\t%s\t\n", headers[0], headers[1], headers[2])
	fmt.Fprintf(tw, "--\t%s\t%s\t%s\t\n", dashes(headers[0]), dashes(headers[1]), dashes(headers[2]))
	for _, v := range shifts {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t\n", v.Index, v.Reference, v.Target, v.Delta)
	}
	return tw.Flush()
}

func dashes(s string) string {
	return strings.Repeat("-", len(s))
}
