/*
 * qm.go, part of gospectra.
 *
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
 *
 */

package qm

import (
	"errors"
	"fmt"
	"strings"

	spectra "github.com/rmera/gospectra"
)

//Unit conversions to eV
const (
	CM2eV   = 1 / 8065.543937 //wavenumbers (cm-1) to eV
	NMeV    = 1239.841984     //eV = NMeV/wavelength(nm)
	Hartree = 27.211386246    //Hartree to eV
)

//Unit is the energy unit used in a file.
type Unit int

const (
	EV Unit = iota
	NM
	CM
	AU
)

var unitNames = map[string]Unit{
	"ev":   EV,
	"nm":   NM,
	"cm-1": CM,
	"cm":   CM,
	"au":   AU,
	"eh":   AU,
}

//ParseUnit returns the Unit for the given name (eV, nm, cm-1, au), case insensitive.
func ParseUnit(name string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return EV, fmt.Errorf("unknown energy unit %q", name)
	}
	return u, nil
}

//ToEV converts the energy v, given in the unit u, to eV.
//Wavelengths of 0 or less can't be converted, and give an error.
func (u Unit) ToEV(v float64) (float64, error) {
	switch u {
	case EV:
		return v, nil
	case CM:
		return v * CM2eV, nil
	case AU:
		return v * Hartree, nil
	case NM:
		if v <= 0 {
			return 0, fmt.Errorf("non-positive wavelength %v nm", v)
		}
		return NMeV / v, nil
	}
	return 0, fmt.Errorf("unknown energy unit %d", u)
}

//Reader obtains the excitations (energy in eV, and oscillator strength)
//from the output of some QM program.
type Reader interface {
	Excitations() (spectra.Lines, error)
}

//NewReader returns the Reader for files of the given format (orca or sticks).
//For orca, name is the job name, so the output file is name.out (a name that
//already ends in .out is also accepted). unit is only used for stick files, and
//defaults to eV.
func NewReader(format, name string, unit ...Unit) (Reader, error) {
	switch strings.ToLower(format) {
	case "orca":
		O := NewOrcaHandle()
		O.SetName(strings.TrimSuffix(name, ".out"))
		return O, nil
	case "sticks", "stick", "txt":
		u := EV
		if len(unit) > 0 {
			u = unit[0]
		}
		return NewStickFile(name, u), nil
	}
	return nil, fmt.Errorf("unknown excitation file format %q", format)
}

//ErrProbableProblem is returned, together with the data read, when a QM output
//file contains what was requested but the calculation didn't end normally.
var ErrProbableProblem = errors.New("probable problem in calculation")

//Error is the error type for problems reading QM output.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	err      error //the cause, if any
}

func newError(filename, caller string, cause error, format string, a ...interface{}) *Error {
	E := &Error{message: fmt.Sprintf(format, a...), filename: filename, err: cause}
	E.Decorate(caller)
	return E
}

func (err *Error) Error() string {
	s := fmt.Sprintf("qm file %s error: %s", err.filename, err.message)
	if len(err.deco) > 0 {
		s = spectra.JoinDecoration(err.deco) + ": " + s
	}
	if err.err != nil {
		s += ": " + err.err.Error()
	}
	return s
}

func (err *Error) Unwrap() error { return err.err }

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated
func (err *Error) FileName() string { return err.filename }
