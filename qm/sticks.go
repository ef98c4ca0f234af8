/*
 * sticks.go, part of gospectra.
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
	"bufio"
	"os"
	"strconv"
	"strings"

	spectra "github.com/rmera/gospectra"
)

//StickFile reads excitations from a plain text file with two columns: the energy and the
//oscillator strength of each excitation. Anything after a '#' is a comment,
//and blank lines are ignored. Additional columns are also ignored.
type StickFile struct {
	filename string
	unit     Unit
}

//NewStickFile returns a reader for the stick file name, where energies are in the unit u.
func NewStickFile(name string, u Unit) *StickFile {
	return &StickFile{filename: name, unit: u}
}

//Excitations returns the excitations in the file, in the same order, with energies in eV.
func (S *StickFile) Excitations() (spectra.Lines, error) {
	f, err := os.Open(S.filename)
	if err != nil {
		return nil, newError(S.filename, "StickFile.Excitations", err, "can't open file")
	}
	defer f.Close()
	var ret spectra.Lines
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, newError(S.filename, "StickFile.Excitations", nil, "line %d: 2 columns needed, got %d", n, len(fields))
		}
		e, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, newError(S.filename, "StickFile.Excitations", err, "line %d: bad energy", n)
		}
		if e, err = S.unit.ToEV(e); err != nil {
			return nil, newError(S.filename, "StickFile.Excitations", err, "line %d", n)
		}
		osc, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, newError(S.filename, "StickFile.Excitations", err, "line %d: bad oscillator strength", n)
		}
		if osc < 0 {
			return nil, newError(S.filename, "StickFile.Excitations", nil, "line %d: negative oscillator strength %v", n, osc)
		}
		ret = append(ret, spectra.Line{Energy: e, Strength: osc})
	}
	if err := scanner.Err(); err != nil {
		return nil, newError(S.filename, "StickFile.Excitations", err, "can't read file")
	}
	return ret, nil
}
