/*
 * orca.go, part of gospectra.
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
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	spectra "github.com/rmera/gospectra"
)

const (
	orcaSpectrumTitle = "ABSORPTION SPECTRUM VIA TRANSITION ELECTRIC DIPOLE MOMENTS"
	orcaNormalEnd     = "**ORCA TERMINATED NORMALLY**"
)

//OrcaHandle reads results from ORCA TD-DFT/CIS calculations.
type OrcaHandle struct {
	inputname string
}

func NewOrcaHandle() *OrcaHandle {
	run := new(OrcaHandle)
	run.SetDefaults()
	return run
}

//OrcaHandle methods

//SetName sets the name of the job. The output is expected in name.out
func (O *OrcaHandle) SetName(name string) {
	O.inputname = name
}

//SetDefaults sets the job name to "gospectra", so the output file is gospectra.out
func (O *OrcaHandle) SetDefaults() {
	O.inputname = "gospectra"
}

//Excitations reads the excited states from the last "absorption spectrum via transition
//electric dipole moments" table in the ORCA output. Spin-orbit corrected tables are
//ignored. Energies are returned in eV.
//If the table is found, but ORCA did not terminate normally, the excitations
//are returned together with an error wrapping ErrProbableProblem.
func (O *OrcaHandle) Excitations() (spectra.Lines, error) {
	outname := fmt.Sprintf("%s.out", O.inputname)
	f, err := os.Open(outname)
	if err != nil {
		return nil, newError(outname, "OrcaHandle.Excitations", err, "can't open output")
	}
	defer f.Close()
	var lines spectra.Lines
	var found, normal bool
	//states: 0, outside the table. 1, in the title. 2, in the column headers. 3, in the data.
	state := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, orcaNormalEnd) {
			normal = true
			continue
		}
		//SOC or SPIN ORBIT CORRECTED tables have the same title, with a prefix,
		//and a different row layout. They are skipped.
		if strings.HasPrefix(strings.TrimSpace(line), orcaSpectrumTitle) {
			//we keep only the last table
			lines = lines[:0]
			found = true
			state = 1
			continue
		}
		switch state {
		case 1, 2:
			if isDashes(line) {
				state++
			}
		case 3:
			l, ok := orcaSpectrumLine(line)
			if !ok {
				state = 0
				continue
			}
			lines = append(lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newError(outname, "OrcaHandle.Excitations", err, "can't read output")
	}
	if !found {
		return nil, newError(outname, "OrcaHandle.Excitations", nil, "output does not contain an absorption spectrum")
	}
	if !normal {
		log.Printf("ORCA output %s does not end normally, excitations may be unreliable", outname)
		return lines, newError(outname, "OrcaHandle.Excitations", ErrProbableProblem, "ORCA did not terminate normally")
	}
	return lines, nil
}

//orcaSpectrumLine parses one row of the absorption table. ORCA 6 rows are like
//"0-1A  ->  1-1A    4.432210   35748.2   279.7   0.000000010 ..." (energy in eV),
//older versions give "1   35748.2    279.7   0.000000010 ..." (energy in cm-1).
func orcaSpectrumLine(line string) (spectra.Line, bool) {
	var ret spectra.Line
	var err error
	fields := strings.Fields(line)
	if len(fields) >= 7 && fields[1] == "->" {
		if ret.Energy, err = strconv.ParseFloat(fields[3], 64); err != nil {
			return ret, false
		}
		if ret.Strength, err = strconv.ParseFloat(fields[6], 64); err != nil {
			return ret, false
		}
		return ret, true
	}
	if len(fields) < 4 {
		return ret, false
	}
	if _, err = strconv.Atoi(strings.TrimSuffix(fields[0], ":")); err != nil {
		return ret, false
	}
	cm, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return ret, false
	}
	if ret.Strength, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return ret, false
	}
	ret.Energy = cm * CM2eV
	return ret, true
}

func isDashes(line string) bool {
	l := strings.TrimSpace(line)
	return len(l) > 0 && strings.Trim(l, "-") == ""
}
