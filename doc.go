/*
 * doc.go, part of gospectra.
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

/*Package spectra builds continuous absorption spectra from the discrete
excitations (energy, oscillator strength) obtained in electronic structure
calculations.

Each excitation i contributes strength[i]*energy[i]*g(x) to the spectrum at the
energy x, where g is a normalized gaussian centered in energy[i], with a
width given by its full width at half maximum (FWHM, 0.2 eV by default).
All energies are in eV.

The main functions are GaussianLine, Synthesize (and its concurrent
version, SynthesizeConc) and SynthesizeLines, which returns a Spectrum.
The package also compares the excitations obtained in two environments
(say, vacuum and QM/MM) with Shifts and WriteShiftTable.

Subpackages:

    qm: Reads excitations from ORCA outputs and plain-text stick files.

    chemplot: Plots spectra and their sticks with gonum/plot.

    state: A small compressed (zstd by default) state file, used to keep
    the list of trajectory frames to analyze.

    config: The YAML configuration of the absorption program.

Programs:

    cmd/absorption: Compares and plots the spectra of several calculations.

    cmd/setframes: Replaces the frame list in a state file.

Errors from this package wrap ErrInvalidParameter or ErrInvalidInput, so
they can be checked with errors.Is.
*/
package spectra
