/*
 * main.go, part of gospectra.
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

//absorption compares the absorption spectra of a molecule computed in different
//environments (say, vacuum and QM/MM). It broadens the excitations of each calculation
//with gaussians, plots the spectra together with their oscillator strengths, and
//prints a table with the shift of each excitation energy with respect to the first
//dataset.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	spectra "github.com/rmera/gospectra"
	"github.com/rmera/gospectra/chemplot"
	"github.com/rmera/gospectra/config"
	"github.com/rmera/gospectra/qm"
)

var verb int

//LogV prints d to stderr if the verbosity level v is at least vref.
func LogV(v int, vref int, d ...interface{}) {
	if v >= vref {
		fmt.Fprintln(os.Stderr, d...)
	}
}

func CErr(err error, info string) {
	if err != nil {
		log.Fatal(info, ": ", err)
	}
}

func main() {
	cfgfile := flag.String("config", "", "YAML configuration file. If not given, the defaults are used, and the datasets are taken from the arguments")
	fwhm := flag.Float64("fwhm", 0, "broadening (FWHM, eV) of the excitations. Overrides the configuration if > 0")
	out := flag.String("out", "", "file for the plot. The format is taken from the extension. Overrides the configuration")
	format := flag.String("format", "orca", "format of the files given as arguments (orca or sticks)")
	flag.IntVar(&verb, "verbose", 0, "Level of verbosity, the higher, the more verbose.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] [reference_file target_file...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg := config.Default()
	var err error
	if *cfgfile != "" {
		cfg, err = config.Load(*cfgfile)
		CErr(err, "loading configuration")
	}
	for i, v := range flag.Args() {
		cfg.Datasets = append(cfg.Datasets, config.Dataset{Label: fmt.Sprintf("%d", i+1), Path: v, Format: *format})
	}
	if *fwhm > 0 {
		cfg.Broadening.FWHM = *fwhm
	}
	if *out != "" {
		cfg.Plot.Output = *out
	}
	CErr(cfg.Validate(), "checking configuration")
	if len(cfg.Datasets) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	err = run(cfg, os.Stdout)
	CErr(err, "absorption")
}

//run does the whole analysis described by cfg, and writes the shift tables to w.
func run(cfg *config.Config, w io.Writer) error {
	if len(cfg.Datasets) == 0 {
		return fmt.Errorf("no datasets to process")
	}
	grid, err := spectra.Linspace(cfg.Grid.Start, cfg.Grid.End, cfg.Grid.Points)
	if err != nil {
		return err
	}
	sets := make([]chemplot.Dataset, 0, len(cfg.Datasets))
	for _, d := range cfg.Datasets {
		lines, err := readDataset(d)
		if err != nil {
			return err
		}
		LogV(verb, 1, "Read", len(lines), "excitations for", d.Label, "from", d.Path)
		LogV(verb, 2, lines)
		y, err := spectra.SynthesizeConc(grid, lines.Energies(), lines.Strengths(), cfg.Broadening.FWHM, cfg.Workers)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", d.Label, err)
		}
		S, err := spectra.NewSpectrum(grid, y, cfg.Broadening.FWHM)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", d.Label, err)
		}
		sets = append(sets, chemplot.Dataset{Label: d.Label, Spectrum: S.Scale(cfg.Plot.Scale), Lines: lines})
	}
	if cfg.Plot.Output != "" {
		opts := chemplot.DefaultOptions()
		opts.Title = cfg.Plot.Title
		opts.XMin = cfg.Plot.XMin
		opts.XMax = cfg.Plot.XMax
		p, err := chemplot.SpectraPlot(sets, opts)
		if err != nil {
			return err
		}
		if err := chemplot.SaveSpectraPlot(p, cfg.Plot.Output, cfg.Plot.WidthCM, cfg.Plot.HeightCM); err != nil {
			return err
		}
		LogV(verb, 1, "Plot saved to", cfg.Plot.Output)
	}
	ref := sets[0]
	for _, target := range sets[1:] {
		shifts, err := spectra.Shifts(ref.Lines, target.Lines)
		if err != nil {
			//Not fatal, the plot is still useful.
			log.Printf("Can't compare %s and %s: %v", ref.Label, target.Label, err)
			continue
		}
		fmt.Fprintf(w, "\n%s vs %s\n", ref.Label, target.Label)
		if err := spectra.WriteShiftTable(w, shifts, cfg.Table.Headers...); err != nil {
			return err
		}
		mean, std := spectra.ShiftSummary(shifts)
		fmt.Fprintf(w, "mean shift: %.4f eV, std: %.4f eV\n", mean, std)
	}
	return nil
}

func readDataset(d config.Dataset) (spectra.Lines, error) {
	unit := qm.EV
	if d.Unit != "" {
		var err error
		if unit, err = qm.ParseUnit(d.Unit); err != nil {
			return nil, fmt.Errorf("dataset %s: %w", d.Label, err)
		}
	}
	r, err := qm.NewReader(d.Format, d.Path, unit)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", d.Label, err)
	}
	lines, err := r.Excitations()
	if errors.Is(err, qm.ErrProbableProblem) {
		log.Printf("dataset %s: %v. Will use the excitations anyway", d.Label, err)
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", d.Label, err)
	}
	return lines, nil
}
