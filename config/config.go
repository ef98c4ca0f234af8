/*
 * config.go, part of gospectra.
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

//Package config reads the YAML configuration of the absorption driver.
package config

import (
	"fmt"
	"os"
	"strings"

	spectra "github.com/rmera/gospectra"
	"gopkg.in/yaml.v3"
)

type Broadening struct {
	FWHM float64 `yaml:"fwhm"`
}

//Grid is the set of energies (eV) at which the spectra are sampled.
type Grid struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Points int     `yaml:"points"`
}

type Plot struct {
	Title    string  `yaml:"title"`
	Scale    float64 `yaml:"scale"` //the broadened spectra are multiplied by this
	XMin     float64 `yaml:"xmin"`
	XMax     float64 `yaml:"xmax"`
	Output   string  `yaml:"output"` //the format is taken from the extension
	WidthCM  float64 `yaml:"width_cm"`
	HeightCM float64 `yaml:"height_cm"`
}

//Dataset is one file with excitations. Format is orca or sticks. Unit is
//only used for sticks files.
type Dataset struct {
	Label  string `yaml:"label"`
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Unit   string `yaml:"unit"`
}

type Table struct {
	Headers []string `yaml:"headers"`
}

//Config is the top-level structure of the configuration file.
type Config struct {
	Broadening Broadening `yaml:"broadening"`
	Grid       Grid       `yaml:"grid"`
	Plot       Plot       `yaml:"plot"`
	Datasets   []Dataset  `yaml:"datasets"`
	Table      Table      `yaml:"table"`
	Workers    int        `yaml:"workers"` //goroutines for the synthesis, 0 means one per CPU
}

//Default returns the default configuration. It has no datasets.
func Default() *Config {
	return &Config{
		Broadening: Broadening{FWHM: spectra.DefaultFWHM},
		Grid:       Grid{Start: 0, End: 15, Points: 1200},
		Plot: Plot{
			Scale:    0.05,
			XMin:     4,
			XMax:     12.5,
			Output:   "absorption.png",
			WidthCM:  15,
			HeightCM: 10,
		},
		Table: Table{Headers: []string{"vacuum", "qmmm", "shift (q-v)"}},
	}
}

//Load reads and parses the YAML file in path. Values not in the file
//keep their defaults. The configuration is validated before returning.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var formats = map[string]bool{"orca": true, "sticks": true, "stick": true, "txt": true}

//Validate returns an error if the configuration can't be used.
func (C *Config) Validate() error {
	if !(C.Broadening.FWHM > 0) {
		return spectra.NewError(spectra.ErrInvalidParameter, "Config.Validate", "fwhm must be > 0, got %v", C.Broadening.FWHM)
	}
	if C.Grid.Points < 0 {
		return spectra.NewError(spectra.ErrInvalidParameter, "Config.Validate", "negative number of grid points: %d", C.Grid.Points)
	}
	if !(C.Plot.Scale > 0) {
		return spectra.NewError(spectra.ErrInvalidParameter, "Config.Validate", "plot scale must be > 0, got %v", C.Plot.Scale)
	}
	if len(C.Table.Headers) != 0 && len(C.Table.Headers) != 3 {
		return spectra.NewError(spectra.ErrInvalidInput, "Config.Validate", "the table needs 3 headers, got %d", len(C.Table.Headers))
	}
	for i, d := range C.Datasets {
		if d.Path == "" {
			return spectra.NewError(spectra.ErrInvalidInput, "Config.Validate", "dataset %d (%s) has no path", i, d.Label)
		}
		if !formats[strings.ToLower(d.Format)] {
			return spectra.NewError(spectra.ErrInvalidInput, "Config.Validate", "dataset %d (%s) has unknown format %q", i, d.Label, d.Format)
		}
	}
	return nil
}
