/*
 * config_test.go, part of gospectra.
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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	spectra "github.com/rmera/gospectra"
)

func writeConfig(Te *testing.T, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "absorption.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestLoad(Te *testing.T) {
	path := writeConfig(Te, `
broadening:
  fwhm: 0.3
grid:
  points: 600
plot:
  output: acetone.svg
datasets:
  - label: Vacuum
    path: vac.out
    format: orca
  - label: QMMM
    path: qmmm.txt
    format: sticks
    unit: nm
`)
	cfg, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Broadening.FWHM != 0.3 || cfg.Grid.Points != 600 || cfg.Plot.Output != "acetone.svg" {
		Te.Errorf("values from the file were not read: %+v", cfg)
	}
	//not in the file, so they keep the defaults
	if cfg.Grid.End != 15 || cfg.Plot.Scale != 0.05 || cfg.Plot.XMax != 12.5 || len(cfg.Table.Headers) != 3 {
		Te.Errorf("defaults were lost: %+v", cfg)
	}
	if len(cfg.Datasets) != 2 || cfg.Datasets[1].Unit != "nm" || cfg.Datasets[0].Label != "Vacuum" {
		Te.Errorf("bad datasets: %+v", cfg.Datasets)
	}
}

func TestLoadErrors(Te *testing.T) {
	if _, err := Load(filepath.Join(Te.TempDir(), "nothere.yaml")); !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
	if _, err := Load(writeConfig(Te, "grid: [1, 2\n")); err == nil {
		Te.Errorf("expected a YAML error")
	}
	if _, err := Load(writeConfig(Te, "broadening:\n  fwhm: 0\n")); !errors.Is(err, spectra.ErrInvalidParameter) {
		Te.Errorf("zero fwhm: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Load(writeConfig(Te, "datasets:\n  - {label: a, path: a.log, format: gaussian}\n")); !errors.Is(err, spectra.ErrInvalidInput) {
		Te.Errorf("unknown format: expected ErrInvalidInput, got %v", err)
	}
	if _, err := Load(writeConfig(Te, "datasets:\n  - {label: a, format: orca}\n")); !errors.Is(err, spectra.ErrInvalidInput) {
		Te.Errorf("no path: expected ErrInvalidInput, got %v", err)
	}
}

func TestDefault(Te *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		Te.Error(err)
	}
	if cfg.Broadening.FWHM != spectra.DefaultFWHM || cfg.Grid.Points != 1200 {
		Te.Errorf("bad defaults: %+v", cfg)
	}
}
