/*
 * main_test.go, part of gospectra.
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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	spectra "github.com/rmera/gospectra"
	"github.com/rmera/gospectra/state"
)

func TestRun(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "state.zst")
	var b bytes.Buffer
	if err := run(name, 0, 10, 5, false, &b); !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("missing file without -create: expected a not-exist error, got %v", err)
	}
	if err := run(name, 0, 10, 5, true, &b); err != nil {
		Te.Fatal(err)
	}
	if b.String() != "[]\n[0 5]\n" {
		Te.Errorf("bad output for a new file: %q", b.String())
	}
	b.Reset()
	if err := run(name, 798500, 803000, 1500, false, &b); err != nil {
		Te.Fatal(err)
	}
	if b.String() != "[0 5]\n[798500 800000 801500]\n" {
		Te.Errorf("bad output when replacing frames: %q", b.String())
	}
	S, err := state.Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	frames, err := S.Frames()
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(frames, []int{798500, 800000, 801500}) {
		Te.Errorf("frames in file: %v", frames)
	}
	if err := run(name, 0, 10, 0, false, &b); !errors.Is(err, spectra.ErrInvalidParameter) {
		Te.Errorf("zero step: expected ErrInvalidParameter, got %v", err)
	}
}
