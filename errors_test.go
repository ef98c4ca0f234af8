/*
 * errors_test.go, part of gospectra.
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
	"errors"
	"strings"
	"testing"
)

func TestErrorDecoration(Te *testing.T) {
	L := Lines{{Energy: 5, Strength: 0.1}}
	_, err := SynthesizeLines([]float64{4, 5}, L, &Options{FWHM: -1})
	if !errors.Is(err, ErrInvalidParameter) {
		Te.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "gospectra: SynthesizeLines: Synthesize: invalid parameter") {
		Te.Errorf("callers should be printed from the outermost: %s", err)
	}
	if d := JoinDecoration([]string{"inner", "middle", "outer"}); d != "outer: middle: inner" {
		Te.Errorf("JoinDecoration: got %q", d)
	}
	if d := JoinDecoration(nil); d != "" {
		Te.Errorf("JoinDecoration(nil): got %q", d)
	}
}
