/*
 * frames.go, part of gospectra.
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

package state

import (
	"errors"
	"os"

	spectra "github.com/rmera/gospectra"
)

//FrameRange returns the integers from start up to, but not including, stop, every step.
//step can be negative, in which case the range goes down. A zero step is an error.
func FrameRange(start, stop, step int) ([]int, error) {
	if step == 0 {
		return nil, spectra.NewError(spectra.ErrInvalidParameter, "FrameRange", "zero step")
	}
	var span, ustep uint
	switch {
	case step > 0 && start < stop:
		span, ustep = uint(stop)-uint(start), uint(step)
	case step < 0 && start > stop:
		span, ustep = uint(start)-uint(stop), -uint(step)
	default:
		return []int{}, nil
	}
	//the number of frames is counted in unsigned arithmetic, so ranges
	//close to the int limits can't wrap around.
	n := span / ustep
	if span%ustep != 0 {
		n++
	}
	ret := make([]int, 0)
	i := start
	for k := uint(0); k < n; k++ {
		ret = append(ret, i)
		if k+1 < n {
			i += step
		}
	}
	return ret, nil
}

//ReplaceFrames replaces the frames dataset in the state file name with frames, and
//returns the frames that were there before (nil if there were none). If the file doesn't
//exist, it is created only if create is true. Other datasets in the file are kept.
func ReplaceFrames(name string, frames []int, create bool) ([]int, error) {
	S, err := Open(name)
	if err != nil {
		if !(create && errors.Is(err, os.ErrNotExist)) {
			return nil, errDecorate(err, "ReplaceFrames")
		}
		S = New()
	}
	var old []int
	if S.Has(FramesKey) {
		if old, err = S.Frames(); err != nil {
			return nil, errDecorate(err, "ReplaceFrames")
		}
	}
	S.Delete(FramesKey)
	S.SetFrames(frames)
	if err := S.Save(name); err != nil {
		return old, errDecorate(err, "ReplaceFrames")
	}
	return old, nil
}
