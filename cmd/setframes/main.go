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

//setframes replaces the list of trajectory frames in a state file
//with the frames from -start to -stop (not included), every -step.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rmera/gospectra/state"
)

func main() {
	start := flag.Int("start", 798500, "first frame")
	stop := flag.Int("stop", 803000, "the range stops before this frame")
	step := flag.Int("step", 500, "step between frames")
	create := flag.Bool("create", false, "create the state file if it doesn't exist")
	flag.Parse()
	name := "state.zst"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	if err := run(name, *start, *stop, *step, *create, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

//run puts the frames from start to stop (not included), every step, in the
//state file name, and writes the old and the new frame lists to w.
func run(name string, start, stop, step int, create bool, w io.Writer) error {
	frames, err := state.FrameRange(start, stop, step)
	if err != nil {
		return err
	}
	old, err := state.ReplaceFrames(name, frames, create)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, old)
	fmt.Fprintln(w, frames)
	return nil
}
