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

/*Package state keeps the bookkeeping of a QM/MM excited-state run (the list of
trajectory frames that were, or will be, computed, and any other array of numbers)
in a small compressed file.

******************** Format Specification   ***************************************************

A state file is a JSON document compressed with z-standard (zstd). Files with the
extension .gz are compressed with gzip instead, and files with the extension .flate
or .zz, with raw deflate.

The JSON document is an object with a single key, "datasets", whose value is an
object mapping each dataset name to an object with the keys:

	kind:   "int" or "float"
	ints:   the array, if kind is "int"
	floats: the array, if kind is "float"

An empty array can be omitted. The dataset "frames", if present, is an "int" dataset
with the indexes of the trajectory frames.

***************************************************************************************************/
package state
