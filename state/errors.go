/*
 * errors.go, part of gospectra.
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
	"fmt"

	spectra "github.com/rmera/gospectra"
)

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the state file"
	NoDataset    = "No such dataset"
)

//Error is the general structure for state file errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	err      error
}

func newError(filename, caller string, cause error, format string, a ...interface{}) *Error {
	E := &Error{message: fmt.Sprintf(format, a...), filename: filename, err: cause}
	E.Decorate(caller)
	return E
}

func (err *Error) Error() string {
	s := fmt.Sprintf("state file %s error: %s", err.filename, err.message)
	if err.filename == "" {
		s = "state error: " + err.message
	}
	if len(err.deco) > 0 {
		s = spectra.JoinDecoration(err.deco) + ": " + s
	}
	if err.err != nil {
		s += ": " + err.err.Error()
	}
	return s
}

func (err *Error) Unwrap() error { return err.err }

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated
func (err *Error) FileName() string { return err.filename }

//errDecorate decorates err with the caller's name if it is a state *Error.
func errDecorate(err error, caller string) error {
	var E *Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}
