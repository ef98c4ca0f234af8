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

package spectra

import (
	"errors"
	"fmt"
	"strings"
)

//The two kinds of failure the numeric code can report. Use errors.Is
//to check for them, as they are usually returned wrapped in an *Error.
var (
	//A scalar parameter is out of its domain (e.g. a non-positive FWHM).
	ErrInvalidParameter = errors.New("invalid parameter")
	//Two sequences that must be paired element by element have different lengths.
	ErrInvalidInput = errors.New("invalid input")
)

//Error is the error type returned by gospectra functions. It carries
//one of the error kinds above, a message, and the list of functions
//the error went through, added with Decorate.
type Error struct {
	kind    error
	message string
	deco    []string
}

//NewError returns a new *Error of the given kind, decorated with caller.
func NewError(kind error, caller, format string, a ...interface{}) *Error {
	E := &Error{kind: kind, message: fmt.Sprintf(format, a...)}
	E.Decorate(caller)
	return E
}

func (E *Error) Error() string {
	if len(E.deco) == 0 {
		return fmt.Sprintf("gospectra: %v: %s", E.kind, E.message)
	}
	return fmt.Sprintf("gospectra: %s: %v: %s", JoinDecoration(E.deco), E.kind, E.message)
}

//JoinDecoration joins the callers in deco, which is filled by Decorate from the
//innermost function to the outermost, so the outermost caller comes first.
func JoinDecoration(deco []string) string {
	d := make([]string, len(deco))
	for i, v := range deco {
		d[len(d)-1-i] = v
	}
	return strings.Join(d, ": ")
}

//Unwrap returns the kind of the error, so errors.Is works.
func (E *Error) Unwrap() error {
	return E.kind
}

//Decorate adds the name of a caller to the error and returns the current
//decoration. An empty string just returns the decoration.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//errDecorate decorates err with caller if err is an *Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	var E *Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}
