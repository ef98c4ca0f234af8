/*
 * state.go, part of gospectra.
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
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//FramesKey is the name of the dataset with the indexes of the frames of a QM/MM run.
const FramesKey = "frames"

//Kinds of datasets
const (
	IntKind   = "int"
	FloatKind = "float"
)

//Dataset is a named array in a State. Only the slice matching Kind is used.
type Dataset struct {
	Kind   string    `json:"kind"`
	Ints   []int     `json:"ints,omitempty"`
	Floats []float64 `json:"floats,omitempty"`
}

//State is a set of named arrays, stored in a compressed file.
type State struct {
	datasets map[string]*Dataset
}

//New returns an empty State
func New() *State {
	return &State{datasets: make(map[string]*Dataset)}
}

//Open reads the State in the file name. The compression
//is chosen from the extension of the file.
func Open(name string) (*State, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(name, "Open", err, UnableToOpen)
	}
	defer f.Close()
	c := codecFor(name)
	r, err := c.newReader(bufio.NewReader(f))
	if err != nil {
		return nil, newError(name, "Open", err, "can't start %s decompression", c.name)
	}
	defer r.Close()
	S := New()
	if err := json.NewDecoder(r).Decode(S); err != nil {
		return nil, newError(name, "Open", err, WrongFormat)
	}
	return S, nil
}

//Save writes the State to the file name, replacing it if it exists. The
//State is first written to a temporary file in the same directory, which
//is then renamed, so a failed Save never leaves a half-written file.
func (S *State) Save(name string) (err error) {
	c := codecFor(name)
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp*")
	if err != nil {
		return newError(name, "Save", err, "can't create temporary file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	buf := bufio.NewWriter(tmp)
	w, err := c.newWriter(buf)
	if err != nil {
		return newError(name, "Save", err, "can't start %s compression", c.name)
	}
	if err = json.NewEncoder(w).Encode(S); err != nil {
		return newError(name, "Save", err, "can't encode state")
	}
	if err = w.Close(); err != nil {
		return newError(name, "Save", err, "can't finish %s compression", c.name)
	}
	if err = buf.Flush(); err != nil {
		return newError(name, "Save", err, "can't write")
	}
	if err = tmp.Close(); err != nil {
		return newError(name, "Save", err, "can't write")
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return newError(name, "Save", err, "can't replace file")
	}
	return nil
}

//Names returns the names of all datasets, sorted.
func (S *State) Names() []string {
	ret := make([]string, 0, len(S.datasets))
	for k := range S.datasets {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Has returns true if the State contains a dataset called name
func (S *State) Has(name string) bool {
	_, ok := S.datasets[name]
	return ok
}

//Delete removes the dataset name, if it exists.
func (S *State) Delete(name string) {
	delete(S.datasets, name)
}

//Ints returns a copy of the integer dataset name. Returns an error if
//the dataset doesn't exist or is not an integer array.
func (S *State) Ints(name string) ([]int, error) {
	d, ok := S.datasets[name]
	if !ok {
		return nil, newError("", "Ints", nil, "%s: %s", NoDataset, name)
	}
	if d.Kind != IntKind {
		return nil, newError("", "Ints", nil, "dataset %s is of kind %s, not %s", name, d.Kind, IntKind)
	}
	ret := make([]int, len(d.Ints))
	copy(ret, d.Ints)
	return ret, nil
}

//Floats returns a copy of the float dataset name. Returns an error if
//the dataset doesn't exist or is not a float array.
func (S *State) Floats(name string) ([]float64, error) {
	d, ok := S.datasets[name]
	if !ok {
		return nil, newError("", "Floats", nil, "%s: %s", NoDataset, name)
	}
	if d.Kind != FloatKind {
		return nil, newError("", "Floats", nil, "dataset %s is of kind %s, not %s", name, d.Kind, FloatKind)
	}
	ret := make([]float64, len(d.Floats))
	copy(ret, d.Floats)
	return ret, nil
}

//SetInts puts a copy of data in the dataset name, replacing it if it exists.
func (S *State) SetInts(name string, data []int) {
	d := &Dataset{Kind: IntKind, Ints: make([]int, len(data))}
	copy(d.Ints, data)
	S.datasets[name] = d
}

//SetFloats puts a copy of data in the dataset name, replacing it if it exists.
func (S *State) SetFloats(name string, data []float64) {
	d := &Dataset{Kind: FloatKind, Floats: make([]float64, len(data))}
	copy(d.Floats, data)
	S.datasets[name] = d
}

//Frames returns the frame indexes stored in the State.
func (S *State) Frames() ([]int, error) {
	return S.Ints(FramesKey)
}

//SetFrames replaces the frame indexes in the State.
func (S *State) SetFrames(frames []int) {
	S.SetInts(FramesKey, frames)
}

func (S *State) String() string {
	r := make([]string, 0, len(S.datasets))
	for _, k := range S.Names() {
		d := S.datasets[k]
		switch d.Kind {
		case IntKind:
			r = append(r, fmt.Sprintf("%s (%s): %v", k, d.Kind, d.Ints))
		default:
			r = append(r, fmt.Sprintf("%s (%s): %v", k, d.Kind, d.Floats))
		}
	}
	return strings.Join(r, "\n")
}

func (S *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Datasets map[string]*Dataset `json:"datasets"`
	}{
		Datasets: S.datasets,
	})
}

func (S *State) UnmarshalJSON(b []byte) error {
	var a struct {
		Datasets map[string]*Dataset `json:"datasets"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	for k, v := range a.Datasets {
		if v == nil || (v.Kind != IntKind && v.Kind != FloatKind) {
			return fmt.Errorf("dataset %s has an unknown kind", k)
		}
	}
	if a.Datasets == nil {
		a.Datasets = make(map[string]*Dataset)
	}
	S.datasets = a.Datasets
	return nil
}
