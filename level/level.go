// seehuhn.de/go/lattice - lattice points inside polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Package level reads polygon boundaries from YAML level files.
//
// A level file looks like this:
//
//	name: courtyard
//	transform: [1, 0, 0, 1, 0, 0]   # optional, a b c d e f
//	loops:
//	  - [[0, 0], [10, 0], [10, 10], [0, 10]]
//	  - [[3, 3], [3, 6], [6, 6], [6, 3]]   # hole
//
// Vertices are given in level coordinates; the transform maps them to
// lattice coordinates.
package level

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalid is wrapped by all errors about the structure of a level file.
var ErrInvalid = errors.New("level: invalid level file")

// Level is the walkable outline of a level.
type Level struct {
	Name string

	// Loops are the boundary loops, in level coordinates.
	Loops [][]vec.Vec2

	// Transform maps level coordinates to lattice coordinates.
	Transform matrix.Matrix
}

// file is the YAML representation of a level.
type file struct {
	Name      string        `yaml:"name"`
	Transform []float64     `yaml:"transform,omitempty"`
	Loops     [][][]float64 `yaml:"loops"`
}

// Decode reads a level from r.  Unknown keys are rejected.
func Decode(r io.Reader) (*Level, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("level: decoding: %w", err)
	}
	return f.level()
}

// Load reads a level from the named file.
func Load(fname string) (*Level, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	l, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return l, nil
}

func (f *file) level() (*Level, error) {
	l := &Level{
		Name:      f.Name,
		Transform: matrix.Identity,
	}

	switch len(f.Transform) {
	case 0:
		// pass
	case 6:
		copy(l.Transform[:], f.Transform)
	default:
		return nil, fmt.Errorf("%w: transform has %d entries, need 6",
			ErrInvalid, len(f.Transform))
	}

	l.Loops = make([][]vec.Vec2, len(f.Loops))
	for i, loop := range f.Loops {
		l.Loops[i] = make([]vec.Vec2, len(loop))
		for j, v := range loop {
			if len(v) != 2 {
				return nil, fmt.Errorf("%w: vertex %d of loop %d has %d coordinates",
					ErrInvalid, j, i, len(v))
			}
			l.Loops[i][j] = vec.Vec2{X: v[0], Y: v[1]}
		}
	}
	return l, nil
}

// BoundaryLoops returns the loops in lattice coordinates.
// This implements the lattice.BoundaryProvider interface.
func (l *Level) BoundaryLoops() ([][]vec.Vec2, error) {
	m := l.Transform
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}

	out := make([][]vec.Vec2, len(l.Loops))
	for i, loop := range l.Loops {
		out[i] = make([]vec.Vec2, len(loop))
		for j, v := range loop {
			out[i][j] = vec.Vec2{
				X: m[0]*v.X + m[2]*v.Y + m[4],
				Y: m[1]*v.X + m[3]*v.Y + m[5],
			}
		}
	}
	return out, nil
}

// Encode writes the level to w in the format read by [Decode].
func (l *Level) Encode(w io.Writer) error {
	f := file{
		Name:  l.Name,
		Loops: make([][][]float64, len(l.Loops)),
	}
	if l.Transform != (matrix.Matrix{}) && l.Transform != matrix.Identity {
		f.Transform = l.Transform[:]
	}
	for i, loop := range l.Loops {
		f.Loops[i] = make([][]float64, len(loop))
		for j, v := range loop {
			f.Loops[i][j] = []float64{v.X, v.Y}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return err
	}
	return enc.Close()
}
