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
package level

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice"
)

const courtyard = `name: courtyard
loops:
  - [[0, 0], [10, 0], [10, 10], [0, 10]]
  - [[3, 3], [3, 6], [6, 6], [6, 3]]   # hole
`

var courtyardLoops = [][]vec.Vec2{
	{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
	{{X: 3, Y: 3}, {X: 3, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 3}},
}

func equalLoops(a, b [][]vec.Vec2) bool {
	return slices.EqualFunc(a, b, func(x, y []vec.Vec2) bool {
		return slices.Equal(x, y)
	})
}

func TestDecode(t *testing.T) {
	l, err := Decode(strings.NewReader(courtyard))
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "courtyard" {
		t.Errorf("name: got %q", l.Name)
	}
	if l.Transform != matrix.Identity {
		t.Errorf("transform: got %v", l.Transform)
	}
	if !equalLoops(l.Loops, courtyardLoops) {
		t.Errorf("loops: got %v", l.Loops)
	}
}

func TestSameRegionAsLiteral(t *testing.T) {
	l, err := Decode(strings.NewReader(courtyard))
	if err != nil {
		t.Fatal(err)
	}

	e := lattice.New()
	if err := e.BoundaryChanged(l); err != nil {
		t.Fatal(err)
	}
	want, err := lattice.Interior(courtyardLoops, lattice.DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}

	got := e.Region()
	if got.Len() != 65 {
		t.Errorf("got %d points, want 65", got.Len())
	}
	if !slices.Equal(got.Points(), want.Points()) {
		t.Error("level and literal loops give different regions")
	}
}

func TestTransform(t *testing.T) {
	const doc = `name: scaled
transform: [2, 0, 0, 3, 1, -1]
loops:
  - [[0, 0], [1, 0], [1, 1]]
`
	l, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	loops, err := l.BoundaryLoops()
	if err != nil {
		t.Fatal(err)
	}
	want := [][]vec.Vec2{{{X: 1, Y: -1}, {X: 3, Y: -1}, {X: 3, Y: 2}}}
	if !equalLoops(loops, want) {
		t.Errorf("got %v, want %v", loops, want)
	}
	if l.Loops[0][1] != (vec.Vec2{X: 1, Y: 0}) {
		t.Error("BoundaryLoops modified the level")
	}
}

func TestZeroTransform(t *testing.T) {
	l := &Level{Loops: courtyardLoops}
	loops, err := l.BoundaryLoops()
	if err != nil {
		t.Fatal(err)
	}
	if !equalLoops(loops, courtyardLoops) {
		t.Errorf("got %v", loops)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"empty", "", true},
		{"unknown_key", "name: x\ncolour: red\nloops: []\n", false},
		{"short_vertex", "loops:\n  - [[0, 0], [1], [1, 1]]\n", true},
		{"long_vertex", "loops:\n  - [[0, 0, 0], [1, 0], [1, 1]]\n", true},
		{"short_transform", "transform: [1, 0, 0, 1]\nloops: []\n", true},
		{"not_a_number", "loops:\n  - [[0, zero], [1, 0], [1, 1]]\n", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(c.doc))
			if err == nil {
				t.Fatal("no error")
			}
			if got := errors.Is(err, ErrInvalid); got != c.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %t", err, got)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	l := &Level{
		Name:      "encoded",
		Loops:     courtyardLoops,
		Transform: matrix.Scale(0.5, 0.5),
	}

	buf := &bytes.Buffer{}
	if err := l.Encode(buf); err != nil {
		t.Fatal(err)
	}
	l2, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l2.Name != l.Name || l2.Transform != l.Transform || !equalLoops(l2.Loops, l.Loops) {
		t.Errorf("got %+v, want %+v", l2, l)
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "courtyard.yaml")
	if err := os.WriteFile(fname, []byte(courtyard), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !equalLoops(l.Loops, courtyardLoops) {
		t.Errorf("loops: got %v", l.Loops)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want os.ErrNotExist", err)
	}
}
