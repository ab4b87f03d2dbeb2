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
package lattice

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSnap(t *testing.T) {
	cases := []struct {
		in, want vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 0.004, Y: -0.009}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 2.9951, Y: 7.0001}, vec.Vec2{X: 3, Y: 7}},
		{vec.Vec2{X: -4.00999, Y: 1.5}, vec.Vec2{X: -4, Y: 1.5}},
		{vec.Vec2{X: 0.011, Y: 0.989}, vec.Vec2{X: 0.011, Y: 0.989}},
		{vec.Vec2{X: 1e6 + 1e-7, Y: -1e6}, vec.Vec2{X: 1e6, Y: -1e6}},
		{vec.Vec2{X: 6.123233995736766e-17, Y: 4}, vec.Vec2{X: 0, Y: 4}},
	}
	for _, c := range cases {
		if got := Snap(c.in, DefaultEpsilon); got != c.want {
			t.Errorf("Snap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSnapZeroEpsilon(t *testing.T) {
	v := vec.Vec2{X: 1.0000001, Y: 2}
	if got := Snap(v, 0); got != v {
		t.Errorf("Snap(%v, 0) = %v", v, got)
	}
}

func TestNormalizeLoopsCopies(t *testing.T) {
	loop := []vec.Vec2{{X: 0.001, Y: 0}, {X: 4, Y: 0.002}, {X: 4, Y: 4}}
	orig := append([]vec.Vec2(nil), loop...)

	out, err := normalizeLoops([][]vec.Vec2{loop}, DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	for i := range loop {
		if loop[i] != orig[i] {
			t.Errorf("input vertex %d modified: %v", i, loop[i])
		}
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	for i := range want {
		if out[0][i] != want[i] {
			t.Errorf("vertex %d: got %v, want %v", i, out[0][i], want[i])
		}
	}
}

func TestNormalizeLoopsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		loops := [][]vec.Vec2{{{X: 0, Y: 0}, {X: 1, Y: bad}, {X: 2, Y: 0}}}
		_, err := normalizeLoops(loops, DefaultEpsilon)
		if !errors.Is(err, ErrMalformedPolygon) {
			t.Errorf("%g: got %v, want ErrMalformedPolygon", bad, err)
		}
	}
}
