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
	"image"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func squareRegion(t *testing.T) *Region {
	t.Helper()
	loops := [][]vec.Vec2{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}}
	r, err := Interior(loops, DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRegionOrder(t *testing.T) {
	r := squareRegion(t)

	var got []image.Point
	for p := range r.All() {
		got = append(got, p)
	}
	want := []image.Point{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegionAllStop(t *testing.T) {
	r := squareRegion(t)
	n := 0
	for range r.All() {
		n++
		if n == 4 {
			break
		}
	}
	if n != 4 {
		t.Errorf("got %d iterations, want 4", n)
	}
}

func TestRegionPointsCopy(t *testing.T) {
	r := squareRegion(t)
	pts := r.Points()
	pts[0] = image.Point{X: -7, Y: -7}
	if r.Contains(image.Point{X: -7, Y: -7}) || !r.Contains(image.Point{X: 1, Y: 1}) {
		t.Error("modifying Points() result changed the region")
	}
}

func TestRegionContains(t *testing.T) {
	r := squareRegion(t)
	for x := -1; x <= 5; x++ {
		for y := -1; y <= 5; y++ {
			want := x >= 1 && x <= 3 && y >= 1 && y <= 3
			if got := r.Contains(image.Point{X: x, Y: y}); got != want {
				t.Errorf("Contains(%d, %d) = %t, want %t", x, y, got, want)
			}
		}
	}
}

func TestRegionBounds(t *testing.T) {
	r := squareRegion(t)
	if got, want := r.Bounds(), image.Rect(1, 1, 4, 4); got != want {
		t.Errorf("Bounds: got %v, want %v", got, want)
	}
	if got, want := r.EdgeBounds(), (rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 4}); got != want {
		t.Errorf("EdgeBounds: got %v, want %v", got, want)
	}

	// The bounding box of a triangle is not determined by the first and
	// last point alone.
	tri := [][]vec.Vec2{{{X: 0, Y: 0}, {X: 6, Y: 3}, {X: 0, Y: 6}}}
	r, err := Interior(tri, DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Bounds(), image.Rect(1, 1, 6, 6); got != want {
		t.Errorf("triangle Bounds: got %v, want %v", got, want)
	}
}

func TestRegionNil(t *testing.T) {
	var r *Region
	if r.Len() != 0 {
		t.Error("nil region is not empty")
	}
	if r.Points() != nil {
		t.Error("nil region has points")
	}
	for range r.All() {
		t.Error("nil region yields points")
	}
	if r.Contains(image.Point{}) {
		t.Error("nil region contains the origin")
	}
	if !r.Bounds().Empty() {
		t.Error("nil region has non-empty bounds")
	}
	if _, err := r.Closest(vec.Vec2{}); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("Closest: got %v, want ErrEmptyRegion", err)
	}
}

func TestRegionClosest(t *testing.T) {
	r := squareRegion(t)
	cases := []struct {
		target, want vec.Vec2
	}{
		{vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 2, Y: 2}},
		{vec.Vec2{X: 2.5, Y: 2.5}, vec.Vec2{X: 2, Y: 2}},
		{vec.Vec2{X: 2.5, Y: 1.5}, vec.Vec2{X: 2, Y: 1}},
		{vec.Vec2{X: 10, Y: -3}, vec.Vec2{X: 3, Y: 1}},
		{vec.Vec2{X: -100, Y: 2.4}, vec.Vec2{X: 1, Y: 2}},
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}},
	}
	for _, c := range cases {
		got, err := r.Closest(c.target)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("Closest(%v) = %v, want %v", c.target, got, c.want)
		}
	}
}
