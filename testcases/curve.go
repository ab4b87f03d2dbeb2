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
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:  "circle",
		Path:  circle(0, 0, 1, false),
		CTM:   matrix.Scale(4.5, 4.5).Translate(0.5, 0.5),
		Count: 60,
	},
	{
		Name:  "annulus",
		Path:  annulus(0.5, 0.5, 4.5, 1.5),
		Count: 56,
	},
	{
		Name:  "quadratic_arch",
		Path:  quadraticArch(0, 0, 4, 8, 8, 0),
		Count: 15,
	},
	{
		// A curve which ends where it started, with no explicit
		// LineTo or ClosePath back to the start.
		Name:  "open_circle",
		Path:  openCircle(0.5, 0.5, 4.5),
		Count: 60,
	},
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64, clockwise bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !circleSegments(yield, cx, cy, r, clockwise) {
			return
		}
		closePath(yield)
	}
}

// openCircle builds a circle without closing the subpath.
func openCircle(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		circleSegments(yield, cx, cy, r, false)
	}
}

func circleSegments(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	k := r * kappa
	s := 1.0
	if clockwise {
		s = -1
	}
	return moveTo(yield, cx+r, cy) &&
		cubeTo(yield, cx+r, cy+s*k, cx+k, cy+s*r, cx, cy+s*r) &&
		cubeTo(yield, cx-k, cy+s*r, cx-r, cy+s*k, cx-r, cy) &&
		cubeTo(yield, cx-r, cy-s*k, cx-k, cy-s*r, cx, cy-s*r) &&
		cubeTo(yield, cx+k, cy-s*r, cx+r, cy-s*k, cx+r, cy)
}

// annulus builds a ring between two concentric circles.
func annulus(cx, cy, outer, inner float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !circleSegments(yield, cx, cy, outer, false) || !closePath(yield) {
			return
		}
		if !circleSegments(yield, cx, cy, inner, true) {
			return
		}
		closePath(yield)
	}
}

// quadraticArch builds the region between a quadratic Bezier curve and
// its chord.
func quadraticArch(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !quadTo(yield, cx, cy, x2, y2) {
			return
		}
		closePath(yield)
	}
}
