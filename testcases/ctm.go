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

var ctmCases = []TestCase{
	{
		Name:  "identity",
		Path:  rectangle(0, 0, 4, 4),
		Count: 9,
	},
	{
		Name:  "scale_3x",
		Path:  rectangle(0, 0, 2, 2),
		CTM:   matrix.Scale(3, 3),
		Count: 25,
	},
	{
		Name:  "translate_half",
		Path:  rectangle(0, 0, 4, 4),
		CTM:   matrix.Identity.Translate(0.5, 0.5),
		Count: 16,
	},
	{
		// cos(90°) is not exactly zero in floating point; the corners
		// must still land on the grid.
		Name:  "rotate_90deg",
		Path:  rectangle(0, 0, 4, 4),
		CTM:   matrix.RotateDeg(90),
		Count: 9,
	},
	{
		Name:  "rotate_45deg",
		Path:  rectangle(-2, -2, 2, 2),
		CTM:   matrix.RotateDeg(45),
		Count: 13,
	},
	{
		Name:  "shear_horizontal",
		Path:  rectangle(-2, -2, 2, 2),
		CTM:   matrix.Matrix{1, 0, 0.5, 1, 0, 0},
		Count: 11,
	},
	{
		Name:  "scale_tenth",
		Path:  rectangle(0, 0, 40, 40),
		CTM:   matrix.Scale(0.1, 0.1),
		Count: 9,
	},
	{
		Name:  "two_subpaths",
		Path:  twoRectangles(0, 0, 4, 4, 10, 10, 13, 13),
		CTM:   matrix.Scale(1, 1).Translate(-5, 0),
		Count: 13,
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, x2, y1) {
			return
		}
		if !lineTo(yield, x2, y2) {
			return
		}
		if !lineTo(yield, x1, y2) {
			return
		}
		closePath(yield)
	}
}

// twoRectangles builds a path with two rectangular subpaths.
func twoRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range rectangle(x1a, y1a, x2a, y2a) {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range rectangle(x1b, y1b, x2b, y2b) {
			if !yield(cmd, pts) {
				return
			}
		}
	}
}
