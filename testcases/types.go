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

// TestCase defines a single polygon together with the expected result.
// At most one of Loops and Path is set.
type TestCase struct {
	Name  string        // lowercase a-z, 0-9 and _ only
	Loops [][]vec.Vec2  // boundary loops, in lattice coordinates
	Path  path.Path     // boundary as a path, in user space
	CTM   matrix.Matrix // user space to lattice coordinates (zero-value means no transform)

	// Count is the expected number of interior lattice points.
	Count int

	// Malformed is set if the boundary must be rejected.
	Malformed bool
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// poly builds a loop from alternating x and y coordinates.
func poly(xy ...float64) []vec.Vec2 {
	loop := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		loop = append(loop, pt(xy[i], xy[i+1]))
	}
	return loop
}

// rect builds an axis-parallel rectangle loop, counter-clockwise.
func rect(x1, y1, x2, y2 float64) []vec.Vec2 {
	return poly(x1, y1, x2, y1, x2, y2, x1, y2)
}

// reversed returns the loop with the opposite orientation.
func reversed(loop []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(loop))
	for i, v := range loop {
		out[len(loop)-1-i] = v
	}
	return out
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{pt(x, y)})
}

func cubeTo(yield func(path.Command, []vec.Vec2) bool, x1, y1, x2, y2, x3, y3 float64) bool {
	return yield(path.CmdCubeTo, []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)})
}

func quadTo(yield func(path.Command, []vec.Vec2) bool, x1, y1, x2, y2 float64) bool {
	return yield(path.CmdQuadTo, []vec.Vec2{pt(x1, y1), pt(x2, y2)})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}
