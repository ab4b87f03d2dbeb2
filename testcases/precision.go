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

import "seehuhn.de/go/geom/vec"

var precisionCases = []TestCase{
	{
		Name:  "jittered_square",
		Loops: [][]vec.Vec2{poly(0.004, -0.003, 3.997, 0.002, 4.006, 4.001, -0.008, 3.996)},
		Count: 9,
	},
	{
		// Just outside the snapping distance, the corners stay where they
		// are and the grid lines of the square become interior.
		Name:  "beyond_epsilon",
		Loops: [][]vec.Vec2{rect(-0.02, -0.02, 4.02, 4.02)},
		Count: 25,
	},
	{
		Name:  "jittered_triangle",
		Loops: [][]vec.Vec2{poly(1e-9, -1e-9, 6.000001, 0, -0.0001, 5.9999)},
		Count: 10,
	},
	{
		Name:  "far_from_origin",
		Loops: [][]vec.Vec2{poly(1000.004, -2000.003, 1004, -1999.996, 1003.998, -1996, 1000, -1996.002)},
		Count: 9,
	},
	{
		Name:  "large_coordinates",
		Loops: [][]vec.Vec2{rect(1e6, 1e6, 1e6+3, 1e6+3)},
		Count: 4,
	},
	{
		Name:  "negative_quadrant",
		Loops: [][]vec.Vec2{rect(-7.5, -3.25, -2.5, 0.75)},
		Count: 20,
	},
}
