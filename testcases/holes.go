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

var holeCases = []TestCase{
	{
		Name: "square_hole",
		Loops: [][]vec.Vec2{
			rect(0, 0, 8, 8),
			reversed(rect(3, 3, 5, 5)),
		},
		Count: 40,
	},
	{
		Name: "square_hole_same_orientation",
		Loops: [][]vec.Vec2{
			rect(0, 0, 8, 8),
			rect(3, 3, 5, 5),
		},
		Count: 40,
	},
	{
		Name: "off_grid_hole",
		Loops: [][]vec.Vec2{
			rect(0, 0, 10, 10),
			rect(3.5, 3.5, 6.5, 6.5),
		},
		Count: 72,
	},
	{
		Name: "two_holes",
		Loops: [][]vec.Vec2{
			rect(0, 0, 10, 10),
			rect(2, 2, 4, 4),
			rect(6, 6, 8, 8),
		},
		Count: 63,
	},
	{
		Name: "triangular_hole",
		Loops: [][]vec.Vec2{
			rect(0, 0, 10, 10),
			poly(2, 2, 8, 2, 2, 8),
		},
		Count: 53,
	},
	{
		Name: "island_in_hole",
		Loops: [][]vec.Vec2{
			rect(0, 0, 12, 12),
			rect(2, 2, 10, 10),
			rect(4, 4, 8, 8),
		},
		Count: 49,
	},
	{
		Name: "disjoint_squares",
		Loops: [][]vec.Vec2{
			rect(0, 0, 4, 4),
			rect(6, 0, 10, 4),
		},
		Count: 18,
	},
	{
		Name: "hole_touching_corner",
		Loops: [][]vec.Vec2{
			rect(0, 0, 6, 6),
			poly(0, 0, 3, 1, 1, 3),
		},
		Count: 19,
	},
}
