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

var basicCases = []TestCase{
	{
		Name:  "square",
		Loops: [][]vec.Vec2{rect(0, 0, 4, 4)},
		Count: 9,
	},
	{
		Name:  "square_clockwise",
		Loops: [][]vec.Vec2{reversed(rect(0, 0, 4, 4))},
		Count: 9,
	},
	{
		Name:  "unit_square",
		Loops: [][]vec.Vec2{rect(0, 0, 1, 1)},
		Count: 0,
	},
	{
		Name:  "two_by_two",
		Loops: [][]vec.Vec2{rect(0, 0, 2, 2)},
		Count: 1,
	},
	{
		Name:  "rectangle_half_offset",
		Loops: [][]vec.Vec2{rect(0.5, 0.5, 5.5, 3.5)},
		Count: 15,
	},
	{
		Name:  "right_triangle",
		Loops: [][]vec.Vec2{poly(0, 0, 6, 0, 0, 6)},
		Count: 10,
	},
	{
		Name:  "diamond",
		Loops: [][]vec.Vec2{poly(3, 0, 6, 3, 3, 6, 0, 3)},
		Count: 13,
	},
	{
		Name:  "shallow_wedge",
		Loops: [][]vec.Vec2{poly(0, 0, 10, 1, 0, 2)},
		Count: 9,
	},
	{
		Name:  "l_shape",
		Loops: [][]vec.Vec2{poly(0, 0, 6, 0, 6, 3, 3, 3, 3, 6, 0, 6)},
		Count: 16,
	},
	{
		Name:  "u_shape",
		Loops: [][]vec.Vec2{poly(0, 0, 9, 0, 9, 6, 6, 6, 6, 3, 3, 3, 3, 6, 0, 6)},
		Count: 28,
	},
	{
		Name:  "arrow",
		Loops: [][]vec.Vec2{poly(0, 0, 5, 2.5, 10, 0, 5, 8)},
		Count: 25,
	},
}
