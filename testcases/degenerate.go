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

var degenerateCases = []TestCase{
	{
		Name:  "no_loops",
		Count: 0,
	},
	{
		Name:  "collinear_triangle",
		Loops: [][]vec.Vec2{poly(0, 0, 2, 0, 1, 0)},
		Count: 0,
	},
	{
		Name:  "diagonal_segment",
		Loops: [][]vec.Vec2{poly(0, 0, 5, 5)},
		Count: 0,
	},
	{
		Name:  "single_vertex",
		Loops: [][]vec.Vec2{poly(3, 3)},
		Count: 0,
	},
	{
		Name:  "empty_loop",
		Loops: [][]vec.Vec2{{}, rect(0, 0, 4, 4)},
		Count: 9,
	},
	{
		Name:  "sliver",
		Loops: [][]vec.Vec2{rect(0, 0, 10, 1)},
		Count: 0,
	},
	{
		Name:  "repeated_vertices",
		Loops: [][]vec.Vec2{poly(0, 0, 0, 0, 4, 0, 4, 4, 4, 4, 0, 4)},
		Count: 9,
	},
	{
		Name:  "collinear_vertices",
		Loops: [][]vec.Vec2{poly(0, 0, 2, 0, 4, 0, 4, 2, 4, 4, 0, 4)},
		Count: 9,
	},
}
