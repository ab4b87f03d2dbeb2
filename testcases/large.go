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

// largeCases contains polygons with many interior points or many loops.
var largeCases = []TestCase{
	{
		Name:  "large_rectangle",
		Loops: [][]vec.Vec2{rect(0, 0, 400, 300)},
		Count: 399 * 299,
	},
	{
		Name:  "large_diamond",
		Loops: [][]vec.Vec2{diamond(256, 256, 180)},
		Count: 2*179*180 + 1,
	},
	{
		Name:  "square_grid",
		Loops: squareGrid(8, 8, 10, 12),
		Count: 64 * 81,
	},
}

// diamond builds a square rotated by 45 degrees, with the given
// center and distance from center to corner.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return poly(cx, cy-r, cx+r, cy, cx, cy+r, cx-r, cy)
}

// squareGrid builds rows*cols disjoint squares.
func squareGrid(rows, cols int, size, spacing float64) [][]vec.Vec2 {
	var loops [][]vec.Vec2
	for row := range rows {
		for col := range cols {
			x := float64(col) * spacing
			y := float64(row) * spacing
			loops = append(loops, rect(x, y, x+size, y+size))
		}
	}
	return loops
}
