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
	"math"

	"seehuhn.de/go/geom/vec"
)

var malformedCases = []TestCase{
	{
		Name:      "figure_eight",
		Loops:     [][]vec.Vec2{poly(0, 0, 4, 4, 4, 0, 0, 4)},
		Malformed: true,
	},
	{
		Name:      "bow_tie",
		Loops:     [][]vec.Vec2{poly(0.5, 0.5, 5.5, 3.5, 5.5, 0.5, 0.5, 3.5)},
		Malformed: true,
	},
	{
		Name:      "pentagram",
		Loops:     [][]vec.Vec2{pentagram(10, 10, 8)},
		Malformed: true,
	},
	{
		Name: "overlapping_squares",
		Loops: [][]vec.Vec2{
			rect(0, 0, 4, 4),
			rect(2, 2, 6, 6),
		},
		Malformed: true,
	},
	{
		Name: "hole_crossing_outline",
		Loops: [][]vec.Vec2{
			rect(0, 0, 8, 8),
			rect(6, 3, 10, 5),
		},
		Malformed: true,
	},
	{
		Name:      "not_a_number",
		Loops:     [][]vec.Vec2{poly(0, 0, 4, 0, math.NaN(), 4)},
		Malformed: true,
	},
	{
		Name:      "infinite",
		Loops:     [][]vec.Vec2{poly(0, 0, math.Inf(1), 0, 4, 4)},
		Malformed: true,
	},
}

// pentagram builds a five-pointed star by connecting every second vertex
// of a regular pentagon.
func pentagram(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return []vec.Vec2{pts[0], pts[2], pts[4], pts[1], pts[3]}
}
