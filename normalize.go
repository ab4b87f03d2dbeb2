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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Snap moves each coordinate of v which lies within eps of an integer
// onto that integer.  Other coordinates are returned unchanged.
func Snap(v vec.Vec2, eps float64) vec.Vec2 {
	return vec.Vec2{
		X: snapValue(v.X, eps),
		Y: snapValue(v.Y, eps),
	}
}

func snapValue(x, eps float64) float64 {
	r := math.Round(x)
	if math.Abs(x-r) < eps {
		return r
	}
	return x
}

// normalizeLoops returns snapped copies of all loops.
// The input is not modified.
func normalizeLoops(loops [][]vec.Vec2, eps float64) ([][]vec.Vec2, error) {
	out := make([][]vec.Vec2, len(loops))
	for i, loop := range loops {
		snapped := make([]vec.Vec2, len(loop))
		for j, v := range loop {
			if !isFinite(v.X) || !isFinite(v.Y) {
				return nil, fmt.Errorf("%w: vertex %d of loop %d is %v",
					ErrMalformedPolygon, j, i, v)
			}
			snapped[j] = Snap(v, eps)
		}
		out[i] = snapped
	}
	return out, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Numerical tolerances.
const (
	// DefaultEpsilon is the distance below which vertex coordinates are
	// snapped to the nearest integer.
	DefaultEpsilon = 0.01

	// interceptTolerance is the distance below which an interpolated
	// edge crossing is taken to lie exactly on a lattice row.
	interceptTolerance = 1e-9
)
