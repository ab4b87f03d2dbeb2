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

// Package lattice finds the integer points strictly inside a polygon.
//
// A polygon is given as one or more closed boundary loops; loops may
// describe holes and disjoint parts, in either orientation.  Vertex
// coordinates close to integers are snapped onto them, so that noise from
// coordinate transformations does not move vertices off grid lines.
// Points on the boundary are never part of the interior.
//
// The interior is computed by a column-wise scanline sweep which runs
// twice, once on the mirrored geometry, and keeps only the points on which
// both sweeps agree.  [Extractor] owns the result and answers
// nearest-point queries.
package lattice

//go:generate go run ./testcases/export
