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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrMalformedPolygon is returned when the boundary loops do not
	// describe a simple polygon: a loop crosses itself or another loop,
	// a coordinate is not finite, or a scan column sees an odd number of
	// boundary crossings.
	ErrMalformedPolygon = errors.New("lattice: malformed polygon")

	// ErrEmptyRegion is returned by queries against an empty region, or
	// before any region has been computed.
	ErrEmptyRegion = errors.New("lattice: empty region")
)

// ParityError reports a scan column with an odd number of active edges.
type ParityError struct {
	Column int // x coordinate of the column, in input coordinates
	Active int // number of edges crossing the column
}

func (e *ParityError) Error() string {
	return fmt.Sprintf("lattice: malformed polygon: %d edges cross column x=%d",
		e.Active, e.Column)
}

func (e *ParityError) Unwrap() error {
	return ErrMalformedPolygon
}

// CrossingError reports two boundary segments which properly intersect.
type CrossingError struct {
	A, B [2]vec.Vec2 // the two segments
	At   vec.Vec2    // the intersection point
}

func (e *CrossingError) Error() string {
	return fmt.Sprintf("lattice: malformed polygon: segments %v-%v and %v-%v cross at %v",
		e.A[0], e.A[1], e.B[0], e.B[1], e.At)
}

func (e *CrossingError) Unwrap() error {
	return ErrMalformedPolygon
}
