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
	"sync"
	"sync/atomic"

	"seehuhn.de/go/geom/vec"
)

// BoundaryProvider supplies the boundary loops of a polygon, for example
// the walkable outline of a level.
type BoundaryProvider interface {
	BoundaryLoops() ([][]vec.Vec2, error)
}

// Extractor owns the interior point set of the current boundary.
// The caller creates one instance and hands it to every consumer which
// needs to query the set.
//
// The set is recomputed only when the caller reports a boundary change,
// using [Extractor.BoundaryChanged] or [Extractor.RecomputeInteriorPoints].
// Recomputations are serialised; queries may run concurrently with them
// and always see either the old or the new set, never a partial one.
type Extractor struct {
	// Epsilon is the snapping distance for vertex coordinates.
	// Must be in the range [0, 0.5); zero selects [DefaultEpsilon].
	Epsilon float64

	mu     sync.Mutex // serialises recomputations
	cls    classifier
	region atomic.Pointer[Region]
}

// New returns an Extractor with the default snapping distance and no
// interior points.
func New() *Extractor {
	return &Extractor{
		Epsilon: DefaultEpsilon,
	}
}

// RecomputeInteriorPoints replaces the interior point set by the lattice
// points strictly inside the polygon bounded by loops.
//
// If the loops are malformed, the error wraps [ErrMalformedPolygon] and
// the previous point set stays in place.
func (e *Extractor) RecomputeInteriorPoints(loops [][]vec.Vec2) (*Region, error) {
	eps := e.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}
	if !(eps >= 0 && eps < 0.5) {
		return nil, fmt.Errorf("lattice: invalid epsilon %g", e.Epsilon)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.cls.run(loops, eps)
	if err != nil {
		if errors.Is(err, ErrMalformedPolygon) {
			Logger().Warn("lattice: boundary rejected", "error", err)
		}
		return nil, err
	}
	e.region.Store(r)
	return r, nil
}

// BoundaryChanged fetches the boundary loops from p and recomputes the
// interior point set.
func (e *Extractor) BoundaryChanged(p BoundaryProvider) error {
	loops, err := p.BoundaryLoops()
	if err != nil {
		return fmt.Errorf("lattice: reading boundary: %w", err)
	}
	_, err = e.RecomputeInteriorPoints(loops)
	return err
}

// Region returns the current interior point set, or nil if no set has
// been computed yet.
func (e *Extractor) Region() *Region {
	return e.region.Load()
}

// FindClosestInteriorPoint returns the interior point nearest to target.
// Ties are resolved in favour of the point with the smaller x, then the
// smaller y coordinate.  If no points are available, [ErrEmptyRegion] is
// returned; no recomputation is triggered.
func (e *Extractor) FindClosestInteriorPoint(target vec.Vec2) (vec.Vec2, error) {
	return e.region.Load().Closest(target)
}
