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
	"image"
	"iter"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Region is an immutable set of lattice points, the interior of a polygon.
// Points are kept in ascending order of x, then y; all iteration and
// queries use this order.
//
// A Region is safe for concurrent use.  A nil *Region is empty.
type Region struct {
	points []image.Point
	extent rect.Rect // bounding box of the non-vertical boundary edges
}

// Len returns the number of points in the region.
func (r *Region) Len() int {
	if r == nil {
		return 0
	}
	return len(r.points)
}

// Points returns a copy of the points in the region.
func (r *Region) Points() []image.Point {
	if r == nil {
		return nil
	}
	return slices.Clone(r.points)
}

// All iterates over the points of the region.
func (r *Region) All() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if r == nil {
			return
		}
		for _, p := range r.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Contains reports whether p belongs to the region.
func (r *Region) Contains(p image.Point) bool {
	if r == nil {
		return false
	}
	_, found := slices.BinarySearchFunc(r.points, p, comparePoints)
	return found
}

// Bounds returns the smallest rectangle containing all points of the
// region.  As for [image.Rectangle], Max is exclusive.
func (r *Region) Bounds() image.Rectangle {
	if r.Len() == 0 {
		return image.Rectangle{}
	}
	yMin, yMax := r.points[0].Y, r.points[0].Y
	for _, p := range r.points[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	xMin := r.points[0].X
	xMax := r.points[len(r.points)-1].X
	return image.Rect(xMin, yMin, xMax+1, yMax+1)
}

// EdgeBounds returns the bounding box of the boundary edges the region was
// computed from, after snapping.  Vertical edges are not included.
func (r *Region) EdgeBounds() rect.Rect {
	if r == nil {
		return rect.Rect{}
	}
	return r.extent
}

// Closest returns the point of the region nearest to target in Euclidean
// distance.  If several points are equally close, the first one in region
// order is returned.  For an empty region, [ErrEmptyRegion] is returned.
func (r *Region) Closest(target vec.Vec2) (vec.Vec2, error) {
	if r.Len() == 0 {
		return vec.Vec2{}, ErrEmptyRegion
	}

	best := r.points[0]
	bestDist := dist2(best, target)
	for _, p := range r.points[1:] {
		if d := dist2(p, target); d < bestDist {
			best, bestDist = p, d
		}
	}
	return vec.Vec2{X: float64(best.X), Y: float64(best.Y)}, nil
}

// dist2 returns the squared distance between p and q.
func dist2(p image.Point, q vec.Vec2) float64 {
	dx := float64(p.X) - q.X
	dy := float64(p.Y) - q.Y
	return dx*dx + dy*dy
}
