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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-vertical boundary segment.  The endpoints are ordered so
// that x0 < x1.
type edge struct {
	x0, y0 float64 // left endpoint
	x1, y1 float64 // right endpoint
}

// yAt returns the y coordinate of the edge at x, interpolated linearly
// between the two endpoints.
func (e *edge) yAt(x float64) float64 {
	t := (x - e.x0) / (e.x1 - e.x0)
	return e.y0 + t*(e.y1-e.y0)
}

// edgeList holds the edges of one classification pass, together with
// their bounding box.
type edgeList struct {
	edges []edge

	bboxFirst              bool // true if no edges added yet
	xMin, xMax, yMin, yMax float64
}

// collect rebuilds the list from the given loops.  Each loop is closed
// implicitly.  If mirror is set, all x coordinates are negated first.
func (l *edgeList) collect(loops [][]vec.Vec2, mirror bool) {
	l.edges = l.edges[:0]
	l.bboxFirst = true

	for _, loop := range loops {
		n := len(loop)
		if n < 2 {
			continue
		}
		for i := range n {
			l.addEdge(loop[i], loop[(i+1)%n], mirror)
		}
	}
}

func (l *edgeList) addEdge(p0, p1 vec.Vec2, mirror bool) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	if mirror {
		x0, x1 = -x0, -x1
	}

	// A vertical edge never crosses a scan column.
	if x0 == x1 {
		return
	}
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	l.edges = append(l.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1})

	if l.bboxFirst {
		l.xMin, l.xMax = x0, x1
		l.yMin, l.yMax = min(y0, y1), max(y0, y1)
		l.bboxFirst = false
	} else {
		l.xMin = min(l.xMin, x0)
		l.xMax = max(l.xMax, x1)
		l.yMin = min(l.yMin, y0, y1)
		l.yMax = max(l.yMax, y0, y1)
	}
}

// bbox returns the bounding box of the collected edges.
func (l *edgeList) bbox() rect.Rect {
	if l.bboxFirst {
		return rect.Rect{}
	}
	return rect.Rect{LLx: l.xMin, LLy: l.yMin, URx: l.xMax, URy: l.yMax}
}

// segment is a boundary segment, vertical ones included, with a.X <= b.X.
type segment struct {
	a, b vec.Vec2
}

// findCrossing reports the first pair of boundary segments which cross
// each other at a single interior point.  Segments which only touch at
// endpoints, or which are collinear, do not count.  Segments are swept in
// order of their left x coordinate, so only pairs with overlapping x
// ranges are compared.
func findCrossing(loops [][]vec.Vec2) *CrossingError {
	var segs []segment
	for _, loop := range loops {
		n := len(loop)
		if n < 2 {
			continue
		}
		for i := range n {
			a, b := loop[i], loop[(i+1)%n]
			if a == b {
				continue
			}
			if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
				a, b = b, a
			}
			segs = append(segs, segment{a: a, b: b})
		}
	}

	slices.SortFunc(segs, func(s, t segment) int {
		return cmp.Compare(s.a.X, t.a.X)
	})

	for i := range segs {
		s := &segs[i]
		for j := i + 1; j < len(segs) && segs[j].a.X <= s.b.X; j++ {
			t := &segs[j]
			if at, ok := properIntersection(s, t); ok {
				return &CrossingError{
					A:  [2]vec.Vec2{s.a, s.b},
					B:  [2]vec.Vec2{t.a, t.b},
					At: at,
				}
			}
		}
	}
	return nil
}

// properIntersection returns the intersection point of s and t if the
// two segments cross, with the endpoints of each strictly on opposite
// sides of the other.
func properIntersection(s, t *segment) (vec.Vec2, bool) {
	d1 := orient(s.a, s.b, t.a)
	d2 := orient(s.a, s.b, t.b)
	if d1 == 0 || d2 == 0 || (d1 > 0) == (d2 > 0) {
		return vec.Vec2{}, false
	}
	d3 := orient(t.a, t.b, s.a)
	d4 := orient(t.a, t.b, s.b)
	if d3 == 0 || d4 == 0 || (d3 > 0) == (d4 > 0) {
		return vec.Vec2{}, false
	}

	u := d3 / (d3 - d4)
	return s.a.Add(s.b.Sub(s.a).Mul(u)), true
}

// orient returns twice the signed area of the triangle p, q, r.
func orient(p, q, r vec.Vec2) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}
