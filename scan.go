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
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Classification model:
//
// The boundary is swept column by column.  An edge is active at column x
// when x0 < x <= x1, so that at a shared vertex exactly one of the two
// adjoining edges counts.  At every column the active edges are sorted by
// their y value and paired up; the integers strictly between the two
// members of a pair are interior.
//
// The half-open rule makes one pass admit lattice points which lie on the
// rightmost boundary of the polygon at a given column (for example the
// right side of an axis-aligned rectangle, whose vertical edges are not in
// the edge list).  A second pass on the mirrored geometry makes the
// complementary error on the left side.  A point is interior only if both
// passes vote for it.

// event adds an edge to, or removes it from, the active set.
type event struct {
	x     float64
	idx   int  // index into the edge list
	enter bool // true to add the edge, false to remove it
}

// voteMap counts, for every lattice point, how many passes classified it
// as interior.
type voteMap map[image.Point]uint8

// classifier runs the scanline passes.  Buffers are reused across calls.
type classifier struct {
	list   edgeList
	events []event
	active []int     // indices of active edges
	ys     []float64 // y values of the active edges at the current column
}

// run computes the interior lattice points of the polygon bounded by loops.
func (c *classifier) run(loops [][]vec.Vec2, eps float64) (*Region, error) {
	snapped, err := normalizeLoops(loops, eps)
	if err != nil {
		return nil, err
	}
	if cErr := findCrossing(snapped); cErr != nil {
		return nil, cErr
	}

	votes := make(voteMap)
	if err := c.pass(snapped, false, votes); err != nil {
		return nil, err
	}
	extent := c.list.bbox()
	nEdges := len(c.list.edges)

	if err := c.pass(snapped, true, votes); err != nil {
		return nil, err
	}

	r := resolve(votes)
	r.extent = extent

	Logger().Debug("lattice: classified boundary",
		"loops", len(loops),
		"edges", nEdges,
		"candidates", len(votes),
		"points", len(r.points))
	return r, nil
}

// pass classifies all lattice columns once and records a vote for every
// point found to be interior.  If mirror is set, the classification runs
// on the geometry reflected at the y axis; votes are recorded in the
// original coordinates.
func (c *classifier) pass(loops [][]vec.Vec2, mirror bool, votes voteMap) error {
	c.list.collect(loops, mirror)
	return c.sweep(mirror, votes)
}

// sweep runs the column sweep over the current edge list.
func (c *classifier) sweep(mirror bool, votes voteMap) error {
	edges := c.list.edges
	if len(edges) == 0 {
		return nil
	}

	c.events = c.events[:0]
	for i := range edges {
		e := &edges[i]
		c.events = append(c.events,
			event{x: e.x0, idx: i, enter: true},
			event{x: e.x1, idx: i, enter: false})
	}
	slices.SortFunc(c.events, func(a, b event) int {
		return cmp.Compare(a.x, b.x)
	})

	c.active = c.active[:0]
	next := 0

	xStart := int(math.Floor(c.list.xMin))
	xEnd := int(math.Ceil(c.list.xMax))
	for col := xStart; col <= xEnd; col++ {
		xf := float64(col)

		// Apply events which lie strictly left of this column.  Since
		// x0 < x1, an edge always enters before it leaves.
		for next < len(c.events) && c.events[next].x < xf {
			ev := c.events[next]
			if ev.enter {
				c.active = append(c.active, ev.idx)
			} else {
				i := slices.Index(c.active, ev.idx)
				c.active[i] = c.active[len(c.active)-1]
				c.active = c.active[:len(c.active)-1]
			}
			next++
		}

		if len(c.active) == 0 {
			continue
		}

		x := col
		if mirror {
			x = -col
		}

		if len(c.active)%2 != 0 {
			return &ParityError{Column: x, Active: len(c.active)}
		}

		// Sorting the intercepts is the same as sorting the active edges
		// by their y value at this column.
		c.ys = c.ys[:0]
		for _, idx := range c.active {
			c.ys = append(c.ys, snapValue(edges[idx].yAt(xf), interceptTolerance))
		}
		slices.Sort(c.ys)

		for i := 0; i < len(c.ys); i += 2 {
			lo, hi := c.ys[i], c.ys[i+1]
			for y := int(math.Floor(lo)) + 1; float64(y) < hi; y++ {
				votes[image.Point{X: x, Y: y}]++
			}
		}
	}
	return nil
}

// resolve returns the region made of all points on which both passes
// agree.  Points are sorted by x, then by y.
func resolve(votes voteMap) *Region {
	var pts []image.Point
	for p, n := range votes {
		if n > 1 {
			pts = append(pts, p)
		}
	}
	slices.SortFunc(pts, comparePoints)
	return &Region{points: pts}
}

func comparePoints(a, b image.Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Interior computes the lattice points strictly inside the polygon bounded
// by loops.  Vertex coordinates within eps of an integer are snapped to
// that integer first.  Loops are closed implicitly and may describe holes
// or disjoint parts; their orientation does not matter.
//
// If the loops cross each other or themselves, the returned error wraps
// [ErrMalformedPolygon] and no region is returned.
func Interior(loops [][]vec.Vec2, eps float64) (*Region, error) {
	var c classifier
	return c.run(loops, eps)
}
