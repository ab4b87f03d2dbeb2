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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathBoundary turns a path into boundary loops.  Every subpath becomes
// one loop; open subpaths are closed implicitly.  Curves are replaced by
// polygons.
type PathBoundary struct {
	// Path is the outline, in user space.
	Path path.Path

	// CTM maps user space to lattice coordinates.  The zero value is
	// treated as the identity.
	CTM matrix.Matrix

	// Flatness is the maximal distance, in lattice units, between a curve
	// and its polygonal approximation.  Must be positive.
	Flatness float64
}

// NewPathBoundary returns a PathBoundary for p with the identity
// transformation and the default flatness.
func NewPathBoundary(p path.Path) *PathBoundary {
	return &PathBoundary{
		Path:     p,
		CTM:      matrix.Identity,
		Flatness: DefaultFlatness,
	}
}

// BoundaryLoops implements [BoundaryProvider].
func (b *PathBoundary) BoundaryLoops() ([][]vec.Vec2, error) {
	if !(b.Flatness > 0) {
		return nil, fmt.Errorf("lattice: invalid flatness %g", b.Flatness)
	}
	if b.Path == nil {
		return nil, nil
	}

	ctm := b.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	f := flattener{ctm: ctm, flatness: b.Flatness}

	var loops [][]vec.Vec2
	var loop []vec.Vec2
	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	flush := func() {
		if len(loop) > 0 {
			loops = append(loops, loop)
		}
		loop = nil
	}
	emit := func(p vec.Vec2) {
		loop = append(loop, f.apply(p))
	}
	// startIfClosed begins a new loop at the subpath start, for segments
	// which follow a ClosePath without a MoveTo.
	startIfClosed := func() {
		if loop == nil {
			emit(subpath)
		}
	}

	for cmd, pts := range b.Path {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			subpath = current
			emit(current)

		case path.CmdLineTo:
			startIfClosed()
			current = pts[0]
			emit(current)

		case path.CmdQuadTo:
			startIfClosed()
			f.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			startIfClosed()
			f.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			flush()
			current = subpath
		}
	}
	flush()

	return loops, nil
}

// flattener replaces curves by line segments, with a tolerance measured
// after transformation.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

// apply maps a point from user space to lattice coordinates.
func (f *flattener) apply(p vec.Vec2) vec.Vec2 {
	m := f.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of the CTM.
// Used for tolerance checks where translation is irrelevant.
func (f *flattener) applyLinear(v vec.Vec2) vec.Vec2 {
	m := f.ctm
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve from p0 via the
// control point p1 to p2.  The points after p0 are passed to emit.
func (f *flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	errDev := f.applyLinear(e).Length()
	if errDev > f.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.flatness)))
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
	emit(p2)
}

// flattenCubic approximates a cubic Bézier curve from p0 via p1 and p2 to
// p3.  The points after p0 are passed to emit.
func (f *flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := f.applyLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.applyLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * flatness)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
	emit(p3)
}

// DefaultFlatness is the default curve flattening tolerance, in lattice
// units.  It is well below the lattice spacing, so that flattening moves
// no boundary across a lattice point unless the point is already within
// this distance of the curve.
const DefaultFlatness = 0.05
