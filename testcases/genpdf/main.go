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
// Command genpdf draws the test cases, together with their interior
// points, for visual inspection.  It creates one PDF per test case and, if
// Ghostscript is installed, renders them to PNGs.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/testcases"
)

const outDir = "testdata/pictures"

const (
	unit   = 12.0 // PDF points per lattice unit
	margin = 1.5  // in lattice units
)

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}
	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if gsErr != nil {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	loops := tc.Loops
	if tc.Path != nil {
		b := lattice.NewPathBoundary(tc.Path)
		if tc.CTM != (matrix.Matrix{}) {
			b.CTM = tc.CTM
		}
		var err error
		loops, err = b.BoundaryLoops()
		if err != nil {
			return err
		}
	}

	// Malformed boundaries are drawn without interior points.
	region, _ := lattice.Interior(loops, lattice.DefaultEpsilon)

	box := loopsBox(loops)
	xMin := math.Floor(box.LLx) - margin
	yMin := math.Floor(box.LLy) - margin
	xMax := math.Ceil(box.URx) + margin
	yMax := math.Ceil(box.URy) + margin

	paper := &pdf.Rectangle{
		URx: (xMax - xMin) * unit,
		URy: (yMax - yMin) * unit,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// From here on, coordinates are lattice coordinates.
	page.Transform(matrix.Matrix{unit, 0, 0, unit, -xMin * unit, -yMin * unit})

	// polygon
	page.SetFillColor(color.DeviceGray(0.85))
	page.SetStrokeColor(color.DeviceGray(0.3))
	page.SetLineWidth(1.5 / unit)
	if tc.Path != nil {
		drawPath(page, tc.Path, tc.CTM)
	} else {
		drawLoops(page, loops)
	}
	page.FillEvenOdd()
	drawLoops(page, loops)
	page.Stroke()

	// lattice points
	page.SetFillColor(color.DeviceGray(0.6))
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			page.Rectangle(x-0.04, y-0.04, 0.08, 0.08)
		}
	}
	page.Fill()

	if region.Len() > 0 {
		page.SetFillColor(color.DeviceGray(0))
		for p := range region.All() {
			x, y := float64(p.X), float64(p.Y)
			page.Rectangle(x-0.15, y-0.15, 0.3, 0.3)
		}
		page.Fill()
	}

	return page.Close()
}

// pathBuilder is the path construction part of a PDF content stream.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends the curves of p to the current path of the page.
// Quadratic segments are converted to cubic ones, which PDF supports.
func drawPath(page pathBuilder, p path.Path, ctm matrix.Matrix) {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	tr := func(v vec.Vec2) (float64, float64) {
		return ctm[0]*v.X + ctm[2]*v.Y + ctm[4], ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
	}
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(tr(pts[0]))
		case path.CmdLineTo:
			page.LineTo(tr(pts[0]))
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			x3, y3 := tr(pts[2])
			page.CurveTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func drawLoops(page pathBuilder, loops [][]vec.Vec2) {
	for _, loop := range loops {
		if len(loop) == 0 {
			continue
		}
		page.MoveTo(loop[0].X, loop[0].Y)
		for _, v := range loop[1:] {
			page.LineTo(v.X, v.Y)
		}
		page.ClosePath()
	}
}

// loopsBox returns the bounding box of all finite vertices.
func loopsBox(loops [][]vec.Vec2) rect.Rect {
	box := rect.Rect{}
	first := true
	for _, loop := range loops {
		for _, v := range loop {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
				continue
			}
			if first {
				box = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
				first = false
				continue
			}
			box.LLx = min(box.LLx, v.X)
			box.LLy = min(box.LLy, v.Y)
			box.URx = max(box.URx, v.X)
			box.URy = max(box.URy, v.Y)
		}
	}
	return box
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144: two pixels per PDF point
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
