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
// Command export writes the test cases, together with the computed
// interior points, to JSON for checking by independent implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/testcases"
)

func main() {
	var out struct {
		Epsilon   float64        `json:"epsilon"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Epsilon = lattice.DefaultEpsilon

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Loops     [][][]float64 `json:"loops"`
	Malformed bool          `json:"malformed,omitempty"`
	Count     int           `json:"count"`
	Points    [][2]int      `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Malformed: tc.Malformed,
		Count:     tc.Count,
		Points:    [][2]int{},
	}

	loops, err := boundaryLoops(tc)
	if err != nil {
		return jtc, err
	}
	jtc.Loops = loopsToJSON(loops)

	r, err := lattice.Interior(loops, lattice.DefaultEpsilon)
	switch {
	case errors.Is(err, lattice.ErrMalformedPolygon) && tc.Malformed:
		return jtc, nil
	case err != nil:
		return jtc, err
	case tc.Malformed:
		return jtc, errors.New("malformed boundary accepted")
	}

	if r.Len() != tc.Count {
		return jtc, fmt.Errorf("%d interior points, expected %d", r.Len(), tc.Count)
	}
	for p := range r.All() {
		jtc.Points = append(jtc.Points, [2]int{p.X, p.Y})
	}
	return jtc, nil
}

// boundaryLoops returns the loops of a test case in lattice coordinates.
func boundaryLoops(tc testcases.TestCase) ([][]vec.Vec2, error) {
	if tc.Path == nil {
		return tc.Loops, nil
	}
	b := lattice.NewPathBoundary(tc.Path)
	if tc.CTM != (matrix.Matrix{}) {
		b.CTM = tc.CTM
	}
	return b.BoundaryLoops()
}

func loopsToJSON(loops [][]vec.Vec2) [][][]float64 {
	res := make([][][]float64, len(loops))
	for i, loop := range loops {
		res[i] = make([][]float64, len(loop))
		for j, v := range loop {
			res[i][j] = []float64{v.X, v.Y}
		}
	}
	return res
}
