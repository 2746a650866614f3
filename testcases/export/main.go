// seehuhn.de/go/pixel - pixel-perfect raster shapes
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

// Command export writes the test cases and their cells to JSON, for use by
// external inspection tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/grid"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	r := pixel.NewRasteriser(grid.Rect{})
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			r.Reset(tc.Canvas())
			out.TestCases = append(out.TestCases, toJSON(r, category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
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
	Name   string    `json:"name"`
	Shape  string    `json:"shape"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Count  int       `json:"count"`
	Bounds [4]int    `json:"bounds"` // xMin, yMin, xMax, yMax
	Runs   []jsonRun `json:"runs"`
}

// jsonRun is a horizontal run of cells inside the canvas.
type jsonRun struct {
	Y    int `json:"y"`
	XMin int `json:"x_min"`
	XMax int `json:"x_max"`
}

func toJSON(r *pixel.Rasteriser, category string, tc testcases.TestCase) jsonTestCase {
	b := tc.Shape.Bounds()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Shape:  fmt.Sprint(tc.Shape),
		Width:  tc.Width,
		Height: tc.Height,
		Count:  tc.Shape.Count(),
		Bounds: [4]int{b.Min().X, b.Min().Y, b.Max().X, b.Max().Y},
	}
	r.Fill(tc.Shape, func(y, xMin, xMax int) {
		jtc.Runs = append(jtc.Runs, jsonRun{Y: y, XMin: xMin, XMax: xMax})
	})
	return jtc
}
