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

// Package testcases contains named example shapes, shared by the tests,
// the benchmarks and the export command.
package testcases

import (
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/grid"
)

// TestCase is a shape drawn onto a canvas.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Shape  pixel.Shape // the cells to draw
	Width  int         // canvas width in cells
	Height int         // canvas height in cells
}

// Canvas returns the drawable cells.  The origin is the bottom left cell.
func (tc TestCase) Canvas() grid.Rect {
	return grid.RectFromCorners(grid.V(0, 0), grid.V(tc.Width-1, tc.Height-1))
}

// pt is a helper to create a grid.Vec from x, y coordinates.
func pt(x, y int) grid.Vec {
	return grid.V(x, y)
}

// must panics if a shape cannot be constructed.
func must[T any](s T, err error) T {
	if err != nil {
		panic(err)
	}
	return s
}
