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

package testcases

import (
	"math"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/grid"
)

var pathCases = []TestCase{
	{
		Name:   "triangle",
		Shape:  polygon(pt(4, 4), pt(28, 4), pt(16, 28)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "square",
		Shape:  polygon(pt(4, 4), pt(27, 4), pt(27, 27), pt(4, 27)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "figure_eight",
		Shape:  polygon(pt(2, 2), pt(29, 29), pt(29, 2), pt(2, 29)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "star",
		Shape:  fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Shape:  must(pixel.PathThrough(pt(2, 4), pt(10, 27), pt(18, 4), pt(26, 27), pt(34, 4))),
		Width:  40,
		Height: 32,
	},
	{
		Name:   "back_and_forth",
		Shape:  must(pixel.PathThrough(pt(3, 3), pt(20, 9), pt(3, 3))),
		Width:  24,
		Height: 12,
	},
}

// polygon builds the closed path through the given vertices.
func polygon(vertices ...grid.Vec) pixel.Path {
	return must(pixel.PathThrough(append(vertices, vertices[0])...))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) pixel.Path {
	pts := make([]grid.Vec, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = grid.V(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}
