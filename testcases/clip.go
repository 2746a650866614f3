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

import "seehuhn.de/go/pixel"

// Shapes which extend beyond the canvas.
var clipCases = []TestCase{
	{
		Name:   "ellipse_corner",
		Shape:  must(pixel.NewEllipse(pt(-20, -20), pt(20, 20), true)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "ellipse_outline_around",
		Shape:  must(pixel.NewEllipse(pt(-4, -10), pt(35, 41), false)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "line_across",
		Shape:  pixel.NewLine(pt(-10, 3), pt(41, 28)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "path_across",
		Shape:  polygon(pt(-5, 16), pt(16, -5), pt(37, 16), pt(16, 37)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "cuboid_top_cut",
		Shape:  must(pixel.NewIsometricCuboid(pt(4, 20), pt(27, 20), 20, false, true)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "outside",
		Shape:  must(pixel.NewDiamond(pt(40, 40), pt(50, 50), true)),
		Width:  32,
		Height: 32,
	},
}
