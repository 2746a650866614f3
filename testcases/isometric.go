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

var isometricCases = []TestCase{
	{
		Name:   "tile",
		Shape:  must(pixel.NewIsometricRectangle(pt(2, 3), pt(9, 3), false)),
		Width:  12,
		Height: 8,
	},
	{
		Name:   "rectangle_filled",
		Shape:  must(pixel.NewIsometricRectangle(pt(2, 12), pt(45, 18), true)),
		Width:  48,
		Height: 32,
	},
	{
		Name:   "rectangle_outline",
		Shape:  must(pixel.NewIsometricRectangle(pt(45, 18), pt(2, 12), false)),
		Width:  48,
		Height: 32,
	},
	{
		Name:   "steep_drag",
		Shape:  must(pixel.NewIsometricRectangle(pt(2, 2), pt(13, 28), false)),
		Width:  16,
		Height: 32,
	},
	{
		Name:   "hexagon",
		Shape:  must(pixel.NewIsometricHexagon(pt(2, 2), pt(29, 21), false)),
		Width:  32,
		Height: 24,
	},
	{
		Name:   "cuboid",
		Shape:  must(pixel.NewIsometricCuboid(pt(2, 10), pt(33, 12), 12, false, false)),
		Width:  36,
		Height: 40,
	},
	{
		Name:   "cuboid_back_edges",
		Shape:  must(pixel.NewIsometricCuboid(pt(2, 10), pt(33, 12), 12, false, true)),
		Width:  36,
		Height: 40,
	},
	{
		Name:   "cuboid_downwards",
		Shape:  must(pixel.NewIsometricCuboid(pt(2, 30), pt(33, 28), -12, true, false)),
		Width:  36,
		Height: 40,
	},
}
