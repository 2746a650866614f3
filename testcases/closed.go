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

var diamondCases = []TestCase{
	{
		Name:   "square_odd",
		Shape:  must(pixel.NewDiamond(pt(4, 4), pt(26, 26), false)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "square_even",
		Shape:  must(pixel.NewDiamond(pt(4, 4), pt(27, 27), true)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "flat",
		Shape:  must(pixel.NewDiamond(pt(2, 8), pt(61, 23), false)),
		Width:  64,
		Height: 32,
	},
	{
		Name:   "mixed_parity",
		Shape:  must(pixel.NewDiamond(pt(2, 2), pt(21, 12), true)),
		Width:  24,
		Height: 16,
	},
}

var triangleCases = []TestCase{
	{
		Name:   "bottom_left",
		Shape:  must(pixel.NewRightTriangle(pt(2, 2), pt(29, 17), true, pixel.BottomLeft)),
		Width:  32,
		Height: 20,
	},
	{
		Name:   "bottom_right",
		Shape:  must(pixel.NewRightTriangle(pt(2, 2), pt(29, 17), false, pixel.BottomRight)),
		Width:  32,
		Height: 20,
	},
	{
		Name:   "top_left",
		Shape:  must(pixel.NewRightTriangle(pt(2, 2), pt(12, 29), false, pixel.TopLeft)),
		Width:  16,
		Height: 32,
	},
	{
		Name:   "top_right",
		Shape:  must(pixel.NewRightTriangle(pt(2, 2), pt(12, 29), true, pixel.TopRight)),
		Width:  16,
		Height: 32,
	},
}
