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

var ellipseCases = []TestCase{
	{
		Name:   "plus",
		Shape:  must(pixel.NewEllipse(pt(2, 2), pt(4, 4), true)),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "circle_filled",
		Shape:  must(pixel.NewEllipse(pt(4, 4), pt(28, 28), true)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "circle_outline",
		Shape:  must(pixel.NewEllipse(pt(4, 4), pt(28, 28), false)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "circle_even",
		Shape:  must(pixel.NewEllipse(pt(4, 4), pt(27, 27), false)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "wide",
		Shape:  must(pixel.NewEllipse(pt(2, 10), pt(61, 21), false)),
		Width:  64,
		Height: 32,
	},
	{
		Name:   "tall_thin",
		Shape:  must(pixel.NewEllipse(pt(10, 2), pt(11, 29), true)),
		Width:  24,
		Height: 32,
	},
	{
		Name:   "large",
		Shape:  must(pixel.NewEllipse(pt(10, 10), pt(389, 289), true)),
		Width:  400,
		Height: 300,
	},
}
