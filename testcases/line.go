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

var lineCases = []TestCase{
	{
		Name:   "single_point",
		Shape:  pixel.NewLine(pt(3, 3), pt(3, 3)),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "horizontal",
		Shape:  pixel.NewLine(pt(2, 5), pt(29, 5)),
		Width:  32,
		Height: 12,
	},
	{
		Name:   "vertical",
		Shape:  pixel.NewLine(pt(5, 29), pt(5, 2)),
		Width:  12,
		Height: 32,
	},
	{
		Name:   "diagonal",
		Shape:  pixel.NewLine(pt(1, 1), pt(30, 30)),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "shallow",
		Shape:  pixel.NewLine(pt(1, 2), pt(30, 9)),
		Width:  32,
		Height: 12,
	},
	{
		Name:   "steep",
		Shape:  pixel.NewLine(pt(9, 1), pt(2, 30)),
		Width:  12,
		Height: 32,
	},
	{
		Name:   "blocks_3x4",
		Shape:  pixel.NewLine(pt(1, 1), pt(12, 4)),
		Width:  16,
		Height: 6,
	},
	{
		Name:   "isometric_2x5",
		Shape:  pixel.NewLine(pt(1, 6), pt(10, 2)),
		Width:  12,
		Height: 8,
	},
	{
		Name:   "slice",
		Shape:  pixel.NewLine(pt(0, 0), pt(31, 13)).Slice(5, 25),
		Width:  32,
		Height: 16,
	},
}
