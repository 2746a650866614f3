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

package pixel

import (
	"fmt"
	"math/bits"

	"seehuhn.de/go/pixel/grid"
)

// Ellipse is the axis-aligned ellipse inscribed in a rectangle of cells.
//
// A cell belongs to the filled ellipse if its centre lies inside the
// ellipse touching the outer edges of the rectangle, that is if the sum of
// the distances from the centre to the two foci is at most the length of
// the major axis.  The central row and column (two of each for even side
// lengths) are always included, so that the ellipse touches all four sides
// of the rectangle.  The 3x3 ellipse is the plus sign.
//
// The outline consists of the cells of the filled ellipse which have a
// 4-neighbour outside it.
type Ellipse struct {
	closedShape
	rect grid.Rect
}

// NewEllipse returns the ellipse inscribed in the rectangle with corners a
// and b.  Width and height must be less than 2^31 cells.
func NewEllipse(a, b grid.Vec, filled bool) (Ellipse, error) {
	r := grid.RectFromCorners(a, b)
	if err := checkExtent(r); err != nil {
		Logger().Debug("ellipse rejected", "error", err)
		return Ellipse{}, err
	}

	aa, bb := uint64(r.Width()), uint64(r.Height())
	isSmall := aa == 3 && bb == 3
	inside := func(dx, dy uint64) bool {
		if isSmall && dx == 2 && dy == 2 {
			return false
		}
		return ellipseContains(dx, dy, aa, bb)
	}
	return Ellipse{
		closedShape: closedShape{spans: symmetricSpans(r, inside), filled: filled},
		rect:        r,
	}, nil
}

// ellipseContains reports whether the point (dx, dy) lies in the ellipse
// with semi-axes a and b, centred at the origin.  The test is
// dx²·b² + dy²·a² ≤ a²·b², evaluated with 128-bit intermediates.  All
// arguments must be less than 2^32.
func ellipseContains(dx, dy, a, b uint64) bool {
	p, q, r := dx*b, dy*a, a*b
	pHi, pLo := bits.Mul64(p, p)
	qHi, qLo := bits.Mul64(q, q)
	lo, carry := bits.Add64(pLo, qLo, 0)
	hi, carry := bits.Add64(pHi, qHi, carry)
	if carry != 0 {
		return false
	}
	rHi, rLo := bits.Mul64(r, r)
	return hi < rHi || hi == rHi && lo <= rLo
}

// Rect returns the rectangle the ellipse is inscribed in.
func (e Ellipse) Rect() grid.Rect { return e.rect }

// WithFilled returns a copy of e with the given fill mode.
func (e Ellipse) WithFilled(filled bool) Ellipse {
	e.filled = filled
	return e
}

func (e Ellipse) String() string {
	return fmt.Sprintf("ellipse %v (filled=%t)", e.rect, e.filled)
}
