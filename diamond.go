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

	"seehuhn.de/go/pixel/grid"
)

// Diamond is the rhombus inscribed in a rectangle of cells, with its
// vertices at the midpoints of the four sides.
//
// For a square with odd side length 2r+1 this is the set of cells within
// L1 distance r from the centre.  Rectangles with even sides have two-cell
// wide tips.
type Diamond struct {
	closedShape
	rect grid.Rect
}

// NewDiamond returns the diamond inscribed in the rectangle with corners a
// and b.
//
// The outline of a diamond whose width and height have different parity
// is not supported and gives ErrUnsupported.
func NewDiamond(a, b grid.Vec, filled bool) (Diamond, error) {
	r := grid.RectFromCorners(a, b)
	if err := checkExtent(r); err != nil {
		Logger().Debug("diamond rejected", "error", err)
		return Diamond{}, err
	}
	if err := checkDiamondMode(r, filled); err != nil {
		return Diamond{}, err
	}

	ww, hh := uint64(r.Width()-1), uint64(r.Height()-1)
	inside := func(dx, dy uint64) bool {
		return dx*hh+dy*ww <= ww*hh
	}
	return Diamond{
		closedShape: closedShape{spans: symmetricSpans(r, inside), filled: filled},
		rect:        r,
	}, nil
}

func checkDiamondMode(r grid.Rect, filled bool) error {
	if !filled && r.Width()%2 != r.Height()%2 {
		err := fmt.Errorf("diamond outline %dx%d: %w", r.Width(), r.Height(), ErrUnsupported)
		Logger().Debug("diamond rejected", "error", err)
		return err
	}
	return nil
}

// Rect returns the rectangle the diamond is inscribed in.
func (d Diamond) Rect() grid.Rect { return d.rect }

// WithFilled returns a copy of d with the given fill mode.
// It fails in the same cases as [NewDiamond].
func (d Diamond) WithFilled(filled bool) (Diamond, error) {
	if err := checkDiamondMode(d.rect, filled); err != nil {
		return Diamond{}, err
	}
	d.filled = filled
	return d, nil
}

func (d Diamond) String() string {
	return fmt.Sprintf("diamond %v (filled=%t)", d.rect, d.filled)
}
