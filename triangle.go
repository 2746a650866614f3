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

// RightAngleLocation selects the corner of the bounding rectangle where a
// [RightTriangle] has its right angle.
type RightAngleLocation int

// These are the possible right angle locations.  The y axis points up, so
// the bottom corners have the smaller y coordinate.
const (
	BottomLeft RightAngleLocation = iota
	BottomRight
	TopLeft
	TopRight
)

func (l RightAngleLocation) String() string {
	switch l {
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return fmt.Sprintf("RightAngleLocation(%d)", int(l))
	}
}

// RightTriangle is a right triangle whose legs run along two sides of a
// rectangle.  The hypotenuse is a [Line] joining the ends of the legs.
//
// The outline is the union of the three edges.
type RightTriangle struct {
	closedShape
	rect  grid.Rect
	loc   RightAngleLocation
	edges [3]Line
}

// NewRightTriangle returns the right triangle filling half of the
// rectangle with corners a and b, with the right angle at loc.  Width and
// height must be less than 2^31 cells.
func NewRightTriangle(a, b grid.Vec, filled bool, loc RightAngleLocation) (RightTriangle, error) {
	r := grid.RectFromCorners(a, b)
	if err := checkExtent(r); err != nil {
		Logger().Debug("triangle rejected", "error", err)
		return RightTriangle{}, err
	}
	x0, y0 := r.Min().X, r.Min().Y
	x1, y1 := r.Max().X, r.Max().Y

	// c is the right angle, p ends the horizontal leg, q ends the vertical
	// leg
	var c, p, q grid.Vec
	switch loc {
	case BottomLeft:
		c, p, q = grid.V(x0, y0), grid.V(x1, y0), grid.V(x0, y1)
	case BottomRight:
		c, p, q = grid.V(x1, y0), grid.V(x0, y0), grid.V(x1, y1)
	case TopLeft:
		c, p, q = grid.V(x0, y1), grid.V(x1, y1), grid.V(x0, y0)
	case TopRight:
		c, p, q = grid.V(x1, y1), grid.V(x0, y1), grid.V(x1, y0)
	default:
		err := fmt.Errorf("right angle location %d: %w", int(loc), ErrInvalidArgument)
		Logger().Debug("triangle rejected", "error", err)
		return RightTriangle{}, err
	}

	t := RightTriangle{
		rect: r,
		loc:  loc,
		edges: [3]Line{
			NewLine(c, p),
			NewLine(c, q),
			NewLine(p, q),
		},
	}
	t.closedShape = closedShape{spans: spansFromLines(t.edges[:]...), filled: filled}
	return t, nil
}

// Rect returns the bounding rectangle of the triangle.
func (t RightTriangle) Rect() grid.Rect { return t.rect }

// RightAngle returns the location of the right angle.
func (t RightTriangle) RightAngle() RightAngleLocation { return t.loc }

// Edges returns the horizontal leg, the vertical leg and the hypotenuse.
// Both legs start at the right angle.
func (t RightTriangle) Edges() []Line {
	return t.edges[:]
}

// WithFilled returns a copy of t with the given fill mode.
func (t RightTriangle) WithFilled(filled bool) RightTriangle {
	t.filled = filled
	return t
}

func (t RightTriangle) String() string {
	return fmt.Sprintf("triangle %v %v (filled=%t)", t.rect, t.loc, t.filled)
}
