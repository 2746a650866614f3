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
	"cmp"
	"fmt"
	"iter"
	"slices"

	"seehuhn.de/go/pixel/grid"
)

// isoFrame describes an isometric rectangle made of 2x1 blocks.
//
// The rectangle has its left vertex at left and spans n blocks
// horizontally.  Going right from the left vertex, the lower edges descend
// by a blocks and then rise by b blocks, while the upper edges rise by b
// blocks and then descend by a blocks.  If a or b is zero, the rectangle
// degenerates to a single isometric line.
type isoFrame struct {
	left    grid.Vec
	n, a, b int
}

// newIsoFrame finds the isometric rectangle with left and right vertices
// closest to start and end.  The horizontal extent is rounded up to whole
// blocks, and the vertical offset between the vertices is rounded to the
// nearest value reachable with these blocks.
func newIsoFrame(start, end grid.Vec) isoFrame {
	l, r := start, end
	if r.X < l.X {
		l, r = r, l
	}
	n := (r.X - l.X + 2) / 2
	b := (n + r.Y - l.Y) >> 1 // rounds towards -∞
	b = max(0, min(n, b))
	return isoFrame{left: l, n: n, a: n - b, b: b}
}

func (f isoFrame) isDegenerate() bool {
	return f.a == 0 || f.b == 0
}

// at returns the cell at block offset (dx, dy) from the left vertex.
func (f isoFrame) at(dx, dy int) grid.Vec {
	return f.left.Add(grid.V(dx, dy))
}

// right returns the rightmost cell of the right vertex.
func (f isoFrame) right() grid.Vec {
	switch {
	case f.a == 0:
		return f.at(2*f.n-1, f.n-1)
	case f.b == 0:
		return f.at(2*f.n-1, 1-f.n)
	}
	return f.at(2*f.n-1, f.b-f.a)
}

// bottomSeam returns the column left of the bottom vertex, and the row of
// the bottom vertex.  The vertex itself is the block at columns x, x+1.
func (f isoFrame) bottomSeam() (x, y int) {
	p := f.at(2*f.a-1, 1-f.a)
	return p.X, p.Y
}

// topSeam returns the column left of the top vertex, and the row of the
// top vertex.
func (f isoFrame) topSeam() (x, y int) {
	p := f.at(2*f.b-1, f.b-1)
	return p.X, p.Y
}

// edges returns the lower (front) and upper (back) edges of the rectangle,
// each ordered from left to right.  For a degenerate rectangle, the single
// line is returned as the front edge.
func (f isoFrame) edges() (front, back []Line) {
	n, a, b := f.n, f.a, f.b
	if f.isDegenerate() {
		return []Line{NewLine(f.left, f.right())}, nil
	}
	front = []Line{
		NewLine(f.left, f.at(2*a-1, 1-a)),
		NewLine(f.at(2*a, 1-a), f.at(2*n-1, b-a)),
	}
	back = []Line{
		NewLine(f.left, f.at(2*b-1, b-1)),
		NewLine(f.at(2*b, b-1), f.at(2*n-1, b-a)),
	}
	return front, back
}

// shift returns the frame moved up by dy rows.
func (f isoFrame) shift(dy int) isoFrame {
	f.left = f.at(0, dy)
	return f
}

// IsometricRectangle is a rectangle lying flat in a 2:1 isometric
// projection.  Its four edges are lines made of 2x1 blocks, and its left
// and right vertices are two cells wide.
//
// The outline is the union of the four edges.
type IsometricRectangle struct {
	closedShape
	frame isoFrame
	edges []Line
}

// NewIsometricRectangle returns the isometric rectangle with its left and
// right vertices near start and end.  The horizontal distance is rounded
// up to a whole number of blocks, and the right vertex is moved vertically
// to the nearest row which the edges can reach.  If the vertices are too
// far apart vertically, the rectangle degenerates to a single isometric
// line.
//
// The horizontal and vertical distances between start and end must be
// less than 2^31 cells.
func NewIsometricRectangle(start, end grid.Vec, filled bool) (IsometricRectangle, error) {
	if err := checkExtent(grid.RectFromCorners(start, end)); err != nil {
		Logger().Debug("isometric rectangle rejected", "error", err)
		return IsometricRectangle{}, err
	}
	f := newIsoFrame(start, end)
	front, back := f.edges()
	edges := slices.Concat(front, back)
	return IsometricRectangle{
		closedShape: closedShape{spans: spansFromLines(edges...), filled: filled},
		frame:       f,
		edges:       edges,
	}, nil
}

// Left returns the left cell of the left vertex.
func (r IsometricRectangle) Left() grid.Vec { return r.frame.left }

// Right returns the right cell of the right vertex.
func (r IsometricRectangle) Right() grid.Vec { return r.frame.right() }

// Edges returns the lines forming the outline: the two lower edges
// followed by the two upper edges.  A degenerate rectangle has a single
// edge.
func (r IsometricRectangle) Edges() []Line {
	return slices.Clone(r.edges)
}

// WithFilled returns a copy of r with the given fill mode.
func (r IsometricRectangle) WithFilled(filled bool) IsometricRectangle {
	r.filled = filled
	return r
}

func (r IsometricRectangle) String() string {
	return fmt.Sprintf("isometric rectangle %v-%v (filled=%t)", r.Left(), r.Right(), r.filled)
}

// IsometricHexagon is a hexagon with vertical left and right sides and
// isometric diagonal edges at the top and bottom, inscribed in a
// rectangle.
//
// The diagonal edges are drawn from the vertical sides towards the centre
// of the top and bottom rows, so that the hexagon is mirror symmetric.
type IsometricHexagon struct {
	closedShape
	rect grid.Rect
}

// NewIsometricHexagon returns the hexagon inscribed in the rectangle with
// corners a and b.  Width and height must be less than 2^31 cells.
func NewIsometricHexagon(a, b grid.Vec, filled bool) (IsometricHexagon, error) {
	r := grid.RectFromCorners(a, b)
	if err := checkExtent(r); err != nil {
		Logger().Debug("isometric hexagon rejected", "error", err)
		return IsometricHexagon{}, err
	}
	x0, y0 := r.Min().X, r.Min().Y
	x1, y1 := r.Max().X, r.Max().Y

	half := (r.Width() + 1) / 2
	rise := min((half+1)/2-1, (r.Height()-1)/2)

	lines := []Line{
		NewLine(grid.V(x0, y1-rise), grid.V(x0+half-1, y1)),
		NewLine(grid.V(x1, y1-rise), grid.V(x1-half+1, y1)),
		NewLine(grid.V(x0, y0+rise), grid.V(x0+half-1, y0)),
		NewLine(grid.V(x1, y0+rise), grid.V(x1-half+1, y0)),
		NewLine(grid.V(x0, y0+rise), grid.V(x0, y1-rise)),
		NewLine(grid.V(x1, y0+rise), grid.V(x1, y1-rise)),
	}
	return IsometricHexagon{
		closedShape: closedShape{spans: spansFromLines(lines...), filled: filled},
		rect:        r,
	}, nil
}

// Rect returns the rectangle the hexagon is inscribed in.
func (h IsometricHexagon) Rect() grid.Rect { return h.rect }

// WithFilled returns a copy of h with the given fill mode.
func (h IsometricHexagon) WithFilled(filled bool) IsometricHexagon {
	h.filled = filled
	return h
}

func (h IsometricHexagon) String() string {
	return fmt.Sprintf("isometric hexagon %v (filled=%t)", h.rect, h.filled)
}

// IsometricCuboid is an [IsometricRectangle] extruded vertically.
//
// The filled cuboid is its silhouette.  The outline consists of the edges
// of the two faces together with the vertical edges at the left, right and
// front vertices.  If back edges are included, the outline also contains
// the upper edges of the lower face and the vertical edge at the back
// vertex, which are hidden behind the cuboid.  Since these edges lie
// inside the silhouette, the outline is not the border of the filled
// cuboid.
type IsometricCuboid struct {
	silhouette closedShape
	filled     bool
	base       isoFrame
	height     int
	backEdges  bool
	edges      []Line

	outline    []grid.Vec // sorted by [grid.Vec.Compare]
	outlineSet map[grid.Vec]struct{}
}

// NewIsometricCuboid returns the cuboid whose base is the isometric
// rectangle from start to end, extruded by height rows.  A negative height
// extrudes downwards.  The size limits of [NewIsometricRectangle] apply to
// the base, and |height| must be less than 2^31.
func NewIsometricCuboid(start, end grid.Vec, height int, filled, includeBackEdges bool) (IsometricCuboid, error) {
	err := checkExtent(grid.RectFromCorners(start, end))
	if err == nil && (height <= -maxExtent || height >= maxExtent) {
		err = fmt.Errorf("cuboid height %d: %w", height, ErrInvalidArgument)
	}
	if err != nil {
		Logger().Debug("isometric cuboid rejected", "error", err)
		return IsometricCuboid{}, err
	}

	base := newIsoFrame(start, end)
	lower, upper := base, base.shift(height)
	if height < 0 {
		lower, upper = upper, lower
	}

	lowerFront, lowerBack := lower.edges()
	upperFront, upperBack := upper.edges()
	visible := slices.Concat(lowerFront, upperFront, upperBack)
	var hidden []Line
	visible = append(visible,
		NewLine(lower.left, upper.left),
		NewLine(lower.right(), upper.right()))
	if !lower.isDegenerate() {
		x, y := lower.bottomSeam()
		_, yUp := upper.bottomSeam()
		visible = append(visible,
			NewLine(grid.V(x, y), grid.V(x, yUp)),
			NewLine(grid.V(x+1, y), grid.V(x+1, yUp)))

		x, y = lower.topSeam()
		_, yUp = upper.topSeam()
		hidden = append(hidden, lowerBack...)
		hidden = append(hidden,
			NewLine(grid.V(x, y), grid.V(x, yUp)),
			NewLine(grid.V(x+1, y), grid.V(x+1, yUp)))
	}

	c := IsometricCuboid{
		silhouette: closedShape{spans: spansFromLines(slices.Concat(visible, hidden)...), filled: true},
		filled:     filled,
		base:       base,
		height:     height,
		backEdges:  includeBackEdges,
		edges:      visible,
	}
	if includeBackEdges {
		c.edges = append(c.edges, hidden...)
	}

	c.outlineSet = make(map[grid.Vec]struct{})
	for _, l := range c.edges {
		for p := range l.Cells() {
			c.outlineSet[p] = struct{}{}
		}
	}
	c.outline = make([]grid.Vec, 0, len(c.outlineSet))
	for p := range c.outlineSet {
		c.outline = append(c.outline, p)
	}
	slices.SortFunc(c.outline, grid.Vec.Compare)
	return c, nil
}

// Height returns the signed extrusion height.
func (c IsometricCuboid) Height() int { return c.height }

// Filled reports whether the cuboid is drawn as its silhouette.
func (c IsometricCuboid) Filled() bool { return c.filled }

// Edges returns the lines forming the outline.
func (c IsometricCuboid) Edges() []Line {
	return slices.Clone(c.edges)
}

// WithFilled returns a copy of c with the given fill mode.
func (c IsometricCuboid) WithFilled(filled bool) IsometricCuboid {
	c.filled = filled
	return c
}

// Bounds returns the smallest rectangle containing the cuboid.
// The filled and outline forms have the same bounds.
func (c IsometricCuboid) Bounds() grid.Rect {
	return c.silhouette.Bounds()
}

// Count returns the number of cells of the cuboid.
func (c IsometricCuboid) Count() int {
	if c.filled {
		return c.silhouette.Count()
	}
	return len(c.outline)
}

// Contains reports whether p is a cell of the cuboid.
func (c IsometricCuboid) Contains(p grid.Vec) bool {
	if c.filled {
		return c.silhouette.Contains(p)
	}
	_, ok := c.outlineSet[p]
	return ok
}

// Cells iterates over the cells row by row, from bottom to top and from
// left to right.
func (c IsometricCuboid) Cells() iter.Seq[grid.Vec] {
	if c.filled {
		return c.silhouette.Cells()
	}
	return slices.Values(c.outline)
}

// runs appends the runs of row y to buf.
func (c IsometricCuboid) runs(y int, buf []run) []run {
	if c.filled {
		return c.silhouette.runs(y, buf)
	}
	i, _ := slices.BinarySearchFunc(c.outline, y, func(p grid.Vec, y int) int {
		return cmp.Compare(p.Y, y)
	})
	for ; i < len(c.outline) && c.outline[i].Y == y; i++ {
		x := c.outline[i].X
		if k := len(buf) - 1; k >= 0 && buf[k].hi == x-1 {
			buf[k].hi = x
		} else {
			buf = append(buf, run{lo: x, hi: x})
		}
	}
	return buf
}

func (c IsometricCuboid) String() string {
	return fmt.Sprintf("isometric cuboid %v-%v height %d (filled=%t, back edges=%t)",
		c.base.left, c.base.right(), c.height, c.filled, c.backEdges)
}
