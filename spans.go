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
	"iter"
	"math"
	"sort"

	"seehuhn.de/go/pixel/grid"
)

// run is a horizontal run of cells lo ≤ x ≤ hi within one row.
type run struct {
	lo, hi int
}

// rowSpans describes a filled shape in which every row of the bounding
// rectangle holds exactly one run of cells.  All convex shapes have this
// form.  A rowSpans is immutable once built and can be shared.
type rowSpans struct {
	y0   int   // first row
	rows []run // rows[y-y0] is the run in row y

	bounds       grid.Rect
	filledCount  int
	outlineCount int
}

// spanBuilder accumulates cells into a rowSpans.
type spanBuilder struct {
	y0   int
	rows []run
}

func newSpanBuilder(yMin, yMax int) *spanBuilder {
	rows := make([]run, yMax-yMin+1)
	for i := range rows {
		rows[i] = run{lo: math.MaxInt, hi: math.MinInt}
	}
	return &spanBuilder{y0: yMin, rows: rows}
}

// add extends the run of row p.Y to include p.
func (b *spanBuilder) add(p grid.Vec) {
	r := &b.rows[p.Y-b.y0]
	r.lo = min(r.lo, p.X)
	r.hi = max(r.hi, p.X)
}

// addAll adds every cell of seq.
func (b *spanBuilder) addAll(seq iter.Seq[grid.Vec]) {
	for p := range seq {
		b.add(p)
	}
}

// set sets the run of row y.
func (b *spanBuilder) set(y, lo, hi int) {
	b.rows[y-b.y0] = run{lo: lo, hi: hi}
}

// build finishes the construction.  Every row must have received at least
// one cell.
func (b *spanBuilder) build() *rowSpans {
	s := &rowSpans{y0: b.y0, rows: b.rows}
	xMin, xMax := math.MaxInt, math.MinInt
	for i, r := range s.rows {
		if r.lo > r.hi {
			panic(fmt.Sprintf("pixel: row %d of convex shape is empty", b.y0+i))
		}
		xMin = min(xMin, r.lo)
		xMax = max(xMax, r.hi)
		s.filledCount += r.hi - r.lo + 1
	}
	s.bounds = grid.RectFromCorners(
		grid.V(xMin, s.y0),
		grid.V(xMax, s.y0+len(s.rows)-1))

	var buf [2]run
	for y := range s.bounds.YRange().Values() {
		for _, r := range s.outlineRuns(y, buf[:0]) {
			s.outlineCount += r.hi - r.lo + 1
		}
	}
	return s
}

// maxExtent bounds the width and height of closed shapes.  Shapes which
// are described by an inequality on doubled cell offsets need this to keep
// all products within 128 bits.
const maxExtent = 1 << 31

// maxCoordinate bounds the coordinates of the cells of closed shapes, so
// that the cells and vertices derived from them remain representable.
const maxCoordinate = 1 << 61

// checkExtent returns ErrInvalidArgument if r is too large for a closed
// shape, or if r reaches too close to the limits of int.
func checkExtent(r grid.Rect) error {
	lo, hi := r.Min(), r.Max()
	if lo.X < -maxCoordinate || lo.Y < -maxCoordinate ||
		hi.X > maxCoordinate || hi.Y > maxCoordinate {
		return fmt.Errorf("rectangle %v is out of range: %w", r, ErrInvalidArgument)
	}
	// The differences are exact, since max ≥ min.
	dx := uint64(hi.X) - uint64(lo.X)
	dy := uint64(hi.Y) - uint64(lo.Y)
	if dx >= maxExtent || dy >= maxExtent {
		return fmt.Errorf("rectangle %v is too large: %w", r, ErrInvalidArgument)
	}
	return nil
}

// symmetricSpans builds the shape inside r consisting of all cells for
// which inside reports true, plus the central column(s) and row(s) of r.
//
// The arguments of inside are the absolute offsets of a cell centre from
// the centre of r, doubled so that they are integers.  The predicate must be
// monotone: if it holds for (dx, dy), it must hold for all smaller
// offsets.  The resulting shape is mirror symmetric about both axes of r,
// and every row and column of r contains at least one cell.
func symmetricSpans(r grid.Rect, inside func(dx, dy uint64) bool) *rowSpans {
	x0, y0 := r.Min().X, r.Min().Y
	x1, y1 := r.Max().X, r.Max().Y
	w, h := r.Width(), r.Height()

	// offsets with these values belong to the central cross
	crossX := uint64(1 - w%2)
	crossY := uint64(1 - h%2)

	xc := x0 + w/2 // the central column, or the right one of two
	b := newSpanBuilder(y0, y1)
	for y := range r.YRange().Values() {
		dy := uint64(abs((y - y0) - (y1 - y)))
		i := sort.Search(x1-xc+1, func(i int) bool {
			x := xc + i
			dx := uint64(abs((x - x0) - (x1 - x)))
			if dx <= crossX || dy <= crossY {
				return false
			}
			return !inside(dx, dy)
		})
		hi := xc + i - 1
		b.set(y, x0+(x1-hi), hi)
	}
	return b.build()
}

// spansFromLines builds the convex shape whose rows run from the leftmost
// to the rightmost cell of the given lines.  The lines must touch every
// row between their lowest and highest cell.
func spansFromLines(lines ...Line) *rowSpans {
	bounds := lines[0].Bounds()
	for _, l := range lines[1:] {
		bounds = bounds.Union(l.Bounds())
	}
	b := newSpanBuilder(bounds.Min().Y, bounds.Max().Y)
	for _, l := range lines {
		b.addAll(l.Cells())
	}
	return b.build()
}

// row returns the run of row y, or ok == false if y is outside the shape.
func (s *rowSpans) row(y int) (run, bool) {
	i := y - s.y0
	if i < 0 || i >= len(s.rows) {
		return run{}, false
	}
	return s.rows[i], true
}

func (s *rowSpans) filledContains(p grid.Vec) bool {
	r, ok := s.row(p.Y)
	return ok && r.lo <= p.X && p.X <= r.hi
}

// outlineRuns appends to buf the runs of row y which contain cells with
// a 4-neighbour outside the shape.  The result has at most two runs.
func (s *rowSpans) outlineRuns(y int, buf []run) []run {
	r, ok := s.row(y)
	if !ok {
		return buf
	}

	// Cells strictly inside the run are interior if the rows above and
	// below both cover them.
	c, d := r.lo+1, r.hi-1
	if up, ok := s.row(y + 1); ok {
		c, d = max(c, up.lo), min(d, up.hi)
	} else {
		d = c - 1
	}
	if down, ok := s.row(y - 1); ok {
		c, d = max(c, down.lo), min(d, down.hi)
	} else {
		d = c - 1
	}

	if c > d {
		return append(buf, r)
	}
	buf = append(buf, run{lo: r.lo, hi: c - 1})
	return append(buf, run{lo: d + 1, hi: r.hi})
}

// closedShape implements the Shape methods for shapes described by
// a rowSpans, in filled or outline form.
type closedShape struct {
	spans  *rowSpans
	filled bool
}

// Filled reports whether the shape includes its interior.
func (s closedShape) Filled() bool { return s.filled }

// Bounds returns the smallest rectangle containing the shape.
func (s closedShape) Bounds() grid.Rect { return s.spans.bounds }

// Count returns the number of cells of the shape.
func (s closedShape) Count() int {
	if s.filled {
		return s.spans.filledCount
	}
	return s.spans.outlineCount
}

// Contains reports whether p is a cell of the shape.  Outline cells are the
// cells of the filled shape which have a 4-neighbour outside the filled
// shape.
func (s closedShape) Contains(p grid.Vec) bool {
	r, ok := s.spans.row(p.Y)
	if !ok || p.X < r.lo || p.X > r.hi {
		return false
	}
	if s.filled || p.X == r.lo || p.X == r.hi {
		return true
	}
	return !s.spans.filledContains(grid.V(p.X, p.Y+1)) ||
		!s.spans.filledContains(grid.V(p.X, p.Y-1))
}

// RowSpan returns the leftmost and rightmost cell of the filled shape in
// row y.  For the outline, these are the leftmost and rightmost cells as
// well.  RowSpan panics if y is outside the bounding rectangle.
func (s closedShape) RowSpan(y int) (xMin, xMax int) {
	r, ok := s.spans.row(y)
	if !ok {
		panic(fmt.Sprintf("pixel: row %d outside of shape rows %v", y, s.spans.bounds.YRange()))
	}
	return r.lo, r.hi
}

// ColumnSpan returns the lowest and highest cell of the filled shape in
// column x.  For the outline, these are the lowest and highest cells as
// well.  ColumnSpan panics if x is outside the bounding rectangle.
func (s closedShape) ColumnSpan(x int) (yMin, yMax int) {
	if !s.spans.bounds.XRange().Contains(x) {
		panic(fmt.Sprintf("pixel: column %d outside of shape columns %v", x, s.spans.bounds.XRange()))
	}
	covers := func(r run) bool { return r.lo <= x && x <= r.hi }
	lo, hi := 0, len(s.spans.rows)-1
	for !covers(s.spans.rows[lo]) {
		lo++
	}
	for !covers(s.spans.rows[hi]) {
		hi--
	}
	return s.spans.y0 + lo, s.spans.y0 + hi
}

// runs appends the runs of row y to buf.
func (s closedShape) runs(y int, buf []run) []run {
	if s.filled {
		if r, ok := s.spans.row(y); ok {
			buf = append(buf, r)
		}
		return buf
	}
	return s.spans.outlineRuns(y, buf)
}

// Cells iterates over the cells row by row, from bottom to top and from
// left to right.
func (s closedShape) Cells() iter.Seq[grid.Vec] {
	return func(yield func(grid.Vec) bool) {
		var buf [2]run
		for y := range s.spans.bounds.YRange().Values() {
			for _, r := range s.runs(y, buf[:0]) {
				for x := r.lo; x <= r.hi; x++ {
					if !yield(grid.V(x, y)) {
						return
					}
				}
			}
		}
	}
}
