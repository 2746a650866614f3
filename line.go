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
	"math/bits"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel/grid"
)

// Line is a pixel-perfect line segment between two cells.
//
// The line has exactly one cell per step along its dominant axis, so that
// two consecutive cells never form an L-shaped corner.  The dominant axis is
// x if |Δx| ≥ |Δy|, and y otherwise.
//
// The cells are obtained by sampling a continuous line at the centres of
// the dominant-axis steps.  This continuous line does not join the cell
// centres; it joins the outer corners of the start and end cells.  As a
// result, whenever |Δx|+1 is a multiple of |Δy|+1 (or vice versa), the line
// consists of equally long blocks.  For example, the line from (0, 0) to
// (5, 2) consists of three horizontal blocks of two cells each.
//
// When the continuous line passes exactly through a cell corner, the cell
// closer to the start is chosen in the first half of the line, and the cell
// closer to the end is chosen in the second half.  This makes the cell
// sequence of the reversed line equal to the reversed cell sequence,
// except for the middle cell of some lines with an odd number of cells.
//
// Lines must be created using [NewLine].  The zero Line is the single cell
// at the origin.
type Line struct {
	start, end grid.Vec

	major, minor int // |Δ| along the dominant and along the other axis

	// stepMajor and stepMinor give the direction of travel (+1 or -1)
	// along the dominant and the other axis.
	stepMajor, stepMinor int

	horizontal bool // whether x is the dominant axis
}

// maxLineDelta is the largest supported distance between the end points
// of a line, along either axis.
const maxLineDelta = 1<<62 - 1

// NewLine returns the line from start to end.  start and end may be equal.
//
// The coordinate differences |Δx| and |Δy| must not exceed 2^62-1;
// NewLine panics otherwise.
func NewLine(start, end grid.Vec) Line {
	dx, sx := delta(start.X, end.X)
	dy, sy := delta(start.Y, end.Y)
	if dx > maxLineDelta || dy > maxLineDelta {
		panic(fmt.Sprintf("pixel: line %v-%v is too long", start, end))
	}
	l := Line{
		start:      start,
		end:        end,
		horizontal: dx >= dy,
	}
	if l.horizontal {
		l.major, l.minor = int(dx), int(dy)
		l.stepMajor, l.stepMinor = sx, sy
	} else {
		l.major, l.minor = int(dy), int(dx)
		l.stepMajor, l.stepMinor = sy, sx
	}
	return l
}

// delta returns |b-a|, and -1 if b < a or +1 otherwise.  The distance is
// exact for all arguments.
func delta(a, b int) (uint64, int) {
	if b < a {
		return uint64(a) - uint64(b), -1
	}
	return uint64(b) - uint64(a), 1
}

func (l Line) String() string {
	return fmt.Sprintf("line %v-%v", l.start, l.end)
}

// Start returns the first cell of the line.
func (l Line) Start() grid.Vec { return l.start }

// End returns the last cell of the line.
func (l Line) End() grid.Vec { return l.end }

// Count returns the number of cells, max(|Δx|, |Δy|) + 1.
func (l Line) Count() int { return l.major + 1 }

// IsHorizontalDominant reports whether x is the dominant axis, i.e. whether
// the gradient of the line has magnitude at most 1.
func (l Line) IsHorizontalDominant() bool { return l.horizontal }

// Bounds returns the rectangle spanned by the two end points.
func (l Line) Bounds() grid.Rect {
	return grid.RectFromCorners(l.start, l.end)
}

// At returns the i-th cell of the line.  At(0) is the start and
// At(Count()-1) is the end.  At panics if i is out of range.
func (l Line) At(i int) grid.Vec {
	if i < 0 || i > l.major {
		panic(fmt.Sprintf("pixel: line index %d out of range [0, %d)", i, l.major+1))
	}
	switch i {
	case 0:
		return l.start
	case l.major:
		return l.end
	}
	return l.cell(i, l.minorOffset(i))
}

// minorOffset returns the distance along the minor axis between the start
// and the i-th cell.
//
// The continuous line runs from (0, 0) to (major+1, minor+1), relative to
// the outer corner of the start cell.  At the centre i+1/2 of the i-th step
// it reaches (2i+1)(minor+1) / (2(major+1)).  The computation is exact,
// using 128-bit intermediate values.
func (l Line) minorOffset(i int) int {
	hi, lo := bits.Mul64(uint64(2*i+1), uint64(l.minor+1))
	q, r := bits.Div64(hi, lo, uint64(2*(l.major+1)))
	if r == 0 && 2*i < l.major {
		// exactly on a cell boundary in the first half: stay on the
		// side of the start cell
		q--
	}
	return int(q)
}

func (l Line) cell(i, offset int) grid.Vec {
	a := l.stepMajor * i
	b := l.stepMinor * offset
	if l.horizontal {
		return grid.Vec{X: l.start.X + a, Y: l.start.Y + b}
	}
	return grid.Vec{X: l.start.X + b, Y: l.start.Y + a}
}

// IndexOf returns the index of p within the line.  If p is not on the line,
// the second return value is false.
func (l Line) IndexOf(p grid.Vec) (int, bool) {
	var d int
	if l.horizontal {
		d = p.X - l.start.X
	} else {
		d = p.Y - l.start.Y
	}
	i := d * l.stepMajor
	if i < 0 || i > l.major || l.At(i) != p {
		return -1, false
	}
	return i, true
}

// Contains reports whether p is a cell of the line.
func (l Line) Contains(p grid.Vec) bool {
	_, ok := l.IndexOf(p)
	return ok
}

// Cells iterates over the cells from start to end.
func (l Line) Cells() iter.Seq[grid.Vec] {
	return func(yield func(grid.Vec) bool) {
		for i := 0; i <= l.major; i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// All iterates over the index/cell pairs of the line.
func (l Line) All() iter.Seq2[int, grid.Vec] {
	return func(yield func(int, grid.Vec) bool) {
		for i := 0; i <= l.major; i++ {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// Imaginary returns the end points of the continuous line which is sampled
// to find the cells.  These are the outer corners of the start and end
// cells.
func (l Line) Imaginary() (from, to vec.Vec2) {
	var sx, sy int
	if l.horizontal {
		sx, sy = l.stepMajor, l.stepMinor
	} else {
		sx, sy = l.stepMinor, l.stepMajor
	}
	from = vec.Vec2{X: outerCorner(l.start.X, -sx), Y: outerCorner(l.start.Y, -sy)}
	to = vec.Vec2{X: outerCorner(l.end.X, sx), Y: outerCorner(l.end.Y, sy)}
	return from, to
}

// outerCorner returns the boundary of cell coordinate x which faces in
// direction s.
func outerCorner(x, s int) float64 {
	if s > 0 {
		return float64(x) + 1
	}
	return float64(x)
}

// RunLengths returns the lengths of the blocks of the line: the maximal
// groups of consecutive cells which share the same minor-axis coordinate.
func (l Line) RunLengths() []int {
	var runs []int
	run := 0
	prev := 0
	for i := 0; i <= l.major; i++ {
		var off int
		switch i {
		case 0:
			off = 0
		case l.major:
			off = l.minor
		default:
			off = l.minorOffset(i)
		}
		if i > 0 && off != prev {
			runs = append(runs, run)
			run = 0
		}
		prev = off
		run++
	}
	return append(runs, run)
}

// IsPerfect reports whether all blocks of the line have the same length.
func (l Line) IsPerfect() bool {
	runs := l.RunLengths()
	for _, r := range runs[1:] {
		if r != runs[0] {
			return false
		}
	}
	return true
}

// Reverse returns the line from End to Start.
func (l Line) Reverse() Line {
	return NewLine(l.end, l.start)
}

// Slice returns the cells with indices lo ≤ i < hi.
// Slice panics unless 0 ≤ lo < hi ≤ Count().
func (l Line) Slice(lo, hi int) LineSlice {
	if lo < 0 || hi > l.major+1 || lo >= hi {
		panic(fmt.Sprintf("pixel: line slice [%d:%d] out of range [0, %d)", lo, hi, l.major+1))
	}
	return LineSlice{line: l, lo: lo, hi: hi}
}

// LineSlice is a contiguous, non-empty part of a [Line].
type LineSlice struct {
	line   Line
	lo, hi int
}

// Line returns the line the slice was taken from.
func (s LineSlice) Line() Line { return s.line }

func (s LineSlice) String() string {
	return fmt.Sprintf("%v[%d:%d]", s.line, s.lo, s.hi)
}

// Count returns the number of cells in the slice.
func (s LineSlice) Count() int { return s.hi - s.lo }

// At returns the i-th cell of the slice.  It panics if i is out of range.
func (s LineSlice) At(i int) grid.Vec {
	if i < 0 || i >= s.hi-s.lo {
		panic(fmt.Sprintf("pixel: line slice index %d out of range [0, %d)", i, s.hi-s.lo))
	}
	return s.line.At(s.lo + i)
}

// Bounds returns the smallest rectangle containing the slice.
func (s LineSlice) Bounds() grid.Rect {
	return grid.RectFromCorners(s.line.At(s.lo), s.line.At(s.hi-1))
}

// Contains reports whether p is one of the cells of the slice.
func (s LineSlice) Contains(p grid.Vec) bool {
	i, ok := s.line.IndexOf(p)
	return ok && s.lo <= i && i < s.hi
}

// Cells iterates over the cells of the slice, in line order.
func (s LineSlice) Cells() iter.Seq[grid.Vec] {
	return func(yield func(grid.Vec) bool) {
		for i := s.lo; i < s.hi; i++ {
			if !yield(s.line.At(i)) {
				return
			}
		}
	}
}

// Slice returns a sub-slice, using indices relative to s.
func (s LineSlice) Slice(lo, hi int) LineSlice {
	if lo < 0 || hi > s.hi-s.lo || lo >= hi {
		panic(fmt.Sprintf("pixel: line slice [%d:%d] out of range [0, %d)", lo, hi, s.hi-s.lo))
	}
	return LineSlice{line: s.line, lo: s.lo + lo, hi: s.lo + hi}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
