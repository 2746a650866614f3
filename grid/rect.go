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

package grid

import (
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rect is a non-empty, axis-aligned rectangle of cells.
//
// Both corners are inclusive, so the smallest Rect is a single cell.  There
// is no empty Rect; operations which could produce an empty result report
// this separately.
type Rect struct {
	min, max Vec
}

// RectFromCorners returns the smallest rectangle containing the cells a
// and b.  The corners can be given in any order.
func RectFromCorners(a, b Vec) Rect {
	return Rect{min: a.Min(b), max: a.Max(b)}
}

// RectFromRanges returns the rectangle xs × ys.
// If either range is empty, ErrEmpty is returned.
func RectFromRanges(xs, ys Range) (Rect, error) {
	if xs.IsEmpty() || ys.IsEmpty() {
		return Rect{}, fmt.Errorf("rectangle %v × %v: %w", xs, ys, ErrEmpty)
	}
	return Rect{min: Vec{X: xs.lo, Y: ys.lo}, max: Vec{X: xs.hi, Y: ys.hi}}, nil
}

// RectFromArea returns the cells which lie completely inside the
// continuous rectangle a.  If no cell fits, ErrEmpty is returned.
func RectFromArea(a rect.Rect) (Rect, error) {
	lo := Vec{X: int(math.Ceil(a.LLx)), Y: int(math.Ceil(a.LLy))}
	hi := Vec{X: int(math.Floor(a.URx)) - 1, Y: int(math.Floor(a.URy)) - 1}
	if !lo.LessEq(hi) {
		return Rect{}, fmt.Errorf("area %v: %w", a, ErrEmpty)
	}
	return Rect{min: lo, max: hi}, nil
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

// Min returns the bottom-left cell.
func (r Rect) Min() Vec { return r.min }

// Max returns the top-right cell.
func (r Rect) Max() Vec { return r.max }

// Width returns the number of columns.
func (r Rect) Width() int { return r.max.X - r.min.X + 1 }

// Height returns the number of rows.
func (r Rect) Height() int { return r.max.Y - r.min.Y + 1 }

// Count returns the number of cells.
func (r Rect) Count() int { return r.Width() * r.Height() }

// XRange returns the range of column indices.
func (r Rect) XRange() Range { return Closed(r.min.X, r.max.X) }

// YRange returns the range of row indices.
func (r Rect) YRange() Range { return Closed(r.min.Y, r.max.Y) }

// Center2 returns twice the centre of r.  Doubling keeps the centre of
// rectangles with an even side length on the integer grid.
func (r Rect) Center2() Vec {
	return r.min.Add(r.max)
}

// Area returns the region covered by the cells of r in continuous
// coordinates.
func (r Rect) Area() rect.Rect {
	return rect.Rect{
		LLx: float64(r.min.X),
		LLy: float64(r.min.Y),
		URx: float64(r.max.X + 1),
		URy: float64(r.max.Y + 1),
	}
}

// Contains reports whether the cell p lies in r.
func (r Rect) Contains(p Vec) bool {
	return r.min.LessEq(p) && p.LessEq(r.max)
}

// ContainsRect reports whether every cell of s lies in r.
func (r Rect) ContainsRect(s Rect) bool {
	return r.min.LessEq(s.min) && s.max.LessEq(r.max)
}

// Intersect returns the cells common to r and s.  The second return value
// is false if there are no common cells.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	lo := r.min.Max(s.min)
	hi := r.max.Min(s.max)
	if !lo.LessEq(hi) {
		return Rect{}, false
	}
	return Rect{min: lo, max: hi}, true
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{min: r.min.Min(s.min), max: r.max.Max(s.max)}
}

// Include returns the smallest rectangle containing r and the cell p.
func (r Rect) Include(p Vec) Rect {
	return Rect{min: r.min.Min(p), max: r.max.Max(p)}
}

// Clamp returns the cell of r closest to p.
func (r Rect) Clamp(p Vec) Vec {
	return p.Max(r.min).Min(r.max)
}

// Translate shifts r by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{min: r.min.Add(d), max: r.max.Add(d)}
}

// Pad grows r by n cells on every side.
// It panics if a negative n would make r empty.
func (r Rect) Pad(n int) Rect {
	d := Vec{X: n, Y: n}
	res := Rect{min: r.min.Sub(d), max: r.max.Add(d)}
	if !res.min.LessEq(res.max) {
		panic(fmt.Sprintf("grid: padding %v by %d leaves no cells", r, n))
	}
	return res
}

// Cells iterates over the cells of r row by row, starting at the bottom.
func (r Rect) Cells() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for y := r.min.Y; y <= r.max.Y; y++ {
			for x := r.min.X; x <= r.max.X; x++ {
				if !yield(Vec{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
