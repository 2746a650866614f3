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
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrEmpty is returned when a construction requires at least one cell
// but the given extent contains none.
var ErrEmpty = errors.New("grid: empty extent")

// Range is a set of consecutive integers.
//
// Each of the two boundaries can be inclusive or exclusive.  Internally a
// Range is stored as the closed interval [Min, Max]; all empty ranges are
// normalised to the zero value, so that == compares ranges as sets.
type Range struct {
	lo, hi   int
	nonEmpty bool
}

// NewRange returns the integers between the boundaries a and b.  The
// boundaries may be given in either order; aIncl and bIncl specify whether
// the respective boundary is part of the range.
func NewRange(a int, aIncl bool, b int, bIncl bool) Range {
	if a > b {
		a, b = b, a
		aIncl, bIncl = bIncl, aIncl
	}
	if !aIncl {
		if a == math.MaxInt {
			return Range{}
		}
		a++
	}
	if !bIncl {
		if b == math.MinInt {
			return Range{}
		}
		b--
	}
	if a > b {
		return Range{}
	}
	return Range{lo: a, hi: b, nonEmpty: true}
}

// Closed returns [a, b].
func Closed(a, b int) Range {
	return NewRange(a, true, b, true)
}

// Open returns (a, b).
func Open(a, b int) Range {
	return NewRange(a, false, b, false)
}

// ClosedOpen returns [a, b).
func ClosedOpen(a, b int) Range {
	return NewRange(a, true, b, false)
}

// OpenClosed returns (a, b].
func OpenClosed(a, b int) Range {
	return NewRange(a, false, b, true)
}

// Single returns the range containing only x.
func Single(x int) Range {
	return Range{lo: x, hi: x, nonEmpty: true}
}

func (r Range) String() string {
	if !r.nonEmpty {
		return "∅"
	}
	return fmt.Sprintf("[%d, %d]", r.lo, r.hi)
}

// IsEmpty reports whether r contains no integers.
func (r Range) IsEmpty() bool {
	return !r.nonEmpty
}

// Min returns the smallest element of r.  It panics if r is empty.
func (r Range) Min() int {
	if !r.nonEmpty {
		panic("grid: Min of empty range")
	}
	return r.lo
}

// Max returns the largest element of r.  It panics if r is empty.
func (r Range) Max() int {
	if !r.nonEmpty {
		panic("grid: Max of empty range")
	}
	return r.hi
}

// Count returns the number of integers in r.
//
// The count is computed in 64-bit unsigned arithmetic, so that ranges wider
// than math.MaxInt are reported correctly.  The one range that does not fit,
// the range of all ints, wraps around to 0.
func (r Range) Count() uint64 {
	if !r.nonEmpty {
		return 0
	}
	return uint64(r.hi) - uint64(r.lo) + 1
}

// Contains reports whether x is an element of r.
func (r Range) Contains(x int) bool {
	return r.nonEmpty && r.lo <= x && x <= r.hi
}

// IsSubset reports whether every element of r is also in s.
func (r Range) IsSubset(s Range) bool {
	if !r.nonEmpty {
		return true
	}
	return s.nonEmpty && s.lo <= r.lo && r.hi <= s.hi
}

// Intersect returns the elements common to r and s.
func (r Range) Intersect(s Range) Range {
	if !r.nonEmpty || !s.nonEmpty {
		return Range{}
	}
	lo := max(r.lo, s.lo)
	hi := min(r.hi, s.hi)
	if lo > hi {
		return Range{}
	}
	return Range{lo: lo, hi: hi, nonEmpty: true}
}

// Hull returns the smallest range containing both r and s.
func (r Range) Hull(s Range) Range {
	if !r.nonEmpty {
		return s
	}
	if !s.nonEmpty {
		return r
	}
	return Range{lo: min(r.lo, s.lo), hi: max(r.hi, s.hi), nonEmpty: true}
}

// Shift translates r by d.
func (r Range) Shift(d int) Range {
	if !r.nonEmpty {
		return r
	}
	return Range{lo: r.lo + d, hi: r.hi + d, nonEmpty: true}
}

// Clamp returns the element of r closest to x.  It panics if r is empty.
func (r Range) Clamp(x int) int {
	if !r.nonEmpty {
		panic("grid: Clamp to empty range")
	}
	return min(max(x, r.lo), r.hi)
}

// Values iterates over the elements of r in increasing order.
func (r Range) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		if !r.nonEmpty {
			return
		}
		for x := r.lo; ; x++ {
			if !yield(x) || x == r.hi {
				return
			}
		}
	}
}
