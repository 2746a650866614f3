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

// Package pixel computes which cells of an integer grid belong to lines,
// polylines, ellipses, diamonds, right triangles and isometric shapes.
//
// All shapes are values.  They never touch pixel storage; instead they
// describe a finite set of cells which a caller can test, count and
// enumerate, and which a [Rasteriser] can hand to a pixel buffer row by row.
package pixel

//go:generate go run ./testcases/export

import (
	"errors"
	"iter"
	"slices"

	"seehuhn.de/go/pixel/grid"
)

// Shape is a finite, non-empty set of grid cells.
type Shape interface {
	// Bounds returns the smallest rectangle containing all cells.
	Bounds() grid.Rect

	// Count returns the number of distinct cells.
	Count() int

	// Contains reports whether p is one of the cells.
	// This never enumerates the shape.
	Contains(p grid.Vec) bool

	// Cells iterates over the cells.  Every cell is visited exactly once,
	// in an order which only depends on the shape's parameters.
	Cells() iter.Seq[grid.Vec]
}

// Collect returns the cells of s, in enumeration order.
func Collect(s Shape) []grid.Vec {
	res := make([]grid.Vec, 0, s.Count())
	return slices.AppendSeq(res, s.Cells())
}

// Errors returned when constructing or querying shapes.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("unsupported shape configuration")
	ErrEmptyPath       = errors.New("path has no lines")
	ErrDisconnected    = errors.New("path lines are not connected")
	ErrNotLoop         = errors.New("path is not a loop")
	ErrOnBoundary      = errors.New("point lies on the path")
)
