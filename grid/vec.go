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

// Package grid provides the integer value types used to address cells of
// a pixel grid: vectors, ranges and rectangles.
//
// The x axis points right and the y axis points up.  A cell (x, y) covers
// the unit square [x, x+1] × [y, y+1]; its centre is (x+0.5, y+0.5).
package grid

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Vec is a cell position, or a displacement between cells.
type Vec struct {
	X, Y int
}

// V is a shorthand for Vec{X: x, Y: y}.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Frequently used vectors.
var (
	Zero  = Vec{}
	Right = Vec{X: 1}
	Left  = Vec{X: -1}
	Up    = Vec{Y: 1}
	Down  = Vec{Y: -1}
)

// Neighbours4 lists the displacements to the four orthogonal neighbours.
var Neighbours4 = [4]Vec{Right, Up, Left, Down}

func (v Vec) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns k·v.
func (v Vec) Mul(k int) Vec {
	return Vec{X: k * v.X, Y: k * v.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Abs applies the absolute value to both components.
func (v Vec) Abs() Vec {
	return Vec{X: abs(v.X), Y: abs(v.Y)}
}

// Sign applies the sign function (-1, 0 or 1) to both components.
func (v Vec) Sign() Vec {
	return Vec{X: sign(v.X), Y: sign(v.Y)}
}

// Min returns the componentwise minimum of v and w.
func (v Vec) Min(w Vec) Vec {
	return Vec{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of v and w.
func (v Vec) Max(w Vec) Vec {
	return Vec{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// LessEq reports whether v ≤ w in both components.
// This is a partial order: V(0, 1) and V(1, 0) are not comparable.
func (v Vec) LessEq(w Vec) bool {
	return v.X <= w.X && v.Y <= w.Y
}

// Compare orders vectors row by row: first by Y, then by X.
// The result is -1, 0 or +1, suitable for [slices.SortFunc].
func (v Vec) Compare(w Vec) int {
	switch {
	case v.Y < w.Y:
		return -1
	case v.Y > w.Y:
		return 1
	case v.X < w.X:
		return -1
	case v.X > w.X:
		return 1
	}
	return 0
}

// ChebyshevNorm returns max(|x|, |y|).
func (v Vec) ChebyshevNorm() int {
	return max(abs(v.X), abs(v.Y))
}

// Vec2 returns the centre of the cell v in continuous coordinates.
func (v Vec) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(v.X) + 0.5, Y: float64(v.Y) + 0.5}
}

// Quadrant is a rotation by a multiple of 90 degrees, anticlockwise.
type Quadrant int

// These are the four quadrantal rotations.
const (
	Rot0 Quadrant = iota
	Rot90
	Rot180
	Rot270
)

// Rotate rotates v about the origin.
func (v Vec) Rotate(q Quadrant) Vec {
	switch ((q % 4) + 4) % 4 {
	case Rot0:
		return v
	case Rot90:
		return Vec{X: -v.Y, Y: v.X}
	case Rot180:
		return Vec{X: -v.X, Y: -v.Y}
	case Rot270:
		return Vec{X: v.Y, Y: -v.X}
	}
	panic("unreachable")
}

// Axis is one of the four symmetry axes of the grid through the origin.
type Axis int

// These are the reflection axes.
const (
	// Vertical is the y axis; reflecting negates x.
	Vertical Axis = iota
	// Horizontal is the x axis; reflecting negates y.
	Horizontal
	// Diagonal is the line y = x.
	Diagonal
	// AntiDiagonal is the line y = -x.
	AntiDiagonal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Flip reflects v across the axis a.
func (v Vec) Flip(a Axis) Vec {
	switch a {
	case Vertical:
		return Vec{X: -v.X, Y: v.Y}
	case Horizontal:
		return Vec{X: v.X, Y: -v.Y}
	case Diagonal:
		return Vec{X: v.Y, Y: v.X}
	case AntiDiagonal:
		return Vec{X: -v.Y, Y: -v.X}
	}
	panic(fmt.Sprintf("grid: invalid axis %d", int(a)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
