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
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/pixel/grid"
)

// testRects returns a few hand-picked rectangles and 1000 random ones.
func testRects() []grid.Rect {
	res := []grid.Rect{
		grid.RectFromCorners(grid.V(0, 0), grid.V(0, 0)),
		grid.RectFromCorners(grid.V(0, 0), grid.V(1, 0)),
		grid.RectFromCorners(grid.V(0, 0), grid.V(0, 1)),
		grid.RectFromCorners(grid.V(0, 0), grid.V(2, 2)),
		grid.RectFromCorners(grid.V(0, 0), grid.V(3, 3)),
		grid.RectFromCorners(grid.V(0, 0), grid.V(4, 4)),
		grid.RectFromCorners(grid.V(-5, 2), grid.V(10, 3)),
		grid.RectFromCorners(grid.V(1, 1), grid.V(2, 20)),
		grid.RectFromCorners(grid.V(-20, -10), grid.V(20, 10)),
	}
	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		p := grid.V(rng.IntN(200)-100, rng.IntN(200)-100)
		d := grid.V(rng.IntN(40), rng.IntN(40))
		res = append(res, grid.RectFromCorners(p, p.Add(d)))
	}
	return res
}

// spanShape is implemented by all shapes built on row spans.
type spanShape interface {
	Shape
	RowSpan(y int) (xMin, xMax int)
	ColumnSpan(x int) (yMin, yMax int)
}

// checkClosed runs the common checks for a closed shape family: the Shape
// contract for both forms, the outline being the border of the filled
// shape, tight bounds touching all sides of r, and row and column spans
// matching the cells.
func checkClosed(t *testing.T, name string, filled, outline spanShape, r grid.Rect) (map[grid.Vec]bool, map[grid.Vec]bool) {
	t.Helper()
	fSet := checkShape(t, filled)
	oSet := checkShape(t, outline)
	checkBorder(t, name, fSet, oSet)
	if filled.Bounds() != r {
		t.Errorf("%s: bounds %v, want %v", name, filled.Bounds(), r)
	}
	if outline.Bounds() != filled.Bounds() {
		t.Errorf("%s: outline bounds %v, filled bounds %v", name, outline.Bounds(), filled.Bounds())
	}
	for y := range r.YRange().Values() {
		lo, hi := filled.RowSpan(y)
		for x := lo; x <= hi; x++ {
			if !fSet[grid.V(x, y)] {
				t.Fatalf("%s: row %d span %d..%d misses %v", name, y, lo, hi, grid.V(x, y))
			}
		}
		if fSet[grid.V(lo-1, y)] || fSet[grid.V(hi+1, y)] {
			t.Fatalf("%s: row %d span %d..%d is too short", name, y, lo, hi)
		}
	}
	for x := range r.XRange().Values() {
		lo, hi := filled.ColumnSpan(x)
		if l2, h2 := outline.ColumnSpan(x); l2 != lo || h2 != hi {
			t.Fatalf("%s: column %d spans %d..%d and %d..%d", name, x, lo, hi, l2, h2)
		}
		if !oSet[grid.V(x, lo)] || !oSet[grid.V(x, hi)] {
			t.Fatalf("%s: column %d span %d..%d does not end at outline cells", name, x, lo, hi)
		}
		for y := range r.YRange().Values() {
			if (y < lo || y > hi) && fSet[grid.V(x, y)] {
				t.Fatalf("%s: column %d span %d..%d misses %v", name, x, lo, hi, grid.V(x, y))
			}
		}
	}
	return fSet, oSet
}

func mustEllipse(t *testing.T, r grid.Rect, filled bool) Ellipse {
	t.Helper()
	e, err := NewEllipse(r.Min(), r.Max(), filled)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEllipse(t *testing.T) {
	for _, r := range testRects() {
		name := fmt.Sprintf("ellipse %v", r)
		e := mustEllipse(t, r, true)
		fSet, oSet := checkClosed(t, name, e, e.WithFilled(false), r)
		checkSymmetric(t, name, fSet, r)
		checkSymmetric(t, name+" outline", oSet, r)
		if t.Failed() {
			return
		}
	}
}

func TestEllipsePictures(t *testing.T) {
	e := mustEllipse(t, grid.RectFromCorners(grid.V(0, 0), grid.V(2, 2)), true)
	checkPicture(t, e, `
.#.
###
.#.
`)
	checkPicture(t, e.WithFilled(false), `
.#.
#.#
.#.
`)

	e = mustEllipse(t, grid.RectFromCorners(grid.V(0, 0), grid.V(4, 4)), true)
	checkPicture(t, e, `
.###.
#####
#####
#####
.###.
`)
	checkPicture(t, e.WithFilled(false), `
.###.
#...#
#...#
#...#
.###.
`)

	// the central columns reach the top and bottom rows
	e = mustEllipse(t, grid.RectFromCorners(grid.V(0, 0), grid.V(3, 11)), true)
	for _, y := range []int{0, 11} {
		if lo, hi := e.RowSpan(y); lo > 1 || hi < 2 {
			t.Errorf("row %d: span %d..%d", y, lo, hi)
		}
	}
}

// TestCircleSymmetry checks that circles are invariant under rotation by 90
// degrees and under reflection in the diagonals.
func TestCircleSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		p := grid.V(rng.IntN(100)-50, rng.IntN(100)-50)
		d := rng.IntN(50)
		r := grid.RectFromCorners(p, p.Add(grid.V(d, d)))
		c := r.Center2()
		for _, filled := range []bool{true, false} {
			e := mustEllipse(t, r, filled)
			set := cellSet(t, e)
			for q := range set {
				off := q.Mul(2).Sub(c)
				for _, img := range []grid.Vec{
					off.Rotate(grid.Rot90),
					off.Flip(grid.Diagonal),
					off.Flip(grid.AntiDiagonal),
				} {
					q2 := img.Add(c)
					q2 = grid.V(q2.X/2, q2.Y/2)
					if !set[q2] {
						t.Fatalf("%v: %v present but %v missing", e, q, q2)
					}
				}
			}
		}
	}
}

func TestEllipseTooLarge(t *testing.T) {
	_, err := NewEllipse(grid.V(math.MinInt, 0), grid.V(math.MaxInt, 0), true)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v", err)
	}
	_, err = NewDiamond(grid.V(0, 0), grid.V(0, 1<<31), true)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v", err)
	}
}

func TestClosedShapesOutOfRange(t *testing.T) {
	bad := [][2]grid.Vec{
		{grid.V(0, 0), grid.V(1<<31, 5)},
		{grid.V(0, -1<<30), grid.V(5, 1<<30)},
		{grid.V(math.MaxInt-4, 0), grid.V(math.MaxInt, 4)},
		{grid.V(0, math.MinInt), grid.V(4, math.MinInt+4)},
		{grid.V(-1<<62, 0), grid.V(1<<62, 0)},
	}
	for _, c := range bad {
		_, err1 := NewEllipse(c[0], c[1], true)
		_, err2 := NewDiamond(c[0], c[1], true)
		_, err3 := NewRightTriangle(c[0], c[1], true, TopLeft)
		for i, err := range []error{err1, err2, err3} {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%v, shape %d: err = %v", c, i, err)
			}
		}
	}

	// corners at the edge of the coordinate range are fine
	far := grid.V(maxCoordinate, -maxCoordinate)
	tri, err := NewRightTriangle(far, far.Sub(grid.V(6, -4)), false, BottomRight)
	if err != nil {
		t.Fatal(err)
	}
	checkShape(t, tri)
	e := mustEllipse(t, grid.RectFromCorners(far, far.Sub(grid.V(9, -9))), false)
	checkShape(t, e)
}

func TestEllipseContainsExact(t *testing.T) {
	// values near the limit, where 64 bit products would overflow
	const big = 1<<32 - 1
	if !ellipseContains(0, big, big, big) {
		t.Error("top of circle is outside")
	}
	if ellipseContains(big, big, big, big) {
		t.Error("corner of circle is inside")
	}
	if !ellipseContains(3, 4, 5, 5) || ellipseContains(4, 4, 5, 5) {
		t.Error("small circle is wrong")
	}
}

func TestDiamond(t *testing.T) {
	for _, r := range testRects() {
		name := fmt.Sprintf("diamond %v", r)
		d, err := NewDiamond(r.Min(), r.Max(), true)
		if err != nil {
			t.Fatal(err)
		}
		o, err := d.WithFilled(false)
		if r.Width()%2 != r.Height()%2 {
			if !errors.Is(err, ErrUnsupported) {
				t.Fatalf("%s: err = %v", name, err)
			}
			fSet := checkShape(t, d)
			checkSymmetric(t, name, fSet, r)
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		fSet, oSet := checkClosed(t, name, d, o, r)
		checkSymmetric(t, name, fSet, r)
		checkSymmetric(t, name+" outline", oSet, r)
		if t.Failed() {
			return
		}
	}
}

func TestDiamondPictures(t *testing.T) {
	d, err := NewDiamond(grid.V(0, 0), grid.V(4, 4), true)
	if err != nil {
		t.Fatal(err)
	}
	checkPicture(t, d, `
..#..
.###.
#####
.###.
..#..
`)
	o, err := d.WithFilled(false)
	if err != nil {
		t.Fatal(err)
	}
	checkPicture(t, o, `
..#..
.#.#.
#...#
.#.#.
..#..
`)

	d, err = NewDiamond(grid.V(0, 0), grid.V(3, 3), true)
	if err != nil {
		t.Fatal(err)
	}
	checkPicture(t, d, `
.##.
####
####
.##.
`)
}

func TestDiamondUnsupported(t *testing.T) {
	_, err := NewDiamond(grid.V(0, 0), grid.V(3, 4), false)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v", err)
	}
	if _, err := NewDiamond(grid.V(0, 0), grid.V(3, 4), true); err != nil {
		t.Error(err)
	}
}

var rightAngles = []RightAngleLocation{BottomLeft, BottomRight, TopLeft, TopRight}

func TestRightTriangle(t *testing.T) {
	for _, r := range testRects() {
		for _, loc := range rightAngles {
			name := fmt.Sprintf("triangle %v %v", r, loc)
			tri, err := NewRightTriangle(r.Min(), r.Max(), true, loc)
			if err != nil {
				t.Fatal(err)
			}
			_, oSet := checkClosed(t, name, tri, tri.WithFilled(false), r)

			edges := make(map[grid.Vec]bool)
			for _, l := range tri.Edges() {
				for p := range l.Cells() {
					edges[p] = true
				}
			}
			if len(edges) != len(oSet) {
				t.Fatalf("%s: %d edge cells, %d outline cells", name, len(edges), len(oSet))
			}
			for p := range edges {
				if !oSet[p] {
					t.Fatalf("%s: edge cell %v is not in the outline", name, p)
				}
			}
		}
		if t.Failed() {
			return
		}
	}
}

// TestRightTriangleMirror checks that the four placements are mirror
// images of each other.
func TestRightTriangleMirror(t *testing.T) {
	for _, r := range testRects()[:200] {
		c := r.Center2()
		sets := make(map[RightAngleLocation]map[grid.Vec]bool)
		for _, loc := range rightAngles {
			tri, err := NewRightTriangle(r.Max(), r.Min(), true, loc)
			if err != nil {
				t.Fatal(err)
			}
			sets[loc] = cellSet(t, tri)
		}
		for p := range sets[BottomLeft] {
			if !sets[BottomRight][grid.V(c.X-p.X, p.Y)] ||
				!sets[TopLeft][grid.V(p.X, c.Y-p.Y)] ||
				!sets[TopRight][grid.V(c.X-p.X, c.Y-p.Y)] {
				t.Fatalf("%v: mirror images of %v are missing", r, p)
			}
		}
		for _, loc := range rightAngles {
			if len(sets[loc]) != len(sets[BottomLeft]) {
				t.Fatalf("%v: %v has %d cells, want %d", r, loc, len(sets[loc]), len(sets[BottomLeft]))
			}
		}
	}
}

func TestRightTrianglePicture(t *testing.T) {
	tri, err := NewRightTriangle(grid.V(0, 0), grid.V(4, 4), true, TopRight)
	if err != nil {
		t.Fatal(err)
	}
	checkPicture(t, tri, `
#####
.####
..###
...##
....#
`)
	checkPicture(t, tri.WithFilled(false), `
#####
.#..#
..#.#
...##
....#
`)

	if _, err := NewRightTriangle(grid.V(0, 0), grid.V(1, 1), true, RightAngleLocation(7)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v", err)
	}
}

func TestRowSpanPanics(t *testing.T) {
	e := mustEllipse(t, grid.RectFromCorners(grid.V(0, 0), grid.V(4, 2)), true)
	bad := []func(){
		func() { e.RowSpan(-1) },
		func() { e.RowSpan(3) },
		func() { e.ColumnSpan(-1) },
		func() { e.ColumnSpan(5) },
	}
	for i, f := range bad {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			f()
		})
	}
}

func TestColumnSpan(t *testing.T) {
	tri, err := NewRightTriangle(grid.V(0, 0), grid.V(4, 4), true, TopRight)
	if err != nil {
		t.Fatal(err)
	}
	for x := range 5 {
		if lo, hi := tri.ColumnSpan(x); lo != 4-x || hi != 4 {
			t.Errorf("column %d: span %d..%d, want %d..4", x, lo, hi, 4-x)
		}
	}
}
