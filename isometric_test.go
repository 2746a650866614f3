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

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pixel/grid"
)

// testDrags returns start and end points of mouse drags for the isometric
// shapes.
func testDrags() [][2]grid.Vec {
	var res [][2]grid.Vec
	for end := range grid.RectFromCorners(grid.V(-9, -6), grid.V(9, 6)).Cells() {
		res = append(res, [2]grid.Vec{grid.V(0, 0), end})
	}
	rng := rand.New(rand.NewPCG(7, 8))
	for range 300 {
		a := grid.V(rng.IntN(100)-50, rng.IntN(100)-50)
		b := grid.V(rng.IntN(100)-50, rng.IntN(100)-50)
		res = append(res, [2]grid.Vec{a, b})
	}
	return res
}

func edgeCells(lines []Line) map[grid.Vec]bool {
	res := make(map[grid.Vec]bool)
	for _, l := range lines {
		for p := range l.Cells() {
			res[p] = true
		}
	}
	return res
}

func mustIsoRect(t *testing.T, start, end grid.Vec, filled bool) IsometricRectangle {
	t.Helper()
	r, err := NewIsometricRectangle(start, end, filled)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func mustHexagon(t *testing.T, a, b grid.Vec, filled bool) IsometricHexagon {
	t.Helper()
	h, err := NewIsometricHexagon(a, b, filled)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func mustCuboid(t *testing.T, start, end grid.Vec, height int, filled, includeBackEdges bool) IsometricCuboid {
	t.Helper()
	c, err := NewIsometricCuboid(start, end, height, filled, includeBackEdges)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestIsometricRectangle(t *testing.T) {
	for _, d := range testDrags() {
		r := mustIsoRect(t, d[0], d[1], true)
		name := r.String()
		fSet := checkShape(t, r)
		oSet := checkShape(t, r.WithFilled(false))
		checkBorder(t, name, fSet, oSet)

		if d := cmp.Diff(edgeCells(r.Edges()), oSet); d != "" {
			t.Fatalf("%s: outline is not the union of the edges (-want +got):\n%s", name, d)
		}
		for _, l := range r.Edges() {
			for _, run := range l.RunLengths() {
				if run != 2 {
					t.Fatalf("%s: edge %v has runs %v", name, l, l.RunLengths())
				}
			}
		}

		left, right := r.Left(), r.Right()
		if !fSet[left] || !fSet[right] || left.X != min(d[0].X, d[1].X) {
			t.Fatalf("%s: wrong vertices %v, %v", name, left, right)
		}
		if w := right.X - left.X + 1; w%2 != 0 || w < abs(d[1].X-d[0].X)+1 {
			t.Fatalf("%s: width %d", name, w)
		}
		if t.Failed() {
			return
		}
	}
}

func TestIsometricRectanglePicture(t *testing.T) {
	r := mustIsoRect(t, grid.V(0, 0), grid.V(7, 0), false)
	checkPicture(t, r, `
..####..
##....##
..####..
`)
	checkPicture(t, r.WithFilled(true), `
..####..
########
..####..
`)

	// an odd width is rounded up to whole blocks
	r = mustIsoRect(t, grid.V(6, 0), grid.V(0, 0), false)
	if r.Left() != grid.V(0, 0) || r.Right() != grid.V(7, 0) {
		t.Errorf("vertices %v, %v", r.Left(), r.Right())
	}

	// the right vertex snaps to a reachable row
	r = mustIsoRect(t, grid.V(0, 0), grid.V(7, 1), false)
	if r.Right() != grid.V(7, 0) {
		t.Errorf("right vertex %v", r.Right())
	}

	r = mustIsoRect(t, grid.V(0, 0), grid.V(7, 2), false)
	checkPicture(t, r, `
....####
..####..
####....
`)

	// too steep for a rectangle
	r = mustIsoRect(t, grid.V(0, 0), grid.V(3, 5), true)
	checkPicture(t, r, `
..##
##..
`)
}

func TestIsometricHexagon(t *testing.T) {
	for _, r := range testRects() {
		name := fmt.Sprintf("hexagon %v", r)
		h := mustHexagon(t, r.Max(), r.Min(), true)
		fSet, oSet := checkClosed(t, name, h, h.WithFilled(false), r)
		checkSymmetric(t, name, fSet, r)
		checkSymmetric(t, name+" outline", oSet, r)
		if t.Failed() {
			return
		}
	}
}

func TestIsometricHexagonPicture(t *testing.T) {
	h := mustHexagon(t, grid.V(0, 0), grid.V(7, 4), false)
	checkPicture(t, h, `
..####..
##....##
#......#
##....##
..####..
`)
}

func TestIsometricCuboid(t *testing.T) {
	for _, d := range testDrags() {
		for _, height := range []int{-7, 0, 1, 5} {
			filled := mustCuboid(t, d[0], d[1], height, true, false)
			name := filled.String()
			fSet := checkShape(t, filled)

			front := checkShape(t, filled.WithFilled(false))
			withBack := mustCuboid(t, d[0], d[1], height, false, true)
			all := checkShape(t, withBack)

			if filled.Bounds() != withBack.Bounds() {
				t.Fatalf("%s: bounds %v and %v differ", name, filled.Bounds(), withBack.Bounds())
			}
			for p := range front {
				if !all[p] {
					t.Fatalf("%s: %v is missing with back edges", name, p)
				}
			}
			for p := range all {
				if !fSet[p] {
					t.Fatalf("%s: outline cell %v is not in the silhouette", name, p)
				}
			}
			if d := cmp.Diff(edgeCells(withBack.Edges()), all); d != "" {
				t.Fatalf("%s: outline is not the union of the edges (-want +got):\n%s", name, d)
			}

			base := mustIsoRect(t, d[0], d[1], false)
			for p := range base.Cells() {
				if !fSet[p] || !fSet[p.Add(grid.V(0, height))] {
					t.Fatalf("%s: base cell %v is not covered", name, p)
				}
			}
		}
		if t.Failed() {
			return
		}
	}
}

func TestIsometricCuboidPicture(t *testing.T) {
	c := mustCuboid(t, grid.V(0, 0), grid.V(7, 0), 3, false, false)
	checkPicture(t, c, `
..####..
##....##
#.####.#
#..##..#
##.##.##
..####..
`)
	checkPicture(t, c.WithFilled(true), `
..####..
########
########
########
########
..####..
`)

	c = mustCuboid(t, grid.V(0, 0), grid.V(7, 0), 3, false, true)
	checkPicture(t, c, `
..####..
##.##.##
#.####.#
#.####.#
##.##.##
..####..
`)

	// extruding downwards gives the same cuboid, shifted
	d := mustCuboid(t, grid.V(0, 3), grid.V(7, 3), -3, false, true)
	if cmp.Diff(Collect(c), Collect(d)) != "" {
		t.Errorf("downward cuboid differs:\n%s", picture(cellSet(t, d)))
	}
}

func TestIsometricTooLarge(t *testing.T) {
	type testCase struct {
		name   string
		a, b   grid.Vec
		height int
	}
	cases := []testCase{
		{"wide", grid.V(0, 0), grid.V(1<<31, 0), 1},
		{"tall", grid.V(0, -1<<30), grid.V(0, 1<<30), 1},
		{"far out", grid.V(math.MaxInt-10, 0), grid.V(math.MaxInt, 0), 1},
		{"far down", grid.V(0, math.MinInt), grid.V(8, math.MinInt), 1},
		{"extreme", grid.V(-1<<62, 0), grid.V(1<<62, 0), 1},
		{"high", grid.V(0, 0), grid.V(7, 0), 1 << 31},
		{"deep", grid.V(0, 0), grid.V(7, 0), math.MinInt},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var errs []error
			if c.height == 1 {
				_, err := NewIsometricRectangle(c.a, c.b, true)
				errs = append(errs, err)
				_, err = NewIsometricHexagon(c.a, c.b, true)
				errs = append(errs, err)
			}
			_, err := NewIsometricCuboid(c.a, c.b, c.height, true, true)
			errs = append(errs, err)
			for i, err := range errs {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("%d: err = %v", i, err)
				}
			}
		})
	}

	// shapes at the edge of the coordinate range are fine
	far := grid.V(maxCoordinate, maxCoordinate)
	r := mustIsoRect(t, far.Sub(grid.V(7, 0)), far, false)
	if r.Right() != far {
		t.Errorf("right vertex %v, want %v", r.Right(), far)
	}
	c := mustCuboid(t, far.Sub(grid.V(7, 0)), far, 5, false, true)
	checkShape(t, c)
}
