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
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pixel/grid"
)

// cellSet collects the cells of a shape, failing the test on repeats.
func cellSet(t *testing.T, s Shape) map[grid.Vec]bool {
	t.Helper()
	set := make(map[grid.Vec]bool)
	for p := range s.Cells() {
		if set[p] {
			t.Fatalf("%v: cell %v visited twice", s, p)
		}
		set[p] = true
	}
	return set
}

// checkShape verifies the Shape contract for s: no repeated cells, Count
// matches the enumeration, Bounds is tight, and Contains agrees with the
// enumeration in a padded region around the bounds.
func checkShape(t *testing.T, s Shape) map[grid.Vec]bool {
	t.Helper()
	set := cellSet(t, s)
	if len(set) == 0 {
		t.Fatalf("%v: no cells", s)
	}
	if s.Count() != len(set) {
		t.Errorf("%v: Count() = %d, but %d cells enumerated", s, s.Count(), len(set))
	}

	var bounds grid.Rect
	first := true
	for p := range set {
		if first {
			bounds = grid.RectFromCorners(p, p)
			first = false
		} else {
			bounds = bounds.Include(p)
		}
	}
	if s.Bounds() != bounds {
		t.Errorf("%v: Bounds() = %v, cells span %v", s, s.Bounds(), bounds)
	}

	for p := range s.Bounds().Pad(2).Cells() {
		if s.Contains(p) != set[p] {
			t.Errorf("%v: Contains(%v) = %t, enumeration says %t", s, p, s.Contains(p), set[p])
		}
	}
	return set
}

// checkSymmetric verifies that the cell set of s is mirror symmetric about
// the central axes of r.
func checkSymmetric(t *testing.T, name string, set map[grid.Vec]bool, r grid.Rect) {
	t.Helper()
	c := r.Center2()
	for p := range set {
		if q := grid.V(c.X-p.X, p.Y); !set[q] {
			t.Errorf("%s: %v present but mirror image %v is missing", name, p, q)
			return
		}
		if q := grid.V(p.X, c.Y-p.Y); !set[q] {
			t.Errorf("%s: %v present but mirror image %v is missing", name, p, q)
			return
		}
	}
}

// checkBorder verifies that outline is the set of cells of filled which
// have at least one 4-neighbour outside filled.
func checkBorder(t *testing.T, name string, filled, outline map[grid.Vec]bool) {
	t.Helper()
	want := border(filled)
	if d := cmp.Diff(want, outline); d != "" {
		t.Errorf("%s: outline is not the border of the filled shape (-want +got):\n%s", name, d)
	}
}

func border(filled map[grid.Vec]bool) map[grid.Vec]bool {
	res := make(map[grid.Vec]bool)
	for p := range filled {
		for _, d := range grid.Neighbours4 {
			if !filled[p.Add(d)] {
				res[p] = true
				break
			}
		}
	}
	return res
}

// picture renders a cell set as text, top row first, using '#' for cells
// and '.' for the other cells of the bounding box.
func picture(set map[grid.Vec]bool) string {
	keys := slices.Collect(maps.Keys(set))
	if len(keys) == 0 {
		return ""
	}
	r := grid.RectFromCorners(keys[0], keys[0])
	for _, p := range keys {
		r = r.Include(p)
	}
	var b strings.Builder
	for y := r.Max().Y; y >= r.Min().Y; y-- {
		for x := r.Min().X; x <= r.Max().X; x++ {
			if set[grid.V(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// checkPicture compares the cells of s with an expected picture.
func checkPicture(t *testing.T, s Shape, want string) {
	t.Helper()
	got := picture(cellSet(t, s))
	want = strings.TrimLeft(want, "\n")
	if got != want {
		t.Errorf("%v:\ngot\n%s\nwant\n%s", s, got, want)
	}
}
