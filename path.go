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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel/grid"
)

// Path is a polyline made of connected [Line]s: every line starts at the
// cell where the previous line ends.
//
// The cells of a path are walked line by line.  The first cell of every
// line after the first is skipped, since it repeats the end of the previous
// line.  If the walk returns to the start cell, the final, repeated start
// cell is omitted as well.
type Path struct {
	lines []Line

	cells          map[grid.Vec]struct{}
	walkLen        int  // number of cells in the walk
	selfIntersects bool // whether the walk visits a cell twice
	crosses        bool // whether the walk, with spurs removed, visits a cell twice
}

// NewPath returns the path consisting of the given lines.
func NewPath(lines ...Line) (Path, error) {
	if len(lines) == 0 {
		return Path{}, ErrEmptyPath
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].Start() != lines[i-1].End() {
			err := fmt.Errorf("line %d ends at %v but line %d starts at %v: %w",
				i-1, lines[i-1].End(), i, lines[i].Start(), ErrDisconnected)
			Logger().Debug("path rejected", "error", err)
			return Path{}, err
		}
	}

	p := Path{lines: slices.Clone(lines)}
	p.cells = make(map[grid.Vec]struct{}, p.rawLen())
	var trail []grid.Vec
	for c := range p.Walk() {
		if _, dup := p.cells[c]; dup {
			p.selfIntersects = true
		} else {
			p.cells[c] = struct{}{}
		}
		p.walkLen++

		// A step back to the cell before the last one retraces the walk.
		if n := len(trail); n >= 2 && trail[n-2] == c {
			trail = trail[:n-1]
		} else {
			trail = append(trail, c)
		}
	}
	if p.selfIntersects {
		onTrail := make(map[grid.Vec]struct{}, len(trail))
		for _, c := range trail {
			if _, dup := onTrail[c]; dup {
				p.crosses = true
				break
			}
			onTrail[c] = struct{}{}
		}
	}
	return p, nil
}

// PathThrough returns the path which visits the given points in order,
// joined by lines.  A single point gives a path consisting of one cell.
func PathThrough(points ...grid.Vec) (Path, error) {
	switch len(points) {
	case 0:
		return Path{}, ErrEmptyPath
	case 1:
		return NewPath(NewLine(points[0], points[0]))
	}
	lines := make([]Line, len(points)-1)
	for i := range lines {
		lines[i] = NewLine(points[i], points[i+1])
	}
	return NewPath(lines...)
}

func (p Path) String() string {
	if len(p.lines) == 0 {
		return "path ()"
	}
	return fmt.Sprintf("path %v..%v (%d lines)", p.lines[0].Start(), p.lines[len(p.lines)-1].End(), len(p.lines))
}

// rawLen returns the number of cells of the lines, not counting the cells
// shared by consecutive lines.
func (p Path) rawLen() int {
	n := 1
	for _, l := range p.lines {
		n += l.Count() - 1
	}
	return n
}

// Lines returns the lines making up the path.
func (p Path) Lines() []Line {
	return slices.Clone(p.lines)
}

// Start returns the first cell of the path.
func (p Path) Start() grid.Vec { return p.lines[0].Start() }

// End returns the last cell of the last line.
func (p Path) End() grid.Vec { return p.lines[len(p.lines)-1].End() }

// Equal reports whether p and q consist of the same lines.
func (p Path) Equal(q Path) bool {
	return slices.Equal(p.lines, q.lines)
}

// IsLoop reports whether the path ends where it starts.
func (p Path) IsLoop() bool {
	return p.Start() == p.End()
}

// SelfIntersects reports whether the walk along the path visits some cell
// more than once.
func (p Path) SelfIntersects() bool {
	return p.selfIntersects
}

// IsSimplePolygon reports whether the path is a loop which does not cross
// or touch itself.  Zero-length lines are allowed, and so are spurs where
// the walk doubles back along the cells it has just visited.  Revisiting a
// cell in any other way makes the polygon non-simple.
func (p Path) IsSimplePolygon() bool {
	return p.IsLoop() && !p.crosses
}

// Walk iterates over the cells along the path.  Cells where the path
// crosses or touches itself are visited more than once.
func (p Path) Walk() iter.Seq[grid.Vec] {
	return func(yield func(grid.Vec) bool) {
		n := p.rawLen()
		if n > 1 && p.IsLoop() {
			n-- // don't return to the start cell
		}
		k := 0
		for i, l := range p.lines {
			first := 0
			if i > 0 {
				first = 1
			}
			for j := first; j < l.Count(); j++ {
				if k == n {
					return
				}
				if !yield(l.At(j)) {
					return
				}
				k++
			}
		}
	}
}

// Cells iterates over the distinct cells of the path, in the order in which
// they are first reached by [Path.Walk].
func (p Path) Cells() iter.Seq[grid.Vec] {
	if !p.selfIntersects {
		return p.Walk()
	}
	return func(yield func(grid.Vec) bool) {
		seen := make(map[grid.Vec]struct{}, len(p.cells))
		for c := range p.Walk() {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			if !yield(c) {
				return
			}
		}
	}
}

// Count returns the number of distinct cells of the path.
func (p Path) Count() int {
	return len(p.cells)
}

// WalkLen returns the number of cells visited by [Path.Walk].
func (p Path) WalkLen() int {
	return p.walkLen
}

// Contains reports whether c is a cell of the path.
func (p Path) Contains(c grid.Vec) bool {
	_, ok := p.cells[c]
	return ok
}

// Bounds returns the smallest rectangle containing the path.
func (p Path) Bounds() grid.Rect {
	r := p.lines[0].Bounds()
	for _, l := range p.lines[1:] {
		r = r.Union(l.Bounds())
	}
	return r
}

// WindingNumber returns the number of times the loop p winds
// anticlockwise around the cell c.
//
// The lines of the path are treated as straight segments between cell
// centres, and a ray from c towards +x is tested against each of them.
// Because every line passes through all cells which lie exactly on its
// segment, and strays less than one cell from it otherwise, the result
// is well defined for every cell not on the path.
//
// If p is not a loop, ErrNotLoop is returned.  If c is a cell of the path,
// ErrOnBoundary is returned.
func (p Path) WindingNumber(c grid.Vec) (int, error) {
	if !p.IsLoop() {
		return 0, ErrNotLoop
	}
	if p.Contains(c) {
		return 0, fmt.Errorf("cell %v: %w", c, ErrOnBoundary)
	}

	wn := 0
	for _, l := range p.lines {
		a, b := l.Start(), l.End()
		if a.Y <= c.Y {
			if b.Y > c.Y && isLeft(a, b, c) > 0 {
				wn++ // upward crossing, c to the left
			}
		} else {
			if b.Y <= c.Y && isLeft(a, b, c) < 0 {
				wn-- // downward crossing, c to the right
			}
		}
	}
	return wn, nil
}

// isLeft is positive if c lies to the left of the directed line from a to
// b, negative if it lies to the right, and zero if the three are collinear.
func isLeft(a, b, c grid.Vec) int {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Outline returns the polygon joining the centres of the line end points,
// mapped through the matrix m.  A loop is closed; for other paths the
// subpath is left open.
func (p Path) Outline(m matrix.Matrix) *path.Data {
	apply := func(c grid.Vec) vec.Vec2 {
		v := c.Vec2()
		x, y := m.Apply(v.X, v.Y)
		return vec.Vec2{X: x, Y: y}
	}

	res := (&path.Data{}).MoveTo(apply(p.Start()))
	for i, l := range p.lines {
		if i == len(p.lines)-1 && p.IsLoop() {
			break
		}
		if l.Start() == l.End() {
			continue
		}
		res = res.LineTo(apply(l.End()))
	}
	if p.IsLoop() {
		res = res.Close()
	}
	return res
}
