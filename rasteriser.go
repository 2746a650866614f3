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
	"context"
	"image"
	"log/slog"
	"slices"

	"seehuhn.de/go/pixel/grid"
)

// rowRunner is implemented by shapes which can list the runs of cells in a
// row without enumerating the whole shape.  Runs are returned left to
// right and are separated by at least one cell.
type rowRunner interface {
	runs(y int, buf []run) []run
}

// Rasteriser hands the cells of shapes to a pixel buffer, as horizontal
// runs.  The caller creates one instance and reuses it for multiple
// shapes.  Internal buffers grow as needed but never shrink.
type Rasteriser struct {
	// Clip is the region of cells which may be emitted, normally the
	// drawable area of the target layer.
	Clip grid.Rect

	// smallShapeThreshold is the maximum clipped bounding box area (in
	// cells) for using a 2D buffer.  Shapes with larger bounding boxes have
	// their cells sorted into rows instead.
	smallShapeThreshold int

	// Internal buffers (reused across calls)
	mask  []bool     // 2D cell buffer for small shapes
	cells []grid.Vec // cell list for large shapes
	row   []run      // runs of the current row
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle.
func NewRasteriser(clip grid.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:                clip,
		smallShapeThreshold: smallShapeThreshold,
	}
}

// Reset sets a new clip rectangle, preserving internal buffer capacity for
// reuse.
func (r *Rasteriser) Reset(clip grid.Rect) {
	r.Clip = clip
	r.mask = r.mask[:0]
	r.cells = r.cells[:0]
	r.row = r.row[:0]
}

// Fill calls emit for every maximal horizontal run of cells of s inside
// the clip rectangle.  Rows are visited from bottom to top, and runs
// within a row from left to right.  The run consists of the cells
// xMin ≤ x ≤ xMax in row y.
func (r *Rasteriser) Fill(s Shape, emit func(y, xMin, xMax int)) {
	box, ok := s.Bounds().Intersect(r.Clip)
	if !ok {
		return
	}

	if rr, ok := s.(rowRunner); ok {
		r.debug("row runs", s, box)
		r.fillRows(rr, box, emit)
		return
	}

	if box.Count() < r.smallShapeThreshold {
		r.debug("cell buffer", s, box)
		r.fillSmallShape(s, box, emit)
	} else {
		r.debug("sorted cells", s, box)
		r.fillLargeShape(s, box, emit)
	}
}

func (r *Rasteriser) debug(strategy string, s Shape, box grid.Rect) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("rasterising shape",
		"shape", s,
		"strategy", strategy,
		"box", box)
}

// fillRows uses the row runs provided by the shape.
func (r *Rasteriser) fillRows(s rowRunner, box grid.Rect, emit func(y, xMin, xMax int)) {
	xMin, xMax := box.Min().X, box.Max().X
	for y := range box.YRange().Values() {
		r.row = s.runs(y, r.row[:0])
		for _, seg := range r.row {
			lo := max(seg.lo, xMin)
			hi := min(seg.hi, xMax)
			if lo <= hi {
				emit(y, lo, hi)
			}
		}
	}
}

// fillSmallShape marks the cells in a 2D buffer covering the clipped
// bounding box, and then scans the buffer row by row.
func (r *Rasteriser) fillSmallShape(s Shape, box grid.Rect, emit func(y, xMin, xMax int)) {
	x0, y0 := box.Min().X, box.Min().Y
	width, height := box.Width(), box.Height()

	size := width * height
	r.mask = slices.Grow(r.mask[:0], size)[:size]
	clear(r.mask)

	for p := range s.Cells() {
		if box.Contains(p) {
			r.mask[(p.Y-y0)*width+p.X-x0] = true
		}
	}

	for row := range height {
		line := r.mask[row*width : (row+1)*width]
		for i := 0; i < width; {
			if !line[i] {
				i++
				continue
			}
			j := i
			for j+1 < width && line[j+1] {
				j++
			}
			emit(y0+row, x0+i, x0+j)
			i = j + 1
		}
	}
}

// fillLargeShape collects the cells inside the clipped bounding box and
// sorts them row by row.
func (r *Rasteriser) fillLargeShape(s Shape, box grid.Rect, emit func(y, xMin, xMax int)) {
	r.cells = r.cells[:0]
	for p := range s.Cells() {
		if box.Contains(p) {
			r.cells = append(r.cells, p)
		}
	}
	slices.SortFunc(r.cells, grid.Vec.Compare)

	for i := 0; i < len(r.cells); {
		p := r.cells[i]
		j := i
		for j+1 < len(r.cells) && r.cells[j+1] == r.cells[j].Add(grid.Right) {
			j++
		}
		emit(p.Y, p.X, r.cells[j].X)
		i = j + 1
	}
}

// Paint sets the cells of s to full opacity in dst.  The image is
// interpreted as a grid whose bottom row is dst.Rect.Min.Y, so that shapes
// appear upright.  Only cells inside both the image and the clip rectangle
// are painted.
func (r *Rasteriser) Paint(dst *image.Alpha, s Shape) {
	b := dst.Rect
	if b.Empty() {
		return
	}
	area := grid.RectFromCorners(grid.V(b.Min.X, b.Min.Y), grid.V(b.Max.X-1, b.Max.Y-1))
	clip, ok := r.Clip.Intersect(area)
	if !ok {
		return
	}

	saved := r.Clip
	r.Clip = clip
	defer func() { r.Clip = saved }()

	r.Fill(s, func(y, xMin, xMax int) {
		row := b.Min.Y + b.Max.Y - 1 - y
		i := dst.PixOffset(xMin, row)
		pix := dst.Pix[i : i+xMax-xMin+1]
		for k := range pix {
			pix[k] = 0xff
		}
	})
}

// smallShapeThreshold is the maximum clipped bounding box area (in cells)
// for using a 2D buffer.  Larger shapes have their cells sorted instead.
const smallShapeThreshold = 1 << 16
