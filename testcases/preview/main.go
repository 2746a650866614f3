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

// Command preview renders all test cases to enlarged PNG images, for
// visual inspection.  Paths are drawn on top of their ideal polygon.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/preview", "output directory")
	zoom := flag.Int("zoom", 8, "size of a cell in image pixels")
	verbose := flag.Bool("v", false, "log rasteriser decisions")
	flag.Parse()

	if *verbose {
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(*outDir, name+".png")
			if err := writePNG(fname, render(tc, *zoom)); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Println(fname)
		}
	}
}

// render draws the cells of a test case, enlarged by the zoom factor.
func render(tc testcases.TestCase, zoom int) *image.Alpha {
	cells := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	r := pixel.NewRasteriser(tc.Canvas())
	r.Paint(cells, tc.Shape)

	big := image.NewAlpha(image.Rect(0, 0, tc.Width*zoom, tc.Height*zoom))
	if p, ok := tc.Shape.(pixel.Path); ok {
		// flip the y axis, so that the bottom row of cells is at the
		// bottom of the image
		z := float64(zoom)
		m := matrix.Matrix{z, 0, 0, -z, 0, float64(tc.Height) * z}
		drawPolygon(big, p.Outline(m))
	}
	draw.NearestNeighbor.Scale(big, big.Bounds(), cells, cells.Bounds(), draw.Over, nil)
	return big
}

// drawPolygon fills the polygon with a light shade.
func drawPolygon(dst *image.Alpha, outline *path.Data) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	k := 0
	for _, cmd := range outline.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := outline.Coords[k]
			z.MoveTo(float32(pt.X), float32(pt.Y))
			k++
		case path.CmdLineTo:
			pt := outline.Coords[k]
			z.LineTo(float32(pt.X), float32(pt.Y))
			k++
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.Draw(dst, b, image.NewUniform(color.Alpha{A: 0x40}), image.Point{})
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
