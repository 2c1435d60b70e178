// seehuhn.de/go/fpseg - fingerprint region segmenter
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

// Command fpseg-report renders a source tenprint card and its detected
// fingerprint regions into a single annotated PDF page, for visual review
// of the segmentation pipeline.
//
// Usage:
//
//	fpseg-report [options] <image> <out.pdf>
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"seehuhn.de/go/fpseg"
	"seehuhn.de/go/fpseg/imageio"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fpseg-report: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fpseg-report", flag.ContinueOnError)
	workingSize := fs.Int("working-size", 0, "working resolution hint (0 = default 200)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: fpseg-report [options] <image> <out.pdf>")
	}

	srcPath, outPath := fs.Arg(0), fs.Arg(1)

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer f.Close()

	gray, w, h, err := imageio.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", srcPath, err)
	}

	seg := fpseg.Create(w, h, *workingSize)
	workingW, workingH := seg.WorkingSize()
	working := imageio.DownscaleTo(gray, w, h, workingW, workingH)

	ok, segments := seg.Extract(working)
	if !ok {
		return fmt.Errorf("extraction failed on %s", srcPath)
	}

	return writeReport(outPath, gray, w, h, segments)
}

// writeReport draws the source image as a grayscale coverage map, one
// pixel-rectangle per source pixel, then overlays each segment's oriented
// bounding box as a red stroked rectangle, following
// testcases/genpdf/main.go's page-setup and Y-flip pattern.
func writeReport(path string, gray []byte, w, h int, segments []fpseg.SegmentInfo) error {
	paper := &pdf.Rectangle{URx: float64(w), URy: float64(h)}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	// PDF origin is bottom-left; our pixel grid assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	drawSource(page, gray, w, h)
	drawSegments(page, segments)

	return page.Close()
}

func drawSource(page *document.Page, gray []byte, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := gray[y*w+x]
			page.SetFillColor(color.DeviceGray(float64(v) / 255))
			page.Rectangle(float64(x), float64(y), float64(x+1), float64(y+1))
			page.Fill()
		}
	}
}

func drawSegments(page *document.Page, segments []fpseg.SegmentInfo) {
	page.SetStrokeColor(color.DeviceRGB(1, 0, 0))
	page.SetLineWidth(2)

	for _, s := range segments {
		corners := orientedBoxCorners(s)
		page.MoveTo(corners[0].X, corners[0].Y)
		for _, p := range corners[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		page.Stroke()
	}
}

// orientedBoxCorners returns the four corners of s's oriented bounding
// box, in source-image pixel coordinates, in drawing order.
func orientedBoxCorners(s fpseg.SegmentInfo) [4]vec.Vec2 {
	theta := float64(-s.Rotation) * math.Pi / 180
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	hw, hh := float64(s.Width)/2, float64(s.Height)/2

	local := [4]vec.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var corners [4]vec.Vec2
	for i, p := range local {
		corners[i] = vec.Vec2{
			X: float64(s.CX) + p.X*cosT - p.Y*sinT,
			Y: float64(s.CY) + p.X*sinT + p.Y*cosT,
		}
	}
	return corners
}
