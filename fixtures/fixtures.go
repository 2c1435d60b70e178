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

// Package fixtures generates synthetic working-resolution grayscale
// images for the boundary scenarios of spec.md §8, for use by the core
// package's tests and by the demo commands.
package fixtures

import "math"

// Case is a single named synthetic image, generated at Width x Height
// working resolution.
type Case struct {
	Name          string
	Width, Height int
	Generate      func() []byte
}

// All groups the fixtures by the scenario they exercise, the same shape
// testcases.All uses to group rendering test cases by category.
var All = map[string][]Case{
	"blank":     {blankCase},
	"solid":     {solidCase},
	"rectangle": {rectangleCase, rotatedRectangleCase},
	"disks":     {disksCase},
	"grid":      {gridCase(16, 16)},
}

const defaultSize = 200

var blankCase = Case{
	Name: "blank_white",
	Width: defaultSize, Height: defaultSize,
	Generate: func() []byte { return Blank(defaultSize, defaultSize) },
}

var solidCase = Case{
	Name: "solid_black",
	Width: defaultSize, Height: defaultSize,
	Generate: func() []byte { return Solid(defaultSize, defaultSize) },
}

var rectangleCase = Case{
	Name: "centered_rectangle",
	Width: defaultSize, Height: defaultSize,
	Generate: func() []byte { return Rectangle(defaultSize, defaultSize, 40, 80, 0) },
}

var rotatedRectangleCase = Case{
	Name: "rotated_rectangle_30deg",
	Width: defaultSize, Height: defaultSize,
	Generate: func() []byte { return Rectangle(defaultSize, defaultSize, 40, 80, 30) },
}

var disksCase = Case{
	Name: "two_disks_20_5",
	Width: defaultSize, Height: defaultSize,
	Generate: func() []byte { return TwoDisks(defaultSize, defaultSize, 20, 5) },
}

// Blank returns a w*h grid filled with 255 (white, no foreground), the
// boundary scenario of spec.md §8.1.
func Blank(w, h int) []byte {
	g := make([]byte, w*h)
	for i := range g {
		g[i] = 255
	}
	return g
}

// Solid returns a w*h grid filled with 0 (solid black, one component
// spanning the whole image), spec.md §8.2.
func Solid(w, h int) []byte {
	return make([]byte, w*h) // zero value is already 0
}

// Rectangle returns a w*h white grid with a single black rectangle of the
// given width and height, centered, rotated by angleDeg degrees. angleDeg
// == 0 is spec.md §8.3; a nonzero angle is §8.4.
func Rectangle(w, h, rectW, rectH int, angleDeg float64) []byte {
	g := Blank(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	theta := angleDeg * math.Pi / 180
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	hw, hh := float64(rectW)/2, float64(rectH)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			// Rotate the sample point into the rectangle's own frame
			// instead of rotating the rectangle, so the fill stays a
			// simple axis-aligned inside-test.
			rx := dx*cosT + dy*sinT
			ry := -dx*sinT + dy*cosT
			if rx >= -hw && rx <= hw && ry >= -hh && ry <= hh {
				g[y*w+x] = 0
			}
		}
	}
	return g
}

// TwoDisks returns a w*h white grid with two disjoint black disks of the
// given radii, placed so neither touches the other or the image border,
// spec.md §8.5.
func TwoDisks(w, h int, r1, r2 int) []byte {
	g := Blank(w, h)
	cx1, cy1 := float64(w)/4, float64(h)/2
	cx2, cy2 := float64(w)*3/4, float64(h)/2

	fill := func(cx, cy float64, r int) {
		rf := float64(r)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx, dy := float64(x)-cx, float64(y)-cy
				if dx*dx+dy*dy <= rf*rf {
					g[y*w+x] = 0
				}
			}
		}
	}
	fill(cx1, cy1, r1)
	fill(cx2, cy2, r2)
	return g
}

// gridCase returns a Case generating a w*h fine grid of cols*rows
// disjoint foreground squares, spec.md §8.6's label-overflow scenario.
// cols*rows must exceed 255 to trigger overflow; 16x16 = 256 is the
// minimal grid that does.
func gridCase(cols, rows int) Case {
	return Case{
		Name: "grid_256_components",
		Width: defaultSize, Height: defaultSize,
		Generate: func() []byte { return Grid(defaultSize, defaultSize, cols, rows) },
	}
}

// Grid returns a w*h white grid with cols*rows disjoint black squares
// arranged in a regular grid. Extract's minFilter pass erodes the white
// gap between squares by its radius (1 px at the default working size)
// on each side before the denoiser gets a chance to blur it further, so
// pad is chosen well above that radius: a pad of 1 leaves only a 2 px
// gap, which minFilter bridges outright and merges every square into a
// single component. pad=4 leaves a 6 px gap after erosion, comfortably
// surviving the denoiser too, so the labeler still sees cols*rows
// separate components.
func Grid(w, h, cols, rows int) []byte {
	g := Blank(w, h)
	cellW, cellH := w/cols, h/rows
	pad := 4
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x0, y0 := c*cellW+pad, r*cellH+pad
			x1, y1 := (c+1)*cellW-pad, (r+1)*cellH-pad
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					g[y*w+x] = 0
				}
			}
		}
	}
	return g
}
