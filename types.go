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

// Package fpseg extracts individual fingerprint regions from a scanned
// image containing multiple inked impressions. For each detected
// fingerprint it reports an oriented bounding box: centroid, size, and
// rotation.
package fpseg

import "seehuhn.de/go/geom/vec"

// SegmentInfo is the result of locating one fingerprint impression, in
// source-image pixel coordinates.
type SegmentInfo struct {
	// Width and Height are the size of the oriented bounding box, in
	// source-image pixels. Width <= Height: the long axis is reported
	// as height.
	Width, Height int

	// CX, CY is the centroid of the component, in source-image pixels.
	CX, CY int

	// Rotation is the angle, in degrees, that the long axis makes with
	// the vertical. Range: (-90, 90].
	Rotation float32
}

// Centroid returns the segment's centroid as a geometry vector, for
// callers that want to compose it with seehuhn.de/go/geom transforms
// (e.g. to build the affine crop used by imageio.Crop).
func (s SegmentInfo) Centroid() vec.Vec2 {
	return vec.Vec2{X: float64(s.CX), Y: float64(s.CY)}
}

// labelMap is a W*H grid of small integer component labels; label 0 is
// background. Positions are row-major: index = y*W + x.
type labelMap struct {
	w, h   int
	labels []uint8
}

func newLabelMap(w, h int) labelMap {
	return labelMap{w: w, h: h, labels: make([]uint8, w*h)}
}

func (m labelMap) at(x, y int) uint8 {
	return m.labels[y*m.w+x]
}

func (m labelMap) set(x, y int, v uint8) {
	m.labels[y*m.w+x] = v
}

// componentBox is the axis-aligned bounding box, centroid accumulators, and
// area collected for one dense label by the collector pass. Fields
// xmin/xmax/ymin/ymax are plain ints since the collector runs entirely in
// integer pixel space; orient.go works from them with plain float64
// arithmetic.
type componentBox struct {
	label      uint8 // the label id in the labelMap this box was collected from
	xmin, xmax int
	ymin, ymax int
	sumX, sumY int64
	area       int64
}

func (b *componentBox) include(x, y int) {
	if b.area == 0 {
		b.xmin, b.xmax = x, x
		b.ymin, b.ymax = y, y
	} else {
		b.xmin = min(b.xmin, x)
		b.xmax = max(b.xmax, x)
		b.ymin = min(b.ymin, y)
		b.ymax = max(b.ymax, y)
	}
	b.sumX += int64(x)
	b.sumY += int64(y)
	b.area++
}

func (b *componentBox) width() int  { return b.xmax - b.xmin }
func (b *componentBox) height() int { return b.ymax - b.ymin }

func (b *componentBox) centroid() (cx, cy float64) {
	return float64(b.sumX) / float64(b.area), float64(b.sumY) / float64(b.area)
}
