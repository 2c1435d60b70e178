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

package fpseg

import "math"

// angularStepDeg and angularWindowDeg control the rotating-caliper-style
// refinement of the principal axis (spec.md §4.7, §9 "Open questions" —
// empirical constants, kept as named values rather than inline literals
// so a future revision can expose them without touching the search loop).
const (
	angularStepDeg   = 5.0
	angularWindowDeg = 45.0
)

// estimateOrientation computes the oriented bounding box for one surviving
// component: border-point covariance, principal axis via Jacobi
// eigendecomposition, then angular refinement to minimize the rotated
// bounding box area. ok is false only on Jacobi non-convergence, in which
// case the caller drops this component and continues with the rest
// (spec.md §4.7 "Failure").
func (s *SegmenterState) estimateOrientation(m labelMap, c componentBox) (SegmentInfo, bool) {
	cx, cy := c.centroid()

	cov, ok := borderCovariance(m, c, cx, cy)
	if !ok {
		return SegmentInfo{}, false
	}

	_, vectors, ok := jacobiEigen3(cov)
	if !ok {
		return SegmentInfo{}, false
	}

	// The principal eigenvector is column 0 after sortEigen's descending
	// ordering; its z-component is always 0 since cov's third row/column
	// is zero.
	vx, vy := vectors[0][0], vectors[1][0]
	if math.Abs(vx) < math.Abs(vy) {
		vx, vy = vy, vx
	}
	if vx < 0 {
		vx, vy = -vx, -vy
	}

	theta := math.Atan2(vy, vx)
	w, h := computeBox(m, c, cx, cy, theta)

	for restart := true; restart; {
		restart = false
		for beta := angularStepDeg; beta < angularWindowDeg; beta += angularStepDeg {
			wBeta, hBeta := computeBox(m, c, cx, cy, theta+beta*math.Pi/180)
			if wBeta*hBeta < w*h {
				w, h = wBeta, hBeta
				theta += beta * math.Pi / 180
				restart = true
				break
			}
		}
	}

	if w > h {
		w, h = h, w
		theta += math.Pi / 2
	}
	if theta > math.Pi/2 {
		theta -= math.Pi
	} else if theta < -math.Pi/2 {
		theta += math.Pi
	}

	return SegmentInfo{
		Width:    int(bboxPadding * float64(s.scale) * w),
		Height:   int(bboxPadding * float64(s.scale) * h),
		CX:       int(float64(s.scale) * cx),
		CY:       int(float64(s.scale) * cy),
		Rotation: float32(180 * theta / math.Pi),
	}, true
}

// borderCovariance scans rows [ymin, ymax], finds the leftmost and
// rightmost labeled pixel on each non-empty row, and accumulates the
// centered 2x2 covariance of those border points into the top-left block
// of a 3x3 matrix (spec.md §4.7).
func borderCovariance(m labelMap, c componentBox, cx, cy float64) (symMatrix3, bool) {
	var m00, m01, m11 float64
	var n int

	for y := c.ymin; y <= c.ymax; y++ {
		left, right, found := -1, -1, false
		for x := c.xmin; x <= c.xmax; x++ {
			if m.at(x, y) == c.label {
				if !found {
					left = x
					found = true
				}
				right = x
			}
		}
		if !found {
			continue
		}

		for _, x := range uniquePoints(left, right) {
			dx := float64(x) - cx
			dy := float64(y) - cy
			m00 += dx * dx
			m11 += dy * dy
			m01 += dx * dy
			n++
		}
	}

	if n == 0 {
		return symMatrix3{}, false
	}

	m00 /= float64(n)
	m01 /= float64(n)
	m11 /= float64(n)

	return symMatrix3{
		{m00, m01, 0},
		{m01, m11, 0},
		{0, 0, 0},
	}, true
}

func uniquePoints(left, right int) []int {
	if left == right {
		return []int{left}
	}
	return []int{left, right}
}

// computeBox returns the axis-aligned bounding box, in the coordinate
// frame rotated by -theta around (cx, cy), of every pixel carrying
// c.label. This is the `ComputeBox` operation of spec.md §4.7; it only
// scans c's own bounding box, not the whole working image.
func computeBox(m labelMap, c componentBox, cx, cy, theta float64) (w, h float64) {
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	first := true
	var xMin, xMax, yMin, yMax float64
	for y := c.ymin; y <= c.ymax; y++ {
		for x := c.xmin; x <= c.xmax; x++ {
			if m.at(x, y) != c.label {
				continue
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			xp := dx*cosT - dy*sinT
			yp := dx*sinT + dy*cosT
			if first {
				xMin, xMax, yMin, yMax = xp, xp, yp, yp
				first = false
			} else {
				xMin = min(xMin, xp)
				xMax = max(xMax, xp)
				yMin = min(yMin, yp)
				yMax = max(yMax, yp)
			}
		}
	}

	return xMax - xMin, yMax - yMin
}
