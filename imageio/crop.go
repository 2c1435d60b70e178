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

package imageio

import (
	"image"
	"image/color"

	"seehuhn.de/go/fpseg"
	"seehuhn.de/go/geom/matrix"
)

// Crop renders the axis-aligned, de-rotated sub-image described by seg out
// of src: it rotates the source by -seg.Rotation around seg's centroid so
// the long axis becomes vertical, then crops to seg.Width x seg.Height
// centered on the (now axis-aligned) centroid. This is the crop-and-rotate
// collaborator spec.md §6 names as external to the core.
func Crop(src image.Image, seg fpseg.SegmentInfo) *image.Gray {
	// m maps destination pixel coordinates (origin at the output image's
	// center) back into source image coordinates, matching the
	// CTM-as-array-of-six convention Rasterizer.CTM uses: m[0..3] is the
	// linear part, m[4..5] the translation.
	m := matrix.Identity.RotateDeg(float64(-seg.Rotation))

	w, h := seg.Width, seg.Height
	dst := image.NewGray(image.Rect(0, 0, w, h))

	bounds := src.Bounds()
	for dy := 0; dy < h; dy++ {
		oy := float64(dy) - float64(h)/2
		for dx := 0; dx < w; dx++ {
			ox := float64(dx) - float64(w)/2

			sx := m[0]*ox + m[2]*oy + float64(seg.CX)
			sy := m[1]*ox + m[3]*oy + float64(seg.CY)

			ix, iy := int(sx+0.5), int(sy+0.5)
			if ix < bounds.Min.X || ix >= bounds.Max.X || iy < bounds.Min.Y || iy >= bounds.Max.Y {
				dst.SetGray(dx, dy, color.Gray{Y: 255})
				continue
			}

			r32, g32, b32, _ := src.At(ix, iy).RGBA()
			lum := 0.30*float64(r32>>8) + 0.59*float64(g32>>8) + 0.11*float64(b32>>8)
			dst.SetGray(dx, dy, color.Gray{Y: byte(lum + 0.5)})
		}
	}

	return dst
}
