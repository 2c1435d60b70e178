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

// minFilter applies a square-neighborhood grayscale erosion of radius
// s.radius, reading from s.scratch and writing into s.input. Out-of-image
// samples are skipped rather than treated as any fixed value — unlike
// denoise, which treats them as white (spec.md §9).
func (s *SegmenterState) minFilter() {
	w, h, r := s.w, s.h, s.radius

	for y := 0; y < h; y++ {
		y0 := max(0, y-r)
		y1 := min(h-1, y+r)
		for x := 0; x < w; x++ {
			x0 := max(0, x-r)
			x1 := min(w-1, x+r)

			m := byte(255)
			for yy := y0; yy <= y1; yy++ {
				row := yy * w
				for xx := x0; xx <= x1; xx++ {
					v := s.scratch[row+xx]
					if v < m {
						m = v
					}
				}
			}
			s.input[y*w+x] = m
		}
	}

	copy(s.scratch, s.input)
}
