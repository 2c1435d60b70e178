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

// denoiseNeighbors lists the 8-neighbor offsets in the fixed order the
// weighted average is accumulated in.
var denoiseNeighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

const denoiseWeight = 1.0 / 8.0

// denoise applies s.denoiseSteps iterations of 8-neighbor averaging, with
// out-of-image neighbors contributing 255 (a simulated white page border),
// the opposite convention from minFilter (spec.md §9). Each iteration
// reads from s.scratch and writes to s.input, then copies input back to
// scratch before the next iteration — the same alternate-and-copy shape
// minFilter uses, repeated denoiseSteps times.
func (s *SegmenterState) denoise() {
	w, h := s.w, s.h

	for iter := uint32(0); iter < s.denoiseSteps; iter++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				sum := 0.0
				for _, d := range denoiseNeighbors {
					nx, ny := x+d[0], y+d[1]
					var v float64
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						v = 255
					} else {
						v = float64(s.scratch[ny*w+nx])
					}
					sum += v * denoiseWeight
				}
				s.input[y*w+x] = byte(math.Ceil(sum))
			}
		}
		copy(s.scratch, s.input)
	}
}
