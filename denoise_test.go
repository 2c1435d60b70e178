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

import "testing"

func TestDenoiseUniformImageUnchanged(t *testing.T) {
	// The out-of-image neighbors count as white, so only a uniform white
	// image is a fixed point of the denoiser all the way to its border.
	w, h := 6, 6
	s := &SegmenterState{w: w, h: h, denoiseSteps: 3}
	s.scratch = make([]byte, w*h)
	s.input = make([]byte, w*h)
	for i := range s.scratch {
		s.scratch[i] = 255
	}

	s.denoise()

	for i, v := range s.scratch {
		if v != 255 {
			t.Errorf("pixel %d = %d, want 255 unchanged", i, v)
		}
	}
}

func TestDenoiseZeroStepsNoOp(t *testing.T) {
	w, h := 4, 4
	s := &SegmenterState{w: w, h: h, denoiseSteps: 0}
	s.scratch = make([]byte, w*h)
	s.input = make([]byte, w*h)
	s.scratch[5] = 42

	s.denoise()

	if s.scratch[5] != 42 {
		t.Errorf("scratch[5] = %d, want 42 unchanged (0 denoise steps)", s.scratch[5])
	}
}

func TestDenoiseBorderTreatedAsWhite(t *testing.T) {
	// The corner pixel of an all-black image should be pulled toward white
	// by the simulated white border, unlike minFilter which would leave
	// out-of-image neighbors out of the computation entirely.
	w, h := 4, 4
	s := &SegmenterState{w: w, h: h, denoiseSteps: 1}
	s.scratch = make([]byte, w*h)
	s.input = make([]byte, w*h)
	for i := range s.scratch {
		s.scratch[i] = 0
	}

	s.denoise()

	// The corner pixel (0,0) has 5 of its 8 neighbors out of image
	// (treated as 255) and 3 in-image neighbors at 0, so its new value
	// should be well above 0.
	if s.scratch[0] == 0 {
		t.Errorf("corner pixel stayed 0, want > 0 from the simulated white border")
	}
}
