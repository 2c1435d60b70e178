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

func TestBinarizeBimodal(t *testing.T) {
	// A clean bimodal histogram: half the pixels at 10 (ink), half at 240
	// (paper). Otsu should land k* squarely between the two modes.
	s := &SegmenterState{w: 20, h: 10}
	s.scratch = make([]byte, s.w*s.h)
	for i := range s.scratch {
		if i%2 == 0 {
			s.scratch[i] = 10
		} else {
			s.scratch[i] = 240
		}
	}

	s.binarize()

	for i, v := range s.scratch {
		wantFG := i%2 == 0
		gotFG := v == 0
		if gotFG != wantFG {
			t.Errorf("pixel %d: foreground=%v, want %v", i, gotFG, wantFG)
		}
	}
}

func TestBinarizeAllWhite(t *testing.T) {
	s := &SegmenterState{w: 10, h: 10}
	s.scratch = make([]byte, s.w*s.h)
	for i := range s.scratch {
		s.scratch[i] = 255
	}

	s.binarize()

	for i, v := range s.scratch {
		if v != 255 {
			t.Errorf("pixel %d = %d, want 255 (all-white image should stay background)", i, v)
		}
	}
}

func TestBinarizeAllBlack(t *testing.T) {
	s := &SegmenterState{w: 10, h: 10}
	s.scratch = make([]byte, s.w*s.h)

	s.binarize()

	for i, v := range s.scratch {
		if v != 0 {
			t.Errorf("pixel %d = %d, want 0 (all-black image should stay foreground)", i, v)
		}
	}
}
