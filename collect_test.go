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

func TestCollectFiltersSmallComponent(t *testing.T) {
	// A 10x10 square (area 100) and a 2x2 square (area 4) on a 30x10
	// image. At the default 0.4 relative-area threshold the small square
	// should be dropped.
	w, h := 30, 10
	m := newLabelMap(w, h)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m.set(x, y, 1)
		}
	}
	for y := 0; y < 2; y++ {
		for x := 20; x < 22; x++ {
			m.set(x, y, 2)
		}
	}

	s := &SegmenterState{w: w, h: h, areaThreshold: defaultAreaThreshold, sizeThreshold: defaultSizeThreshold}
	survivors := s.collect(m, 2)

	if len(survivors) != 1 {
		t.Fatalf("got %d survivors, want 1", len(survivors))
	}
	if survivors[0].area != 100 {
		t.Errorf("survivor area = %d, want 100", survivors[0].area)
	}
}

func TestCollectKeepsEqualSizedComponents(t *testing.T) {
	w, h := 20, 10
	m := newLabelMap(w, h)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m.set(x, y, 1)
		}
	}
	for y := 0; y < 5; y++ {
		for x := 10; x < 15; x++ {
			m.set(x, y, 2)
		}
	}

	s := &SegmenterState{w: w, h: h, areaThreshold: defaultAreaThreshold, sizeThreshold: defaultSizeThreshold}
	survivors := s.collect(m, 2)

	if len(survivors) != 2 {
		t.Fatalf("got %d survivors, want 2 (equal-sized components both pass the relative filters)", len(survivors))
	}
}

func TestCollectNoComponents(t *testing.T) {
	w, h := 10, 10
	m := newLabelMap(w, h)
	s := &SegmenterState{w: w, h: h, areaThreshold: defaultAreaThreshold, sizeThreshold: defaultSizeThreshold}

	survivors := s.collect(m, 0)
	if survivors != nil {
		t.Errorf("got %v, want nil", survivors)
	}
}
