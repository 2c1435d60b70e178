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

// collect accumulates bbox/centroid/area per label in a single pass, then
// applies the relative-size filters from spec.md §4.6, returning the
// surviving label ids together with their accumulators in label order.
func (s *SegmenterState) collect(m labelMap, count int) []componentBox {
	boxes := make([]componentBox, count+1) // index 0 unused (background)

	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			lbl := m.at(x, y)
			if lbl == 0 {
				continue
			}
			boxes[lbl].include(x, y)
		}
	}

	var areaMax, wMax, hMax int64
	for _, b := range boxes[1:] {
		areaMax = max(areaMax, b.area)
		wMax = max(wMax, int64(b.width()))
		hMax = max(hMax, int64(b.height()))
	}
	if areaMax == 0 {
		return nil
	}

	areaMin := float64(areaMax) * s.areaThreshold
	wMin := float64(wMax) * s.sizeThreshold
	hMin := float64(hMax) * s.sizeThreshold

	survivors := make([]componentBox, 0, count)
	for i, b := range boxes[1:] {
		if b.area == 0 {
			continue
		}
		if float64(b.area) >= areaMin && float64(b.width()) >= wMin && float64(b.height()) >= hMin {
			b.label = uint8(i + 1)
			survivors = append(survivors, b)
		}
	}

	return survivors
}
