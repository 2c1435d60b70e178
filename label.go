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

// label runs the two-scan 8-connected labeler over s.scratch (which holds
// the binarized image: 0 = foreground, 255 = background) and returns a
// dense label map, the number of surviving components, and whether the
// provisional label budget was exceeded.
func (s *SegmenterState) label() (m labelMap, count int, overflow bool) {
	w, h := s.w, s.h
	m = newLabelMap(w, h)

	parent := make([]uint8, 1, labelCeiling+1)
	parent[0] = 0 // label 0 is background, never unioned

	find := func(id uint8) uint8 {
		for parent[id] != id {
			id = parent[id]
		}
		return id
	}
	union := func(a, b uint8) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
		for i := 1; i < len(parent); i++ {
			parent[i] = find(uint8(i))
		}
	}
	newLabel := func() (uint8, bool) {
		if len(parent) > labelCeiling {
			return 0, false
		}
		id := uint8(len(parent))
		parent = append(parent, id)
		return id, true
	}

	isFG := func(x, y int) bool {
		return s.scratch[y*w+x] == 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !isFG(x, y) {
				continue
			}

			var left, upLeft, up, upRight uint8
			if x > 0 {
				left = m.at(x-1, y)
			}
			if x > 0 && y > 0 {
				upLeft = m.at(x-1, y-1)
			}
			if y > 0 {
				up = m.at(x, y-1)
			}
			if x < w-1 && y > 0 {
				upRight = m.at(x+1, y-1)
			}

			var lbl uint8
			switch {
			case left != 0:
				lbl = left
			case upLeft != 0:
				lbl = upLeft
			case up != 0:
				lbl = up
			}

			if upRight != 0 && lbl != 0 && find(upRight) != find(lbl) {
				union(lbl, upRight)
			}

			if lbl == 0 {
				if upRight != 0 {
					lbl = upRight
				} else {
					var ok bool
					lbl, ok = newLabel()
					if !ok {
						return labelMap{}, 0, true
					}
				}
			}

			m.set(x, y, lbl)
		}
	}

	// Closure and compaction (spec.md §4.5): assign dense ids 1..M to
	// canonical roots, then rewrite non-roots and finally the map itself.
	denseID := make([]uint8, len(parent))
	next := uint8(1)
	for i := 1; i < len(parent); i++ {
		if find(uint8(i)) == uint8(i) {
			denseID[i] = next
			next++
		}
	}
	for i := 1; i < len(parent); i++ {
		denseID[i] = denseID[find(uint8(i))]
	}

	for i, v := range m.labels {
		if v != 0 {
			m.labels[i] = denseID[v]
		}
	}

	return m, int(next) - 1, false
}
