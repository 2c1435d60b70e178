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

// binarize selects an Otsu threshold over s.scratch's 256-bin histogram,
// biases it by otsuBias, and rewrites s.scratch in place so that
// foreground pixels (those that were below the biased threshold) become 0
// and background pixels become 255.
func (s *SegmenterState) binarize() {
	var hist [256]int
	for _, v := range s.scratch {
		hist[v]++
	}

	n := float64(len(s.scratch))
	var h [256]float64
	for i, c := range hist {
		h[i] = float64(c) / n
	}

	// cumP[k], cumMu[k] are the sums over i in [0, k] of h[i] and i*h[i].
	var cumP, cumMu [256]float64
	cumP[0], cumMu[0] = h[0], 0
	for i := 1; i < 256; i++ {
		cumP[i] = cumP[i-1] + h[i]
		cumMu[i] = cumMu[i-1] + float64(i)*h[i]
	}
	totalP, totalMu := cumP[255], cumMu[255]

	kStar, bestVariance := 0, -1.0
	for k := 1; k <= 255; k++ {
		p1, mu1 := cumP[k], cumMu[k]
		p2, mu2 := totalP-p1, totalMu-mu1

		denom := p1 * p2
		if denom == 0 {
			denom = 1 // epsilon, per spec.md §4.4
		}
		num := mu1*p2 - mu2*p1
		variance := (num * num) / denom

		if variance > bestVariance {
			bestVariance = variance
			kStar = k
		}
	}

	t := otsuBias * float64(kStar)

	for i, v := range s.scratch {
		if float64(v) >= t {
			s.scratch[i] = 255
		} else {
			s.scratch[i] = 0
		}
	}
}
