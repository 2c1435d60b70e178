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

// Default parameter values, mirroring the teacher's package-level
// defaultFlatness/defaultMiterLimit constants seeded by NewRasterizer.
const (
	defaultWorkingSizeHint = 200
	defaultDenoiseSteps    = 3
	defaultAreaThreshold   = 0.4
	defaultSizeThreshold   = 0.4

	// otsuBias biases the Otsu threshold toward classifying more pixels
	// as foreground (spec.md §4.4).
	otsuBias = 1.2

	// bboxPadding expands the minimum bounding box to include ridges
	// truncated by erosion/denoise (spec.md §4.7).
	bboxPadding = 1.12

	// labelCeiling is the maximum number of provisional labels the
	// labeler will allocate before aborting the extraction.
	labelCeiling = 255
)

// SegmenterState extracts fingerprint regions from a working-resolution
// grayscale image. Create one instance per source image size and reuse it
// across extractions; its scratch buffer is sized once and never
// reallocated for images of that size. A SegmenterState is not safe for
// concurrent use — callers needing parallelism should create one instance
// per goroutine, the same guidance spec.md §5 gives for the core.
type SegmenterState struct {
	srcW, srcH int // source (pre-downscale) dimensions
	w, h       int // working-resolution dimensions
	scale      int // source -> working scale factor s
	radius     int // min-filter radius r

	denoiseSteps  uint32
	areaThreshold float64
	sizeThreshold float64

	// scratch is the shared working buffer, reused across passes and
	// across calls to Extract. Its length is always w*h.
	scratch []byte

	// input holds the pass currently being transformed; passes
	// alternate between reading scratch and writing input, then copy
	// input back into scratch before the next pass (spec.md §9 on
	// scratch buffer aliasing).
	input []byte
}

// Create returns a SegmenterState for a source image of the given
// dimensions. workingSizeHint controls both the working resolution (the
// downscaled min(W,H) target) and the min-filter radius; pass 0 to use the
// default of 200 (spec.md §6).
func Create(sourceWidth, sourceHeight, workingSizeHint int) *SegmenterState {
	if workingSizeHint <= 0 {
		workingSizeHint = defaultWorkingSizeHint
	}

	s := &SegmenterState{
		srcW: sourceWidth,
		srcH: sourceHeight,

		denoiseSteps:  defaultDenoiseSteps,
		areaThreshold: defaultAreaThreshold,
		sizeThreshold: defaultSizeThreshold,
	}

	minSrc := min(sourceWidth, sourceHeight)
	s.scale = max(1, minSrc/workingSizeHint)
	s.w = sourceWidth / s.scale
	s.h = sourceHeight / s.scale
	s.radius = max(1, int(math.Ceil(0.005*float64(workingSizeHint))))

	n := s.w * s.h
	s.scratch = make([]byte, n)
	s.input = make([]byte, n)

	return s
}

// SetDenoiseSteps sets the number of 8-neighbor averaging iterations
// applied by the denoiser. Default 3; 0 skips the pass entirely.
func (s *SegmenterState) SetDenoiseSteps(n uint32) {
	s.denoiseSteps = n
}

// SetAreaThreshold sets the relative-area filter used by the collector
// (spec.md §4.6). Default 0.4; values below 0 are clamped to 0.
func (s *SegmenterState) SetAreaThreshold(t float64) {
	if t < 0 {
		t = 0
	}
	s.areaThreshold = t
}

// SetSizeThreshold sets the relative bounding-box-size filter used by the
// collector (spec.md §4.6). Default 0.4; values below 0 are clamped to 0.
func (s *SegmenterState) SetSizeThreshold(t float64) {
	if t < 0 {
		t = 0
	}
	s.sizeThreshold = t
}

// WorkingSize returns the working-resolution dimensions this segmenter was
// configured for. Extract requires a grayImage of exactly w*h bytes.
func (s *SegmenterState) WorkingSize() (w, h int) {
	return s.w, s.h
}

// Extract runs the full pipeline over a working-resolution 8-bit grayscale
// buffer (length w*h, row-major, position = y*w+x) and returns the
// detected segments. ok is false, with segments empty, if grayImage does
// not have w*h bytes, if the labeler overflows its 255-label budget, or if
// orientation estimation fails for every candidate component; a failure on
// only some candidates drops just those. Per spec.md §7 the core never
// returns an error, only this pair.
func (s *SegmenterState) Extract(grayImage []byte) (ok bool, segments []SegmentInfo) {
	if len(grayImage) != s.w*s.h {
		return false, nil
	}

	copy(s.scratch, grayImage)
	copy(s.input, grayImage)

	s.minFilter()
	s.denoise()
	s.binarize()

	labels, count, overflowed := s.label()
	if overflowed {
		return false, nil
	}
	if count == 0 {
		return true, nil
	}

	candidates := s.collect(labels, count)
	if len(candidates) == 0 {
		return true, nil
	}

	segments = make([]SegmentInfo, 0, len(candidates))
	for _, c := range candidates {
		seg, ok := s.estimateOrientation(labels, c)
		if !ok {
			continue // Jacobi non-convergence drops only this component
		}
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		return false, nil
	}

	return true, segments
}
