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

// Package imageio is the decoding and cropping collaborator that sits
// outside the fpseg core, which does no image I/O: it turns an
// arbitrary raster file into the grayscale buffers the core pipeline
// consumes, and turns a fpseg.SegmentInfo back into a cropped,
// de-rotated sub-image of the original source.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Decode reads a JPEG, PNG, BMP, or TIFF image and reduces it to an 8-bit
// grayscale grid at full source resolution, using the luminance weights
// spec.md §4.1 requires of color input (0.30 R + 0.59 G + 0.11 B). w and h
// are the source dimensions fpseg.Create expects as sourceWidth,
// sourceHeight.
func Decode(r io.Reader) (gray []byte, w, h int, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imageio: decode: %w", err)
	}

	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit-scaled components; reduce to 8 bit
			// before applying the luminance weights so the result
			// matches an 8-bit grayscale source exactly.
			r8 := float64(r32 >> 8)
			g8 := float64(g32 >> 8)
			b8 := float64(b32 >> 8)
			lum := 0.30*r8 + 0.59*g8 + 0.11*b8
			gray[y*w+x] = byte(lum + 0.5)
		}
	}

	return gray, w, h, nil
}

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG\r\n\x1a\n", png.Decode, png.DecodeConfig)
}

// DownscaleTo resizes an 8-bit grayscale grid of size w*h to exactly
// workingW*workingH, using bicubic-quality resampling
// (golang.org/x/image/draw.CatmullRom) as spec.md §4.1 assumes of the
// preprocessor's downscale step. It is factored out of Decode so it can
// be exercised directly against small known grids in tests.
func DownscaleTo(gray []byte, w, h, workingW, workingH int) []byte {
	src := &image.Gray{
		Pix:    gray,
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	dst := image.NewGray(image.Rect(0, 0, workingW, workingH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst.Pix
}
