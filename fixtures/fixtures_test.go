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

package fixtures

import "testing"

func TestBlankIsAllWhite(t *testing.T) {
	g := Blank(10, 10)
	for i, v := range g {
		if v != 255 {
			t.Fatalf("pixel %d = %d, want 255", i, v)
		}
	}
}

func TestSolidIsAllBlack(t *testing.T) {
	g := Solid(10, 10)
	for i, v := range g {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0", i, v)
		}
	}
}

func TestGridHasForegroundAndBackground(t *testing.T) {
	g := Grid(200, 200, 16, 16)
	black, white := 0, 0
	for _, v := range g {
		if v == 0 {
			black++
		} else {
			white++
		}
	}
	if black == 0 {
		t.Fatal("grid has no foreground pixels")
	}
	if white == 0 {
		t.Fatal("grid has no background pixels separating the cells")
	}
}

func TestAllCasesProduceCorrectlySizedBuffers(t *testing.T) {
	for category, cases := range All {
		for _, c := range cases {
			g := c.Generate()
			if len(g) != c.Width*c.Height {
				t.Errorf("%s/%s: buffer length %d, want %d", category, c.Name, len(g), c.Width*c.Height)
			}
		}
	}
}
