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

import (
	"math"
	"testing"
)

func TestJacobiEigenDiagonal(t *testing.T) {
	// A diagonal matrix is already in eigenbasis: eigenvalues are the
	// diagonal entries themselves, eigenvectors the standard basis.
	m := symMatrix3{
		{5, 0, 0},
		{0, 3, 0},
		{0, 0, 1},
	}

	values, _, ok := jacobiEigen3(m)
	if !ok {
		t.Fatal("jacobiEigen3 did not converge on a diagonal matrix")
	}

	want := [3]float64{5, 3, 1}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-9 {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestJacobiEigenSymmetric2x2Block(t *testing.T) {
	// [[2,1,0],[1,2,0],[0,0,0]] has eigenvalues 3, 1, 0 with eigenvectors
	// (1,1,0)/sqrt2, (1,-1,0)/sqrt2, (0,0,1).
	m := symMatrix3{
		{2, 1, 0},
		{1, 2, 0},
		{0, 0, 0},
	}

	values, vectors, ok := jacobiEigen3(m)
	if !ok {
		t.Fatal("jacobiEigen3 did not converge")
	}

	wantValues := [3]float64{3, 1, 0}
	for i := range wantValues {
		if math.Abs(values[i]-wantValues[i]) > 1e-9 {
			t.Errorf("values[%d] = %v, want %v", i, values[i], wantValues[i])
		}
	}

	// Reconstruct m from the eigendecomposition and compare: V * diag(d) * V^T == m.
	var recon symMatrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += vectors[i][k] * values[k] * vectors[j][k]
			}
			recon[i][j] = sum
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(recon[i][j]-m[i][j]) > 1e-9 {
				t.Errorf("reconstructed[%d][%d] = %v, want %v", i, j, recon[i][j], m[i][j])
			}
		}
	}
}

func TestJacobiEigenSignCanonicalization(t *testing.T) {
	m := symMatrix3{
		{2, 1, 0},
		{1, 2, 0},
		{0, 0, 0},
	}

	_, vectors, ok := jacobiEigen3(m)
	if !ok {
		t.Fatal("jacobiEigen3 did not converge")
	}

	for col := 0; col < 3; col++ {
		nonNeg := 0
		for row := 0; row < 3; row++ {
			if vectors[row][col] >= 0 {
				nonNeg++
			}
		}
		if nonNeg < 2 {
			t.Errorf("column %d has only %d of 3 components non-negative, want at least 2", col, nonNeg)
		}
	}
}
