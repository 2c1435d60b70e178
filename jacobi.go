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

const jacobiMaxSweeps = 50

// symMatrix3 is a 3x3 symmetric matrix, stored densely and kept
// symmetric (a[i][j] == a[j][i]) by every mutation in this file. The
// component covariance fed into jacobiEigen3 always has its third
// row/column zero; a 3x3 routine is used instead of a dedicated 2x2 one
// because the source algorithm's sign canonicalization needs a third
// component to examine (spec.md §4.7, §4.8).
type symMatrix3 [3][3]float64

// jacobiEigen3 runs cyclic Jacobi rotations on a copy of m until the
// off-diagonal magnitude reaches zero or jacobiMaxSweeps is exhausted. On
// success it returns eigenvalues and their eigenvectors (as columns of
// vectors), sorted by descending eigenvalue, with each column's sign
// canonicalized so that at least two of its three components are
// non-negative. ok is false if convergence was not reached within the
// sweep budget.
func jacobiEigen3(m symMatrix3) (values [3]float64, vectors [3][3]float64, ok bool) {
	a := m
	v := [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	d := [3]float64{a[0][0], a[1][1], a[2][2]}

	converged := false
	for sweep := 0; sweep < jacobiMaxSweeps && !converged; sweep++ {
		sm := math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
		if sm == 0 {
			converged = true
			break
		}

		var threshold float64
		if sweep < 3 {
			threshold = 0.2 * sm / 9
		}

		for ip := 0; ip < 2; ip++ {
			for iq := ip + 1; iq < 3; iq++ {
				jacobiRotate(&a, &v, &d, ip, iq, sweep, threshold)
			}
		}
	}
	if !converged {
		return [3]float64{}, [3][3]float64{}, false
	}

	vals, vecs := sortEigen(d, v)
	return vals, vecs, true
}

// jacobiRotate performs the single Givens rotation that annihilates
// a[ip][iq], following the convergence shortcuts of spec.md §4.8
// (floating point equality is deliberate, not a bug).
func jacobiRotate(a *symMatrix3, v *[3][3]float64, d *[3]float64, ip, iq, sweep int, threshold float64) {
	g := 100 * math.Abs(a[ip][iq])

	if sweep > 3 && d[ip]+g == d[ip] && d[iq]+g == d[iq] {
		a[ip][iq] = 0
		a[iq][ip] = 0
		return
	}
	if math.Abs(a[ip][iq]) <= threshold {
		return
	}

	h := d[iq] - d[ip]
	var t float64
	if math.Abs(h)+g == math.Abs(h) {
		t = a[ip][iq] / h
	} else {
		theta := 0.5 * h / a[ip][iq]
		t = 1 / (math.Abs(theta) + math.Sqrt(1+theta*theta))
		if theta < 0 {
			t = -t
		}
	}

	c := 1 / math.Sqrt(1+t*t)
	sn := t * c
	tau := sn / (1 + c)

	apq := a[ip][iq]
	d[ip] -= t * apq
	d[iq] += t * apq
	a[ip][iq] = 0
	a[iq][ip] = 0

	// r is the index other than ip, iq; update its coupling to both.
	r := 3 - ip - iq
	gr, hr := a[r][ip], a[r][iq]
	a[r][ip] = gr - sn*(hr+gr*tau)
	a[ip][r] = a[r][ip]
	a[r][iq] = hr + sn*(gr-hr*tau)
	a[iq][r] = a[r][iq]

	for i := 0; i < 3; i++ {
		gi, hi := v[i][ip], v[i][iq]
		v[i][ip] = gi - sn*(hi+gi*tau)
		v[i][iq] = hi + sn*(gi-hi*tau)
	}
}

// sortEigen sorts eigenpairs by descending eigenvalue and canonicalizes
// each eigenvector's sign so that at least two of its three components
// are non-negative (spec.md §4.8).
func sortEigen(d [3]float64, v [3][3]float64) ([3]float64, [3][3]float64) {
	order := [3]int{0, 1, 2}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if d[order[j]] > d[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	var values [3]float64
	var vectors [3][3]float64
	for col, src := range order {
		values[col] = d[src]

		nonNeg := 0
		for row := 0; row < 3; row++ {
			if v[row][src] >= 0 {
				nonNeg++
			}
		}
		sign := 1.0
		if nonNeg < 2 {
			sign = -1.0
		}
		for row := 0; row < 3; row++ {
			vectors[row][col] = sign * v[row][src]
		}
	}
	return values, vectors
}
