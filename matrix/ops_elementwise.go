// SPDX-License-Identifier: MIT
// Package matrix: shaping kernels for pair matrices.
//
// Pair matrices (name × name) are symmetric by construction; consumers store
// each unordered pair exactly once in the strict lower triangle. The kernels
// here build that representation as new values rather than zeroing cells of a
// shared matrix in place.

package matrix

import "math"

const (
	opScaleRows   = "ScaleRows"
	opStrictLower = "StrictLower"
	opMaxAbs      = "MaxAbs"
)

// ScaleRows computes out[i,j] = X[i,j] * scale[i], i.e. diag(scale)·X.
//
// Errors:
//   - ErrNilMatrix for nil X or nil scale; ErrDimensionMismatch if len(scale) != Rows(X).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Deterministic i→j loops.
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			sf := scale[i]
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleRows, e)
			}
			if e = out.Set(i, j, v*sf); e != nil {
				return nil, matrixErrorf(opScaleRows, e)
			}
		}
	}

	return out, nil
}

// StrictLower returns a copy of the square matrix m keeping only cells with
// i > j; the diagonal and the upper triangle are zero.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: allocate a zero Dense and copy the strict lower triangle row by row.
//
// Behavior highlights:
//   - The input is never mutated, so one source product can feed several
//     derived matrices without aliasing.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func StrictLower(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opStrictLower, err)
	}
	n := m.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opStrictLower, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 1; i < n; i++ {
			base := i * n
			copy(out.data[base:base+i], d.data[base:base+i])
		}

		return out, nil
	}

	var v float64
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opStrictLower, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opStrictLower, err)
			}
		}
	}

	return out, nil
}

// MaxAbs returns max |m[i,j]| over all cells (0 for an all-zero matrix).
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf if a cell is NaN (the maximum would be undefined).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	best := 0.0
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opMaxAbs, err)
			}
			if math.IsNaN(v) {
				return 0, matrixErrorf(opMaxAbs, ErrNaNInf)
			}
			if a := math.Abs(v); a > best {
				best = a
			}
		}
	}

	return best, nil
}
