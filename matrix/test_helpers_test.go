// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/charnet/matrix"
	"github.com/stretchr/testify/require"
)

// float tolerance used across matrix tests (avoid magic numbers in bodies).
const eps = 1e-12

// mustDense builds a Dense from a literal or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireMatrix compares every cell of m against want within eps.
func requireMatrix(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, eps, "cell (%d,%d)", i, j)
		}
	}
}

// opaque hides the concrete *Dense type so kernels take their generic path.
type opaque struct{ matrix.Matrix }
