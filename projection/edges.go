// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/charnet/matrix"
)

// Edge is one projected relation. Source is the row name (names[i]) and
// Target the column name (names[j]) of a lower-triangle cell, i > j.
type Edge struct {
	Source string
	Target string
	Weight float64
	Color  float64
}

// EdgeList projects the strict lower triangle of m into edges.
//
// Implementation:
//   - Stage 1: validate mode, shape, names and (co-occurrence) sign.
//   - Stage 2: max = matrix.MaxAbs(m); an all-zero matrix is rejected.
//   - Stage 3: visit i = 1..K-1, j = 0..i-1 and emit every nonzero cell
//     through Mode.transform.
//
// Behavior highlights:
//   - Pure: the same input always yields the same list, in the same order.
//   - Cells above the diagonal and on it are ignored.
//
// Errors:
//   - ErrUnknownMode; ErrInvalidInput (non-square, len(names) != K, all-zero,
//     negative cell with ModeCooccurrence); matrix errors wrapped.
//
// Complexity:
//   - Time O(K²), Space O(E).
func EdgeList(m matrix.Matrix, mode Mode, names []string) ([]Edge, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("EdgeList: %q: %w", string(mode), ErrUnknownMode)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("EdgeList: %v: %w", err, ErrInvalidInput)
	}
	k := m.Rows()
	if len(names) != k {
		return nil, fmt.Errorf("EdgeList: %d names for order %d: %w", len(names), k, ErrInvalidInput)
	}

	peak, err := matrix.MaxAbs(m)
	if err != nil {
		return nil, fmt.Errorf("EdgeList: %w", err)
	}
	if peak == 0 {
		return nil, fmt.Errorf("EdgeList: all-zero matrix: %w", ErrInvalidInput)
	}

	if mode == ModeCooccurrence {
		if err = requireNonNegative(m); err != nil {
			return nil, err
		}
	}

	var out []Edge
	var v float64
	for i := 1; i < k; i++ {
		for j := 0; j < i; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("EdgeList: %w", err)
			}
			if v == 0 {
				continue
			}
			w, c, keep := mode.transform(v / peak)
			if !keep {
				continue
			}
			out = append(out, Edge{Source: names[i], Target: names[j], Weight: w, Color: c})
		}
	}

	return out, nil
}

func requireNonNegative(m matrix.Matrix) error {
	k := m.Rows()
	for i := 1; i < k; i++ {
		for j := 0; j < i; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("EdgeList: %w", err)
			}
			if v < 0 {
				return fmt.Errorf("EdgeList: negative count %v at (%d,%d): %w", v, i, j, ErrInvalidInput)
			}
		}
	}

	return nil
}
