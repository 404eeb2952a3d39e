// SPDX-License-Identifier: MIT

package sentiment

import "fmt"

// AlignFactor scales the mean nonzero score into the alignment rate.
const AlignFactor = -2.0

// AlignRate returns sum(scores) / count(nonzero scores) × AlignFactor.
//
// Zero scores are neutral sentences: they count toward the sum (adding
// nothing) but not toward the divisor.
//
// Errors:
//   - ErrInvalidInput if scores is empty or every score is zero.
//
// Complexity:
//   - Time O(n), Space O(1).
func AlignRate(scores []float64) (float64, error) {
	var sum float64
	nonzero := 0
	for _, s := range scores {
		sum += s
		if s != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		return 0, fmt.Errorf("AlignRate: %d scores, none nonzero: %w", len(scores), ErrInvalidInput)
	}

	return sum / float64(nonzero) * AlignFactor, nil
}
