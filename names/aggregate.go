// SPDX-License-Identifier: MIT

package names

import (
	"fmt"
	"math"
)

// DefaultThresholdRate is the minimum per-sentence extraction rate a name
// needs to survive aggregation (0.05% of sentences).
const DefaultThresholdRate = 0.0005

// AggregateOption configures Aggregate.
type AggregateOption func(*aggregateOptions)

type aggregateOptions struct {
	thresholdRate float64
	blocklist     *Blocklist
}

// WithThresholdRate overrides DefaultThresholdRate. Negative or non-finite
// rates are rejected by Aggregate with ErrInvalidInput.
func WithThresholdRate(rate float64) AggregateOption {
	return func(o *aggregateOptions) { o.thresholdRate = rate }
}

// WithBlocklist drops blocklisted words before counting.
func WithBlocklist(b *Blocklist) AggregateOption {
	return func(o *aggregateOptions) { o.blocklist = b }
}

// Aggregate deduplicates the candidate names extracted sentence by sentence and
// keeps those extracted at least thresholdRate × len(perSentence) times.
//
// Implementation:
//   - Stage 1: reject len(perSentence) == 0 and invalid rates (ErrInvalidInput).
//   - Stage 2: count every non-blocklisted candidate, remembering first-seen order.
//   - Stage 3: keep names with count ≥ threshold, in first-seen order.
//
// Inputs:
//   - perSentence: one candidate list per sentence; sentences without
//     candidates contribute an empty list and still count toward the total.
//
// Returns:
//   - []string: deduplicated surviving names (possibly empty).
//
// Errors:
//   - ErrInvalidInput.
//
// Complexity:
//   - Time O(total candidates), Space O(distinct candidates).
func Aggregate(perSentence [][]string, opts ...AggregateOption) ([]string, error) {
	o := aggregateOptions{thresholdRate: DefaultThresholdRate}
	for _, opt := range opts {
		opt(&o)
	}

	total := len(perSentence)
	if total == 0 {
		return nil, fmt.Errorf("Aggregate: zero sentences: %w", ErrInvalidInput)
	}
	if o.thresholdRate < 0 || math.IsNaN(o.thresholdRate) || math.IsInf(o.thresholdRate, 0) {
		return nil, fmt.Errorf("Aggregate: threshold rate %v: %w", o.thresholdRate, ErrInvalidInput)
	}

	counts := make(map[string]int)
	var order []string
	for _, cands := range perSentence {
		for _, c := range cands {
			if c == "" || o.blocklist.Contains(c) {
				continue
			}
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c]++
		}
	}

	threshold := o.thresholdRate * float64(total)
	out := make([]string, 0, len(order))
	for _, c := range order {
		if float64(counts[c]) >= threshold {
			out = append(out, c)
		}
	}

	return out, nil
}
