// SPDX-License-Identifier: MIT

package names

import (
	"fmt"
	"sort"
)

// DefaultTopNum is the default vocabulary size.
const DefaultTopNum = 20

// Vocabulary is the ordered, frozen set of top names and their corpus
// frequencies. Index position is the identity used by every pair matrix.
type Vocabulary struct {
	Names       []string
	Frequencies []int
}

// Len returns the vocabulary size K.
func (v Vocabulary) Len() int { return len(v.Names) }

// Index returns the position of name, or (-1, false).
func (v Vocabulary) Index(name string) (int, bool) {
	for i, n := range v.Names {
		if n == name {
			return i, true
		}
	}

	return -1, false
}

// MaxFrequency returns the largest frequency (0 for an empty vocabulary).
func (v Vocabulary) MaxFrequency() int {
	best := 0
	for _, f := range v.Frequencies {
		if f > best {
			best = f
		}
	}

	return best
}

// TopNames ranks candidates by their frequency in the whole corpus and keeps
// the first topNum.
//
// Implementation:
//   - Stage 1: reject topNum <= 0 (ErrInvalidInput).
//   - Stage 2: dedupe candidates (first occurrence wins) and count each one in
//     the folded corpus with CountOccurrences.
//   - Stage 3: stable sort by frequency descending; ties keep input order.
//   - Stage 4: truncate to min(topNum, |candidates|).
//
// Behavior highlights:
//   - Asking for more names than exist is not an error: the result is clamped.
//     Callers compare Len() with topNum to report it.
//
// Complexity:
//   - Time O(|candidates| · len(corpus)), Space O(|candidates|).
func TopNames(candidates []string, corpus string, topNum int) (Vocabulary, error) {
	if topNum <= 0 {
		return Vocabulary{}, fmt.Errorf("TopNames: top_num %d: %w", topNum, ErrInvalidInput)
	}

	folded := Fold(corpus)
	type ranked struct {
		name string
		freq int
	}
	seen := make(map[string]struct{}, len(candidates))
	rows := make([]ranked, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		rows = append(rows, ranked{name: c, freq: CountOccurrences(folded, Fold(c))})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].freq > rows[j].freq })
	if len(rows) > topNum {
		rows = rows[:topNum]
	}

	vocab := Vocabulary{
		Names:       make([]string, len(rows)),
		Frequencies: make([]int, len(rows)),
	}
	for i, r := range rows {
		vocab.Names[i] = r.name
		vocab.Frequencies[i] = r.freq
	}

	return vocab, nil
}
