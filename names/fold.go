// SPDX-License-Identifier: MIT

package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lowercases s with Unicode-aware rules so that candidates, sentences and
// the corpus compare in one case.
func Fold(s string) string {
	// A Caser is stateful; a fresh one per call keeps Fold goroutine-safe.
	return cases.Lower(language.Und).String(s)
}

// isWordRune matches the \w class: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// CountOccurrences returns the number of non-overlapping occurrences of needle
// in haystack that start and end on a word boundary. Both arguments are
// expected to be folded already (see Fold); an empty needle counts 0.
//
// Word-bounded matching keeps "ann" from counting inside "anne" or "joanna".
//
// Complexity: O(len(haystack)) amortized.
func CountOccurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	count := 0
	offset := 0
	for offset <= len(haystack)-len(needle) {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(needle)
		if atWordBoundary(haystack, start, end) {
			count++
			offset = end
			continue
		}
		// Advance one rune past the rejected match start.
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
	}

	return count
}

// Contains reports whether needle occurs in haystack at word boundaries.
func Contains(haystack, needle string) bool {
	return CountOccurrences(haystack, needle) > 0
}

func atWordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}

	return true
}
