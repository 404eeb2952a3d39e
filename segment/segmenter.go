// SPDX-License-Identifier: MIT

package segment

import (
	"strings"
	"unicode"
)

// Segmenter splits text into an ordered sequence of sentences.
// Implementations must preserve order and be restartable (no hidden cursor).
type Segmenter interface {
	Segment(text string) []string
}

// SegmenterFunc adapts a plain function to Segmenter.
type SegmenterFunc func(text string) []string

// Segment calls f(text).
func (f SegmenterFunc) Segment(text string) []string { return f(text) }

// defaultAbbreviations are lowercase tokens (without the trailing dot) that do
// not end a sentence. Honorifics dominate in narrative text.
var defaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "st", "sr", "jr", "prof", "capt", "col",
	"gen", "lt", "rev", "hon", "mt", "vs", "etc", "e.g", "i.e",
}

// RuleSegmenter ends a sentence at '.', '!' or '?' (plus any closing quotes or
// brackets) when followed by whitespace, unless the word carrying the period
// is a known abbreviation or a single initial ("J. K. Rowling"). The pronoun
// "I" is never an initial. It is the dependency-free alternative to
// PunktSegmenter.
//
// The zero value is not usable; construct with NewRuleSegmenter.
type RuleSegmenter struct {
	abbreviations map[string]struct{}
}

// Compile-time check.
var _ Segmenter = (*RuleSegmenter)(nil)

// NewRuleSegmenter returns a segmenter with the default abbreviations plus
// any extra ones supplied (case-insensitive, without the trailing dot).
func NewRuleSegmenter(extraAbbreviations ...string) *RuleSegmenter {
	abbr := make(map[string]struct{}, len(defaultAbbreviations)+len(extraAbbreviations))
	for _, a := range defaultAbbreviations {
		abbr[a] = struct{}{}
	}
	for _, a := range extraAbbreviations {
		abbr[strings.TrimSuffix(strings.ToLower(a), ".")] = struct{}{}
	}

	return &RuleSegmenter{abbreviations: abbr}
}

// Segment splits text into trimmed, non-empty sentences in input order.
// Text without terminal punctuation yields a single sentence.
//
// Complexity: O(len(text)).
func (s *RuleSegmenter) Segment(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Swallow repeated terminals and closing quotes/brackets: `?!"` or `.)`.
		end := i + 1
		for end < len(runes) && (isTerminal(runes[end]) || isCloser(runes[end])) {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if runes[i] == '.' && s.isAbbreviation(runes[start:i]) {
			i = end - 1
			continue
		}
		out = appendSentence(out, runes[start:end])
		start = end
		i = end - 1
	}
	if start < len(runes) {
		out = appendSentence(out, runes[start:])
	}

	return out
}

// isAbbreviation reports whether the word right before a period is an
// abbreviation or a single-letter initial other than "I".
func (s *RuleSegmenter) isAbbreviation(prefix []rune) bool {
	j := len(prefix)
	for j > 0 && !unicode.IsSpace(prefix[j-1]) && !isOpener(prefix[j-1]) {
		j--
	}
	word := string(prefix[j:])
	if word == "" {
		return false
	}
	if w := []rune(word); len(w) == 1 {
		return unicode.IsUpper(w[0]) && w[0] != 'I'
	}
	_, ok := s.abbreviations[strings.ToLower(word)]

	return ok
}

func appendSentence(out []string, r []rune) []string {
	if s := strings.TrimSpace(string(r)); s != "" {
		out = append(out, s)
	}

	return out
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

func isCloser(r rune) bool { return r == '"' || r == '\'' || r == ')' || r == ']' }

func isOpener(r rune) bool { return r == '"' || r == '\'' || r == '(' || r == '[' }
