// SPDX-License-Identifier: MIT

package names

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinLength is the shortest name word kept by NormalizeCandidates.
// Shorter words are mostly recognition noise ("Mr", "I", "Al").
const DefaultMinLength = 3

// Extractor returns the candidate proper-noun strings of one sentence.
// The list may be empty and carries no ordering guarantee. Implementations
// wrapping an NER model are loaded once and reused across sentences; they must
// be safe for concurrent use if the pipeline runs with more than one worker.
type Extractor interface {
	Extract(ctx context.Context, sentence string) ([]string, error)
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(ctx context.Context, sentence string) ([]string, error)

// Extract calls f(ctx, sentence).
func (f ExtractorFunc) Extract(ctx context.Context, sentence string) ([]string, error) {
	return f(ctx, sentence)
}

// CandidateFilter configures NormalizeCandidates.
type CandidateFilter struct {
	// MinLength drops words shorter than this many runes; <= 0 means DefaultMinLength.
	MinLength int
	// Blocklist drops common words; nil blocks nothing.
	Blocklist *Blocklist
}

// NormalizeCandidates turns raw surface forms into name words:
//
//   - fold to lowercase and strip possessive "'s",
//   - split multi-word names ("Harry Potter" → "harry", "potter"),
//   - drop words shorter than MinLength and blocklisted words.
//
// Order follows the input; duplicates are kept because Aggregate counts them.
func NormalizeCandidates(raw []string, f CandidateFilter) []string {
	minLen := f.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	out := make([]string, 0, len(raw))
	for _, cand := range raw {
		for _, w := range strings.FieldsFunc(Fold(cand), isNameSeparator) {
			w = strings.Trim(strings.TrimSuffix(w, "'s"), "'-")
			if utf8.RuneCountInString(w) < minLen || f.Blocklist.Contains(w) {
				continue
			}
			out = append(out, w)
		}
	}

	return out
}

// isNameSeparator splits on anything that cannot be part of a name word.
func isNameSeparator(r rune) bool {
	return !(isWordRune(r) || r == '-' || r == '\'')
}

// CapitalizedExtractor is a dependency-free proper-noun heuristic: every word
// that starts with an upper-case letter is a candidate. Sentence-initial common
// words ("The", "Then") are removed later by the blocklist.
type CapitalizedExtractor struct{}

// Compile-time check.
var _ Extractor = CapitalizedExtractor{}

// Extract returns the capitalized words of sentence in order.
func (CapitalizedExtractor) Extract(ctx context.Context, sentence string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []string
	for _, w := range strings.FieldsFunc(sentence, isNameSeparator) {
		w = strings.Trim(w, "'-")
		if first, _ := utf8.DecodeRuneInString(w); unicode.IsUpper(first) {
			out = append(out, w)
		}
	}

	return out, nil
}

// GazetteerExtractor reports which of a fixed list of known names occur in a
// sentence (case-insensitive, word-bounded). Useful when the cast is known.
type GazetteerExtractor struct {
	names  []string // surface forms, as given
	folded []string // parallel folded forms
}

// Compile-time check.
var _ Extractor = (*GazetteerExtractor)(nil)

// NewGazetteerExtractor builds an extractor over the given known names.
// Empty names are ignored.
func NewGazetteerExtractor(known ...string) *GazetteerExtractor {
	g := &GazetteerExtractor{}
	for _, n := range known {
		if strings.TrimSpace(n) == "" {
			continue
		}
		g.names = append(g.names, n)
		g.folded = append(g.folded, Fold(n))
	}

	return g
}

// Extract returns every known name found in sentence, once per occurrence,
// in the order the names were registered.
func (g *GazetteerExtractor) Extract(ctx context.Context, sentence string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := Fold(sentence)
	var out []string
	for i, n := range g.folded {
		for c := CountOccurrences(s, n); c > 0; c-- {
			out = append(out, g.names[i])
		}
	}

	return out, nil
}
