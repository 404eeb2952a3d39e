// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktSegmenter splits text with the Punkt sentence tokenizer trained on
// English (abbreviations, collocations and sentence starters learned from a
// corpus rather than listed by hand).
//
// Punkt treats a lone capital letter before a period as a possible initial
// and may keep "...said I. Bob left." together; sentences are therefore
// broken again after the pronoun "I." when a capitalized word follows.
//
// Safe for concurrent use.
type PunktSegmenter struct {
	mu        sync.Mutex
	tokenizer *sentences.DefaultSentenceTokenizer
}

// Compile-time check.
var _ Segmenter = (*PunktSegmenter)(nil)

// NewPunktSegmenter loads the embedded English Punkt model.
//
// Errors:
//   - the model decoding error, wrapped.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("segment: loading punkt model: %w", err)
	}

	return &PunktSegmenter{tokenizer: t}, nil
}

// Segment splits text into trimmed, non-empty sentences in input order.
func (s *PunktSegmenter) Segment(text string) []string {
	s.mu.Lock()
	tokens := s.tokenizer.Tokenize(text)
	s.mu.Unlock()

	var out []string
	for _, t := range tokens {
		out = append(out, splitAfterPronoun(t.Text)...)
	}

	return out
}

// splitAfterPronoun breaks s after each standalone "I." (plus closing quotes
// or brackets) that is followed by whitespace and a capitalized word or an
// opening quote.
func splitAfterPronoun(s string) []string {
	runes := []rune(s)
	var out []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if runes[i] != '.' || runes[i-1] != 'I' {
			continue
		}
		if i >= 2 && !unicode.IsSpace(runes[i-2]) && !isOpener(runes[i-2]) {
			continue
		}
		end := i + 1
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}
		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == end || next == len(runes) {
			continue
		}
		if !unicode.IsUpper(runes[next]) && !isOpener(runes[next]) {
			continue
		}
		out = appendSentence(out, runes[start:end])
		start = end
		i = end - 1
	}

	return appendSentence(out, runes[start:])
}
