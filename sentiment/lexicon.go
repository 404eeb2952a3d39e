// SPDX-License-Identifier: MIT

package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LexiconScorer sums integer word valences (AFINN style): "good" = 3,
// "bad" = -3, unknown words 0. Multi-word entries ("does not work") are
// matched as consecutive tokens, longest first.
//
// A LexiconScorer is read-only after construction and safe for concurrent use.
type LexiconScorer struct {
	valence  map[string]int
	maxWords int // longest entry, in tokens
}

// Compile-time check.
var _ Scorer = (*LexiconScorer)(nil)

// NewLexiconScorer builds a scorer from a word → valence map. Keys are
// lowercased; keys with spaces are phrase entries.
func NewLexiconScorer(valence map[string]int) *LexiconScorer {
	l := &LexiconScorer{valence: make(map[string]int, len(valence)), maxWords: 1}
	for k, v := range valence {
		toks := tokenize(k)
		if len(toks) == 0 {
			continue
		}
		l.valence[strings.Join(toks, " ")] = v
		if len(toks) > l.maxWords {
			l.maxWords = len(toks)
		}
	}

	return l
}

// LoadLexicon reads the AFINN text format: one "<term>\t<integer>" per line.
// Blank lines and lines starting with '#' are skipped.
//
// Errors:
//   - ErrBadLexicon (wrapped with the line number) for a line without a tab
//     or with a non-integer valence; read errors from r.
func LoadLexicon(r io.Reader) (*LexiconScorer, error) {
	valence := make(map[string]int)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		idx := strings.LastIndexByte(text, '\t')
		if idx < 0 {
			return nil, fmt.Errorf("LoadLexicon: line %d: missing tab: %w", line, ErrBadLexicon)
		}
		v, err := strconv.Atoi(strings.TrimSpace(text[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("LoadLexicon: line %d: %v: %w", line, err, ErrBadLexicon)
		}
		valence[strings.TrimSpace(text[:idx])] = v
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadLexicon: %w", err)
	}

	return NewLexiconScorer(valence), nil
}

// Len returns the number of lexicon entries.
func (l *LexiconScorer) Len() int { return len(l.valence) }

// Score returns the summed valence of the sentence tokens.
func (l *LexiconScorer) Score(sentence string) float64 {
	toks := tokenize(sentence)
	total := 0
	for i := 0; i < len(toks); {
		n := l.maxWords
		if rest := len(toks) - i; n > rest {
			n = rest
		}
		matched := 1
		for ; n > 0; n-- {
			if v, ok := l.valence[strings.Join(toks[i:i+n], " ")]; ok {
				total += v
				matched = n
				break
			}
		}
		i += matched
	}

	return float64(total)
}

// tokenize lowercases s and splits it into word tokens; apostrophes stay
// inside words ("can't").
func tokenize(s string) []string {
	lower := cases.Lower(language.Und).String(s)

	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'')
	})
}
