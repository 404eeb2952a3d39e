// SPDX-License-Identifier: MIT

package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

// Scorer maps one sentence to a sentiment score (0 = neutral).
// Implementations are constructed once and reused for every sentence.
type Scorer interface {
	Score(sentence string) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(sentence string) float64

// Score calls f(sentence).
func (f ScorerFunc) Score(sentence string) float64 { return f(sentence) }

// VaderScorer scores sentences with the VADER rule-based model and returns
// the compound polarity in [-1, 1]. It is safe for concurrent use.
type VaderScorer struct {
	mu  sync.Mutex // the analyzer is not documented as goroutine-safe
	sia *govader.SentimentIntensityAnalyzer
}

// Compile-time check.
var _ Scorer = (*VaderScorer)(nil)

// NewVaderScorer loads the embedded VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score of sentence.
func (v *VaderScorer) Score(sentence string) float64 {
	v.mu.Lock()
	scores := v.sia.PolarityScores(sentence)
	v.mu.Unlock()

	return scores.Compound
}
