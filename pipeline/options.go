// SPDX-License-Identifier: MIT

package pipeline

import (
	"log/slog"

	"github.com/katalvlaran/charnet/names"
	"github.com/katalvlaran/charnet/segment"
	"github.com/katalvlaran/charnet/sentiment"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSegmenter replaces the default segment.PunktSegmenter.
func WithSegmenter(s segment.Segmenter) Option {
	return func(p *Pipeline) { p.segmenter = s }
}

// WithScorer replaces the default sentiment.VaderScorer.
func WithScorer(s sentiment.Scorer) Option {
	return func(p *Pipeline) { p.scorer = s }
}

// WithBlocklist drops common words from the extracted candidates.
func WithBlocklist(b *names.Blocklist) Option {
	return func(p *Pipeline) { p.filter.Blocklist = b }
}

// WithMinLength sets the shortest kept name word (default names.DefaultMinLength).
func WithMinLength(n int) Option {
	return func(p *Pipeline) { p.filter.MinLength = n }
}

// WithThresholdRate sets the aggregation rate (default names.DefaultThresholdRate).
func WithThresholdRate(rate float64) Option {
	return func(p *Pipeline) { p.thresholdRate = rate }
}

// WithTopNum sets the vocabulary size (default names.DefaultTopNum).
func WithTopNum(n int) Option {
	return func(p *Pipeline) { p.topNum = n }
}

// WithWorkers bounds the collaborator fan-out (default 1).
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithLogger sets the logger (default: discard).
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}
