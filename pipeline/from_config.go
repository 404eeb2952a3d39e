// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"os"

	"github.com/katalvlaran/charnet/config"
	"github.com/katalvlaran/charnet/names"
	"github.com/katalvlaran/charnet/segment"
	"github.com/katalvlaran/charnet/sentiment"
)

// NewFromConfig builds a pipeline from loaded configuration: it reads the
// blocklist and lexicon files the config points to and picks the segmenter
// and the scorer.
// opts are applied after the config values and override them.
//
// Errors:
//   - file and decode errors for blocklist_path / lexicon_path;
//   - an unknown segmenter or sentiment scorer; every New error.
func NewFromConfig(cfg *config.Config, extractor names.Extractor, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("NewFromConfig: nil config: %w", ErrInvalidOption)
	}

	base := []Option{
		WithThresholdRate(cfg.Pipeline.ThresholdRate),
		WithTopNum(cfg.Pipeline.TopNum),
		WithWorkers(max(cfg.Pipeline.Workers, 1)),
		WithMinLength(cfg.Names.MinLength),
	}

	if cfg.Names.BlocklistPath != "" {
		b, err := loadBlocklist(cfg.Names.BlocklistPath)
		if err != nil {
			return nil, err
		}
		base = append(base, WithBlocklist(b))
	}

	switch cfg.Pipeline.Segmenter {
	case "", config.SegmenterPunkt:
		// New defaults to Punkt.
	case config.SegmenterRule:
		base = append(base, WithSegmenter(segment.NewRuleSegmenter()))
	default:
		return nil, fmt.Errorf("NewFromConfig: segmenter %q: %w", cfg.Pipeline.Segmenter, ErrInvalidOption)
	}

	switch cfg.Sentiment.Scorer {
	case "", config.ScorerVader:
		// New defaults to VADER.
	case config.ScorerLexicon:
		l, err := loadLexicon(cfg.Sentiment.LexiconPath)
		if err != nil {
			return nil, err
		}
		base = append(base, WithScorer(l))
	default:
		return nil, fmt.Errorf("NewFromConfig: sentiment scorer %q: %w", cfg.Sentiment.Scorer, ErrInvalidOption)
	}

	return New(extractor, append(base, opts...)...)
}

func loadBlocklist(path string) (*names.Blocklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: blocklist: %w", err)
	}
	defer f.Close()

	b, err := names.LoadBlocklist(f)
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: %s: %w", path, err)
	}

	return b, nil
}

func loadLexicon(path string) (*sentiment.LexiconScorer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: lexicon: %w", err)
	}
	defer f.Close()

	l, err := sentiment.LoadLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: %s: %w", path, err)
	}

	return l, nil
}
