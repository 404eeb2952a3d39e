// SPDX-License-Identifier: MIT

// Package sentiment scores sentences and derives the corpus alignment rate.
//
// A Scorer maps one sentence to a real number: positive for favorable text,
// negative for unfavorable, 0 for neutral. Two implementations ship with the
// package:
//
//   - VaderScorer wraps github.com/jonreiter/govader and returns the VADER
//     compound score in [-1, 1].
//   - LexiconScorer sums integer word valences from an AFINN-style lexicon,
//     so its scores are unbounded integers.
//
// AlignRate turns the per-sentence scores into the single correction term the
// co-occurrence builder adds to every pair:
//
//	align = sum(scores) / count(scores != 0) × -2
//
// The factor -2 moves pair sentiment against the corpus-wide mean so that a
// uniformly positive (or negative) narrative does not paint every relation
// the same color.
package sentiment
