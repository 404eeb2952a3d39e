// SPDX-License-Identifier: MIT

package cooccur

import (
	"fmt"
	"math"

	"github.com/katalvlaran/charnet/matrix"
	"github.com/katalvlaran/charnet/names"
)

// Matrices holds the K×K strict-lower-triangular pair matrices of one run.
// Row/column k of both matrices is Names[k].
type Matrices struct {
	Names        []string
	Cooccurrence *matrix.Dense
	Sentiment    *matrix.Dense
}

// PresenceMatrix returns the N×K binary matrix P with P[s,i] = 1 iff vocab[i]
// occurs in sentences[s]. Matching is case-insensitive and word-bounded, the
// same rule names.TopNames counts with, so a pair count never exceeds either
// name's corpus frequency.
//
// Errors:
//   - ErrInvalidInput for an empty vocabulary or zero sentences.
//
// Complexity:
//   - Time O(N·K·L) for average sentence length L, Space O(N·K).
func PresenceMatrix(vocab []string, sentences []string) (*matrix.Dense, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("PresenceMatrix: empty vocabulary: %w", ErrInvalidInput)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("PresenceMatrix: zero sentences: %w", ErrInvalidInput)
	}

	folded := make([]string, len(vocab))
	for i, n := range vocab {
		folded[i] = names.Fold(n)
	}

	P, err := matrix.NewDense(len(sentences), len(vocab))
	if err != nil {
		return nil, fmt.Errorf("PresenceMatrix: %w", err)
	}
	for s, sentence := range sentences {
		fs := names.Fold(sentence)
		for i, n := range folded {
			if !names.Contains(fs, n) {
				continue
			}
			if err = P.Set(s, i, 1); err != nil {
				return nil, fmt.Errorf("PresenceMatrix: %w", err)
			}
		}
	}

	return P, nil
}

// Build computes the co-occurrence and sentiment matrices for vocab over
// sentences.
//
// Implementation:
//   - Stage 1: validate every input; nothing is allocated on failure.
//   - Stage 2: P = PresenceMatrix(vocab, sentences), Pt = Pᵀ.
//   - Stage 3: C = Pt·P; S = Pt·(diag(scores)·P) + alignRate·C.
//   - Stage 4: return StrictLower(C) and StrictLower(S).
//
// Inputs:
//   - vocab: K ≥ 1 names in canonical order.
//   - sentences, scores: parallel slices of length N ≥ 1.
//   - alignRate: finite correction term (see sentiment.AlignRate).
//
// Errors:
//   - ErrInvalidInput; matrix errors wrapped with "Build".
//
// Complexity:
//   - Time O(N·K²) for the products (zero rows of P are skipped), Space O(N·K + K²).
func Build(vocab []string, sentences []string, scores []float64, alignRate float64) (*Matrices, error) {
	if err := validate(vocab, sentences, scores, alignRate); err != nil {
		return nil, err
	}

	P, err := PresenceMatrix(vocab, sentences)
	if err != nil {
		return nil, err
	}
	Pt, err := matrix.Transpose(P)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	cooc, err := matrix.Mul(Pt, P)
	if err != nil {
		return nil, fmt.Errorf("Build: co-occurrence: %w", err)
	}

	weighted, err := matrix.ScaleRows(P, scores)
	if err != nil {
		return nil, fmt.Errorf("Build: sentiment: %w", err)
	}
	raw, err := matrix.Mul(Pt, weighted)
	if err != nil {
		return nil, fmt.Errorf("Build: sentiment: %w", err)
	}
	aligned, err := matrix.Scale(cooc, alignRate)
	if err != nil {
		return nil, fmt.Errorf("Build: sentiment: %w", err)
	}
	sent, err := matrix.Add(raw, aligned)
	if err != nil {
		return nil, fmt.Errorf("Build: sentiment: %w", err)
	}

	out := &Matrices{Names: append([]string(nil), vocab...)}
	if out.Cooccurrence, err = matrix.StrictLower(cooc); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if out.Sentiment, err = matrix.StrictLower(sent); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return out, nil
}

func validate(vocab []string, sentences []string, scores []float64, alignRate float64) error {
	switch {
	case len(vocab) == 0:
		return fmt.Errorf("Build: empty vocabulary: %w", ErrInvalidInput)
	case len(sentences) == 0:
		return fmt.Errorf("Build: zero sentences: %w", ErrInvalidInput)
	case len(scores) != len(sentences):
		return fmt.Errorf("Build: %d scores for %d sentences: %w", len(scores), len(sentences), ErrInvalidInput)
	case !finite(alignRate):
		return fmt.Errorf("Build: align rate %v: %w", alignRate, ErrInvalidInput)
	}
	for i, s := range scores {
		if !finite(s) {
			return fmt.Errorf("Build: score[%d] = %v: %w", i, s, ErrInvalidInput)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// K returns the vocabulary size.
func (m *Matrices) K() int { return len(m.Names) }

// Pair returns the co-occurrence and sentiment values of the unordered pair
// {i, j}. Pair(i, i) is always (0, 0).
//
// Errors:
//   - matrix.ErrOutOfRange (wrapped) for an index outside [0, K).
func (m *Matrices) Pair(i, j int) (cooc, sent float64, err error) {
	if i < j {
		i, j = j, i
	}
	if cooc, err = m.Cooccurrence.At(i, j); err != nil {
		return 0, 0, fmt.Errorf("Pair: %w", err)
	}
	if sent, err = m.Sentiment.At(i, j); err != nil {
		return 0, 0, fmt.Errorf("Pair: %w", err)
	}

	return cooc, sent, nil
}
