// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/charnet/cooccur"
	"github.com/katalvlaran/charnet/core"
	"github.com/katalvlaran/charnet/matrix"
	"github.com/katalvlaran/charnet/names"
	"github.com/katalvlaran/charnet/projection"
	"github.com/katalvlaran/charnet/segment"
	"github.com/katalvlaran/charnet/sentiment"
)

// Pipeline is a configured, reusable extraction run. It holds no per-run
// state; Run may be called concurrently if the collaborators allow it.
type Pipeline struct {
	segmenter segment.Segmenter
	extractor names.Extractor
	scorer    sentiment.Scorer

	filter        names.CandidateFilter
	thresholdRate float64
	topNum        int
	workers       int

	logger *slog.Logger
}

// Result is the output of one run.
type Result struct {
	Sentences  []string
	Scores     []float64
	Candidates []string // aggregated names, first-seen order
	Vocabulary names.Vocabulary
	AlignRate  float64
	Matrices   *cooccur.Matrices
}

// defaultSegmenter loads the Punkt model once per process.
var defaultSegmenter = sync.OnceValues(segment.NewPunktSegmenter)

// New builds a pipeline around extractor. Without options it segments with
// segment.PunktSegmenter, scores with sentiment.VaderScorer and uses the
// default rate, top_num and a single worker.
//
// Errors:
//   - ErrNilCollaborator, ErrInvalidOption; the Punkt model error.
func New(extractor names.Extractor, opts ...Option) (*Pipeline, error) {
	if extractor == nil {
		return nil, fmt.Errorf("New: extractor: %w", ErrNilCollaborator)
	}
	p := &Pipeline{
		extractor:     extractor,
		thresholdRate: names.DefaultThresholdRate,
		topNum:        names.DefaultTopNum,
		workers:       1,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.segmenter == nil {
		s, err := defaultSegmenter()
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		p.segmenter = s
	}
	if p.scorer == nil {
		p.scorer = sentiment.NewVaderScorer()
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.workers < 1 {
		return nil, fmt.Errorf("New: workers %d: %w", p.workers, ErrInvalidOption)
	}
	if p.topNum < 1 {
		return nil, fmt.Errorf("New: top_num %d: %w", p.topNum, ErrInvalidOption)
	}

	return p, nil
}

// Run extracts the character network of text.
//
// Implementation:
//   - Stage 1: Normalize, then Segment into sentences.
//   - Stage 2: Extract candidates per sentence (fan-out), normalize them,
//     Aggregate, then rank the survivors with TopNames over the normalized text.
//   - Stage 3: Score every sentence (fan-out) and compute the AlignRate.
//   - Stage 4: Build the co-occurrence and sentiment matrices.
//
// Errors:
//   - ctx.Err() when cancelled; ErrNoNames when no candidate survives;
//     the wrapped stage errors of names, sentiment and cooccur. No partial
//     Result is returned on error.
func (p *Pipeline) Run(ctx context.Context, text string) (_ *Result, err error) {
	start := time.Now()
	ctx, span := startRunSpan(ctx, len(text))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		recordRunMetrics(ctx, time.Since(start), err == nil)
	}()

	res := &Result{}

	corpus := segment.Normalize(text)
	res.Sentences = p.segmenter.Segment(corpus)
	p.logger.Debug("segmented", "sentences", len(res.Sentences))

	if res.Candidates, res.Vocabulary, err = p.selectNames(ctx, corpus, res.Sentences); err != nil {
		return nil, err
	}

	if res.Scores, res.AlignRate, err = p.score(ctx, res.Sentences); err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	_, buildSpan := startStageSpan(ctx, "Build")
	res.Matrices, err = cooccur.Build(res.Vocabulary.Names, res.Sentences, res.Scores, res.AlignRate)
	buildSpan.End()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	setRunSpanResult(span, res)
	p.logger.Info("network extracted",
		"sentences", len(res.Sentences),
		"names", res.Vocabulary.Len(),
		"align_rate", res.AlignRate,
		"elapsed", time.Since(start),
	)

	return res, nil
}

func (p *Pipeline) selectNames(ctx context.Context, corpus string, sentences []string) ([]string, names.Vocabulary, error) {
	ctx, span := startStageSpan(ctx, "SelectNames")
	defer span.End()

	perSentence, err := fanOut(ctx, p.workers, len(sentences), func(ctx context.Context, i int) ([]string, error) {
		raw, err := p.extractor.Extract(ctx, sentences[i])
		if err != nil {
			return nil, fmt.Errorf("extract sentence %d: %w", i, err)
		}
		return names.NormalizeCandidates(raw, p.filter), nil
	})
	if err != nil {
		return nil, names.Vocabulary{}, fmt.Errorf("pipeline: %w", err)
	}

	extracted := 0
	for _, c := range perSentence {
		extracted += len(c)
	}
	if extracted == 0 && len(sentences) > 0 {
		p.logger.Warn("no name candidates extracted", "sentences", len(sentences))
	}

	candidates, err := names.Aggregate(perSentence,
		names.WithThresholdRate(p.thresholdRate),
		names.WithBlocklist(p.filter.Blocklist),
	)
	if err != nil {
		return nil, names.Vocabulary{}, fmt.Errorf("pipeline: %w", err)
	}
	p.logger.Debug("aggregated", "extracted", extracted, "candidates", len(candidates))
	if len(candidates) == 0 {
		return nil, names.Vocabulary{}, ErrNoNames
	}

	vocab, err := names.TopNames(candidates, corpus, p.topNum)
	if err != nil {
		return nil, names.Vocabulary{}, fmt.Errorf("pipeline: %w", err)
	}
	if vocab.Len() < p.topNum {
		p.logger.Warn("top_num exceeds candidate count; vocabulary clamped",
			"top_num", p.topNum, "names", vocab.Len())
	}

	return candidates, vocab, nil
}

func (p *Pipeline) score(ctx context.Context, sentences []string) ([]float64, float64, error) {
	ctx, span := startStageSpan(ctx, "Score")
	defer span.End()

	scores, err := fanOut(ctx, p.workers, len(sentences), func(_ context.Context, i int) (float64, error) {
		return p.scorer.Score(sentences[i]), nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline: %w", err)
	}

	align, err := sentiment.AlignRate(scores)
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline: %w", err)
	}
	p.logger.Debug("scored", "sentences", len(scores), "align_rate", align)

	return scores, align, nil
}

// fanOut calls fn for i in [0, n) on at most workers goroutines and returns
// the results by index. The first error cancels the remaining calls.
func fanOut[T any](ctx context.Context, workers, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Edges projects the matrix matching mode: co-occurrence counts for
// projection.ModeCooccurrence, the sentiment matrix otherwise.
func (r *Result) Edges(mode projection.Mode) ([]projection.Edge, error) {
	return projection.EdgeList(r.matrixFor(mode), mode, r.Vocabulary.Names)
}

// Graph renders the network for mode as a core.Graph.
func (r *Result) Graph(mode projection.Mode) (*core.Graph, error) {
	return projection.Graph(r.Vocabulary, r.matrixFor(mode), mode)
}

func (r *Result) matrixFor(mode projection.Mode) *matrix.Dense {
	if mode == projection.ModeCooccurrence {
		return r.Matrices.Cooccurrence
	}

	return r.Matrices.Sentiment
}
