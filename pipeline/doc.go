// SPDX-License-Identifier: MIT

// Package pipeline runs the character-network extraction end to end:
//
//	Normalize → Segment → Extract (per sentence) → NormalizeCandidates
//	  → Aggregate → TopNames → Score (per sentence) → AlignRate → cooccur.Build
//
// Collaborators (segmenter, extractor, scorer) are injected. The per-sentence
// collaborator calls may fan out across Workers goroutines; results land in
// index-addressed slices so sentence order never depends on scheduling. Every
// other stage is single-threaded.
//
// A Result keeps the matrices; edge lists and graphs are projected from it on
// demand with Result.Edges and Result.Graph.
//
// Observability: one "Pipeline.Run" span with a child span per stage, the
// counter charnet_pipeline_runs_total and the histogram
// charnet_pipeline_duration_seconds on the global OpenTelemetry providers, and
// slog lines through the logger given with WithLogger.
package pipeline
