// SPDX-License-Identifier: MIT

// Package charnet extracts a social network of characters from narrative
// text: who the characters are, how often they appear together, and whether
// the sentences they share read friendly or hostile.
//
// The work is organized into small packages, each usable on its own:
//
//	segment/    - text cleanup (Normalize) and sentence splitting (PunktSegmenter, RuleSegmenter)
//	names/      - candidate extraction, Aggregate (noise filter), TopNames (ranking)
//	sentiment/  - sentence scorers (VADER, AFINN-style lexicon) and AlignRate
//	matrix/     - row-major Dense storage and the kernels the builder needs
//	cooccur/    - presence matrix, co-occurrence and sentiment pair matrices
//	projection/ - weighted, colored edge lists and core.Graph networks
//	core/       - thread-safe character Graph
//	gexf/       - GEXF 1.2 export for Gephi / networkx
//	pipeline/   - end-to-end run with logging, tracing and metrics
//	config/     - viper + .env configuration, slog logger construction
//
// Quick example:
//
//	p, _ := pipeline.New(names.CapitalizedExtractor{})
//	res, _ := p.Run(ctx, text)
//	edges, _ := res.Edges(projection.ModeSentiment)
//
// The matrices are strictly lower-triangular: each unordered pair of
// characters is stored once, and a character is never paired with itself.
//
// See examples/character_network for a runnable walkthrough.
package charnet
