// SPDX-License-Identifier: MIT

// Package projection turns a pair matrix into a weighted, colored edge list
// and into a renderable core.Graph.
//
// Every cell is first normalized by the matrix-wide maximum magnitude,
// m = value / max|value|, then mapped by Mode:
//
//	co-occurrence  weight = ln(2000m + 1) × 0.7    color = ln(2000m + 1)
//	sentiment      weight = ln(|1000m| + 1) × 0.7  color = 2000m
//	bare           as sentiment, keeping only weight > 0.0001
//
// The logarithm compresses the long tail of pair counts so that a handful of
// dominant pairs do not hide the rest of the network; the sentiment color
// keeps its sign so a diverging color scale separates friends from foes.
//
// Only the strict lower triangle is visited (row-major, i > j): the builder
// stores each unordered pair there exactly once.
package projection
