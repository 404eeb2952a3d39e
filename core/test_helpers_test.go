// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for charnet/core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/charnet/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	Alice = "alice"
	Bob   = "bob"
	Carl  = "carl"
	Dana  = "dana"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.5
)

// NConcurrent is the goroutine fan-out used by concurrency tests.
const NConcurrent = 64

// vertexIDs extracts IDs in the returned order.
func vertexIDs(vs []*core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}

	return out
}

// triangle builds alice–bob–carl with distinct weights.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge(Alice, Bob, Weight1)
	require.NoError(t, err)
	_, err = g.AddEdge(Bob, Carl, Weight2, core.WithEdgeColor(-3))
	require.NoError(t, err)
	_, err = g.AddEdge(Carl, Alice, Weight1)
	require.NoError(t, err)

	return g
}
