// SPDX-License-Identifier: MIT

package projection_test

import (
	"testing"

	"github.com/katalvlaran/charnet/core"
	"github.com/katalvlaran/charnet/names"
	"github.com/katalvlaran/charnet/projection"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	vocab := names.Vocabulary{Names: trio, Frequencies: []int{10, 5, 1}}
	m := mustDense(t, [][]float64{
		{0, 0, 0},
		{4, 0, 0},
		{0, 0, 0},
	})

	g, err := projection.Graph(vocab, m, projection.ModeCooccurrence)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())

	vs := g.Vertices()
	require.Equal(t, "alice", vs[0].ID)
	require.Equal(t, 10, vs[0].Metadata[core.AttrFrequency])
	require.InDelta(t, 1.0, vs[0].Metadata[core.AttrSize], eps)
	require.InDelta(t, 0.1, vs[2].Metadata[core.AttrSize], eps)

	e, err := g.Edge("alice", "bob")
	require.NoError(t, err)
	require.Equal(t, "bob", e.From)

	edges, err := projection.EdgeList(m, projection.ModeCooccurrence, trio)
	require.NoError(t, err)
	require.InDelta(t, edges[0].Weight, e.Weight, eps)
	require.InDelta(t, edges[0].Color, e.Color, eps)

	nbs, err := g.Neighbors("carl")
	require.NoError(t, err)
	require.Empty(t, nbs)
}

func TestGraph_Errors(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 0}, {1, 0}})

	_, err := projection.Graph(names.Vocabulary{Names: []string{"a", "b"}, Frequencies: []int{1}}, m, projection.ModeBare)
	require.ErrorIs(t, err, projection.ErrInvalidInput)

	_, err = projection.Graph(names.Vocabulary{Names: []string{"a", "b"}, Frequencies: []int{1, 1}}, m, "x")
	require.ErrorIs(t, err, projection.ErrUnknownMode)
}
