// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/charnet/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(Bob))
	require.NoError(t, g.AddVertex(Alice))
	require.NoError(t, g.AddVertex(Bob)) // idempotent
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, []string{Bob, Alice}, vertexIDs(g.Vertices()))
	require.True(t, g.HasVertex(Alice))
	require.False(t, g.HasVertex(Carl))
	require.False(t, g.HasVertex(VertexEmpty))
}

func TestVertexAttributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(Alice))
	require.NoError(t, g.SetVertexAttr(Alice, core.AttrFrequency, 7))
	require.ErrorIs(t, g.SetVertexAttr(Bob, core.AttrFrequency, 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetVertexAttr(VertexEmpty, core.AttrFrequency, 1), core.ErrEmptyVertexID)

	v, err := g.Vertex(Alice)
	require.NoError(t, err)
	require.Equal(t, 7, v.Metadata[core.AttrFrequency])

	// Returned vertices are copies.
	v.Metadata[core.AttrFrequency] = 0
	v, err = g.Vertex(Alice)
	require.NoError(t, err)
	require.Equal(t, 7, v.Metadata[core.AttrFrequency])

	_, err = g.Vertex(Bob)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge(t *testing.T) {
	g := triangle(t)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())

	// Undirected: both orders resolve to the same edge.
	require.True(t, g.HasEdge(Carl, Bob))
	e, err := g.Edge(Carl, Bob)
	require.NoError(t, err)
	require.Equal(t, "e2", e.ID)
	require.Equal(t, Bob, e.From)
	require.Equal(t, Weight2, e.Weight)
	require.Equal(t, -3.0, e.Color)

	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, []string{"e1", "e2", "e3"}, []string{edges[0].ID, edges[1].ID, edges[2].ID})
}

func TestAddEdge_Errors(t *testing.T) {
	g := triangle(t)

	_, err := g.AddEdge(Alice, VertexEmpty, Weight1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge(Alice, Alice, Weight1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(Bob, Alice, Weight1)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge(Alice, Dana, math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge(Alice, Dana, Weight1, core.WithEdgeColor(math.Inf(1)))
	require.ErrorIs(t, err, core.ErrBadWeight)

	// Failed adds leave no trace.
	require.False(t, g.HasVertex(Dana))
	require.Equal(t, 3, g.EdgeCount())

	_, err = g.Edge(Alice, Dana)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestNeighborsAndStrength(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex(Dana))

	nbs, err := g.Neighbors(Carl)
	require.NoError(t, err)
	require.Equal(t, []string{Bob, Alice}, nbs)

	nbs, err = g.Neighbors(Dana)
	require.NoError(t, err)
	require.Empty(t, nbs)

	_, err = g.Neighbors("nobody")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	s, err := g.Strength(Bob)
	require.NoError(t, err)
	require.InDelta(t, Weight1+Weight2, s, 1e-12)

	_, err = g.Strength("nobody")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
