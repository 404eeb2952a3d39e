// SPDX-License-Identifier: MIT

package projection_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/charnet/matrix"
	"github.com/katalvlaran/charnet/projection"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

var trio = []string{"alice", "bob", "carl"}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]projection.Mode{
		"co-occurrence": projection.ModeCooccurrence,
		" Sentiment ":   projection.ModeSentiment,
		"BARE":          projection.ModeBare,
	} {
		got, err := projection.ParseMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := projection.ParseMode("cooccurrence")
	require.ErrorIs(t, err, projection.ErrUnknownMode)
	require.Equal(t, "bare", projection.ModeBare.String())
}

func TestEdgeList_Cooccurrence(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 0, 0},
		{4, 0, 0},
		{0, 2, 0},
	})
	edges, err := projection.EdgeList(m, projection.ModeCooccurrence, trio)
	require.NoError(t, err)
	require.Len(t, edges, 2)

	// Row-major lower triangle: (1,0) then (2,1).
	require.Equal(t, "bob", edges[0].Source)
	require.Equal(t, "alice", edges[0].Target)
	require.InDelta(t, math.Log(2001)*0.7, edges[0].Weight, eps)
	require.InDelta(t, math.Log(2001), edges[0].Color, eps)

	require.Equal(t, "carl", edges[1].Source)
	require.Equal(t, "bob", edges[1].Target)
	require.InDelta(t, math.Log(1001)*0.7, edges[1].Weight, eps)
	require.InDelta(t, math.Log(1001), edges[1].Color, eps)
}

func TestEdgeList_Sentiment(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 0, 0},
		{-2, 0, 0},
		{1, 0.5, 0},
	})
	edges, err := projection.EdgeList(m, projection.ModeSentiment, trio)
	require.NoError(t, err)
	require.Len(t, edges, 3)

	want := []struct {
		src, dst string
		norm     float64
	}{
		{"bob", "alice", -1},
		{"carl", "alice", 0.5},
		{"carl", "bob", 0.25},
	}
	for i, w := range want {
		require.Equal(t, w.src, edges[i].Source)
		require.Equal(t, w.dst, edges[i].Target)
		require.InDelta(t, math.Log(math.Abs(1000*w.norm)+1)*0.7, edges[i].Weight, eps)
		require.InDelta(t, 2000*w.norm, edges[i].Color, eps)
	}
}

func TestEdgeList_BareDropsNegligibleWeights(t *testing.T) {
	// 1e-9 / 1 → ln(1e-6 + 1) × 0.7 ≈ 7e-7, below the 1e-4 cutoff.
	m := mustDense(t, [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1e-9, 0, 0},
	})
	edges, err := projection.EdgeList(m, projection.ModeBare, trio)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, "bob", edges[0].Source)

	// Sentiment mode keeps it.
	edges, err = projection.EdgeList(m, projection.ModeSentiment, trio)
	require.NoError(t, err)
	require.Len(t, edges, 2)
}

func TestEdgeList_IgnoresUpperTriangle(t *testing.T) {
	m := mustDense(t, [][]float64{
		{9, 9},
		{1, 9},
	})
	edges, err := projection.EdgeList(m, projection.ModeSentiment, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, "b", edges[0].Source)
	require.Equal(t, "a", edges[0].Target)
}

func TestEdgeList_Idempotent(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 0, 0},
		{3, 0, 0},
		{1, -7, 0},
	})
	first, err := projection.EdgeList(m, projection.ModeSentiment, trio)
	require.NoError(t, err)
	second, err := projection.EdgeList(m, projection.ModeSentiment, trio)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEdgeList_Errors(t *testing.T) {
	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	negative := mustDense(t, [][]float64{{0, 0}, {-1, 0}})
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	ok := mustDense(t, [][]float64{{0, 0}, {1, 0}})

	cases := []struct {
		name  string
		m     matrix.Matrix
		mode  projection.Mode
		names []string
		want  error
	}{
		{"all zero", zero, projection.ModeCooccurrence, trio, projection.ErrInvalidInput},
		{"unknown mode", ok, projection.Mode("heat"), []string{"a", "b"}, projection.ErrUnknownMode},
		{"non-square", rect, projection.ModeSentiment, []string{"a", "b"}, projection.ErrInvalidInput},
		{"names mismatch", ok, projection.ModeSentiment, trio, projection.ErrInvalidInput},
		{"negative count", negative, projection.ModeCooccurrence, []string{"a", "b"}, projection.ErrInvalidInput},
		{"nil matrix", nil, projection.ModeSentiment, nil, projection.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := projection.EdgeList(tc.m, tc.mode, tc.names)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, edges)
		})
	}

	// A negative sentiment cell is fine.
	_, err = projection.EdgeList(negative, projection.ModeSentiment, []string{"a", "b"})
	require.NoError(t, err)
}

func ExampleEdgeList() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0},
		{-0.5, 0},
	})
	edges, _ := projection.EdgeList(m, projection.ModeSentiment, []string{"harry", "draco"})
	for _, e := range edges {
		fmt.Printf("%s–%s weight=%.3f color=%.0f\n", e.Source, e.Target, e.Weight, e.Color)
	}
	// Output: draco–harry weight=4.836 color=-2000
}
