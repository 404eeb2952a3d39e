// SPDX-License-Identifier: MIT

package names_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/charnet/names"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCandidates(t *testing.T) {
	raw := []string{"Harry Potter", "Hermione's", "Mr", "The", "O'Sullivan", "Jean-Luc", "Al"}
	got := names.NormalizeCandidates(raw, names.CandidateFilter{Blocklist: names.NewBlocklist("the")})
	require.Equal(t, []string{"harry", "potter", "hermione", "o'sullivan", "jean-luc"}, got)

	// Duplicates survive; Aggregate counts them.
	got = names.NormalizeCandidates([]string{"Ann", "ann"}, names.CandidateFilter{})
	require.Equal(t, []string{"ann", "ann"}, got)

	got = names.NormalizeCandidates([]string{"Al"}, names.CandidateFilter{MinLength: 2})
	require.Equal(t, []string{"al"}, got)
}

func TestCapitalizedExtractor(t *testing.T) {
	got, err := names.CapitalizedExtractor{}.Extract(context.Background(), `"Well," said Harry to Ron's sister.`)
	require.NoError(t, err)
	require.Equal(t, []string{"Well", "Harry", "Ron's"}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = names.CapitalizedExtractor{}.Extract(ctx, "Harry")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGazetteerExtractor(t *testing.T) {
	g := names.NewGazetteerExtractor("Alice", "", "Bob")
	got, err := g.Extract(context.Background(), "ALICE saw bob and Alice.")
	require.NoError(t, err)
	require.Equal(t, []string{"Alice", "Alice", "Bob"}, got)
}

func TestExtractorFunc(t *testing.T) {
	var e names.Extractor = names.ExtractorFunc(func(_ context.Context, s string) ([]string, error) {
		return strings.Fields(s), nil
	})
	got, err := e.Extract(context.Background(), "a b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestLoadBlocklist(t *testing.T) {
	b, err := names.LoadBlocklist(strings.NewReader(`["The", "and", "then"]`))
	require.NoError(t, err)
	require.Equal(t, 3, b.Len())
	require.True(t, b.Contains("the"))
	require.False(t, b.Contains("alice"))

	_, err = names.LoadBlocklist(strings.NewReader(`{"not": "an array"}`))
	require.Error(t, err)

	var nilList *names.Blocklist
	require.False(t, nilList.Contains("the"))
	require.Zero(t, nilList.Len())
}
