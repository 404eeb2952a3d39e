// SPDX-License-Identifier: MIT

package names_test

import (
	"testing"

	"github.com/katalvlaran/charnet/names"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	require.Equal(t, "élise", names.Fold("ÉLISE"))
	require.Equal(t, "harry potter", names.Fold("Harry Potter"))
}

func TestCountOccurrences(t *testing.T) {
	cases := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"simple", "alice and alice", "alice", 2},
		{"prefix of longer word", "anne and joanna", "ann", 0},
		{"punctuation boundary", "ann, ann. (ann)", "ann", 3},
		{"possessive", "ann's hat", "ann", 1},
		{"multi-word needle", "harry potter met harry", "harry potter", 1},
		{"empty needle", "anything", "", 0},
		{"needle longer than haystack", "al", "alice", 0},
		{"retry after rejected match", "bobby bob", "bob", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, names.CountOccurrences(tc.haystack, tc.needle))
		})
	}
	require.True(t, names.Contains("x ann y", "ann"))
	require.False(t, names.Contains("xann", "ann"))
}
