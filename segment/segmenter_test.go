// SPDX-License-Identifier: MIT

package segment_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/charnet/segment"
	"github.com/stretchr/testify/require"
)

func TestRuleSegmenter_Segment(t *testing.T) {
	s := segment.NewRuleSegmenter()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Alice ran. Bob hid!", []string{"Alice ran.", "Bob hid!"}},
		{"question and quote", `"Who is there?" Bob asked. Nobody.`, []string{`"Who is there?"`, "Bob asked.", "Nobody."}},
		{"honorific", "Mr. Darcy bowed. Mrs. Bennet smiled.", []string{"Mr. Darcy bowed.", "Mrs. Bennet smiled."}},
		{"initials", "J. K. Rowling wrote it. The end.", []string{"J. K. Rowling wrote it.", "The end."}},
		{"pronoun ends sentence", "It was I. Then Bob left.", []string{"It was I.", "Then Bob left."}},
		{"pronoun before name", "So did I. Bob stayed home.", []string{"So did I.", "Bob stayed home."}},
		{"decimal", "It cost 3.50 coins. Cheap.", []string{"It cost 3.50 coins.", "Cheap."}},
		{"ellipsis", "Wait... what?", []string{"Wait...", "what?"}},
		{"no terminal", "an unfinished line", []string{"an unfinished line"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s.Segment(tt.in))
		})
	}
}

func TestRuleSegmenter_ExtraAbbreviations(t *testing.T) {
	s := segment.NewRuleSegmenter("Sgt.")
	require.Equal(t, []string{"Sgt. Pepper played."}, s.Segment("Sgt. Pepper played."))
}

func TestRuleSegmenter_Restartable(t *testing.T) {
	s := segment.NewRuleSegmenter()
	text := "One. Two. Three."
	require.Equal(t, s.Segment(text), s.Segment(text))
}

func TestPunktSegmenter_Segment(t *testing.T) {
	s, err := segment.NewPunktSegmenter()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Alice ran. Bob hid!", []string{"Alice ran.", "Bob hid!"}},
		{"honorific", "Mr. Darcy bowed. Mrs. Bennet smiled.", []string{"Mr. Darcy bowed.", "Mrs. Bennet smiled."}},
		{"pronoun ends sentence", "It was I. Then Bob left.", []string{"It was I.", "Then Bob left."}},
		{"pronoun before name", "Then it was I. Bob slept.", []string{"Then it was I.", "Bob slept."}},
		{"pronoun mid sentence", "Bob and I went home.", []string{"Bob and I went home."}},
		{"no terminal", "an unfinished line", []string{"an unfinished line"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s.Segment(tt.in))
		})
	}
}

func TestPunktSegmenter_ConcurrentUse(t *testing.T) {
	s, err := segment.NewPunktSegmenter()
	require.NoError(t, err)

	const text = "Alice waved at me, and so did I. Bob stayed home."
	want := s.Segment(text)
	results := make([][]string, 8)
	done := make(chan struct{})
	for i := range results {
		go func(i int) {
			results[i] = s.Segment(text)
			done <- struct{}{}
		}(i)
	}
	for range results {
		<-done
	}
	for _, got := range results {
		require.Equal(t, want, got)
	}
	require.Equal(t, []string{"Alice waved at me, and so did I.", "Bob stayed home."}, want)
}

func ExampleRuleSegmenter_Segment() {
	s := segment.NewRuleSegmenter()
	for _, sent := range s.Segment(segment.Normalize("Dr. Watson arrived.\nHolmes was out!")) {
		fmt.Println(sent)
	}
	// Output:
	// Dr. Watson arrived.
	// Holmes was out!
}
