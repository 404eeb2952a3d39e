// SPDX-License-Identifier: MIT

package names

import (
	"encoding/json"
	"fmt"
	"io"
)

// Blocklist is a set of common (non-name) words, stored folded.
// A nil *Blocklist blocks nothing.
type Blocklist struct {
	words map[string]struct{}
}

// NewBlocklist builds a blocklist from the given words.
func NewBlocklist(words ...string) *Blocklist {
	b := &Blocklist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		b.words[Fold(w)] = struct{}{}
	}

	return b
}

// LoadBlocklist reads a JSON array of strings (the common-words file format).
func LoadBlocklist(r io.Reader) (*Blocklist, error) {
	var words []string
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("names: decode blocklist: %w", err)
	}

	return NewBlocklist(words...), nil
}

// Contains reports whether word (any case) is blocked.
func (b *Blocklist) Contains(word string) bool {
	if b == nil {
		return false
	}
	_, ok := b.words[Fold(word)]

	return ok
}

// Len returns the number of distinct blocked words.
func (b *Blocklist) Len() int {
	if b == nil {
		return 0
	}

	return len(b.words)
}
