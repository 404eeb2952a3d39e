// SPDX-License-Identifier: MIT

package sentiment

import "errors"

var (
	// ErrInvalidInput is returned when no score is nonzero, so the mean
	// nonzero sentiment is undefined.
	ErrInvalidInput = errors.New("sentiment: invalid input")

	// ErrBadLexicon reports a malformed lexicon line.
	ErrBadLexicon = errors.New("sentiment: malformed lexicon")
)
