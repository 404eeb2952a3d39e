// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrNoNames is returned when no candidate survives aggregation, so there
	// is no vocabulary to build a network over.
	ErrNoNames = errors.New("pipeline: no character names found")

	// ErrNilCollaborator is returned by New for a nil extractor, segmenter or scorer.
	ErrNilCollaborator = errors.New("pipeline: nil collaborator")

	// ErrInvalidOption reports a non-positive worker count or top_num.
	ErrInvalidOption = errors.New("pipeline: invalid option")
)
