// SPDX-License-Identifier: MIT

package projection

import "errors"

var (
	// ErrInvalidInput reports an all-zero or non-square matrix, a name list
	// whose length differs from the matrix order, or a negative cell in
	// co-occurrence mode.
	ErrInvalidInput = errors.New("projection: invalid input")

	// ErrUnknownMode reports a Mode outside ModeCooccurrence, ModeSentiment, ModeBare.
	ErrUnknownMode = errors.New("projection: unknown mode")
)
