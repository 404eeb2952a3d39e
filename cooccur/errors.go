// SPDX-License-Identifier: MIT

package cooccur

import "errors"

// ErrInvalidInput reports an empty vocabulary, zero sentences, a score count
// that does not match the sentence count, or a non-finite score/align rate.
var ErrInvalidInput = errors.New("cooccur: invalid input")
