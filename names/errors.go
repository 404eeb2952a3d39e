// SPDX-License-Identifier: MIT

package names

import "errors"

// ErrInvalidInput indicates an argument that would make a frequency statistic
// undefined (e.g., zero sentences, which would divide by zero).
var ErrInvalidInput = errors.New("names: invalid input")
