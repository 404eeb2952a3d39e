// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major numeric storage and the small set
// of pure kernels the character-network builder is made of.
//
// The package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set that return
//     errors instead of panicking, plus an optional finite-only numeric policy.
//   - Linear algebra kernels (Add, Scale, Mul, Transpose) that always allocate a
//     fresh result and never mutate their operands.
//   - Shaping kernels used for pair matrices: ScaleRows (diag(s)·X), StrictLower
//     (keep i>j, zero the diagonal and upper triangle) and MaxAbs.
//
// Every kernel is deterministic (fixed loop order) and has a fast path when all
// operands are *Dense; any other Matrix implementation goes through At/Set.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrDimensionMismatch, ...)
// wrapped as "<Op>: <sentinel>"; match them with errors.Is.
package matrix
