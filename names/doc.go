// SPDX-License-Identifier: MIT

// Package names turns noisy per-sentence name candidates into a frozen,
// ranked character vocabulary.
//
// Flow:
//
//	Extractor (per sentence) → NormalizeCandidates → Aggregate → TopNames → Vocabulary
//
// Two frequency statistics are used on purpose and must not be unified:
//   - Aggregate counts how many times a candidate was *extracted* across the
//     per-sentence candidate lists (noise filter, threshold_rate × sentences).
//   - TopNames counts how many times a surviving name *occurs* in the whole
//     raw corpus (ranking), case-insensitively at word boundaries.
//
// Errors:
//
//	ErrInvalidInput - zero sentences, a non-finite/negative threshold rate,
//	                  or a non-positive top_num.
package names
