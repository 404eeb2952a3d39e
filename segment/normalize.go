// SPDX-License-Identifier: MIT

package segment

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// quoteFolder maps typographic quotes and apostrophes to ASCII so that
// possessive stripping ("Harry’s" → "harry") and sentence boundaries see a
// single spelling.
var quoteFolder = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark / typographic apostrophe
	"“", "\"", // left double quotation mark
	"”", "\"", // right double quotation mark
	"\r", " ",
	"\n", " ",
	"\t", " ",
)

// Normalize prepares raw novel text for segmentation.
//
// Stages:
//   - NFC composition, so "é" written as e + combining accent matches "é".
//   - CR/LF/TAB become spaces and typographic quotes become ASCII.
//   - Runs of whitespace collapse to a single space; the result is trimmed.
//
// Normalize is pure and idempotent.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = quoteFolder.Replace(text)

	return strings.Join(strings.Fields(text), " ")
}
