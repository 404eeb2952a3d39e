// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects the weight/color transform.
type Mode string

// Supported modes.
const (
	ModeCooccurrence Mode = "co-occurrence"
	ModeSentiment    Mode = "sentiment"
	ModeBare         Mode = "bare"
)

// Transform constants.
const (
	cooccurrenceScale = 2000.0
	sentimentScale    = 1000.0
	colorScale        = 2000.0
	weightFactor      = 0.7
	bareMinWeight     = 0.0001
)

// ParseMode maps "co-occurrence", "sentiment" or "bare" (any case, surrounding
// spaces ignored) to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.valid() {
		return "", fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}

	return m, nil
}

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }

func (m Mode) valid() bool {
	switch m {
	case ModeCooccurrence, ModeSentiment, ModeBare:
		return true
	}

	return false
}

// transform maps a normalized value to (weight, color, keep).
func (m Mode) transform(norm float64) (weight, color float64, keep bool) {
	switch m {
	case ModeCooccurrence:
		color = math.Log(cooccurrenceScale*norm + 1)
		return color * weightFactor, color, true
	case ModeSentiment:
		weight = math.Log(math.Abs(sentimentScale*norm)+1) * weightFactor
		return weight, colorScale * norm, true
	default: // ModeBare
		weight = math.Log(math.Abs(sentimentScale*norm)+1) * weightFactor
		return weight, colorScale * norm, weight > bareMinWeight
	}
}
