package domain

import (
	"strings"
)

// NormalizeSyllable prepares a single romanized syllable for decoding: it
// trims surrounding whitespace and lowercases ASCII letters.
func NormalizeSyllable(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
