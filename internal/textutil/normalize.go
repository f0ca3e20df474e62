// Package textutil provides text normalization and distance helpers
// shared by the scoring engine.
package textutil

import (
	"regexp"
	"strings"
)

// nonLetterRegex matches sequences of characters outside A-Z.
var nonLetterRegex = regexp.MustCompile(`[^A-Z]+`)

// Normalize uppercases text and strips every character outside A-Z.
// The cipher layer is expected to hand over alphabet-normalized text
// already, but scoring is called on arbitrary intermediate strings and
// must tolerate anything.
func Normalize(text string) string {
	return nonLetterRegex.ReplaceAllString(strings.ToUpper(text), "")
}

// LetterCounts tallies A-Z occurrences in an already-normalized string.
func LetterCounts(normalized string) [26]int {
	var counts [26]int
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if c >= 'A' && c <= 'Z' {
			counts[c-'A']++
		}
	}
	return counts
}
