package matching

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// nonWordPattern matches runs of everything except word characters and
// spaces. Punctuation is replaced with a space rather than deleted, so
// "JOAO-SILVA" and "JOAO SILVA" normalize to the same text.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_ ]+`)

// normalizeText case-folds, treats punctuation as a separator, and collapses
// runs of whitespace to single spaces.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonWordPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Similarity returns a normalized similarity score in [0,1] between two
// free-text fields. minLength is the shortest normalized string considered
// meaningful to compare; shorter unequal strings score 0.
//
// The score tiers are:
//   - 1.0 for exact post-normalization equality
//   - 0.8 when one normalized string contains the other
//   - otherwise 1 - editDistance/maxLen, clamped to >= 0
//
// The function is pure and never fails: empty input scores 0.
func Similarity(a, b string, minLength int) float64 {
	na := normalizeText(a)
	nb := normalizeText(b)

	if na == nb {
		if na == "" {
			return 0.0
		}
		return 1.0
	}

	if len([]rune(na)) < minLength || len([]rune(nb)) < minLength {
		return 0.0
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.8
	}

	distance := levenshtein.ComputeDistance(na, nb)
	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}

	score := 1.0 - float64(distance)/float64(maxLen)
	if score < 0.0 {
		return 0.0
	}
	return score
}
