package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_ExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("PIX JOAO SILVA", "PIX JOAO SILVA", 3))
	assert.Equal(t, 1.0, Similarity("  pix joao silva ", "PIX JOAO SILVA", 3), "normalization should ignore case and whitespace")
	assert.Equal(t, 1.0, Similarity("PIX: JOAO-SILVA!", "PIX JOAO SILVA", 3), "punctuation should be stripped before comparison")
	assert.Equal(t, 1.0, Similarity("ACME-CORP", "ACME CORP", 3), "punctuation acts as a word separator, not deletion")
}

func TestSimilarity_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "", 3))
	assert.Equal(t, 0.0, Similarity("", "PIX JOAO SILVA", 3))
	assert.Equal(t, 0.0, Similarity("PIX JOAO SILVA", "", 3))
}

func TestSimilarity_TooShort(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("ab", "abc def", 3), "short unequal strings are not comparable")
	assert.Equal(t, 1.0, Similarity("ab", "ab", 3), "short equal strings are still an exact match")
}

func TestSimilarity_Substring(t *testing.T) {
	assert.Equal(t, 0.8, Similarity("PIX JOAO SILVA", "JOAO SILVA", 3))
	assert.Equal(t, 0.8, Similarity("JOAO SILVA", "PIX JOAO SILVA", 3))
}

func TestSimilarity_Levenshtein(t *testing.T) {
	// "joao silva" vs "joan silva": distance 1 over 10 runes.
	score := Similarity("JOAO SILVA", "JOAN SILVA", 3)
	assert.InDelta(t, 0.9, score, 1e-9)

	// Entirely different strings clamp at zero, never negative.
	assert.GreaterOrEqual(t, Similarity("aaaa", "zzzzzzzzzzzzzzzz", 3), 0.0)
}

func TestSimilarity_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Similarity("PAYMENT REF 1234", "PAYMENT 1234", 3), Similarity("PAYMENT REF 1234", "PAYMENT 1234", 3))
	}
}
