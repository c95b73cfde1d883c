package matching

import (
	"fmt"
	"math"
	"strings"
)

// descriptionMentionThreshold is the similarity above which the explanation
// mentions the description factor.
const descriptionMentionThreshold = 0.7

// scorePair computes the full candidate fragment for one (statement,
// transaction) pair. All four factor scores are always computed, even when
// one is zero, so the detail object and explanation stay complete.
//
// The returned candidate has no tier assigned when its confidence falls
// below the low-confidence floor; callers must check ok before using it.
func scorePair(stmt Statement, tx Transaction, cfg Config) (Candidate, bool) {
	party, partyMatched := partyScore(stmt, tx, cfg)
	description := descriptionScore(stmt, tx, cfg)
	amount, amountDiff, withinTolerance := amountScore(stmt, tx, cfg)
	date, daysDiff := dateScore(stmt, tx, cfg)

	confidence := party*cfg.Weights.Party +
		description*cfg.Weights.Description +
		amount*cfg.Weights.Amount +
		date*cfg.Weights.Date

	candidate := Candidate{
		StatementID:     stmt.ID,
		TransactionID:   tx.ID,
		TransactionType: tx.Type,
		Confidence:      confidence,
		Scores: ComponentScores{
			Party:       party,
			Description: description,
			Amount:      amount,
			Date:        date,
		},
		Details: Details{
			PartyMatch:            partyMatched,
			DescriptionSimilarity: description,
			AmountDifference:      amountDiff,
			DateDifferenceDays:    daysDiff,
			WithinAmountTolerance: withinTolerance,
		},
	}

	level, ok := confidenceLevel(confidence, cfg)
	if !ok {
		return candidate, false
	}

	candidate.ConfidenceLevel = level
	candidate.Explanation = buildExplanation(candidate, cfg)
	return candidate, true
}

// confidenceLevel buckets a confidence value against the configured
// thresholds. ok is false below the low-confidence floor.
func confidenceLevel(confidence float64, cfg Config) (ConfidenceLevel, bool) {
	switch {
	case confidence >= cfg.HighConfidence:
		return ConfidenceHigh, true
	case confidence >= cfg.MediumConfidence:
		return ConfidenceMedium, true
	case confidence >= cfg.LowConfidence:
		return ConfidenceLow, true
	default:
		return "", false
	}
}

// buildExplanation produces the human-readable justification shown next to
// a suggested match.
func buildExplanation(c Candidate, cfg Config) string {
	var clauses []string

	if c.Scores.Party == 1.0 {
		clauses = append(clauses, "Exact party match")
	} else if c.Details.PartyMatch {
		clauses = append(clauses, "Similar party name")
	}

	if c.Details.DescriptionSimilarity > descriptionMentionThreshold {
		clauses = append(clauses, fmt.Sprintf("Description %.0f%% similar", c.Details.DescriptionSimilarity*100))
	}

	if c.Details.AmountDifference == 0 {
		clauses = append(clauses, "Exact amount match")
	} else if c.Details.WithinAmountTolerance {
		clauses = append(clauses, "Amount within tolerance")
	}

	if !math.IsInf(c.Details.DateDifferenceDays, 1) {
		if c.Details.DateDifferenceDays == 0 {
			clauses = append(clauses, "Same date")
		} else if c.Details.DateDifferenceDays <= float64(cfg.DateToleranceDays) {
			clauses = append(clauses, fmt.Sprintf("Date within %.0f day(s)", c.Details.DateDifferenceDays))
		}
	}

	if len(clauses) == 0 {
		return "Low confidence match"
	}

	return strings.Join(clauses, "; ")
}
