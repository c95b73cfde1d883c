package matching

import (
	"math"

	"github.com/shopspring/decimal"
)

// nameStrongMatch is the similarity above which two party names are treated
// as referring to the same party.
const nameStrongMatch = 0.8

// partyScore scores party identity. Identifiers win over display names: if
// both records carry a party ID the comparison is exact-match only. With
// names on both sides, similarity below the configured threshold scores 0.
// Missing data on both sides scores 0 without error.
func partyScore(stmt Statement, tx Transaction, cfg Config) (float64, bool) {
	if stmt.PartyID != "" && tx.PartyID != "" {
		if stmt.PartyID == tx.PartyID {
			return 1.0, true
		}
		return 0.0, false
	}

	if stmt.PartyName != "" && tx.PartyName != "" {
		sim := Similarity(stmt.PartyName, tx.PartyName, cfg.MinDescriptionLength)
		if sim >= cfg.SimilarityThreshold {
			return sim, sim > nameStrongMatch
		}
	}

	return 0.0, false
}

// descriptionScore is the raw similarity of the two free-text descriptions,
// with no threshold gating.
func descriptionScore(stmt Statement, tx Transaction, cfg Config) float64 {
	return Similarity(stmt.Description, tx.Description, cfg.MinDescriptionLength)
}

// amountScore scores amount proximity on absolute values. Within the
// configured percentage tolerance the score floors at 0.7, so any
// within-tolerance pair ranks as a plausible candidate. Outside tolerance
// the score decays smoothly, with the penalty capped at five times the
// tolerance. Missing or zero amounts score 0 with an infinite difference.
func amountScore(stmt Statement, tx Transaction, cfg Config) (score float64, difference float64, withinTolerance bool) {
	a := stmt.Amount.Abs()
	b := tx.Value.Abs()

	if a.IsZero() || b.IsZero() {
		return 0.0, math.Inf(1), false
	}

	diff := a.Sub(b).Abs()
	if diff.IsZero() {
		return 1.0, 0.0, true
	}

	avg := a.Add(b).Div(decimal.NewFromInt(2))
	tolerance := avg.Mul(decimal.NewFromFloat(cfg.AmountTolerancePercent))
	diffFloat := diff.InexactFloat64()

	if tolerance.IsZero() {
		return 0.0, diffFloat, false
	}

	ratio := diff.Div(tolerance).InexactFloat64()
	if diff.LessThanOrEqual(tolerance) {
		return math.Max(0.7, 1.0-ratio), diffFloat, true
	}

	degradation := math.Min(maxToleranceDegradation, ratio)
	return math.Max(0.0, 0.5/degradation), diffFloat, false
}

// dateScore scores date proximity in whole days. Within the configured
// tolerance the score floors at 0.7; beyond it the score decays linearly
// over a 30-day window, then drops to 0. Missing dates score 0 with an
// infinite day difference.
func dateScore(stmt Statement, tx Transaction, cfg Config) (score float64, daysDiff float64) {
	if stmt.Date.IsZero() || tx.Date.IsZero() {
		return 0.0, math.Inf(1)
	}

	diff := stmt.Date.Sub(tx.Date)
	if diff < 0 {
		diff = -diff
	}
	days := math.Ceil(diff.Hours() / 24.0)

	tolerance := float64(cfg.DateToleranceDays)
	switch {
	case days <= tolerance:
		if tolerance == 0 {
			return 1.0, days
		}
		return math.Max(0.7, 1.0-days/tolerance), days
	case days <= dateDecayWindowDays:
		return math.Max(0.0, 0.3*(1.0-days/dateDecayWindowDays)), days
	default:
		return 0.0, days
	}
}
