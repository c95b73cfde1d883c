// Package matching implements the bank-reconciliation matching engine.
//
// The engine pairs bank statement lines against recorded ledger transactions
// when no explicit foreign key links them. For every (statement, transaction)
// pair it computes a weighted confidence score from four independent factors
// (party identity, description similarity, amount proximity, date proximity),
// ranks candidates per statement, and greedily promotes the best pairing per
// statement to an automatic match when it clears the high-confidence
// threshold.
//
// The engine is read-only over its inputs and stateless between runs. All
// configuration is passed explicitly per call as an immutable Config value,
// so concurrent runs with different configurations cannot interfere.
//
// Example usage:
//
//	engine, err := matching.NewEngine(matching.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	result, err := engine.FindMatches(ctx, statements, transactions, matching.Options{})
package matching

import (
	"fmt"
	"math"
)

const (
	// weightSumEpsilon is the tolerance for the weight-sum invariant check.
	weightSumEpsilon = 1e-9

	// dateDecayWindowDays is the window beyond the date tolerance over which
	// the date score decays linearly to zero.
	dateDecayWindowDays = 30

	// maxToleranceDegradation caps the amount penalty at five times the
	// configured tolerance.
	maxToleranceDegradation = 5.0
)

// Weights defines the relative importance of the four matching factors.
// A valid set of weights sums to exactly 1.0.
type Weights struct {
	Party       float64 `json:"party"`
	Description float64 `json:"description"`
	Amount      float64 `json:"amount"`
	Date        float64 `json:"date"`
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Party + w.Description + w.Amount + w.Date
}

// Validate checks that each weight is within [0,1] and that the weights sum
// to 1.0 within a small epsilon.
func (w Weights) Validate() error {
	for name, value := range map[string]float64{
		"party":       w.Party,
		"description": w.Description,
		"amount":      w.Amount,
		"date":        w.Date,
	} {
		if value < 0.0 || value > 1.0 {
			return fmt.Errorf("%s weight must be between 0.0 and 1.0: %f", name, value)
		}
	}

	if math.Abs(w.Sum()-1.0) > weightSumEpsilon {
		return fmt.Errorf("weights must sum to 1.0, got %f", w.Sum())
	}

	return nil
}

// Config holds all tunable parameters of the matching engine. A Config value
// is immutable once constructed; callers pass it explicitly into NewEngine
// rather than mutating shared state.
type Config struct {
	// DateToleranceDays is the number of days within which two dates are
	// considered a strong match.
	DateToleranceDays int `json:"date_tolerance_days"`

	// AmountTolerancePercent is the fraction of the average amount within
	// which two amounts are considered a strong match (0.05 = 5%).
	AmountTolerancePercent float64 `json:"amount_tolerance_percent"`

	// Weights are the relative factor weights. Must sum to 1.0.
	Weights Weights `json:"weights"`

	// HighConfidence is the auto-accept threshold.
	HighConfidence float64 `json:"high_confidence"`

	// MediumConfidence separates medium from low candidates.
	MediumConfidence float64 `json:"medium_confidence"`

	// LowConfidence is the floor below which candidates are discarded.
	LowConfidence float64 `json:"low_confidence"`

	// MaxMatches caps the number of candidates kept per statement.
	MaxMatches int `json:"max_matches"`

	// MinDescriptionLength is the minimum normalized string length for a
	// meaningful similarity comparison.
	MinDescriptionLength int `json:"min_description_length"`

	// SimilarityThreshold gates party-name similarity scoring.
	SimilarityThreshold float64 `json:"similarity_threshold"`
}

// DefaultConfig returns the standard production configuration.
func DefaultConfig() Config {
	return Config{
		DateToleranceDays:      2,
		AmountTolerancePercent: 0.05,
		Weights: Weights{
			Party:       0.35,
			Description: 0.25,
			Amount:      0.25,
			Date:        0.15,
		},
		HighConfidence:       0.85,
		MediumConfidence:     0.65,
		LowConfidence:        0.45,
		MaxMatches:           5,
		MinDescriptionLength: 3,
		SimilarityThreshold:  0.6,
	}
}

// StrictConfig returns a configuration with tight tolerances, suitable for
// accounts where statement data is known to be clean.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.DateToleranceDays = 1
	cfg.AmountTolerancePercent = 0.02
	cfg.HighConfidence = 0.9
	cfg.MediumConfidence = 0.75
	cfg.LowConfidence = 0.6
	return cfg
}

// RelaxedConfig returns a configuration with loose tolerances for
// exploratory matching over noisy statement data.
func RelaxedConfig() Config {
	cfg := DefaultConfig()
	cfg.DateToleranceDays = 5
	cfg.AmountTolerancePercent = 0.1
	cfg.HighConfidence = 0.8
	cfg.MediumConfidence = 0.6
	cfg.LowConfidence = 0.4
	cfg.MaxMatches = 10
	return cfg
}

// Validate checks all configuration invariants. The engine refuses to run
// with an invalid configuration rather than silently clamping values.
func (c Config) Validate() error {
	if c.DateToleranceDays < 0 {
		return fmt.Errorf("date tolerance days cannot be negative: %d", c.DateToleranceDays)
	}

	if c.AmountTolerancePercent < 0.0 || c.AmountTolerancePercent > 1.0 {
		return fmt.Errorf("amount tolerance percent must be between 0.0 and 1.0: %f", c.AmountTolerancePercent)
	}

	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}

	for name, value := range map[string]float64{
		"high confidence":   c.HighConfidence,
		"medium confidence": c.MediumConfidence,
		"low confidence":    c.LowConfidence,
	} {
		if value < 0.0 || value > 1.0 {
			return fmt.Errorf("%s threshold must be between 0.0 and 1.0: %f", name, value)
		}
	}

	if !(c.HighConfidence > c.MediumConfidence && c.MediumConfidence > c.LowConfidence) {
		return fmt.Errorf("confidence thresholds must be strictly ordered high > medium > low: %f/%f/%f",
			c.HighConfidence, c.MediumConfidence, c.LowConfidence)
	}

	if c.MaxMatches <= 0 {
		return fmt.Errorf("max matches must be positive: %d", c.MaxMatches)
	}

	if c.MinDescriptionLength < 0 {
		return fmt.Errorf("min description length cannot be negative: %d", c.MinDescriptionLength)
	}

	if c.SimilarityThreshold < 0.0 || c.SimilarityThreshold > 1.0 {
		return fmt.Errorf("similarity threshold must be between 0.0 and 1.0: %f", c.SimilarityThreshold)
	}

	return nil
}

// String returns a human-readable description of the configuration.
func (c Config) String() string {
	return fmt.Sprintf("Config{DateTolerance: %d days, AmountTolerance: %.1f%%, Thresholds: %.2f/%.2f/%.2f, MaxMatches: %d}",
		c.DateToleranceDays, c.AmountTolerancePercent*100, c.HighConfidence, c.MediumConfidence, c.LowConfidence, c.MaxMatches)
}
