package matching

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type discriminators for ledger transactions.
const (
	TransactionTypeRevenue = "revenue"
	TransactionTypeExpense = "expense"
)

// ConfidenceLevel buckets a confidence score against the configured
// thresholds.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Statement is one bank statement line offered to the engine. The engine
// never mutates statements; they are snapshots materialized by the caller.
type Statement struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PartyID     string
	PartyName   string
	Reconciled  bool
}

// Transaction is one recorded revenue or expense entry offered to the
// engine. Status is an opaque lifecycle string; the engine only filters on
// it, never interprets it.
type Transaction struct {
	ID          string
	Type        string
	Value       decimal.Decimal
	Date        time.Time
	Description string
	PartyID     string
	PartyName   string
	Status      string
	Reconciled  bool
}

// ComponentScores holds the four factor scores, each in [0,1].
type ComponentScores struct {
	Party       float64 `json:"party"`
	Description float64 `json:"description"`
	Amount      float64 `json:"amount"`
	Date        float64 `json:"date"`
}

// Details carries the raw measurements behind the component scores for
// audit and UI consumption. AmountDifference and DateDifferenceDays are
// +Inf when the corresponding field is missing on either side.
type Details struct {
	PartyMatch            bool
	DescriptionSimilarity float64
	AmountDifference      float64
	DateDifferenceDays    float64
	WithinAmountTolerance bool
}

// Candidate is one scored (statement, transaction) pairing. Candidates
// below the low-confidence floor are never materialized.
type Candidate struct {
	StatementID     string
	TransactionID   string
	TransactionType string
	Confidence      float64
	ConfidenceLevel ConfidenceLevel
	Scores          ComponentScores
	Details         Details
	Explanation     string
	AutoMatched     bool
}

// StatementMatchGroup groups the surviving candidates for one statement
// line, sorted descending by confidence and capped at the configured
// maximum. BestMatch is the first candidate.
type StatementMatchGroup struct {
	StatementID string
	Candidates  []Candidate
	BestMatch   *Candidate
	AutoMatched bool
}

// ConfidenceDistribution is the histogram of candidates across the three
// confidence tiers.
type ConfidenceDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// RunStatistics summarizes one reconciliation run.
type RunStatistics struct {
	TotalStatements        int                    `json:"total_statements"`
	TotalTransactions      int                    `json:"total_transactions"`
	TotalMatches           int                    `json:"total_matches"`
	AutoMatched            int                    `json:"auto_matched"`
	ConfidenceDistribution ConfidenceDistribution `json:"confidence_distribution"`
	AverageConfidence      float64                `json:"average_confidence"`
	MatchRate              float64                `json:"match_rate"`
	AutoMatchRate          float64                `json:"auto_match_rate"`
}

// Result is the complete output of one engine run.
type Result struct {
	Matches    []StatementMatchGroup
	Statistics RunStatistics
}

// IsValidTransactionType reports whether t is a known ledger transaction
// type discriminator.
func IsValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeRevenue, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
