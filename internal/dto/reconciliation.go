package dto

import (
	"math"
	"time"

	"bank-reconciliation/internal/matching"
)

// RunReconciliationRequest is the payload for starting a reconciliation run
type RunReconciliationRequest struct {
	AccountID  string     `json:"account_id" validate:"required,entity_id"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	PartyID    string     `json:"party_id,omitempty"`
	MaxMatches int        `json:"max_matches,omitempty" validate:"omitempty,min=1,max=50"`
	DryRun     bool       `json:"dry_run,omitempty"`
}

// ComponentScoresResponse holds the per-factor scores of one candidate
type ComponentScoresResponse struct {
	Party       float64 `json:"party"`
	Description float64 `json:"description"`
	Amount      float64 `json:"amount"`
	Date        float64 `json:"date"`
}

// CandidateDetailsResponse carries the raw measurements behind the scores.
// AmountDifference and DateDifferenceDays are null when the corresponding
// field was missing on either side.
type CandidateDetailsResponse struct {
	PartyMatch            bool     `json:"party_match"`
	DescriptionSimilarity float64  `json:"description_similarity"`
	AmountDifference      *float64 `json:"amount_difference,omitempty"`
	DateDifferenceDays    *float64 `json:"date_difference_days,omitempty"`
	WithinAmountTolerance bool     `json:"within_amount_tolerance"`
}

// CandidateResponse is one scored statement/transaction pairing
type CandidateResponse struct {
	TransactionID   string                   `json:"transaction_id"`
	TransactionType string                   `json:"transaction_type"`
	Confidence      float64                  `json:"confidence"`
	ConfidenceLevel string                   `json:"confidence_level"`
	Scores          ComponentScoresResponse  `json:"scores"`
	Details         CandidateDetailsResponse `json:"details"`
	Explanation     string                   `json:"explanation"`
	AutoMatched     bool                     `json:"auto_matched"`
}

// MatchGroupResponse groups the candidates found for one statement line
type MatchGroupResponse struct {
	StatementID string              `json:"statement_id"`
	AutoMatched bool                `json:"auto_matched"`
	BestMatch   *CandidateResponse  `json:"best_match,omitempty"`
	Candidates  []CandidateResponse `json:"candidates"`
}

// RunStatisticsResponse summarizes one reconciliation run
type RunStatisticsResponse struct {
	TotalStatements   int     `json:"total_statements"`
	TotalTransactions int     `json:"total_transactions"`
	TotalMatches      int     `json:"total_matches"`
	AutoMatched       int     `json:"auto_matched"`
	HighConfidence    int     `json:"high_confidence"`
	MediumConfidence  int     `json:"medium_confidence"`
	LowConfidence     int     `json:"low_confidence"`
	AverageConfidence float64 `json:"average_confidence"`
	MatchRate         float64 `json:"match_rate"`
	AutoMatchRate     float64 `json:"auto_match_rate"`
}

// RunReconciliationResponse is the full output of a reconciliation run
type RunReconciliationResponse struct {
	AccountID  string                `json:"account_id"`
	DryRun     bool                  `json:"dry_run"`
	Persisted  int                   `json:"persisted"`
	Statistics RunStatisticsResponse `json:"statistics"`
	Matches    []MatchGroupResponse  `json:"matches"`
}

// finiteOrNil drops non-finite measurements so the response stays valid JSON
func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewCandidateResponse converts an engine candidate into its response shape
func NewCandidateResponse(c matching.Candidate) CandidateResponse {
	return CandidateResponse{
		TransactionID:   c.TransactionID,
		TransactionType: c.TransactionType,
		Confidence:      c.Confidence,
		ConfidenceLevel: string(c.ConfidenceLevel),
		Scores: ComponentScoresResponse{
			Party:       c.Scores.Party,
			Description: c.Scores.Description,
			Amount:      c.Scores.Amount,
			Date:        c.Scores.Date,
		},
		Details: CandidateDetailsResponse{
			PartyMatch:            c.Details.PartyMatch,
			DescriptionSimilarity: c.Details.DescriptionSimilarity,
			AmountDifference:      finiteOrNil(c.Details.AmountDifference),
			DateDifferenceDays:    finiteOrNil(c.Details.DateDifferenceDays),
			WithinAmountTolerance: c.Details.WithinAmountTolerance,
		},
		Explanation: c.Explanation,
		AutoMatched: c.AutoMatched,
	}
}

// NewMatchGroupResponse converts one statement's match group
func NewMatchGroupResponse(group matching.StatementMatchGroup) MatchGroupResponse {
	candidates := make([]CandidateResponse, 0, len(group.Candidates))
	for _, c := range group.Candidates {
		candidates = append(candidates, NewCandidateResponse(c))
	}

	response := MatchGroupResponse{
		StatementID: group.StatementID,
		AutoMatched: group.AutoMatched,
		Candidates:  candidates,
	}
	if group.BestMatch != nil {
		best := NewCandidateResponse(*group.BestMatch)
		response.BestMatch = &best
	}
	return response
}

// NewRunStatisticsResponse converts engine run statistics
func NewRunStatisticsResponse(stats matching.RunStatistics) RunStatisticsResponse {
	return RunStatisticsResponse{
		TotalStatements:   stats.TotalStatements,
		TotalTransactions: stats.TotalTransactions,
		TotalMatches:      stats.TotalMatches,
		AutoMatched:       stats.AutoMatched,
		HighConfidence:    stats.ConfidenceDistribution.High,
		MediumConfidence:  stats.ConfidenceDistribution.Medium,
		LowConfidence:     stats.ConfidenceDistribution.Low,
		AverageConfidence: stats.AverageConfidence,
		MatchRate:         stats.MatchRate,
		AutoMatchRate:     stats.AutoMatchRate,
	}
}
