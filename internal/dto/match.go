package dto

import (
	"time"

	"bank-reconciliation/internal/models"
)

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// MatchResponse represents a persisted reconciliation match
type MatchResponse struct {
	ID              string             `json:"id"`
	AccountID       string             `json:"account_id"`
	StatementLineID string             `json:"statement_line_id"`
	TransactionID   string             `json:"transaction_id"`
	TransactionType string             `json:"transaction_type"`
	Confidence      float64            `json:"confidence"`
	ConfidenceLevel string             `json:"confidence_level"`
	Explanation     string             `json:"explanation,omitempty"`
	Scores          map[string]float64 `json:"scores,omitempty"`
	Decision        string             `json:"decision"`
	DecidedBy       string             `json:"decided_by,omitempty"`
	DecidedAt       *time.Time         `json:"decided_at,omitempty"`
	AutoMatched     bool               `json:"auto_matched"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ListMatchesResponse represents the response for listing persisted matches
type ListMatchesResponse struct {
	Matches    []MatchResponse `json:"matches"`
	Pagination PaginationInfo  `json:"pagination"`
}

// MatchSummaryResponse represents per-decision match counts for an account
type MatchSummaryResponse struct {
	AccountID string           `json:"account_id"`
	Counts    map[string]int64 `json:"counts"`
	Total     int64            `json:"total"`
}

// DecideMatchRequest is the payload for confirming or rejecting a match
type DecideMatchRequest struct {
	OperatorID string `json:"operator_id" validate:"required,entity_id"`
}

// OverrideMatchRequest is the payload for overriding a match with a
// different ledger transaction
type OverrideMatchRequest struct {
	OperatorID       string `json:"operator_id" validate:"required,entity_id"`
	NewTransactionID string `json:"new_transaction_id" validate:"required,entity_id"`
}

// NewMatchResponse converts a persisted match into its response shape
func NewMatchResponse(match *models.ReconciliationMatch) MatchResponse {
	response := MatchResponse{
		ID:              match.ID.String(),
		AccountID:       match.AccountID.String(),
		StatementLineID: match.StatementLineID.String(),
		TransactionID:   match.TransactionID.String(),
		TransactionType: match.TransactionType,
		Confidence:      match.Confidence,
		ConfidenceLevel: match.ConfidenceLevel,
		Explanation:     match.Explanation,
		Decision:        match.Decision,
		DecidedAt:       match.DecidedAt,
		AutoMatched:     match.AutoMatched,
		CreatedAt:       match.CreatedAt,
	}

	if match.DecidedBy != nil {
		response.DecidedBy = match.DecidedBy.String()
	}

	if len(match.Scores) > 0 {
		scores := make(map[string]float64, len(match.Scores))
		for field, value := range match.Scores {
			if score, ok := value.(float64); ok {
				scores[field] = score
			}
		}
		response.Scores = scores
	}

	return response
}

// NewListMatchesResponse converts a page of persisted matches
func NewListMatchesResponse(matches []models.ReconciliationMatch, total int64, offset, limit int) ListMatchesResponse {
	items := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		items = append(items, NewMatchResponse(&matches[i]))
	}

	return ListMatchesResponse{
		Matches: items,
		Pagination: PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
}
