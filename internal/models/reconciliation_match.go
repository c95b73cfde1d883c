package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MatchDecisionAuto       = "auto"
	MatchDecisionConfirmed  = "confirmed"
	MatchDecisionOverridden = "overridden"
	MatchDecisionRejected   = "rejected"
)

const (
	MatchConfidenceHigh   = "high"
	MatchConfidenceMedium = "medium"
	MatchConfidenceLow    = "low"
)

var (
	ErrInvalidMatchDecision   = errors.New("invalid match decision")
	ErrInvalidConfidenceLevel = errors.New("invalid confidence level")
	ErrInvalidConfidenceScore = errors.New("confidence score must be between 0 and 1")
)

// ReconciliationMatch links a statement line to a ledger transaction with
// the confidence computed by the matching engine. Rows start in the auto
// decision when accepted automatically, otherwise they are created by an
// operator confirming a suggestion.
type ReconciliationMatch struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"account_id"`
	StatementLineID uuid.UUID  `gorm:"type:uuid;not null;index" json:"statement_line_id"`
	TransactionID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"transaction_id"`
	TransactionType string     `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Confidence      float64    `gorm:"type:decimal(5,4);not null" json:"confidence"`
	ConfidenceLevel string     `gorm:"type:varchar(10);not null" json:"confidence_level"`
	Explanation     string     `gorm:"type:text" json:"explanation"`
	Scores          JSONBMap   `gorm:"type:text" json:"scores,omitempty"`
	Decision        string     `gorm:"type:varchar(20);not null;index" json:"decision"`
	DecidedBy       *uuid.UUID `gorm:"type:uuid" json:"decided_by,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	AutoMatched     bool       `gorm:"not null;default:false" json:"auto_matched"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`

	StatementLine *StatementLine `gorm:"foreignKey:StatementLineID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for ReconciliationMatch
func (rm *ReconciliationMatch) BeforeCreate(tx *gorm.DB) error {
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	return rm.Validate()
}

// Validate validates the reconciliation match fields
func (rm *ReconciliationMatch) Validate() error {
	if !IsValidMatchDecision(rm.Decision) {
		return ErrInvalidMatchDecision
	}
	if !IsValidConfidenceLevel(rm.ConfidenceLevel) {
		return ErrInvalidConfidenceLevel
	}
	if rm.Confidence < 0 || rm.Confidence > 1 {
		return ErrInvalidConfidenceScore
	}
	if !IsValidTransactionType(rm.TransactionType) {
		return ErrInvalidTransactionType
	}
	return nil
}

// IsDecided returns true once an operator has confirmed, overridden or
// rejected the match. Auto matches count as decided.
func (rm *ReconciliationMatch) IsDecided() bool {
	if rm.Decision == MatchDecisionAuto {
		return true
	}
	return rm.DecidedAt != nil
}

// SetScore stores a per-field component score on the match
func (rm *ReconciliationMatch) SetScore(field string, score float64) {
	if rm.Scores == nil {
		rm.Scores = make(JSONBMap)
	}
	rm.Scores[field] = score
}

// TableName returns the table name for ReconciliationMatch
func (rm *ReconciliationMatch) TableName() string {
	return "reconciliation_matches"
}

// IsValidMatchDecision checks if the decision is valid
func IsValidMatchDecision(decision string) bool {
	switch decision {
	case MatchDecisionAuto, MatchDecisionConfirmed, MatchDecisionOverridden, MatchDecisionRejected:
		return true
	default:
		return false
	}
}

// IsValidConfidenceLevel checks if the confidence level is valid
func IsValidConfidenceLevel(level string) bool {
	switch level {
	case MatchConfidenceHigh, MatchConfidenceMedium, MatchConfidenceLow:
		return true
	default:
		return false
	}
}
