package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementLineFilters contains filtering options for statement line queries
type StatementLineFilters struct {
	AccountID   uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	PartyID     string
	ImportBatch string
	Reconciled  *bool
	Offset      int
	Limit       int
}

// LedgerTransactionFilters contains filtering options for ledger queries
type LedgerTransactionFilters struct {
	AccountID       uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	TransactionType string
	Status          string
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	PartyID         string
	Reconciled      *bool
	Offset          int
	Limit           int
}

// MatchFilters contains filtering options for reconciliation match queries
type MatchFilters struct {
	AccountID       uuid.UUID
	Decision        string
	ConfidenceLevel string
	AutoMatched     *bool
	StartDate       *time.Time
	EndDate         *time.Time
	Offset          int
	Limit           int
}
