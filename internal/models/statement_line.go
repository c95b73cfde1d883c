package models

import (
	"errors"
	"time"

	"bank-reconciliation/internal/matching"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrStatementDateRequired   = errors.New("statement line transaction date is required")
	ErrStatementAmountRequired = errors.New("statement line amount cannot be zero")
)

// StatementLine is one row of an imported bank statement, not yet linked to
// ledger data. Lines are created by statement import and consumed read-only
// by the matching engine; only the reconciled flag is ever updated here,
// when an operator confirms a match.
type StatementLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	Description     string          `gorm:"type:text" json:"description"`
	PartyID         string          `gorm:"type:varchar(100);index" json:"party_id,omitempty"`
	PartyName       string          `gorm:"type:varchar(255)" json:"party_name,omitempty"`
	ImportBatch     string          `gorm:"type:varchar(100);index" json:"import_batch,omitempty"`
	Reconciled      bool            `gorm:"not null;default:false;index" json:"reconciled"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for StatementLine
func (sl *StatementLine) BeforeCreate(tx *gorm.DB) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return sl.Validate()
}

// Validate validates the statement line fields
func (sl *StatementLine) Validate() error {
	if sl.TransactionDate.IsZero() {
		return ErrStatementDateRequired
	}
	if sl.Amount.IsZero() {
		return ErrStatementAmountRequired
	}
	return nil
}

// TableName returns the table name for StatementLine
func (sl *StatementLine) TableName() string {
	return "statement_lines"
}

// ToMatchingStatement converts the persisted line into the engine's
// snapshot shape.
func (sl *StatementLine) ToMatchingStatement() matching.Statement {
	return matching.Statement{
		ID:          sl.ID.String(),
		Amount:      sl.Amount,
		Date:        sl.TransactionDate,
		Description: sl.Description,
		PartyID:     sl.PartyID,
		PartyName:   sl.PartyName,
		Reconciled:  sl.Reconciled,
	}
}
