package models

import (
	"errors"
	"time"

	"bank-reconciliation/internal/matching"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeRevenue = "revenue"
	TransactionTypeExpense = "expense"

	// Common lifecycle statuses. The matching engine treats status as an
	// opaque string; these constants exist for filtering convenience only.
	TransactionStatusPending = "pending"
	TransactionStatusPaid    = "paid"
	TransactionStatusOverdue = "overdue"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrTransactionDateRequired  = errors.New("transaction date is required")
	ErrTransactionValueRequired = errors.New("transaction value cannot be zero")
	ErrTransactionDescRequired  = errors.New("transaction description is required")
)

// LedgerTransaction is a recorded revenue or expense entry in the system of
// record. Entries are created and updated by the revenue/expense services;
// the matching engine only reads a snapshot passed in per run.
type LedgerTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	TransactionType string          `gorm:"type:varchar(20);not null;index" json:"transaction_type"`
	Value           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	PartyID         string          `gorm:"type:varchar(100);index" json:"party_id,omitempty"`
	PartyName       string          `gorm:"type:varchar(255)" json:"party_name,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Reconciled      bool            `gorm:"not null;default:false;index" json:"reconciled"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for LedgerTransaction
func (lt *LedgerTransaction) BeforeCreate(tx *gorm.DB) error {
	if lt.ID == uuid.Nil {
		lt.ID = uuid.New()
	}
	if lt.Status == "" {
		lt.Status = TransactionStatusPending
	}
	return lt.Validate()
}

// Validate validates the ledger transaction fields
func (lt *LedgerTransaction) Validate() error {
	if !IsValidTransactionType(lt.TransactionType) {
		return ErrInvalidTransactionType
	}
	if lt.TransactionDate.IsZero() {
		return ErrTransactionDateRequired
	}
	if lt.Value.IsZero() {
		return ErrTransactionValueRequired
	}
	if lt.Description == "" {
		return ErrTransactionDescRequired
	}
	return nil
}

// IsRevenue returns true for revenue entries
func (lt *LedgerTransaction) IsRevenue() bool {
	return lt.TransactionType == TransactionTypeRevenue
}

// IsExpense returns true for expense entries
func (lt *LedgerTransaction) IsExpense() bool {
	return lt.TransactionType == TransactionTypeExpense
}

// TableName returns the table name for LedgerTransaction
func (lt *LedgerTransaction) TableName() string {
	return "ledger_transactions"
}

// ToMatchingTransaction converts the persisted entry into the engine's
// snapshot shape.
func (lt *LedgerTransaction) ToMatchingTransaction() matching.Transaction {
	return matching.Transaction{
		ID:          lt.ID.String(),
		Type:        lt.TransactionType,
		Value:       lt.Value,
		Date:        lt.TransactionDate,
		Description: lt.Description,
		PartyID:     lt.PartyID,
		PartyName:   lt.PartyName,
		Status:      lt.Status,
		Reconciled:  lt.Reconciled,
	}
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeRevenue, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
