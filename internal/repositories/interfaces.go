package repositories

import (
	"time"

	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
)

// StatementLineRepositoryInterface defines the contract for statement line repository operations
type StatementLineRepositoryInterface interface {
	Create(line *models.StatementLine) error
	CreateBatch(lines []models.StatementLine) error
	GetByID(id uuid.UUID) (*models.StatementLine, error)
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.StatementLine, int64, error)
	GetUnreconciled(accountID uuid.UUID) ([]models.StatementLine, error)
	GetWithFilters(filters models.StatementLineFilters) ([]models.StatementLine, int64, error)
	MarkReconciled(id uuid.UUID, reconciled bool) error
	Delete(id uuid.UUID) error
}

// LedgerTransactionRepositoryInterface defines the contract for ledger transaction repository operations
type LedgerTransactionRepositoryInterface interface {
	Create(transaction *models.LedgerTransaction) error
	CreateBatch(transactions []models.LedgerTransaction) error
	GetByID(id uuid.UUID) (*models.LedgerTransaction, error)
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.LedgerTransaction, int64, error)
	GetUnreconciled(accountID uuid.UUID) ([]models.LedgerTransaction, error)
	GetByDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.LedgerTransaction, error)
	GetWithFilters(filters models.LedgerTransactionFilters) ([]models.LedgerTransaction, int64, error)
	MarkReconciled(id uuid.UUID, reconciled bool) error
	UpdateStatus(id uuid.UUID, status string) error
}

// MatchRepositoryInterface defines the contract for reconciliation match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.ReconciliationMatch) error
	CreateBatch(matches []models.ReconciliationMatch) error
	GetByID(id uuid.UUID) (*models.ReconciliationMatch, error)
	GetByStatementLineID(statementLineID uuid.UUID) ([]models.ReconciliationMatch, error)
	GetWithFilters(filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error)
	UpdateDecision(id uuid.UUID, decision string, decidedBy uuid.UUID, decidedAt time.Time) error
	CountByDecision(accountID uuid.UUID) (map[string]int64, error)
	Delete(id uuid.UUID) error
}

// MatchAuditLogRepositoryInterface defines the contract for match audit log repository operations
type MatchAuditLogRepositoryInterface interface {
	Create(log *models.MatchAuditLog) error
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.MatchAuditLog, int64, error)
	GetByActorID(actorID uuid.UUID, offset, limit int) ([]*models.MatchAuditLog, int64, error)
	GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]*models.MatchAuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
