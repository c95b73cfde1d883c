package repositories

import (
	"errors"
	"fmt"
	"time"

	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLedgerTransactionNotFound = errors.New("ledger transaction not found")

// LedgerTransactionRepository handles database operations for ledger transactions
type LedgerTransactionRepository struct {
	db *gorm.DB
}

// NewLedgerTransactionRepository creates a new ledger transaction repository
func NewLedgerTransactionRepository(db *gorm.DB) LedgerTransactionRepositoryInterface {
	return &LedgerTransactionRepository{
		db: db,
	}
}

// Create creates a new ledger transaction
func (r *LedgerTransactionRepository) Create(transaction *models.LedgerTransaction) error {
	if transaction == nil {
		return errors.New("ledger transaction cannot be nil")
	}

	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create ledger transaction: %w", err)
	}

	return nil
}

// CreateBatch creates multiple ledger transactions in a single transaction
func (r *LedgerTransactionRepository) CreateBatch(transactions []models.LedgerTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	if err := r.db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("failed to create ledger transactions: %w", err)
	}

	return nil
}

// GetByID retrieves a ledger transaction by its ID
func (r *LedgerTransactionRepository) GetByID(id uuid.UUID) (*models.LedgerTransaction, error) {
	var transaction models.LedgerTransaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get ledger transaction by ID: %w", err)
	}

	return &transaction, nil
}

// GetByAccountID retrieves ledger transactions for an account with pagination
func (r *LedgerTransactionRepository) GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.LedgerTransaction, int64, error) {
	var transactions []models.LedgerTransaction
	var total int64

	query := r.db.Model(&models.LedgerTransaction{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger transactions: %w", err)
	}

	if err := query.Order("transaction_date DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger transactions for account: %w", err)
	}

	return transactions, total, nil
}

// GetUnreconciled retrieves all unreconciled ledger transactions for an account
func (r *LedgerTransactionRepository) GetUnreconciled(accountID uuid.UUID) ([]models.LedgerTransaction, error) {
	var transactions []models.LedgerTransaction

	if err := r.db.Where("account_id = ? AND reconciled = ?", accountID, false).
		Order("transaction_date, id").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get unreconciled ledger transactions: %w", err)
	}

	return transactions, nil
}

// GetByDateRange retrieves ledger transactions within a date range
func (r *LedgerTransactionRepository) GetByDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.LedgerTransaction, error) {
	var transactions []models.LedgerTransaction

	if err := r.db.Where("account_id = ? AND transaction_date BETWEEN ? AND ?", accountID, startDate, endDate).
		Order("transaction_date, id").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger transactions by date range: %w", err)
	}

	return transactions, nil
}

// GetWithFilters retrieves ledger transactions matching the provided filters
func (r *LedgerTransactionRepository) GetWithFilters(filters models.LedgerTransactionFilters) ([]models.LedgerTransaction, int64, error) {
	var transactions []models.LedgerTransaction
	var total int64

	query := r.db.Model(&models.LedgerTransaction{}).Where("account_id = ?", filters.AccountID)

	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("transaction_date <= ?", filters.EndDate)
	}
	if filters.TransactionType != "" {
		query = query.Where("transaction_type = ?", filters.TransactionType)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.MinAmount != nil {
		query = query.Where("ABS(value) >= ?", filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("ABS(value) <= ?", filters.MaxAmount)
	}
	if filters.PartyID != "" {
		query = query.Where("party_id = ?", filters.PartyID)
	}
	if filters.Reconciled != nil {
		query = query.Where("reconciled = ?", *filters.Reconciled)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	if err := query.Order("transaction_date DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger transactions with filters: %w", err)
	}

	return transactions, total, nil
}

// MarkReconciled updates the reconciled flag on a ledger transaction
func (r *LedgerTransactionRepository) MarkReconciled(id uuid.UUID, reconciled bool) error {
	result := r.db.Model(&models.LedgerTransaction{}).
		Where("id = ?", id).
		Update("reconciled", reconciled)

	if result.Error != nil {
		return fmt.Errorf("failed to update ledger transaction reconciled flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerTransactionNotFound
	}

	return nil
}

// UpdateStatus updates the status of a ledger transaction
func (r *LedgerTransactionRepository) UpdateStatus(id uuid.UUID, status string) error {
	result := r.db.Model(&models.LedgerTransaction{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update ledger transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerTransactionNotFound
	}

	return nil
}
