package repositories

import (
	"errors"
	"fmt"

	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStatementLineNotFound = errors.New("statement line not found")

// StatementLineRepository handles database operations for statement lines
type StatementLineRepository struct {
	db *gorm.DB
}

// NewStatementLineRepository creates a new statement line repository
func NewStatementLineRepository(db *gorm.DB) StatementLineRepositoryInterface {
	return &StatementLineRepository{
		db: db,
	}
}

// Create creates a new statement line
func (r *StatementLineRepository) Create(line *models.StatementLine) error {
	if line == nil {
		return errors.New("statement line cannot be nil")
	}

	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to create statement line: %w", err)
	}

	return nil
}

// CreateBatch creates multiple statement lines in a single transaction
func (r *StatementLineRepository) CreateBatch(lines []models.StatementLine) error {
	if len(lines) == 0 {
		return nil
	}

	if err := r.db.Create(&lines).Error; err != nil {
		return fmt.Errorf("failed to create statement lines: %w", err)
	}

	return nil
}

// GetByID retrieves a statement line by its ID
func (r *StatementLineRepository) GetByID(id uuid.UUID) (*models.StatementLine, error) {
	var line models.StatementLine
	if err := r.db.First(&line, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementLineNotFound
		}
		return nil, fmt.Errorf("failed to get statement line by ID: %w", err)
	}

	return &line, nil
}

// GetByAccountID retrieves statement lines for an account with pagination
func (r *StatementLineRepository) GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.StatementLine, int64, error) {
	var lines []models.StatementLine
	var total int64

	query := r.db.Model(&models.StatementLine{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count statement lines: %w", err)
	}

	if err := query.Order("transaction_date DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&lines).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get statement lines for account: %w", err)
	}

	return lines, total, nil
}

// GetUnreconciled retrieves all unreconciled statement lines for an account
func (r *StatementLineRepository) GetUnreconciled(accountID uuid.UUID) ([]models.StatementLine, error) {
	var lines []models.StatementLine

	if err := r.db.Where("account_id = ? AND reconciled = ?", accountID, false).
		Order("transaction_date, id").
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to get unreconciled statement lines: %w", err)
	}

	return lines, nil
}

// GetWithFilters retrieves statement lines matching the provided filters
func (r *StatementLineRepository) GetWithFilters(filters models.StatementLineFilters) ([]models.StatementLine, int64, error) {
	var lines []models.StatementLine
	var total int64

	query := r.db.Model(&models.StatementLine{}).Where("account_id = ?", filters.AccountID)

	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("transaction_date <= ?", filters.EndDate)
	}
	if filters.MinAmount != nil {
		query = query.Where("ABS(amount) >= ?", filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("ABS(amount) <= ?", filters.MaxAmount)
	}
	if filters.PartyID != "" {
		query = query.Where("party_id = ?", filters.PartyID)
	}
	if filters.ImportBatch != "" {
		query = query.Where("import_batch = ?", filters.ImportBatch)
	}
	if filters.Reconciled != nil {
		query = query.Where("reconciled = ?", *filters.Reconciled)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count statement lines: %w", err)
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
		Find(&lines).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get statement lines with filters: %w", err)
	}

	return lines, total, nil
}

// MarkReconciled updates the reconciled flag on a statement line
func (r *StatementLineRepository) MarkReconciled(id uuid.UUID, reconciled bool) error {
	result := r.db.Model(&models.StatementLine{}).
		Where("id = ?", id).
		Update("reconciled", reconciled)

	if result.Error != nil {
		return fmt.Errorf("failed to update statement line reconciled flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatementLineNotFound
	}

	return nil
}

// Delete removes a statement line
func (r *StatementLineRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.StatementLine{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete statement line: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatementLineNotFound
	}

	return nil
}
