package repositories

import (
	"errors"
	"fmt"
	"time"

	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMatchNotFound = errors.New("reconciliation match not found")

// MatchRepository handles database operations for reconciliation matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new reconciliation match repository
func NewMatchRepository(db *gorm.DB) MatchRepositoryInterface {
	return &MatchRepository{
		db: db,
	}
}

// Create creates a new reconciliation match
func (r *MatchRepository) Create(match *models.ReconciliationMatch) error {
	if match == nil {
		return errors.New("reconciliation match cannot be nil")
	}

	if err := r.db.Create(match).Error; err != nil {
		return fmt.Errorf("failed to create reconciliation match: %w", err)
	}

	return nil
}

// CreateBatch creates multiple reconciliation matches in a single transaction
func (r *MatchRepository) CreateBatch(matches []models.ReconciliationMatch) error {
	if len(matches) == 0 {
		return nil
	}

	if err := r.db.Create(&matches).Error; err != nil {
		return fmt.Errorf("failed to create reconciliation matches: %w", err)
	}

	return nil
}

// GetByID retrieves a reconciliation match by its ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.ReconciliationMatch, error) {
	var match models.ReconciliationMatch
	if err := r.db.First(&match, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get reconciliation match by ID: %w", err)
	}

	return &match, nil
}

// GetByStatementLineID retrieves all matches proposed for a statement line
func (r *MatchRepository) GetByStatementLineID(statementLineID uuid.UUID) ([]models.ReconciliationMatch, error) {
	var matches []models.ReconciliationMatch

	if err := r.db.Where("statement_line_id = ?", statementLineID).
		Order("confidence DESC, id").
		Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to get matches for statement line: %w", err)
	}

	return matches, nil
}

// GetWithFilters retrieves reconciliation matches matching the provided filters
func (r *MatchRepository) GetWithFilters(filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error) {
	var matches []models.ReconciliationMatch
	var total int64

	query := r.db.Model(&models.ReconciliationMatch{}).Where("account_id = ?", filters.AccountID)

	if filters.Decision != "" {
		query = query.Where("decision = ?", filters.Decision)
	}
	if filters.ConfidenceLevel != "" {
		query = query.Where("confidence_level = ?", filters.ConfidenceLevel)
	}
	if filters.AutoMatched != nil {
		query = query.Where("auto_matched = ?", *filters.AutoMatched)
	}
	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at <= ?", filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reconciliation matches: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	if err := query.Order("confidence DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&matches).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get reconciliation matches with filters: %w", err)
	}

	return matches, total, nil
}

// UpdateDecision records an operator decision on a match
func (r *MatchRepository) UpdateDecision(id uuid.UUID, decision string, decidedBy uuid.UUID, decidedAt time.Time) error {
	if !models.IsValidMatchDecision(decision) {
		return models.ErrInvalidMatchDecision
	}

	result := r.db.Model(&models.ReconciliationMatch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"decision":   decision,
			"decided_by": decidedBy,
			"decided_at": decidedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update match decision: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

// CountByDecision returns match counts per decision for an account
func (r *MatchRepository) CountByDecision(accountID uuid.UUID) (map[string]int64, error) {
	type decisionCount struct {
		Decision string
		Count    int64
	}

	var rows []decisionCount
	if err := r.db.Model(&models.ReconciliationMatch{}).
		Select("decision, COUNT(*) as count").
		Where("account_id = ?", accountID).
		Group("decision").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count matches by decision: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Decision] = row.Count
	}

	return counts, nil
}

// Delete removes a reconciliation match
func (r *MatchRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ReconciliationMatch{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reconciliation match: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}
