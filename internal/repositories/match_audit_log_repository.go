package repositories

import (
	"errors"
	"fmt"
	"time"

	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchAuditLogRepository handles database operations for match audit logs
type MatchAuditLogRepository struct {
	db *gorm.DB
}

// NewMatchAuditLogRepository creates a new match audit log repository
func NewMatchAuditLogRepository(db *gorm.DB) MatchAuditLogRepositoryInterface {
	return &MatchAuditLogRepository{
		db: db,
	}
}

// Create creates a new audit log entry
func (r *MatchAuditLogRepository) Create(log *models.MatchAuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetByResource retrieves audit logs for a specific resource
func (r *MatchAuditLogRepository) GetByResource(resource, resourceID string, offset, limit int) ([]*models.MatchAuditLog, int64, error) {
	var logs []*models.MatchAuditLog
	var total int64

	query := r.db.Model(&models.MatchAuditLog{}).Where("resource = ? AND resource_id = ?", resource, resourceID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs by resource: %w", err)
	}

	return logs, total, nil
}

// GetByActorID retrieves audit logs for a specific actor
func (r *MatchAuditLogRepository) GetByActorID(actorID uuid.UUID, offset, limit int) ([]*models.MatchAuditLog, int64, error) {
	var logs []*models.MatchAuditLog
	var total int64

	query := r.db.Model(&models.MatchAuditLog{}).Where("actor_id = ?", actorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs for actor: %w", err)
	}

	return logs, total, nil
}

// GetByTimeRange retrieves audit logs within a specific time range
func (r *MatchAuditLogRepository) GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]*models.MatchAuditLog, int64, error) {
	var logs []*models.MatchAuditLog
	var total int64

	query := r.db.Model(&models.MatchAuditLog{}).Where("created_at BETWEEN ? AND ?", startTime, endTime)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs by time range: %w", err)
	}

	return logs, total, nil
}

// DeleteOlderThan removes audit logs older than the specified duration
func (r *MatchAuditLogRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-duration)

	result := r.db.Where("created_at < ?", cutoffTime).Delete(&models.MatchAuditLog{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
