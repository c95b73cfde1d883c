package services

import (
	"context"
	"time"

	"bank-reconciliation/internal/matching"
	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
)

// RunOptions narrows a reconciliation run to a subset of the account's data.
type RunOptions struct {
	StartDate  *time.Time
	EndDate    *time.Time
	PartyID    string
	MaxMatches int
	// DryRun computes matches without persisting anything.
	DryRun bool
}

// RunResult is the outcome of one reconciliation run.
type RunResult struct {
	AccountID  uuid.UUID
	Matches    []matching.StatementMatchGroup
	Statistics matching.RunStatistics
	// Persisted counts the auto-accepted matches written to storage.
	Persisted int
}

// ReconciliationServiceInterface defines the contract for reconciliation run operations
type ReconciliationServiceInterface interface {
	RunReconciliation(ctx context.Context, accountID uuid.UUID, opts RunOptions) (*RunResult, error)
	GetMatches(accountID uuid.UUID, filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error)
	GetMatchSummary(accountID uuid.UUID) (map[string]int64, error)
}

// MatchConfirmationServiceInterface defines the contract for operator decisions on matches
type MatchConfirmationServiceInterface interface {
	ConfirmMatch(matchID, operatorID uuid.UUID, ipAddress string) (*models.ReconciliationMatch, error)
	OverrideMatch(matchID, operatorID, newTransactionID uuid.UUID, ipAddress string) (*models.ReconciliationMatch, error)
	RejectMatch(matchID, operatorID uuid.UUID, ipAddress string) (*models.ReconciliationMatch, error)
}

// AuditServiceInterface defines the contract for reconciliation audit logging
type AuditServiceInterface interface {
	CreateAuditLog(log *models.MatchAuditLog) error
	GetMatchActivity(matchID uuid.UUID, offset, limit int) ([]*models.MatchAuditLog, int64, error)
	LogRunStarted(accountID uuid.UUID) error
	LogRunCompleted(accountID uuid.UUID, stats matching.RunStatistics) error
	LogRunFailed(accountID uuid.UUID, runErr error) error
	LogMatchAuto(accountID, matchID uuid.UUID, confidence float64) error
	LogMatchConfirmed(matchID, operatorID uuid.UUID, ipAddress string) error
	LogMatchOverridden(matchID, operatorID, newTransactionID uuid.UUID, ipAddress string) error
	LogMatchRejected(matchID, operatorID uuid.UUID, ipAddress string) error
}

// MetricsRecorderInterface abstracts metric collection for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
