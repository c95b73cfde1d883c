package services

import (
	"errors"
	"fmt"

	"bank-reconciliation/internal/matching"
	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/repositories"

	"github.com/google/uuid"
)

const (
	auditResourceMatch = "reconciliation_match"
	auditResourceRun   = "reconciliation_run"
)

var ErrInvalidAuditLog = errors.New("invalid audit log")

// AuditService handles audit logging for reconciliation runs and decisions
type AuditService struct {
	repo repositories.MatchAuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.MatchAuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

// ValidateAuditAction validates that the action is one of the allowed actions
func ValidateAuditAction(action string) error {
	validActions := map[string]bool{
		models.AuditActionRunStarted:     true,
		models.AuditActionRunCompleted:   true,
		models.AuditActionRunFailed:      true,
		models.AuditActionMatchAuto:      true,
		models.AuditActionMatchConfirmed: true,
		models.AuditActionMatchOverride:  true,
		models.AuditActionMatchRejected:  true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid audit action: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.MatchAuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateAuditAction(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetMatchActivity retrieves the audit trail of a single match
func (s *AuditService) GetMatchActivity(matchID uuid.UUID, offset, limit int) ([]*models.MatchAuditLog, int64, error) {
	if matchID == uuid.Nil {
		return nil, 0, errors.New("invalid match ID")
	}

	return s.repo.GetByResource(auditResourceMatch, matchID.String(), offset, limit)
}

// LogRunStarted records the start of a reconciliation run
func (s *AuditService) LogRunStarted(accountID uuid.UUID) error {
	log := &models.MatchAuditLog{
		Action:     models.AuditActionRunStarted,
		Resource:   auditResourceRun,
		ResourceID: accountID.String(),
	}
	return s.CreateAuditLog(log)
}

// LogRunCompleted records a completed reconciliation run with its statistics
func (s *AuditService) LogRunCompleted(accountID uuid.UUID, stats matching.RunStatistics) error {
	log := &models.MatchAuditLog{
		Action:     models.AuditActionRunCompleted,
		Resource:   auditResourceRun,
		ResourceID: accountID.String(),
	}
	log.SetMetadata("total_statements", stats.TotalStatements)
	log.SetMetadata("total_transactions", stats.TotalTransactions)
	log.SetMetadata("total_matches", stats.TotalMatches)
	log.SetMetadata("auto_matched", stats.AutoMatched)
	log.SetMetadata("match_rate", stats.MatchRate)
	return s.CreateAuditLog(log)
}

// LogRunFailed records a failed reconciliation run
func (s *AuditService) LogRunFailed(accountID uuid.UUID, runErr error) error {
	log := &models.MatchAuditLog{
		Action:     models.AuditActionRunFailed,
		Resource:   auditResourceRun,
		ResourceID: accountID.String(),
	}
	if runErr != nil {
		log.SetMetadata("error", runErr.Error())
	}
	return s.CreateAuditLog(log)
}

// LogMatchAuto records an automatically accepted match
func (s *AuditService) LogMatchAuto(accountID, matchID uuid.UUID, confidence float64) error {
	log := &models.MatchAuditLog{
		Action:     models.AuditActionMatchAuto,
		Resource:   auditResourceMatch,
		ResourceID: matchID.String(),
	}
	log.SetMetadata("account_id", accountID.String())
	log.SetMetadata("confidence", confidence)
	return s.CreateAuditLog(log)
}

// LogMatchConfirmed records an operator confirming a match
func (s *AuditService) LogMatchConfirmed(matchID, operatorID uuid.UUID, ipAddress string) error {
	log := &models.MatchAuditLog{
		ActorID:    &operatorID,
		Action:     models.AuditActionMatchConfirmed,
		Resource:   auditResourceMatch,
		ResourceID: matchID.String(),
		IPAddress:  ipAddress,
	}
	return s.CreateAuditLog(log)
}

// LogMatchOverridden records an operator replacing the matched transaction
func (s *AuditService) LogMatchOverridden(matchID, operatorID, newTransactionID uuid.UUID, ipAddress string) error {
	log := &models.MatchAuditLog{
		ActorID:    &operatorID,
		Action:     models.AuditActionMatchOverride,
		Resource:   auditResourceMatch,
		ResourceID: matchID.String(),
		IPAddress:  ipAddress,
	}
	log.SetMetadata("new_transaction_id", newTransactionID.String())
	return s.CreateAuditLog(log)
}

// LogMatchRejected records an operator rejecting a match
func (s *AuditService) LogMatchRejected(matchID, operatorID uuid.UUID, ipAddress string) error {
	log := &models.MatchAuditLog{
		ActorID:    &operatorID,
		Action:     models.AuditActionMatchRejected,
		Resource:   auditResourceMatch,
		ResourceID: matchID.String(),
		IPAddress:  ipAddress,
	}
	return s.CreateAuditLog(log)
}
