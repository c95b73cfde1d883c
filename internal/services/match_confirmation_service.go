package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidMatchID      = errors.New("invalid match ID")
	ErrInvalidOperatorID   = errors.New("invalid operator ID")
	ErrMatchAlreadyDecided = errors.New("match has already been decided by an operator")
	ErrTransactionConsumed = errors.New("transaction is already reconciled")
	ErrTransactionMismatch = errors.New("replacement transaction belongs to a different account")
)

// MatchConfirmationService applies operator decisions to persisted matches
// and keeps the reconciled flags on both sides consistent.
type MatchConfirmationService struct {
	matchRepo     repositories.MatchRepositoryInterface
	statementRepo repositories.StatementLineRepositoryInterface
	ledgerRepo    repositories.LedgerTransactionRepositoryInterface
	auditService  AuditServiceInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
}

// NewMatchConfirmationService creates a new match confirmation service
func NewMatchConfirmationService(
	matchRepo repositories.MatchRepositoryInterface,
	statementRepo repositories.StatementLineRepositoryInterface,
	ledgerRepo repositories.LedgerTransactionRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) MatchConfirmationServiceInterface {
	return &MatchConfirmationService{
		matchRepo:     matchRepo,
		statementRepo: statementRepo,
		ledgerRepo:    ledgerRepo,
		auditService:  auditService,
		metrics:       metrics,
		logger:        logger,
	}
}

// ConfirmMatch marks a proposed match as confirmed by an operator and flags
// both records as reconciled.
func (s *MatchConfirmationService) ConfirmMatch(matchID, operatorID uuid.UUID, ipAddress string) (*models.ReconciliationMatch, error) {
	match, err := s.loadUndecided(matchID, operatorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.matchRepo.UpdateDecision(match.ID, models.MatchDecisionConfirmed, operatorID, now); err != nil {
		return nil, fmt.Errorf("failed to confirm match: %w", err)
	}

	if err := s.statementRepo.MarkReconciled(match.StatementLineID, true); err != nil {
		return nil, fmt.Errorf("failed to mark statement line reconciled: %w", err)
	}
	if err := s.ledgerRepo.MarkReconciled(match.TransactionID, true); err != nil {
		return nil, fmt.Errorf("failed to mark ledger transaction reconciled: %w", err)
	}

	if err := s.auditService.LogMatchConfirmed(match.ID, operatorID, ipAddress); err != nil {
		s.logger.Warn("failed to audit match confirmation", "match_id", match.ID, "error", err)
	}
	s.metrics.IncrementCounter("reconciliation.match.decision", map[string]string{
		"decision": models.MatchDecisionConfirmed,
	})

	s.logger.Info("match confirmed",
		"match_id", match.ID,
		"operator_id", operatorID,
		"confidence", match.Confidence,
	)

	return s.matchRepo.GetByID(match.ID)
}

// OverrideMatch replaces the matched transaction with one chosen by the
// operator. The original suggestion is kept with the overridden decision and
// a new confirmed match is created for the replacement.
func (s *MatchConfirmationService) OverrideMatch(matchID, operatorID, newTransactionID uuid.UUID, ipAddress string) (*models.ReconciliationMatch, error) {
	match, err := s.loadUndecided(matchID, operatorID)
	if err != nil {
		return nil, err
	}
	if newTransactionID == uuid.Nil {
		return nil, repositories.ErrLedgerTransactionNotFound
	}

	replacement, err := s.ledgerRepo.GetByID(newTransactionID)
	if err != nil {
		return nil, err
	}
	if replacement.AccountID != match.AccountID {
		return nil, ErrTransactionMismatch
	}
	if replacement.Reconciled {
		return nil, ErrTransactionConsumed
	}

	now := time.Now().UTC()
	if err := s.matchRepo.UpdateDecision(match.ID, models.MatchDecisionOverridden, operatorID, now); err != nil {
		return nil, fmt.Errorf("failed to override match: %w", err)
	}

	// Auto matches already flipped the original transaction's flag.
	if match.Decision == models.MatchDecisionAuto {
		if err := s.ledgerRepo.MarkReconciled(match.TransactionID, false); err != nil {
			return nil, fmt.Errorf("failed to release original transaction: %w", err)
		}
	}

	manual := &models.ReconciliationMatch{
		AccountID:       match.AccountID,
		StatementLineID: match.StatementLineID,
		TransactionID:   replacement.ID,
		TransactionType: replacement.TransactionType,
		Confidence:      1.0,
		ConfidenceLevel: models.MatchConfidenceHigh,
		Explanation:     "Manually selected by operator",
		Decision:        models.MatchDecisionConfirmed,
		DecidedBy:       &operatorID,
		DecidedAt:       &now,
	}
	if err := s.matchRepo.Create(manual); err != nil {
		return nil, fmt.Errorf("failed to create replacement match: %w", err)
	}

	if err := s.statementRepo.MarkReconciled(match.StatementLineID, true); err != nil {
		return nil, fmt.Errorf("failed to mark statement line reconciled: %w", err)
	}
	if err := s.ledgerRepo.MarkReconciled(replacement.ID, true); err != nil {
		return nil, fmt.Errorf("failed to mark replacement transaction reconciled: %w", err)
	}

	if err := s.auditService.LogMatchOverridden(match.ID, operatorID, replacement.ID, ipAddress); err != nil {
		s.logger.Warn("failed to audit match override", "match_id", match.ID, "error", err)
	}
	s.metrics.IncrementCounter("reconciliation.match.decision", map[string]string{
		"decision": models.MatchDecisionOverridden,
	})

	s.logger.Info("match overridden",
		"match_id", match.ID,
		"operator_id", operatorID,
		"new_transaction_id", replacement.ID,
	)

	return manual, nil
}

// RejectMatch marks a proposed match as rejected and releases any flags an
// automatic acceptance had set.
func (s *MatchConfirmationService) RejectMatch(matchID, operatorID uuid.UUID, ipAddress string) (*models.ReconciliationMatch, error) {
	match, err := s.loadUndecided(matchID, operatorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.matchRepo.UpdateDecision(match.ID, models.MatchDecisionRejected, operatorID, now); err != nil {
		return nil, fmt.Errorf("failed to reject match: %w", err)
	}

	if match.Decision == models.MatchDecisionAuto {
		if err := s.statementRepo.MarkReconciled(match.StatementLineID, false); err != nil {
			return nil, fmt.Errorf("failed to release statement line: %w", err)
		}
		if err := s.ledgerRepo.MarkReconciled(match.TransactionID, false); err != nil {
			return nil, fmt.Errorf("failed to release ledger transaction: %w", err)
		}
	}

	if err := s.auditService.LogMatchRejected(match.ID, operatorID, ipAddress); err != nil {
		s.logger.Warn("failed to audit match rejection", "match_id", match.ID, "error", err)
	}
	s.metrics.IncrementCounter("reconciliation.match.decision", map[string]string{
		"decision": models.MatchDecisionRejected,
	})

	s.logger.Info("match rejected",
		"match_id", match.ID,
		"operator_id", operatorID,
	)

	return s.matchRepo.GetByID(match.ID)
}

// loadUndecided fetches the match and verifies it can still be decided.
func (s *MatchConfirmationService) loadUndecided(matchID, operatorID uuid.UUID) (*models.ReconciliationMatch, error) {
	if matchID == uuid.Nil {
		return nil, ErrInvalidMatchID
	}
	if operatorID == uuid.Nil {
		return nil, ErrInvalidOperatorID
	}

	match, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		return nil, err
	}

	// Auto matches can still be confirmed, overridden or rejected; any
	// explicit operator decision is final.
	if match.Decision != models.MatchDecisionAuto && match.DecidedAt != nil {
		return nil, ErrMatchAlreadyDecided
	}

	return match, nil
}
