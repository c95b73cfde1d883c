package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-reconciliation/internal/matching"
	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrRunDateRange     = errors.New("invalid date range: start date must be before end date")
)

// ReconciliationService orchestrates matching runs over an account's
// unreconciled statement lines and ledger transactions.
type ReconciliationService struct {
	statementRepo repositories.StatementLineRepositoryInterface
	ledgerRepo    repositories.LedgerTransactionRepositoryInterface
	matchRepo     repositories.MatchRepositoryInterface
	auditService  AuditServiceInterface
	metrics       MetricsRecorderInterface
	engine        *matching.Engine
	persistAuto   bool
	logger        *slog.Logger
}

// NewReconciliationService creates a new reconciliation service. The engine
// configuration is validated once here; individual runs can still narrow
// their scope through RunOptions.
func NewReconciliationService(
	statementRepo repositories.StatementLineRepositoryInterface,
	ledgerRepo repositories.LedgerTransactionRepositoryInterface,
	matchRepo repositories.MatchRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	cfg matching.Config,
	persistAuto bool,
	logger *slog.Logger,
) (ReconciliationServiceInterface, error) {
	engine, err := matching.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build matching engine: %w", err)
	}

	return &ReconciliationService{
		statementRepo: statementRepo,
		ledgerRepo:    ledgerRepo,
		matchRepo:     matchRepo,
		auditService:  auditService,
		metrics:       metrics,
		engine:        engine,
		persistAuto:   persistAuto,
		logger:        logger,
	}, nil
}

// RunReconciliation loads the account's unreconciled data, runs the matching
// engine over it, and persists any auto-accepted matches unless the run is a
// dry run.
func (s *ReconciliationService) RunReconciliation(ctx context.Context, accountID uuid.UUID, opts RunOptions) (*RunResult, error) {
	if accountID == uuid.Nil {
		return nil, ErrInvalidAccountID
	}
	if opts.StartDate != nil && opts.EndDate != nil && opts.StartDate.After(*opts.EndDate) {
		return nil, ErrRunDateRange
	}

	start := time.Now()

	s.logger.Info("reconciliation run started",
		"account_id", accountID,
		"dry_run", opts.DryRun,
	)
	if err := s.auditService.LogRunStarted(accountID); err != nil {
		s.logger.Warn("failed to audit run start", "account_id", accountID, "error", err)
	}

	result, err := s.runMatching(ctx, accountID, opts)
	if err != nil {
		s.metrics.IncrementCounter("reconciliation.run.failed", nil)
		if auditErr := s.auditService.LogRunFailed(accountID, err); auditErr != nil {
			s.logger.Warn("failed to audit run failure", "account_id", accountID, "error", auditErr)
		}
		s.logger.Error("reconciliation run failed", "account_id", accountID, "error", err)
		return nil, err
	}

	if !opts.DryRun && s.persistAuto {
		persisted, persistErr := s.persistAutoMatches(accountID, result.Matches)
		if persistErr != nil {
			s.metrics.IncrementCounter("reconciliation.run.failed", nil)
			if auditErr := s.auditService.LogRunFailed(accountID, persistErr); auditErr != nil {
				s.logger.Warn("failed to audit run failure", "account_id", accountID, "error", auditErr)
			}
			return nil, persistErr
		}
		result.Persisted = persisted
	}

	s.recordRunMetrics(result, time.Since(start))

	if err := s.auditService.LogRunCompleted(accountID, result.Statistics); err != nil {
		s.logger.Warn("failed to audit run completion", "account_id", accountID, "error", err)
	}

	s.logger.Info("reconciliation run completed",
		"account_id", accountID,
		"total_statements", result.Statistics.TotalStatements,
		"total_transactions", result.Statistics.TotalTransactions,
		"total_matches", result.Statistics.TotalMatches,
		"auto_matched", result.Statistics.AutoMatched,
		"persisted", result.Persisted,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

func (s *ReconciliationService) runMatching(ctx context.Context, accountID uuid.UUID, opts RunOptions) (*RunResult, error) {
	lines, err := s.statementRepo.GetUnreconciled(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statement lines: %w", err)
	}

	transactions, err := s.ledgerRepo.GetUnreconciled(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger transactions: %w", err)
	}

	statements := make([]matching.Statement, 0, len(lines))
	for i := range lines {
		statements = append(statements, lines[i].ToMatchingStatement())
	}

	candidates := make([]matching.Transaction, 0, len(transactions))
	for i := range transactions {
		candidates = append(candidates, transactions[i].ToMatchingTransaction())
	}

	filters := &matching.Filters{
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
		PartyID:   opts.PartyID,
	}

	engineResult, err := s.engine.FindMatches(ctx, statements, candidates, matching.Options{
		StatementFilters:   filters,
		TransactionFilters: filters,
		MaxMatches:         opts.MaxMatches,
	})
	if err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}

	return &RunResult{
		AccountID:  accountID,
		Matches:    engineResult.Matches,
		Statistics: engineResult.Statistics,
	}, nil
}

// persistAutoMatches writes the auto-accepted best match of each group and
// flips the reconciled flags on both sides.
func (s *ReconciliationService) persistAutoMatches(accountID uuid.UUID, groups []matching.StatementMatchGroup) (int, error) {
	persisted := 0

	for _, group := range groups {
		if !group.AutoMatched || group.BestMatch == nil {
			continue
		}

		best := group.BestMatch

		statementLineID, err := uuid.Parse(group.StatementID)
		if err != nil {
			return persisted, fmt.Errorf("invalid statement line ID %q: %w", group.StatementID, err)
		}
		transactionID, err := uuid.Parse(best.TransactionID)
		if err != nil {
			return persisted, fmt.Errorf("invalid transaction ID %q: %w", best.TransactionID, err)
		}

		match := &models.ReconciliationMatch{
			AccountID:       accountID,
			StatementLineID: statementLineID,
			TransactionID:   transactionID,
			TransactionType: best.TransactionType,
			Confidence:      best.Confidence,
			ConfidenceLevel: string(best.ConfidenceLevel),
			Explanation:     best.Explanation,
			Decision:        models.MatchDecisionAuto,
			AutoMatched:     true,
		}
		match.SetScore("party", best.Scores.Party)
		match.SetScore("description", best.Scores.Description)
		match.SetScore("amount", best.Scores.Amount)
		match.SetScore("date", best.Scores.Date)

		if err := s.matchRepo.Create(match); err != nil {
			return persisted, fmt.Errorf("failed to persist auto match: %w", err)
		}
		if err := s.statementRepo.MarkReconciled(statementLineID, true); err != nil {
			return persisted, fmt.Errorf("failed to mark statement line reconciled: %w", err)
		}
		if err := s.ledgerRepo.MarkReconciled(transactionID, true); err != nil {
			return persisted, fmt.Errorf("failed to mark ledger transaction reconciled: %w", err)
		}

		if err := s.auditService.LogMatchAuto(accountID, match.ID, best.Confidence); err != nil {
			s.logger.Warn("failed to audit auto match", "match_id", match.ID, "error", err)
		}
		s.metrics.IncrementCounter("reconciliation.match.persisted", nil)

		persisted++
	}

	return persisted, nil
}

func (s *ReconciliationService) recordRunMetrics(result *RunResult, elapsed time.Duration) {
	s.metrics.IncrementCounter("reconciliation.run.completed", nil)
	s.metrics.RecordProcessingTime("reconciliation.run", elapsed)
	s.metrics.RecordGauge("reconciliation.match_rate", result.Statistics.MatchRate, nil)
	s.metrics.RecordGauge("reconciliation.auto_match_rate", result.Statistics.AutoMatchRate, nil)
	s.metrics.RecordGauge("reconciliation.unreconciled_lines", float64(result.Statistics.TotalStatements), nil)

	for _, group := range result.Matches {
		for _, candidate := range group.Candidates {
			s.metrics.IncrementCounter("reconciliation.match.candidate", map[string]string{
				"confidence_level": string(candidate.ConfidenceLevel),
			})
			s.metrics.RecordGauge("reconciliation.match.confidence", candidate.Confidence, nil)
		}
	}
}

// GetMatches returns persisted matches for an account
func (s *ReconciliationService) GetMatches(accountID uuid.UUID, filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error) {
	if accountID == uuid.Nil {
		return nil, 0, ErrInvalidAccountID
	}

	filters.AccountID = accountID
	return s.matchRepo.GetWithFilters(filters)
}

// GetMatchSummary returns per-decision match counts for an account
func (s *ReconciliationService) GetMatchSummary(accountID uuid.UUID) (map[string]int64, error) {
	if accountID == uuid.Nil {
		return nil, ErrInvalidAccountID
	}

	return s.matchRepo.CountByDecision(accountID)
}
