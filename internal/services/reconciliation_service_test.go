package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"bank-reconciliation/internal/matching"
	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/repositories/repository_mocks"
	"bank-reconciliation/internal/services"
	"bank-reconciliation/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReconciliationServiceTestSuite is the test suite for ReconciliationService
type ReconciliationServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockStatementRepo *repository_mocks.MockStatementLineRepositoryInterface
	mockLedgerRepo    *repository_mocks.MockLedgerTransactionRepositoryInterface
	mockMatchRepo     *repository_mocks.MockMatchRepositoryInterface
	mockAudit         *service_mocks.MockAuditServiceInterface
	mockMetrics       *service_mocks.MockMetricsRecorderInterface
	service           services.ReconciliationServiceInterface
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStatementRepo = repository_mocks.NewMockStatementLineRepositoryInterface(s.ctrl)
	s.mockLedgerRepo = repository_mocks.NewMockLedgerTransactionRepositoryInterface(s.ctrl)
	s.mockMatchRepo = repository_mocks.NewMockMatchRepositoryInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	service, err := services.NewReconciliationService(
		s.mockStatementRepo,
		s.mockLedgerRepo,
		s.mockMatchRepo,
		s.mockAudit,
		s.mockMetrics,
		matching.DefaultConfig(),
		true,
		slog.Default(),
	)
	s.Require().NoError(err)
	s.service = service
}

func (s *ReconciliationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconciliationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}

// allowMetrics lets any metric call through; individual tests assert the
// calls they care about explicitly.
func (s *ReconciliationServiceTestSuite) allowMetrics() {
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

// exactPair returns a statement line and a ledger transaction that agree on
// every factor, which the engine scores at full confidence.
func exactPair(accountID uuid.UUID) (models.StatementLine, models.LedgerTransaction) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	line := models.StatementLine{
		ID:              uuid.New(),
		AccountID:       accountID,
		Amount:          decimal.NewFromFloat(1250.00),
		TransactionDate: date,
		Description:     "ACME CORP INVOICE 1042",
		PartyID:         "acme-123",
		PartyName:       "Acme Corp",
	}

	transaction := models.LedgerTransaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		TransactionType: models.TransactionTypeRevenue,
		Value:           decimal.NewFromFloat(1250.00),
		TransactionDate: date,
		Description:     "ACME CORP INVOICE 1042",
		PartyID:         "acme-123",
		PartyName:       "Acme Corp",
		Status:          models.TransactionStatusPending,
	}

	return line, transaction
}

func (s *ReconciliationServiceTestSuite) TestNewReconciliationService_InvalidConfig() {
	cfg := matching.DefaultConfig()
	cfg.MaxMatches = 0

	service, err := services.NewReconciliationService(
		s.mockStatementRepo,
		s.mockLedgerRepo,
		s.mockMatchRepo,
		s.mockAudit,
		s.mockMetrics,
		cfg,
		true,
		slog.Default(),
	)
	s.Error(err)
	s.Nil(service)
	s.Contains(err.Error(), "failed to build matching engine")
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_AutoMatchPersisted() {
	accountID := uuid.New()
	line, transaction := exactPair(accountID)

	s.allowMetrics()
	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.StatementLine{line}, nil).
		Times(1)
	s.mockLedgerRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.LedgerTransaction{transaction}, nil).
		Times(1)

	s.mockMatchRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(match *models.ReconciliationMatch) error {
			s.Equal(accountID, match.AccountID)
			s.Equal(line.ID, match.StatementLineID)
			s.Equal(transaction.ID, match.TransactionID)
			s.Equal(models.TransactionTypeRevenue, match.TransactionType)
			s.Equal(models.MatchDecisionAuto, match.Decision)
			s.True(match.AutoMatched)
			s.GreaterOrEqual(match.Confidence, 0.85)
			s.NotNil(match.Scores)
			match.ID = uuid.New()
			return nil
		}).
		Times(1)
	s.mockStatementRepo.EXPECT().MarkReconciled(line.ID, true).Return(nil).Times(1)
	s.mockLedgerRepo.EXPECT().MarkReconciled(transaction.ID, true).Return(nil).Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogMatchAuto(accountID, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunCompleted(accountID, gomock.Any()).Return(nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{})
	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(accountID, result.AccountID)
	s.Equal(1, result.Persisted)
	s.Equal(1, result.Statistics.AutoMatched)
	s.Len(result.Matches, 1)
	s.True(result.Matches[0].AutoMatched)
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_DryRun() {
	accountID := uuid.New()
	line, transaction := exactPair(accountID)

	s.allowMetrics()
	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.StatementLine{line}, nil).
		Times(1)
	s.mockLedgerRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.LedgerTransaction{transaction}, nil).
		Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunCompleted(accountID, gomock.Any()).Return(nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{DryRun: true})
	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(0, result.Persisted)
	s.Len(result.Matches, 1)
	s.True(result.Matches[0].AutoMatched)
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_NilAccountID() {
	result, err := s.service.RunReconciliation(context.Background(), uuid.Nil, services.RunOptions{})
	s.Error(err)
	s.Nil(result)
	s.ErrorIs(err, services.ErrInvalidAccountID)
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_InvalidDateRange() {
	accountID := uuid.New()
	start := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{
		StartDate: &start,
		EndDate:   &end,
	})
	s.Error(err)
	s.Nil(result)
	s.ErrorIs(err, services.ErrRunDateRange)
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_StatementRepoError() {
	accountID := uuid.New()

	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return(nil, errors.New("database error")).
		Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunFailed(accountID, gomock.Any()).Return(nil).Times(1)
	s.mockMetrics.EXPECT().IncrementCounter("reconciliation.run.failed", nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{})
	s.Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "failed to load statement lines")
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_LedgerRepoError() {
	accountID := uuid.New()
	line, _ := exactPair(accountID)

	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.StatementLine{line}, nil).
		Times(1)
	s.mockLedgerRepo.EXPECT().
		GetUnreconciled(accountID).
		Return(nil, errors.New("database error")).
		Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunFailed(accountID, gomock.Any()).Return(nil).Times(1)
	s.mockMetrics.EXPECT().IncrementCounter("reconciliation.run.failed", nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{})
	s.Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "failed to load ledger transactions")
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_PersistError() {
	accountID := uuid.New()
	line, transaction := exactPair(accountID)

	s.allowMetrics()
	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.StatementLine{line}, nil).
		Times(1)
	s.mockLedgerRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.LedgerTransaction{transaction}, nil).
		Times(1)
	s.mockMatchRepo.EXPECT().
		Create(gomock.Any()).
		Return(errors.New("database error")).
		Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunFailed(accountID, gomock.Any()).Return(nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{})
	s.Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "failed to persist auto match")
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_NoCandidates() {
	accountID := uuid.New()
	line, transaction := exactPair(accountID)

	// Push every factor far outside tolerance so no candidate survives.
	transaction.Value = decimal.NewFromFloat(987654.00)
	transaction.TransactionDate = line.TransactionDate.AddDate(1, 0, 0)
	transaction.Description = "UNRELATED OFFICE SUPPLIES"
	transaction.PartyID = "other-party"
	transaction.PartyName = "Someone Else Ltd"

	s.allowMetrics()
	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.StatementLine{line}, nil).
		Times(1)
	s.mockLedgerRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.LedgerTransaction{transaction}, nil).
		Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunCompleted(accountID, gomock.Any()).Return(nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{})
	s.NoError(err)
	s.Require().NotNil(result)
	s.Len(result.Matches, 0)
	s.Equal(0, result.Persisted)
	s.Equal(1, result.Statistics.TotalStatements)
	s.Equal(0, result.Statistics.TotalMatches)
}

func (s *ReconciliationServiceTestSuite) TestRunReconciliation_DateFilterExcludesEverything() {
	accountID := uuid.New()
	line, transaction := exactPair(accountID)
	start := line.TransactionDate.AddDate(0, 6, 0)
	end := start.AddDate(0, 1, 0)

	s.allowMetrics()
	s.mockStatementRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.StatementLine{line}, nil).
		Times(1)
	s.mockLedgerRepo.EXPECT().
		GetUnreconciled(accountID).
		Return([]models.LedgerTransaction{transaction}, nil).
		Times(1)

	s.mockAudit.EXPECT().LogRunStarted(accountID).Return(nil).Times(1)
	s.mockAudit.EXPECT().LogRunCompleted(accountID, gomock.Any()).Return(nil).Times(1)

	result, err := s.service.RunReconciliation(context.Background(), accountID, services.RunOptions{
		StartDate: &start,
		EndDate:   &end,
	})
	s.NoError(err)
	s.Require().NotNil(result)
	s.Len(result.Matches, 0)
	s.Equal(0, result.Statistics.TotalStatements)
}

func (s *ReconciliationServiceTestSuite) TestGetMatches() {
	accountID := uuid.New()
	expected := []models.ReconciliationMatch{
		{
			ID:              uuid.New(),
			AccountID:       accountID,
			StatementLineID: uuid.New(),
			TransactionID:   uuid.New(),
			TransactionType: models.TransactionTypeRevenue,
			Confidence:      0.92,
			ConfidenceLevel: models.MatchConfidenceHigh,
			Decision:        models.MatchDecisionAuto,
			AutoMatched:     true,
		},
	}

	s.mockMatchRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error) {
			s.Equal(accountID, filters.AccountID)
			s.Equal(models.MatchDecisionAuto, filters.Decision)
			return expected, int64(1), nil
		}).
		Times(1)

	results, total, err := s.service.GetMatches(accountID, models.MatchFilters{Decision: models.MatchDecisionAuto})
	s.NoError(err)
	s.Len(results, 1)
	s.Equal(int64(1), total)
	s.Equal(expected, results)
}

func (s *ReconciliationServiceTestSuite) TestGetMatches_NilAccountID() {
	results, total, err := s.service.GetMatches(uuid.Nil, models.MatchFilters{})
	s.Error(err)
	s.Nil(results)
	s.Equal(int64(0), total)
	s.ErrorIs(err, services.ErrInvalidAccountID)
}

func (s *ReconciliationServiceTestSuite) TestGetMatchSummary() {
	accountID := uuid.New()
	expected := map[string]int64{
		models.MatchDecisionAuto:      4,
		models.MatchDecisionConfirmed: 2,
		models.MatchDecisionRejected:  1,
	}

	s.mockMatchRepo.EXPECT().
		CountByDecision(accountID).
		Return(expected, nil).
		Times(1)

	summary, err := s.service.GetMatchSummary(accountID)
	s.NoError(err)
	s.Equal(expected, summary)
}

func (s *ReconciliationServiceTestSuite) TestGetMatchSummary_NilAccountID() {
	summary, err := s.service.GetMatchSummary(uuid.Nil)
	s.Error(err)
	s.Nil(summary)
	s.ErrorIs(err, services.ErrInvalidAccountID)
}
