package repositories

import (
	"testing"
	"time"

	"bank-reconciliation/internal/database"
	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestStatementLineRepository(t *testing.T) {
	suite.Run(t, new(StatementLineRepositorySuite))
}

type StatementLineRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo StatementLineRepositoryInterface
}

func (s *StatementLineRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewStatementLineRepository(s.db.DB)
}

func (s *StatementLineRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *StatementLineRepositorySuite) TestCreate() {
	line := &models.StatementLine{
		AccountID:       uuid.New(),
		Amount:          decimal.NewFromFloat(-150.25),
		TransactionDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Description:     "PIX TRANSFER JOAO SILVA",
	}

	err := s.repo.Create(line)
	s.NoError(err)
	s.NotEqual(uuid.Nil, line.ID)
	s.NotZero(line.CreatedAt)
}

func (s *StatementLineRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(nil))
}

func (s *StatementLineRepositorySuite) TestCreateBatch() {
	accountID := uuid.New()
	lines := []models.StatementLine{
		{AccountID: accountID, Amount: decimal.NewFromFloat(-10), TransactionDate: time.Now(), Description: "A"},
		{AccountID: accountID, Amount: decimal.NewFromFloat(20), TransactionDate: time.Now(), Description: "B"},
	}

	s.NoError(s.repo.CreateBatch(lines))

	_, total, err := s.repo.GetByAccountID(accountID, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *StatementLineRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *StatementLineRepositorySuite) TestGetByID() {
	accountID := uuid.New()
	created := database.CreateTestStatementLine(s.T(), s.db, accountID, -99.50, time.Now(), "RENT")

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("RENT", found.Description)
}

func (s *StatementLineRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrStatementLineNotFound)
}

func (s *StatementLineRepositorySuite) TestGetUnreconciled() {
	accountID := uuid.New()
	database.CreateTestStatementLine(s.T(), s.db, accountID, -10, time.Now(), "OPEN")

	reconciled := database.CreateTestStatementLine(s.T(), s.db, accountID, -20, time.Now(), "DONE")
	s.NoError(s.repo.MarkReconciled(reconciled.ID, true))

	// Different account must not leak in.
	database.CreateTestStatementLine(s.T(), s.db, uuid.New(), -30, time.Now(), "OTHER")

	lines, err := s.repo.GetUnreconciled(accountID)
	s.NoError(err)
	s.Len(lines, 1)
	s.Equal("OPEN", lines[0].Description)
}

func (s *StatementLineRepositorySuite) TestGetWithFilters() {
	accountID := uuid.New()
	database.CreateTestStatementLine(s.T(), s.db, accountID, -50, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), "EARLY")
	database.CreateTestStatementLine(s.T(), s.db, accountID, -500, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), "LATE")

	start := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	lines, total, err := s.repo.GetWithFilters(models.StatementLineFilters{
		AccountID: accountID,
		StartDate: &start,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(lines, 1)
	s.Equal("LATE", lines[0].Description)
}

func (s *StatementLineRepositorySuite) TestGetWithFilters_Reconciled() {
	accountID := uuid.New()
	line := database.CreateTestStatementLine(s.T(), s.db, accountID, -50, time.Now(), "DONE")
	s.NoError(s.repo.MarkReconciled(line.ID, true))
	database.CreateTestStatementLine(s.T(), s.db, accountID, -60, time.Now(), "OPEN")

	reconciled := true
	lines, total, err := s.repo.GetWithFilters(models.StatementLineFilters{
		AccountID:  accountID,
		Reconciled: &reconciled,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(lines, 1)
	s.Equal("DONE", lines[0].Description)
}

func (s *StatementLineRepositorySuite) TestMarkReconciled_NotFound() {
	s.ErrorIs(s.repo.MarkReconciled(uuid.New(), true), ErrStatementLineNotFound)
}

func (s *StatementLineRepositorySuite) TestDelete() {
	line := database.CreateTestStatementLine(s.T(), s.db, uuid.New(), -10, time.Now(), "TEMP")

	s.NoError(s.repo.Delete(line.ID))

	_, err := s.repo.GetByID(line.ID)
	s.ErrorIs(err, ErrStatementLineNotFound)
}

func (s *StatementLineRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrStatementLineNotFound)
}
