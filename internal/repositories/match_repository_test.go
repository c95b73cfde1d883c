package repositories

import (
	"testing"
	"time"

	"bank-reconciliation/internal/database"
	"bank-reconciliation/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestMatchRepository(t *testing.T) {
	suite.Run(t, new(MatchRepositorySuite))
}

type MatchRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo MatchRepositoryInterface
}

func (s *MatchRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewMatchRepository(s.db.DB)
}

func (s *MatchRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *MatchRepositorySuite) TestCreate() {
	match := &models.ReconciliationMatch{
		AccountID:       uuid.New(),
		StatementLineID: uuid.New(),
		TransactionID:   uuid.New(),
		TransactionType: models.TransactionTypeRevenue,
		Confidence:      0.92,
		ConfidenceLevel: models.MatchConfidenceHigh,
		Decision:        models.MatchDecisionAuto,
		AutoMatched:     true,
	}
	match.SetScore("party", 1.0)

	err := s.repo.Create(match)
	s.NoError(err)
	s.NotEqual(uuid.Nil, match.ID)

	found, err := s.repo.GetByID(match.ID)
	s.NoError(err)
	s.Equal(1.0, found.Scores["party"])
}

func (s *MatchRepositorySuite) TestCreate_InvalidDecision() {
	match := &models.ReconciliationMatch{
		AccountID:       uuid.New(),
		StatementLineID: uuid.New(),
		TransactionID:   uuid.New(),
		TransactionType: models.TransactionTypeRevenue,
		Confidence:      0.5,
		ConfidenceLevel: models.MatchConfidenceLow,
		Decision:        "maybe",
	}

	s.Error(s.repo.Create(match))
}

func (s *MatchRepositorySuite) TestGetByStatementLineID_SortedByConfidence() {
	accountID := uuid.New()
	statementLineID := uuid.New()
	database.CreateTestMatch(s.T(), s.db, accountID, statementLineID, uuid.New(), 0.5, models.MatchDecisionAuto)
	database.CreateTestMatch(s.T(), s.db, accountID, statementLineID, uuid.New(), 0.9, models.MatchDecisionAuto)
	database.CreateTestMatch(s.T(), s.db, accountID, uuid.New(), uuid.New(), 0.7, models.MatchDecisionAuto)

	matches, err := s.repo.GetByStatementLineID(statementLineID)
	s.NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(0.9, matches[0].Confidence)
	s.Equal(0.5, matches[1].Confidence)
}

func (s *MatchRepositorySuite) TestGetWithFilters() {
	accountID := uuid.New()
	database.CreateTestMatch(s.T(), s.db, accountID, uuid.New(), uuid.New(), 0.9, models.MatchDecisionAuto)
	database.CreateTestMatch(s.T(), s.db, accountID, uuid.New(), uuid.New(), 0.5, models.MatchDecisionRejected)

	matches, total, err := s.repo.GetWithFilters(models.MatchFilters{
		AccountID: accountID,
		Decision:  models.MatchDecisionAuto,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(matches, 1)
	s.Equal(models.MatchDecisionAuto, matches[0].Decision)
}

func (s *MatchRepositorySuite) TestUpdateDecision() {
	match := database.CreateTestMatch(s.T(), s.db, uuid.New(), uuid.New(), uuid.New(), 0.7, models.MatchDecisionAuto)
	operator := uuid.New()
	decidedAt := time.Now().UTC()

	s.NoError(s.repo.UpdateDecision(match.ID, models.MatchDecisionConfirmed, operator, decidedAt))

	updated, err := s.repo.GetByID(match.ID)
	s.NoError(err)
	s.Equal(models.MatchDecisionConfirmed, updated.Decision)
	s.Require().NotNil(updated.DecidedBy)
	s.Equal(operator, *updated.DecidedBy)
	s.NotNil(updated.DecidedAt)
}

func (s *MatchRepositorySuite) TestUpdateDecision_Invalid() {
	match := database.CreateTestMatch(s.T(), s.db, uuid.New(), uuid.New(), uuid.New(), 0.7, models.MatchDecisionAuto)

	err := s.repo.UpdateDecision(match.ID, "maybe", uuid.New(), time.Now())
	s.ErrorIs(err, models.ErrInvalidMatchDecision)
}

func (s *MatchRepositorySuite) TestUpdateDecision_NotFound() {
	err := s.repo.UpdateDecision(uuid.New(), models.MatchDecisionConfirmed, uuid.New(), time.Now())
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchRepositorySuite) TestCountByDecision() {
	accountID := uuid.New()
	database.CreateTestMatch(s.T(), s.db, accountID, uuid.New(), uuid.New(), 0.9, models.MatchDecisionAuto)
	database.CreateTestMatch(s.T(), s.db, accountID, uuid.New(), uuid.New(), 0.8, models.MatchDecisionAuto)
	database.CreateTestMatch(s.T(), s.db, accountID, uuid.New(), uuid.New(), 0.5, models.MatchDecisionRejected)

	counts, err := s.repo.CountByDecision(accountID)
	s.NoError(err)
	s.Equal(int64(2), counts[models.MatchDecisionAuto])
	s.Equal(int64(1), counts[models.MatchDecisionRejected])
}

func (s *MatchRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrMatchNotFound)
}
