package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bank-reconciliation/internal/matching"
	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/services"
	"bank-reconciliation/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReconciliationHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockReconciliationServiceInterface
	handler     *ReconciliationHandler
	accountID   uuid.UUID
}

func TestReconciliationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationHandlerTestSuite))
}

func (s *ReconciliationHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockReconciliationServiceInterface(s.ctrl)
	s.handler = NewReconciliationHandler(s.mockService)
	s.accountID = uuid.New()
}

func (s *ReconciliationHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReconciliationHandlerTestSuite) postRun(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation/run", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ReconciliationHandlerTestSuite) TestRunReconciliation_Success() {
	result := &services.RunResult{
		AccountID: s.accountID,
		Matches: []matching.StatementMatchGroup{
			{
				StatementID: uuid.New().String(),
				AutoMatched: true,
				Candidates: []matching.Candidate{
					{
						TransactionID:   uuid.New().String(),
						TransactionType: matching.TransactionTypeRevenue,
						Confidence:      0.95,
						ConfidenceLevel: matching.ConfidenceHigh,
						Explanation:     "Exact party match",
						AutoMatched:     true,
					},
				},
			},
		},
		Statistics: matching.RunStatistics{
			TotalStatements:   1,
			TotalTransactions: 1,
			TotalMatches:      1,
			AutoMatched:       1,
			MatchRate:         1.0,
			AutoMatchRate:     1.0,
		},
		Persisted: 1,
	}
	result.Matches[0].BestMatch = &result.Matches[0].Candidates[0]

	s.mockService.EXPECT().
		RunReconciliation(gomock.Any(), s.accountID, gomock.Any()).
		Return(result, nil).
		Times(1)

	body := fmt.Sprintf(`{"account_id":%q}`, s.accountID)
	c, rec := s.postRun(body)

	err := s.handler.RunReconciliation(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	s.Equal(s.accountID.String(), data["account_id"])
	s.Equal(float64(1), data["persisted"])

	stats := data["statistics"].(map[string]interface{})
	s.Equal(float64(1), stats["auto_matched"])

	matches := data["matches"].([]interface{})
	s.Len(matches, 1)
	group := matches[0].(map[string]interface{})
	s.Equal(true, group["auto_matched"])
	s.NotNil(group["best_match"])
}

func (s *ReconciliationHandlerTestSuite) TestRunReconciliation_DryRunPassedThrough() {
	s.mockService.EXPECT().
		RunReconciliation(gomock.Any(), s.accountID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, opts services.RunOptions) (*services.RunResult, error) {
			s.True(opts.DryRun)
			s.Equal(3, opts.MaxMatches)
			return &services.RunResult{AccountID: s.accountID}, nil
		}).
		Times(1)

	body := fmt.Sprintf(`{"account_id":%q,"dry_run":true,"max_matches":3}`, s.accountID)
	c, rec := s.postRun(body)

	err := s.handler.RunReconciliation(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReconciliationHandlerTestSuite) TestRunReconciliation_InvalidBody() {
	c, rec := s.postRun(`{not json`)

	err := s.handler.RunReconciliation(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *ReconciliationHandlerTestSuite) TestRunReconciliation_MissingAccountID() {
	c, rec := s.postRun(`{}`)

	err := s.handler.RunReconciliation(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ReconciliationHandlerTestSuite) TestRunReconciliation_InvalidDateRange() {
	s.mockService.EXPECT().
		RunReconciliation(gomock.Any(), s.accountID, gomock.Any()).
		Return(nil, services.ErrRunDateRange).
		Times(1)

	body := fmt.Sprintf(`{"account_id":%q}`, s.accountID)
	c, rec := s.postRun(body)

	err := s.handler.RunReconciliation(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "RECON_002")
}

func (s *ReconciliationHandlerTestSuite) TestRunReconciliation_ServiceError() {
	s.mockService.EXPECT().
		RunReconciliation(gomock.Any(), s.accountID, gomock.Any()).
		Return(nil, errors.New("database error")).
		Times(1)

	body := fmt.Sprintf(`{"account_id":%q}`, s.accountID)
	c, rec := s.postRun(body)

	err := s.handler.RunReconciliation(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	// Internal details stay server-side.
	s.NotContains(rec.Body.String(), "database error")
}

func (s *ReconciliationHandlerTestSuite) listMatchesContext(accountID, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliation/matches/"+accountID+query, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID)
	return c, rec
}

func (s *ReconciliationHandlerTestSuite) TestListMatches_Success() {
	operatorID := uuid.New()
	matches := []models.ReconciliationMatch{
		{
			ID:              uuid.New(),
			AccountID:       s.accountID,
			StatementLineID: uuid.New(),
			TransactionID:   uuid.New(),
			TransactionType: models.TransactionTypeRevenue,
			Confidence:      0.91,
			ConfidenceLevel: models.MatchConfidenceHigh,
			Decision:        models.MatchDecisionConfirmed,
			DecidedBy:       &operatorID,
		},
	}

	s.mockService.EXPECT().
		GetMatches(s.accountID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error) {
			s.Equal(models.MatchDecisionConfirmed, filters.Decision)
			s.Equal(0, filters.Offset)
			s.Equal(20, filters.Limit)
			return matches, int64(1), nil
		}).
		Times(1)

	c, rec := s.listMatchesContext(s.accountID.String(), "?decision=confirmed")

	err := s.handler.ListMatches(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	items := data["matches"].([]interface{})
	s.Len(items, 1)
	item := items[0].(map[string]interface{})
	s.Equal("confirmed", item["decision"])
	s.Equal(operatorID.String(), item["decided_by"])

	pagination := data["pagination"].(map[string]interface{})
	s.Equal(float64(1), pagination["total"])
}

func (s *ReconciliationHandlerTestSuite) TestListMatches_LimitClamped() {
	s.mockService.EXPECT().
		GetMatches(s.accountID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, filters models.MatchFilters) ([]models.ReconciliationMatch, int64, error) {
			s.Equal(maxPageLimit, filters.Limit)
			return nil, 0, nil
		}).
		Times(1)

	c, rec := s.listMatchesContext(s.accountID.String(), "?limit=5000")

	err := s.handler.ListMatches(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReconciliationHandlerTestSuite) TestListMatches_InvalidAccountID() {
	c, rec := s.listMatchesContext("not-a-uuid", "")

	err := s.handler.ListMatches(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "RECON_001")
}

func (s *ReconciliationHandlerTestSuite) TestListMatches_InvalidDecision() {
	c, rec := s.listMatchesContext(s.accountID.String(), "?decision=maybe")

	err := s.handler.ListMatches(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "MATCH_003")
}

func (s *ReconciliationHandlerTestSuite) TestListMatches_ServiceError() {
	s.mockService.EXPECT().
		GetMatches(s.accountID, gomock.Any()).
		Return(nil, int64(0), errors.New("database error")).
		Times(1)

	c, rec := s.listMatchesContext(s.accountID.String(), "")

	err := s.handler.ListMatches(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *ReconciliationHandlerTestSuite) TestGetMatchSummary_Success() {
	counts := map[string]int64{
		models.MatchDecisionAuto:      3,
		models.MatchDecisionConfirmed: 2,
	}

	s.mockService.EXPECT().
		GetMatchSummary(s.accountID).
		Return(counts, nil).
		Times(1)

	c, rec := s.listMatchesContext(s.accountID.String(), "")

	err := s.handler.GetMatchSummary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	s.Equal(float64(5), data["total"])

	countsData := data["counts"].(map[string]interface{})
	s.Equal(float64(3), countsData["auto"])
	s.Equal(float64(2), countsData["confirmed"])
}

func (s *ReconciliationHandlerTestSuite) TestGetMatchSummary_InvalidAccountID() {
	c, rec := s.listMatchesContext("not-a-uuid", "")

	err := s.handler.GetMatchSummary(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "RECON_001")
}
