package handlers

import (
	"net/http"

	"bank-reconciliation/internal/dto"
	"bank-reconciliation/internal/errors"
	"bank-reconciliation/internal/models"
	"bank-reconciliation/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ReconciliationHandler handles reconciliation run and match listing requests
type ReconciliationHandler struct {
	reconciliationService services.ReconciliationServiceInterface
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService services.ReconciliationServiceInterface) *ReconciliationHandler {
	return &ReconciliationHandler{
		reconciliationService: reconciliationService,
	}
}

// RunReconciliation starts a matching run over an account's unreconciled data
// @Summary Run reconciliation
// @Description Match unreconciled statement lines against ledger transactions for an account
// @Tags Reconciliation
// @Accept json
// @Produce json
// @Param request body dto.RunReconciliationRequest true "Run parameters"
// @Success 200 {object} SuccessResponse{data=dto.RunReconciliationResponse} "Run results"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters or RECON_002 - Invalid date range"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reconciliation/run [post]
func (h *ReconciliationHandler) RunReconciliation(c echo.Context) error {
	var req dto.RunReconciliationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.ReconInvalidAccount)
	}

	opts := services.RunOptions{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		PartyID:    req.PartyID,
		MaxMatches: req.MaxMatches,
		DryRun:     req.DryRun,
	}

	result, err := h.reconciliationService.RunReconciliation(c.Request().Context(), accountID, opts)
	if err != nil {
		switch err {
		case services.ErrInvalidAccountID:
			return SendError(c, errors.ReconInvalidAccount)
		case services.ErrRunDateRange:
			return SendError(c, errors.ReconInvalidDateRange)
		default:
			return SendSystemError(c, err)
		}
	}

	matches := make([]dto.MatchGroupResponse, 0, len(result.Matches))
	for _, group := range result.Matches {
		matches = append(matches, dto.NewMatchGroupResponse(group))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RunReconciliationResponse{
			AccountID:  result.AccountID.String(),
			DryRun:     req.DryRun,
			Persisted:  result.Persisted,
			Statistics: dto.NewRunStatisticsResponse(result.Statistics),
			Matches:    matches,
		},
	})
}

// ListMatches retrieves persisted matches for an account
// @Summary List matches
// @Description Retrieve paginated persisted reconciliation matches for an account
// @Tags Reconciliation
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param decision query string false "Filter by decision" Enums(auto, confirmed, overridden, rejected)
// @Param confidence_level query string false "Filter by confidence level" Enums(high, medium, low)
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=dto.ListMatchesResponse} "Matches with pagination"
// @Failure 400 {object} errors.ErrorResponse "RECON_001 - Invalid account ID or MATCH_003 - Invalid decision filter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reconciliation/matches/{accountId} [get]
func (h *ReconciliationHandler) ListMatches(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ReconInvalidAccount)
	}

	decision := c.QueryParam("decision")
	if decision != "" && !models.IsValidMatchDecision(decision) {
		return SendError(c, errors.MatchInvalidDecision)
	}

	confidenceLevel := c.QueryParam("confidence_level")
	if confidenceLevel != "" && !models.IsValidConfidenceLevel(confidenceLevel) {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid confidence level"))
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filters := models.MatchFilters{
		Decision:        decision,
		ConfidenceLevel: confidenceLevel,
		Offset:          offset,
		Limit:           limit,
	}

	matches, total, err := h.reconciliationService.GetMatches(accountID, filters)
	if err != nil {
		if err == services.ErrInvalidAccountID {
			return SendError(c, errors.ReconInvalidAccount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewListMatchesResponse(matches, total, offset, limit),
	})
}

// GetMatchSummary retrieves per-decision match counts for an account
// @Summary Match summary
// @Description Retrieve per-decision counts of persisted matches for an account
// @Tags Reconciliation
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.MatchSummaryResponse} "Per-decision counts"
// @Failure 400 {object} errors.ErrorResponse "RECON_001 - Invalid account ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reconciliation/matches/{accountId}/summary [get]
func (h *ReconciliationHandler) GetMatchSummary(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ReconInvalidAccount)
	}

	counts, err := h.reconciliationService.GetMatchSummary(accountID)
	if err != nil {
		if err == services.ErrInvalidAccountID {
			return SendError(c, errors.ReconInvalidAccount)
		}
		return SendSystemError(c, err)
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.MatchSummaryResponse{
			AccountID: accountID.String(),
			Counts:    counts,
			Total:     total,
		},
	})
}
