package handlers

import (
	"net/http"

	"bank-reconciliation/internal/dto"
	"bank-reconciliation/internal/errors"
	"bank-reconciliation/internal/repositories"
	"bank-reconciliation/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MatchHandler handles operator decisions on persisted matches
type MatchHandler struct {
	confirmationService services.MatchConfirmationServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(confirmationService services.MatchConfirmationServiceInterface) *MatchHandler {
	return &MatchHandler{
		confirmationService: confirmationService,
	}
}

// ConfirmMatch marks a proposed match as confirmed by an operator
// @Summary Confirm match
// @Description Confirm a proposed reconciliation match and mark both records reconciled
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param request body dto.DecideMatchRequest true "Operator making the decision"
// @Success 200 {object} SuccessResponse{data=dto.MatchResponse} "Confirmed match"
// @Failure 400 {object} errors.ErrorResponse "MATCH_004 - Invalid match ID"
// @Failure 404 {object} errors.ErrorResponse "MATCH_001 - Match not found"
// @Failure 409 {object} errors.ErrorResponse "MATCH_002 - Match already decided"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reconciliation/matches/{id}/confirm [post]
func (h *MatchHandler) ConfirmMatch(c echo.Context) error {
	matchID, operatorID, ok, err := h.parseDecision(c)
	if !ok {
		return err
	}

	match, err := h.confirmationService.ConfirmMatch(matchID, operatorID, getClientIP(c))
	if err != nil {
		return h.sendDecisionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewMatchResponse(match),
		Message: "Match confirmed",
	})
}

// OverrideMatch replaces the matched transaction with one chosen by the operator
// @Summary Override match
// @Description Replace the matched ledger transaction with an operator-chosen one
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param request body dto.OverrideMatchRequest true "Operator and replacement transaction"
// @Success 200 {object} SuccessResponse{data=dto.MatchResponse} "Replacement match"
// @Failure 400 {object} errors.ErrorResponse "MATCH_004 - Invalid match ID"
// @Failure 404 {object} errors.ErrorResponse "MATCH_001 - Match not found or TRANSACTION_001 - Replacement not found"
// @Failure 409 {object} errors.ErrorResponse "MATCH_002 - Match already decided or TRANSACTION_003 - Replacement already reconciled"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Replacement belongs to another account"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reconciliation/matches/{id}/override [post]
func (h *MatchHandler) OverrideMatch(c echo.Context) error {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.MatchInvalidID)
	}

	var req dto.OverrideMatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	operatorID, err := uuid.Parse(req.OperatorID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid operator ID"))
	}
	newTransactionID, err := uuid.Parse(req.NewTransactionID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	match, err := h.confirmationService.OverrideMatch(matchID, operatorID, newTransactionID, getClientIP(c))
	if err != nil {
		return h.sendDecisionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewMatchResponse(match),
		Message: "Match overridden",
	})
}

// RejectMatch marks a proposed match as rejected by an operator
// @Summary Reject match
// @Description Reject a proposed reconciliation match and release any auto-set flags
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param request body dto.DecideMatchRequest true "Operator making the decision"
// @Success 200 {object} SuccessResponse{data=dto.MatchResponse} "Rejected match"
// @Failure 400 {object} errors.ErrorResponse "MATCH_004 - Invalid match ID"
// @Failure 404 {object} errors.ErrorResponse "MATCH_001 - Match not found"
// @Failure 409 {object} errors.ErrorResponse "MATCH_002 - Match already decided"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reconciliation/matches/{id}/reject [post]
func (h *MatchHandler) RejectMatch(c echo.Context) error {
	matchID, operatorID, ok, err := h.parseDecision(c)
	if !ok {
		return err
	}

	match, err := h.confirmationService.RejectMatch(matchID, operatorID, getClientIP(c))
	if err != nil {
		return h.sendDecisionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewMatchResponse(match),
		Message: "Match rejected",
	})
}

// parseDecision extracts the match ID path param and the operator ID from
// the request body. When ok is false the error response has already been
// sent and err carries the result of writing it.
func (h *MatchHandler) parseDecision(c echo.Context) (matchID, operatorID uuid.UUID, ok bool, err error) {
	matchID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.MatchInvalidID)
	}

	var req dto.DecideMatchRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if validateErr := c.Validate(&req); validateErr != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.ValidationGeneral, errors.WithDetails(validateErr.Error()))
	}

	operatorID, parseErr = uuid.Parse(req.OperatorID)
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid operator ID"))
	}

	return matchID, operatorID, true, nil
}

// sendDecisionError maps service errors from decision operations to API codes
func (h *MatchHandler) sendDecisionError(c echo.Context, err error) error {
	switch err {
	case services.ErrInvalidMatchID:
		return SendError(c, errors.MatchInvalidID)
	case services.ErrInvalidOperatorID:
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid operator ID"))
	case repositories.ErrMatchNotFound:
		return SendError(c, errors.MatchNotFound)
	case services.ErrMatchAlreadyDecided:
		return SendError(c, errors.MatchAlreadyDecided)
	case repositories.ErrLedgerTransactionNotFound:
		return SendError(c, errors.TransactionNotFound)
	case services.ErrTransactionMismatch:
		return SendError(c, errors.TransactionAccountMismatch)
	case services.ErrTransactionConsumed:
		return SendError(c, errors.TransactionAlreadyReconciled)
	default:
		return SendSystemError(c, err)
	}
}
